package main

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/coffee-orders/internal/httpx"
	"github.com/MikeMC777/coffee-orders/internal/user"
)

// registerHandler godoc
// @Summary  Create a customer account
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body user.RegisterRequest true "account"
// @Success  201 {object} user.AuthResponse
// @Failure  400,409 {object} httpx.HTTPError
// @Router   /auth/register [post]
func registerHandler(svc *user.Service, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid json")
			return
		}
		res, err := svc.Register(c.Request.Context(), req)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusCreated, res)
	}
}

// loginHandler godoc
// @Summary  Exchange credentials for a token
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body user.LoginRequest true "credentials"
// @Success  200 {object} user.AuthResponse
// @Failure  400,401 {object} httpx.HTTPError
// @Router   /auth/login [post]
func loginHandler(svc *user.Service, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid json")
			return
		}
		res, err := svc.Login(c.Request.Context(), req)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// adminLoginHandler godoc
// @Summary  Login restricted to administrators
// @Tags     auth
// @Accept   json
// @Produce  json
// @Param    body body user.LoginRequest true "credentials"
// @Success  200 {object} user.AuthResponse
// @Failure  400,401,403 {object} httpx.HTTPError
// @Router   /auth/admin/login [post]
func adminLoginHandler(svc *user.Service, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid json")
			return
		}
		res, err := svc.AdminLogin(c.Request.Context(), req)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// profileHandler godoc
// @Summary  The caller's profile
// @Tags     users
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} user.User
// @Failure  401,404 {object} httpx.HTTPError
// @Router   /users/profile [get]
func profileHandler(svc *user.Service, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := svc.Profile(c.Request.Context(), httpx.Identity(c).ID)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

// updateProfileHandler godoc
// @Summary  Change name, phone or address fields
// @Tags     users
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body user.ProfileUpdate true "fields to change"
// @Success  200 {object} user.User
// @Failure  400,401,404 {object} httpx.HTTPError
// @Router   /users/profile [put]
func updateProfileHandler(svc *user.Service, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req user.ProfileUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid json")
			return
		}
		u, err := svc.UpdateProfile(c.Request.Context(), httpx.Identity(c).ID, req)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}
