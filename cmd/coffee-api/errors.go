package main

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/coffee-orders/internal/httpx"
	"github.com/MikeMC777/coffee-orders/internal/order"
	"github.com/MikeMC777/coffee-orders/internal/product"
	"github.com/MikeMC777/coffee-orders/internal/user"
)

// statusOf maps domain errors to HTTP codes. Zero means internal.
func statusOf(err error) int {
	switch {
	case errors.Is(err, order.ErrValidation),
		errors.Is(err, user.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, order.ErrForbidden),
		errors.Is(err, user.ErrNotAdmin):
		return http.StatusForbidden
	case errors.Is(err, order.ErrNotFound),
		errors.Is(err, product.ErrNotFound),
		errors.Is(err, product.ErrCustomizationNotFound),
		errors.Is(err, user.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrConflict),
		errors.Is(err, product.ErrInUse),
		errors.Is(err, product.ErrAlreadyExist),
		errors.Is(err, user.ErrAlreadyExist):
		return http.StatusConflict
	case errors.Is(err, order.ErrUnavailable):
		return http.StatusUnprocessableEntity
	}
	return 0
}

// writeError renders err. Internal failures are logged and reported opaquely.
func writeError(c *gin.Context, log *slog.Logger, err error) {
	code := statusOf(err)
	if code == 0 {
		log.ErrorContext(c.Request.Context(), "request failed",
			"rid", httpx.GetRequestID(c), "method", c.Request.Method, "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, httpx.HTTPError{Error: "internal error"})
		return
	}
	c.JSON(code, httpx.HTTPError{Error: err.Error()})
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, httpx.HTTPError{Error: msg})
}
