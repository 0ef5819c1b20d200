package main

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MikeMC777/coffee-orders/internal/httpx"
	"github.com/MikeMC777/coffee-orders/internal/metrics"
	"github.com/MikeMC777/coffee-orders/internal/order"
)

// OrderList is a page of orders.
// swagger:model OrderList
type OrderList struct {
	Status string        `json:"status,omitempty"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
	Items  []order.Order `json:"items"`
}

// createOrderHandler godoc
// @Summary  Place an order from cart lines; prices come from the catalog
// @Tags     orders
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    Idempotency-Key header string false "deduplicates retried checkouts"
// @Param    body body order.CreateOrderRequest true "order"
// @Success  201 {object} order.Order
// @Failure  400,401,404,409,422 {object} httpx.HTTPError
// @Router   /orders [post]
func createOrderHandler(svc *order.Service, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid json")
			return
		}
		o, err := svc.CreateOrder(c.Request.Context(), httpx.Identity(c), req)
		metrics.RecordOrderOperation("create", err == nil)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusCreated, o)
	}
}

// listMyOrdersHandler godoc
// @Summary  Caller's orders, newest first
// @Tags     orders
// @Produce  json
// @Security BearerAuth
// @Param    limit  query int false "page size (default 20, max 100)"
// @Param    offset query int false "offset"
// @Success  200 {object} OrderList
// @Router   /orders/mine [get]
func listMyOrdersHandler(svc *order.Service, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset, ok := pagination(c)
		if !ok {
			return
		}
		caller := httpx.Identity(c)
		orders, err := svc.ListOrders(c.Request.Context(), caller, order.Filter{
			CustomerID: caller.ID, Limit: limit, Offset: offset,
		})
		metrics.RecordOrderOperation("list", err == nil)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, OrderList{Limit: limit, Offset: offset, Items: orders})
	}
}

// getOrderHandler godoc
// @Summary  One order with its items (owner or admin)
// @Tags     orders
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "order id"
// @Success  200 {object} order.Order
// @Failure  403,404 {object} httpx.HTTPError
// @Router   /orders/{id} [get]
func getOrderHandler(svc *order.Service, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.GetOrder(c.Request.Context(), httpx.Identity(c), c.Param("id"))
		metrics.RecordOrderOperation("get", err == nil)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// updateOrderStatusHandler godoc
// @Summary  Move an order along its lifecycle (admin)
// @Tags     admin
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id   path string true "order id"
// @Param    body body order.UpdateStatusRequest true "new status"
// @Success  200 {object} order.Order
// @Failure  400,403,404,409 {object} httpx.HTTPError
// @Router   /orders/{id}/status [patch]
func updateOrderStatusHandler(svc *order.Service, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req order.UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Status) == "" {
			badRequest(c, "status is required")
			return
		}
		to := order.Status(strings.ToUpper(strings.TrimSpace(req.Status)))
		o, err := svc.UpdateStatus(c.Request.Context(), httpx.Identity(c), c.Param("id"), to)
		metrics.RecordOrderOperation("update_status", err == nil)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

// cancelOrderHandler godoc
// @Summary  Cancel a pending order (owner or admin)
// @Tags     orders
// @Produce  json
// @Security BearerAuth
// @Param    id path string true "order id"
// @Success  200 {object} order.Order
// @Failure  403,404,409 {object} httpx.HTTPError
// @Router   /orders/{id}/cancel [patch]
func cancelOrderHandler(svc *order.Service, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.CancelOrder(c.Request.Context(), httpx.Identity(c), c.Param("id"))
		metrics.RecordOrderOperation("cancel", err == nil)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}
