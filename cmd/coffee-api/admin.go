package main

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/coffee-orders/internal/cart"
	"github.com/MikeMC777/coffee-orders/internal/httpx"
	"github.com/MikeMC777/coffee-orders/internal/metrics"
	"github.com/MikeMC777/coffee-orders/internal/order"
	"github.com/MikeMC777/coffee-orders/internal/product"
)

// adminListOrdersHandler godoc
// @Summary  All orders, optionally filtered by status or customer (admin)
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Param    status      query string false "PENDING|CONFIRMED|PREPARING|READY|DELIVERED|CANCELLED"
// @Param    customer_id query string false "owner filter"
// @Param    limit       query int    false "page size (default 20, max 100)"
// @Param    offset      query int    false "offset"
// @Success  200 {object} OrderList
// @Failure  400,403 {object} httpx.HTTPError
// @Router   /admin/orders [get]
func adminListOrdersHandler(svc *order.Service, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, offset, ok := pagination(c)
		if !ok {
			return
		}
		status := order.Status(strings.ToUpper(strings.TrimSpace(c.Query("status"))))
		orders, err := svc.ListOrders(c.Request.Context(), httpx.Identity(c), order.Filter{
			CustomerID: strings.TrimSpace(c.Query("customer_id")),
			Status:     status,
			Limit:      limit,
			Offset:     offset,
		})
		metrics.RecordOrderOperation("list", err == nil)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, OrderList{Status: string(status), Limit: limit, Offset: offset, Items: orders})
	}
}

// AdminStats is the dashboard summary.
// swagger:model AdminStats
type AdminStats struct {
	TotalOrders   int             `json:"total_orders"`
	TotalProducts int             `json:"total_products"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	RecentOrders  []order.Order   `json:"recent_orders"`
}

// adminStatsHandler godoc
// @Summary  Order and catalog totals (admin)
// @Tags     admin
// @Produce  json
// @Security BearerAuth
// @Success  200 {object} AdminStats
// @Router   /admin/stats [get]
func adminStatsHandler(svc *order.Service, products product.Repository, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		st, err := svc.Stats(ctx, httpx.Identity(c))
		if err != nil {
			writeError(c, log, err)
			return
		}
		n, err := products.Count(ctx)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, AdminStats{
			TotalOrders:   st.TotalOrders,
			TotalProducts: n,
			TotalRevenue:  st.TotalRevenue,
			RecentOrders:  st.RecentOrders,
		})
	}
}

// CartQuoteRequest carries the cart lines to price.
// swagger:model CartQuoteRequest
type CartQuoteRequest struct {
	Items []order.CreateOrderItem `json:"items"`
}

// CartQuote is a priced cart.
// swagger:model CartQuote
type CartQuote struct {
	cart.Totals
	Lines []cart.Line `json:"lines"`
}

// cartQuoteHandler godoc
// @Summary  Price a cart with catalog prices, delivery fee included
// @Tags     cart
// @Accept   json
// @Produce  json
// @Param    body body CartQuoteRequest true "cart lines"
// @Success  200 {object} CartQuote
// @Failure  400,404,422 {object} httpx.HTTPError
// @Router   /cart/quote [post]
func cartQuoteHandler(svc *order.Service, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CartQuoteRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid json")
			return
		}
		priced, err := svc.Quote(c.Request.Context(), req.Items)
		if err != nil {
			writeError(c, log, err)
			return
		}
		var ct cart.Cart
		for i, it := range priced {
			ct = cart.Add(ct, cart.Line{
				ProductID:      it.ProductID,
				Name:           it.ProductName,
				UnitPrice:      it.Price,
				Quantity:       it.Quantity,
				Customizations: req.Items[i].Customizations,
				Notes:          req.Items[i].Notes,
			})
		}
		if ct.Lines == nil {
			ct.Lines = []cart.Line{}
		}
		c.JSON(http.StatusOK, CartQuote{Totals: ct.Totals(), Lines: ct.Lines})
	}
}
