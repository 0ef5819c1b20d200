package main

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/MikeMC777/coffee-orders/internal/auth"
	"github.com/MikeMC777/coffee-orders/internal/httpx"
	"github.com/MikeMC777/coffee-orders/internal/idempotency"
	"github.com/MikeMC777/coffee-orders/internal/metrics"
	"github.com/MikeMC777/coffee-orders/internal/order"
	"github.com/MikeMC777/coffee-orders/internal/product"
	"github.com/MikeMC777/coffee-orders/internal/user"
)

const serviceName = "coffee-api"

type deps struct {
	log      *slog.Logger
	tokens   *auth.Tokens
	orders   *order.Service
	products product.Repository
	users    *user.Service
	idem     idempotency.Checker
	ready    func() error
}

func newRouter(d deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), httpx.RequestID(), httpx.Tracing(serviceName), httpx.Logger(d.log), httpx.Metrics())

	r.GET("/health", healthHandler(d.ready))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	api.GET("/health", healthHandler(d.ready))
	authn := httpx.Authenticate(d.tokens)
	admin := httpx.RequireRole(auth.RoleAdmin)

	a := api.Group("/auth")
	a.POST("/register", registerHandler(d.users, d.log))
	a.POST("/login", loginHandler(d.users, d.log))
	a.POST("/admin/login", adminLoginHandler(d.users, d.log))
	a.GET("/me", authn, profileHandler(d.users, d.log))

	u := api.Group("/users", authn)
	u.GET("/profile", profileHandler(d.users, d.log))
	u.PUT("/profile", updateProfileHandler(d.users, d.log))

	p := api.Group("/products")
	p.GET("", listProductsHandler(d.products, d.log))
	p.GET("/:id", getProductHandler(d.products, d.log))
	p.GET("/category/:category", listByCategoryHandler(d.products, d.log))
	p.POST("", authn, admin, createProductHandler(d.products, d.log))
	p.PUT("/:id", authn, admin, updateProductHandler(d.products, d.log))
	p.DELETE("/:id", authn, admin, deleteProductHandler(d.products, d.log))
	p.POST("/:id/customizations", authn, admin, createCustomizationHandler(d.products, d.log))

	o := api.Group("/orders", authn)
	o.POST("", httpx.Idempotent(d.idem, d.log), createOrderHandler(d.orders, d.log))
	o.GET("/mine", listMyOrdersHandler(d.orders, d.log))
	o.GET("/:id", getOrderHandler(d.orders, d.log))
	o.PATCH("/:id/status", admin, updateOrderStatusHandler(d.orders, d.log))
	o.PATCH("/:id/cancel", cancelOrderHandler(d.orders, d.log))

	ad := api.Group("/admin", authn, admin)
	ad.GET("/orders", adminListOrdersHandler(d.orders, d.log))
	ad.PATCH("/orders/:id/status", updateOrderStatusHandler(d.orders, d.log))
	ad.GET("/stats", adminStatsHandler(d.orders, d.products, d.log))

	api.POST("/cart/quote", cartQuoteHandler(d.orders, d.log))

	return r
}

// healthHandler godoc
// @Summary  Liveness and database readiness
// @Tags     ops
// @Produce  json
// @Success  200 {object} map[string]string
// @Failure  503 {object} httpx.HTTPError
// @Router   /health [get]
func healthHandler(ready func() error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ready != nil {
			if err := ready(); err != nil {
				c.JSON(http.StatusServiceUnavailable, httpx.HTTPError{Error: "database unavailable"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

// pagination reads limit/offset with the default page of 20 and a cap of 100.
func pagination(c *gin.Context) (limit, offset int, ok bool) {
	limit, offset = 20, 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			badRequest(c, "limit must be a positive integer")
			return 0, 0, false
		}
		limit = min(n, 100)
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			badRequest(c, "offset must be a non-negative integer")
			return 0, 0, false
		}
		offset = n
	}
	return limit, offset, true
}
