package main

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/coffee-orders/internal/product"
)

// listProductsHandler godoc
// @Summary  List the catalog
// @Tags     products
// @Produce  json
// @Param    category  query string false "exact category"
// @Param    q         query string false "name/description search"
// @Param    available query bool   false "only orderable products"
// @Param    limit     query int    false "page size (default 20, max 100)"
// @Param    offset    query int    false "offset"
// @Success  200 {object} product.ListResponse
// @Failure  400 {object} httpx.HTTPError
// @Router   /products [get]
func listProductsHandler(repo product.Repository, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		listProducts(c, repo, log, c.Query("category"))
	}
}

// listByCategoryHandler godoc
// @Summary  List one category
// @Tags     products
// @Produce  json
// @Param    category path string true "category"
// @Success  200 {object} product.ListResponse
// @Router   /products/category/{category} [get]
func listByCategoryHandler(repo product.Repository, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		listProducts(c, repo, log, c.Param("category"))
	}
}

func listProducts(c *gin.Context, repo product.Repository, log *slog.Logger, category string) {
	limit, offset, ok := pagination(c)
	if !ok {
		return
	}
	q := product.Query{
		Q:             strings.TrimSpace(c.Query("q")),
		Category:      strings.TrimSpace(category),
		AvailableOnly: c.Query("available") == "true",
		Limit:         limit,
		Offset:        offset,
	}
	items, err := repo.List(c.Request.Context(), q)
	if err != nil {
		writeError(c, log, err)
		return
	}
	if items == nil {
		items = []product.Product{}
	}
	c.JSON(http.StatusOK, product.ListResponse{
		Q: q.Q, Category: q.Category, Limit: limit, Offset: offset, Items: items,
	})
}

// getProductHandler godoc
// @Summary  One product with its customizations
// @Tags     products
// @Produce  json
// @Param    id path string true "product id"
// @Success  200 {object} product.Product
// @Failure  404 {object} httpx.HTTPError
// @Router   /products/{id} [get]
func getProductHandler(repo product.Repository, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		p, err := repo.GetByID(ctx, c.Param("id"))
		if err != nil {
			writeError(c, log, err)
			return
		}
		if p.Customizations, err = repo.ListCustomizations(ctx, p.ID); err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func parsePrice(s string, allowZero bool) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" && allowZero {
		return decimal.Zero, true
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() || (!allowZero && d.IsZero()) {
		return decimal.Decimal{}, false
	}
	return d.Round(2), true
}

// createProductHandler godoc
// @Summary  Add a product (admin)
// @Tags     products
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    body body product.CreateProductRequest true "product"
// @Success  201 {object} product.Product
// @Failure  400,403 {object} httpx.HTTPError
// @Router   /products [post]
func createProductHandler(repo product.Repository, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req product.CreateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid json")
			return
		}
		name, category := strings.TrimSpace(req.Name), strings.TrimSpace(req.Category)
		if name == "" || category == "" {
			badRequest(c, "name and category are required")
			return
		}
		price, ok := parsePrice(req.Price, false)
		if !ok {
			badRequest(c, "price must be a positive decimal")
			return
		}
		p := &product.Product{
			ID:          uuid.NewString(),
			Name:        name,
			Description: strings.TrimSpace(req.Description),
			Price:       price,
			Image:       strings.TrimSpace(req.Image),
			Category:    category,
			IsAvailable: req.IsAvailable == nil || *req.IsAvailable,
		}
		if err := repo.Create(c.Request.Context(), p); err != nil {
			writeError(c, log, err)
			return
		}
		log.InfoContext(c.Request.Context(), "product created", "product_id", p.ID)
		c.JSON(http.StatusCreated, p)
	}
}

// updateProductHandler godoc
// @Summary  Partially update a product (admin)
// @Tags     products
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id   path string true "product id"
// @Param    body body product.UpdateProductRequest true "fields to change"
// @Success  200 {object} product.Product
// @Failure  400,403,404 {object} httpx.HTTPError
// @Router   /products/{id} [put]
func updateProductHandler(repo product.Repository, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req product.UpdateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid json")
			return
		}
		patch := product.Patch{
			Name:        trimmed(req.Name),
			Description: req.Description,
			Image:       req.Image,
			Category:    trimmed(req.Category),
			IsAvailable: req.IsAvailable,
		}
		if (patch.Name != nil && *patch.Name == "") || (patch.Category != nil && *patch.Category == "") {
			badRequest(c, "name and category cannot be empty")
			return
		}
		if req.Price != nil {
			price, ok := parsePrice(*req.Price, false)
			if !ok {
				badRequest(c, "price must be a positive decimal")
				return
			}
			patch.Price = &price
		}
		p, err := repo.Update(c.Request.Context(), c.Param("id"), patch)
		if err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// deleteProductHandler godoc
// @Summary  Delete a product never ordered (admin)
// @Tags     products
// @Security BearerAuth
// @Param    id path string true "product id"
// @Success  204
// @Failure  403,404,409 {object} httpx.HTTPError
// @Router   /products/{id} [delete]
func deleteProductHandler(repo product.Repository, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := repo.Delete(c.Request.Context(), c.Param("id"))
		if err != nil {
			writeError(c, log, err)
			return
		}
		if !ok {
			writeError(c, log, product.ErrNotFound)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// createCustomizationHandler godoc
// @Summary  Add a size, milk or extra option to a product (admin)
// @Tags     products
// @Accept   json
// @Produce  json
// @Security BearerAuth
// @Param    id   path string true "product id"
// @Param    body body product.CreateCustomizationRequest true "customization"
// @Success  201 {object} product.Customization
// @Failure  400,403,404,409 {object} httpx.HTTPError
// @Router   /products/{id}/customizations [post]
func createCustomizationHandler(repo product.Repository, log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req product.CreateCustomizationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid json")
			return
		}
		typ := product.CustomizationType(strings.ToLower(strings.TrimSpace(req.Type)))
		if !typ.Valid() {
			badRequest(c, "type must be size, milk or extra")
			return
		}
		name := strings.TrimSpace(req.Name)
		if name == "" {
			badRequest(c, "name is required")
			return
		}
		add, ok := parsePrice(req.PriceAdd, true)
		if !ok {
			badRequest(c, "price_add must be a non-negative decimal")
			return
		}

		ctx := c.Request.Context()
		p, err := repo.GetByID(ctx, c.Param("id"))
		if err != nil {
			writeError(c, log, err)
			return
		}
		cu := &product.Customization{ID: uuid.NewString(), ProductID: p.ID, Type: typ, Name: name, PriceAdd: add}
		if err := repo.CreateCustomization(ctx, cu); err != nil {
			writeError(c, log, err)
			return
		}
		c.JSON(http.StatusCreated, cu)
	}
}
