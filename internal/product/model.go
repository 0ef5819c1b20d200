package product

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image,omitempty"`
	Category    string          `json:"category"`
	IsAvailable bool            `json:"is_available"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`

	Customizations []Customization `json:"customizations,omitempty"`
}

type CustomizationType string

const (
	CustomizationSize  CustomizationType = "size"
	CustomizationMilk  CustomizationType = "milk"
	CustomizationExtra CustomizationType = "extra"
)

func (t CustomizationType) Valid() bool {
	switch t {
	case CustomizationSize, CustomizationMilk, CustomizationExtra:
		return true
	}
	return false
}

// Customization is a named product option carrying an additive price.
type Customization struct {
	ID        string            `json:"id"`
	ProductID string            `json:"product_id"`
	Type      CustomizationType `json:"type"`
	Name      string            `json:"name"`
	PriceAdd  decimal.Decimal   `json:"price_add"`
}

// ListResponse represents the paginated response of products.
// swagger:model
type ListResponse struct {
	Q        string    `json:"q,omitempty"`
	Category string    `json:"category,omitempty"`
	Limit    int       `json:"limit"`
	Offset   int       `json:"offset"`
	Items    []Product `json:"items"`
}

// CreateProductRequest payload of creation.
// swagger:model CreateProductRequest
type CreateProductRequest struct {
	Name        string `json:"name"         example:"Cappuccino"`
	Description string `json:"description"  example:"Espresso with steamed milk and foam"`
	Price       string `json:"price"        example:"4.00"`
	Image       string `json:"image"        example:"/images/cappuccino.jpg"`
	Category    string `json:"category"     example:"Milk Coffee"`
	IsAvailable *bool  `json:"is_available" example:"true"`
}

// UpdateProductRequest payload of partial update. Omitted fields are left unchanged.
// swagger:model UpdateProductRequest
type UpdateProductRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *string `json:"price"`
	Image       *string `json:"image"`
	Category    *string `json:"category"`
	IsAvailable *bool   `json:"is_available"`
}

// CreateCustomizationRequest payload.
// swagger:model CreateCustomizationRequest
type CreateCustomizationRequest struct {
	Type     string `json:"type"      example:"size"`
	Name     string `json:"name"      example:"Large (16oz)"`
	PriceAdd string `json:"price_add" example:"1.00"`
}
