package order

// CustomizationRef selects a catalog customization by type and name.
// swagger:model CustomizationRef
type CustomizationRef struct {
	Type string `json:"type" example:"size"`
	Name string `json:"name" example:"Large (16oz)"`
}

// CreateOrderItem is one cart line. Prices are never read from the client.
// swagger:model CreateOrderItem
type CreateOrderItem struct {
	ProductID      string             `json:"product_id" example:"4e7d4e5c-5cb9-4a3f-9f21-7e1a4f9f2b2a"`
	Quantity       int                `json:"quantity"   example:"2"`
	Customizations []CustomizationRef `json:"customizations,omitempty"`
	Notes          string             `json:"notes,omitempty" example:"extra hot"`
}

// CreateOrderRequest is the checkout payload.
// swagger:model CreateOrderRequest
type CreateOrderRequest struct {
	DeliveryAddress string            `json:"delivery_address" example:"789 Customer Rd, Chicago, IL 60601"`
	Items           []CreateOrderItem `json:"items"`
}

// UpdateStatusRequest payload.
// swagger:model UpdateStatusRequest
type UpdateStatusRequest struct {
	Status string `json:"status" example:"CONFIRMED"`
}
