package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customer_id"`
	Status          Status          `json:"status"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	DeliveryAddress string          `json:"delivery_address"`
	Items           []Item          `json:"items"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Customer is only filled for admin views.
	Customer *Customer `json:"customer,omitempty"`
}

type Item struct {
	ID             string          `json:"id"`
	OrderID        string          `json:"order_id"`
	ProductID      string          `json:"product_id"`
	Quantity       int             `json:"quantity"`
	Price          decimal.Decimal `json:"price"`
	Customizations string          `json:"customizations,omitempty"`
}

// Subtotal is the line total, price snapshot times quantity.
func (it Item) Subtotal() decimal.Decimal {
	return it.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// SumItems returns Σ(price × quantity); an order's total always equals it.
func SumItems(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Filter narrows List. Empty fields match everything.
type Filter struct {
	CustomerID string
	Status     Status
	Limit      int
	Offset     int
}

type Stats struct {
	TotalOrders  int             `json:"total_orders"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	RecentOrders []Order         `json:"recent_orders"`
}
