// Package cart is the shopping cart aggregate. Every mutation returns a new
// Cart; callers own where it lives (session, request, client).
package cart

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/coffee-orders/internal/order"
)

var (
	// FreeDeliveryThreshold is the subtotal from which delivery is free.
	FreeDeliveryThreshold = decimal.NewFromInt(500)
	DeliveryFee           = decimal.NewFromInt(50)
)

type Line struct {
	ProductID      string                   `json:"product_id"`
	Name           string                   `json:"name,omitempty"`
	UnitPrice      decimal.Decimal          `json:"unit_price"`
	Quantity       int                      `json:"quantity"`
	Customizations []order.CustomizationRef `json:"customizations,omitempty"`
	Notes          string                   `json:"notes,omitempty"`
}

func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Key identifies a line: same product with the same options.
func (l Line) Key() string {
	opts := make([]string, len(l.Customizations))
	for i, c := range l.Customizations {
		opts[i] = strings.ToLower(c.Type) + "=" + c.Name
	}
	sort.Strings(opts)
	return l.ProductID + "|" + strings.Join(opts, ";") + "|" + l.Notes
}

type Cart struct {
	Lines []Line `json:"lines"`
}

// Add merges l into a line with the same key or appends it.
// Lines with a quantity below one are ignored.
func Add(c Cart, l Line) Cart {
	if l.Quantity < 1 {
		return c
	}
	out := clone(c)
	for i := range out.Lines {
		if out.Lines[i].Key() == l.Key() {
			out.Lines[i].Quantity += l.Quantity
			out.Lines[i].UnitPrice = l.UnitPrice
			return out
		}
	}
	out.Lines = append(out.Lines, l)
	return out
}

// Remove drops every line for productID.
func Remove(c Cart, productID string) Cart {
	out := Cart{Lines: make([]Line, 0, len(c.Lines))}
	for _, l := range c.Lines {
		if l.ProductID != productID {
			out.Lines = append(out.Lines, l)
		}
	}
	return out
}

// UpdateQuantity sets the quantity of the lines for productID. A quantity
// below one leaves the cart unchanged; use Remove to drop a line.
func UpdateQuantity(c Cart, productID string, qty int) Cart {
	if qty < 1 {
		return c
	}
	out := clone(c)
	for i := range out.Lines {
		if out.Lines[i].ProductID == productID {
			out.Lines[i].Quantity = qty
		}
	}
	return out
}

func Clear(Cart) Cart { return Cart{Lines: []Line{}} }

func clone(c Cart) Cart {
	return Cart{Lines: append(make([]Line, 0, len(c.Lines)+1), c.Lines...)}
}

type Totals struct {
	ItemsCount  int             `json:"items_count"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	Total       decimal.Decimal `json:"total"`
}

func (c Cart) Totals() Totals {
	t := Totals{Subtotal: decimal.Zero, DeliveryFee: decimal.Zero}
	for _, l := range c.Lines {
		t.ItemsCount += l.Quantity
		t.Subtotal = t.Subtotal.Add(l.Subtotal())
	}
	if t.Subtotal.IsPositive() && t.Subtotal.LessThan(FreeDeliveryThreshold) {
		t.DeliveryFee = DeliveryFee
	}
	t.Total = t.Subtotal.Add(t.DeliveryFee)
	return t
}

// CheckoutItems converts the cart to an order payload. Unit prices are not
// carried; the order service prices lines from the catalog.
func (c Cart) CheckoutItems() []order.CreateOrderItem {
	items := make([]order.CreateOrderItem, 0, len(c.Lines))
	for _, l := range c.Lines {
		items = append(items, order.CreateOrderItem{
			ProductID:      l.ProductID,
			Quantity:       l.Quantity,
			Customizations: append([]order.CustomizationRef(nil), l.Customizations...),
			Notes:          l.Notes,
		})
	}
	return items
}
