package cart

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/coffee-orders/internal/order"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestTotals_TwoLines(t *testing.T) {
	t.Parallel()

	c := Add(Cart{}, Line{ProductID: "cappuccino", UnitPrice: d("4.00"), Quantity: 2})
	c = Add(c, Line{ProductID: "latte", UnitPrice: d("4.50"), Quantity: 2})

	got := c.Totals()
	if got.ItemsCount != 4 {
		t.Fatalf("items = %d, want 4", got.ItemsCount)
	}
	if !got.Subtotal.Equal(d("17.00")) || !got.DeliveryFee.Equal(d("50")) || !got.Total.Equal(d("67.00")) {
		t.Fatalf("totals = %+v, want 17.00 + 50 = 67.00", got)
	}
}

func TestTotals_DeliveryFee(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		subtotal string
		fee      string
	}{
		{"empty", "0", "0"},
		{"small", "10.50", "50"},
		{"just below", "499.99", "50"},
		{"threshold", "500", "0"},
		{"above", "820", "0"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := Cart{}
			if !d(tc.subtotal).IsZero() {
				c = Add(c, Line{ProductID: "p", UnitPrice: d(tc.subtotal), Quantity: 1})
			}
			got := c.Totals()
			if !got.DeliveryFee.Equal(d(tc.fee)) {
				t.Fatalf("fee = %s, want %s", got.DeliveryFee, tc.fee)
			}
			if !got.Total.Equal(got.Subtotal.Add(got.DeliveryFee)) {
				t.Fatalf("total %s != subtotal + fee", got.Total)
			}
		})
	}
}

func TestReducers(t *testing.T) {
	t.Parallel()

	large := []order.CustomizationRef{{Type: "size", Name: "Large (16oz)"}}
	c := Add(Cart{}, Line{ProductID: "cappuccino", UnitPrice: d("4.00"), Quantity: 1})
	c = Add(c, Line{ProductID: "cappuccino", UnitPrice: d("4.00"), Quantity: 2})
	c = Add(c, Line{ProductID: "cappuccino", UnitPrice: d("4.75"), Quantity: 1, Customizations: large})
	c = Add(c, Line{ProductID: "espresso", UnitPrice: d("2.50"), Quantity: 0})

	if len(c.Lines) != 2 {
		t.Fatalf("lines = %d, want 2 (merge same options, skip zero qty)", len(c.Lines))
	}
	if c.Lines[0].Quantity != 3 {
		t.Fatalf("merged qty = %d, want 3", c.Lines[0].Quantity)
	}

	before := c
	updated := UpdateQuantity(c, "cappuccino", 5)
	if before.Lines[0].Quantity != 3 {
		t.Fatal("UpdateQuantity mutated its input")
	}
	if updated.Totals().ItemsCount != 10 {
		t.Fatalf("items = %d, want 10", updated.Totals().ItemsCount)
	}
	if same := UpdateQuantity(updated, "cappuccino", 0); same.Totals().ItemsCount != 10 {
		t.Fatal("quantity below one changed the cart")
	}

	removed := Remove(updated, "cappuccino")
	if len(removed.Lines) != 0 || len(updated.Lines) != 2 {
		t.Fatalf("remove: %d lines left, input has %d", len(removed.Lines), len(updated.Lines))
	}

	cleared := Clear(updated)
	if tot := cleared.Totals(); tot.ItemsCount != 0 || !tot.Total.IsZero() {
		t.Fatalf("cleared totals = %+v", tot)
	}
}

func TestCheckoutItems_DropsPrices(t *testing.T) {
	t.Parallel()

	c := Add(Cart{}, Line{
		ProductID:      "cappuccino",
		UnitPrice:      d("0.01"),
		Quantity:       2,
		Customizations: []order.CustomizationRef{{Type: "milk", Name: "Oat Milk"}},
		Notes:          "extra hot",
	})
	items := c.CheckoutItems()
	if len(items) != 1 {
		t.Fatalf("items = %d", len(items))
	}
	it := items[0]
	if it.ProductID != "cappuccino" || it.Quantity != 2 || len(it.Customizations) != 1 || it.Notes != "extra hot" {
		t.Fatalf("item = %+v", it)
	}
}
