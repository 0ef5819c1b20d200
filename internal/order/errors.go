package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Error kinds. Every error returned by Service wraps exactly one of these or
// is an internal failure.
var (
	ErrValidation        = errors.New("invalid request")
	ErrNotFound          = errors.New("not found")
	ErrUnavailable       = errors.New("unavailable")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrConflict          = errors.New("conflict")
)

// MaxQuantity bounds a single line; order_items.quantity is an INTEGER column.
const MaxQuantity = 1000

// maxTotal is the largest value orders.total_price (NUMERIC(12,2)) holds.
var maxTotal = decimal.RequireFromString("9999999999.99")

var (
	ErrOrderNotFound        = fmt.Errorf("order %w", ErrNotFound)
	ErrProductNotFound      = fmt.Errorf("product %w", ErrNotFound)
	ErrInvalidCustomization = fmt.Errorf("customization %w", ErrNotFound)
	ErrProductUnavailable   = fmt.Errorf("product %w", ErrUnavailable)
	ErrInvalidQuantity      = fmt.Errorf("%w: quantity must be between 1 and %d", ErrValidation, MaxQuantity)
	ErrDuplicateOption      = fmt.Errorf("%w: customization repeated on one item", ErrValidation)
	ErrTotalTooLarge        = fmt.Errorf("%w: order total too large", ErrValidation)
	ErrEmptyCart            = fmt.Errorf("%w: order must contain at least one item", ErrValidation)
	ErrMissingAddress       = fmt.Errorf("%w: delivery address is required", ErrValidation)
	ErrUnknownStatus        = fmt.Errorf("%w: unknown status", ErrValidation)
	ErrConcurrentTransition = fmt.Errorf("%w: order status changed concurrently", ErrConflict)
)
