package order

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MikeMC777/coffee-orders/internal/auth"
	"github.com/MikeMC777/coffee-orders/internal/events"
	"github.com/MikeMC777/coffee-orders/internal/metrics"
	"github.com/MikeMC777/coffee-orders/internal/product"
)

// Catalog is the read-only view of products the service prices orders from.
type Catalog interface {
	GetByID(ctx context.Context, id string) (*product.Product, error)
	FindCustomization(ctx context.Context, productID string, typ product.CustomizationType, name string) (*product.Customization, error)
}

// Service owns the order lifecycle: creation with server-side pricing,
// ownership checks and status transitions.
type Service struct {
	repo    Repository
	catalog Catalog
	events  events.Publisher
	log     *slog.Logger
	tracer  trace.Tracer

	now   func() time.Time
	newID func() string
}

func NewService(repo Repository, catalog Catalog, pub events.Publisher, log *slog.Logger) *Service {
	if pub == nil {
		pub = events.Nop{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repo:    repo,
		catalog: catalog,
		events:  pub,
		log:     log,
		tracer:  otel.Tracer("github.com/MikeMC777/coffee-orders/internal/order"),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// CreateOrder prices every line from the catalog and persists the order with
// its items in one transaction.
func (s *Service) CreateOrder(ctx context.Context, caller auth.Identity, req CreateOrderRequest) (o *Order, err error) {
	ctx, span := s.tracer.Start(ctx, "order.Create")
	defer func() { endSpan(span, err) }()

	if caller.ID == "" {
		return nil, fmt.Errorf("%w: anonymous caller", ErrForbidden)
	}
	addr := strings.TrimSpace(req.DeliveryAddress)
	if addr == "" {
		return nil, ErrMissingAddress
	}
	if len(req.Items) == 0 {
		return nil, ErrEmptyCart
	}

	now := s.now().UTC()
	o = &Order{
		ID:              s.newID(),
		CustomerID:      caller.ID,
		Status:          StatusPending,
		DeliveryAddress: addr,
		Items:           make([]Item, 0, len(req.Items)),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for i, line := range req.Items {
		it, err := s.priceItem(ctx, line)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		it.ID = s.newID()
		it.OrderID = o.ID
		o.Items = append(o.Items, it.Item)
	}
	o.TotalPrice = SumItems(o.Items)
	if o.TotalPrice.GreaterThan(maxTotal) {
		return nil, ErrTotalTooLarge
	}
	span.SetAttributes(attribute.String("order.id", o.ID), attribute.Int("order.items", len(o.Items)))

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}
	s.log.InfoContext(ctx, "order created",
		"order_id", o.ID, "customer_id", o.CustomerID, "total", o.TotalPrice.StringFixed(2), "items", len(o.Items))

	s.publish(ctx, events.Event{
		Type:       events.TypeOrderCreated,
		OrderID:    o.ID,
		CustomerID: o.CustomerID,
		Status:     string(o.Status),
		Total:      o.TotalPrice,
		ActorID:    caller.ID,
		OccurredAt: now,
	})
	return o, nil
}

// QuotedItem is a priced line that has not been attached to an order.
type QuotedItem struct {
	Item
	ProductName string
}

func (s *Service) priceItem(ctx context.Context, line CreateOrderItem) (QuotedItem, error) {
	p, err := s.catalog.GetByID(ctx, line.ProductID)
	switch {
	case errors.Is(err, product.ErrNotFound):
		return QuotedItem{}, fmt.Errorf("%w: %s", ErrProductNotFound, line.ProductID)
	case err != nil:
		return QuotedItem{}, fmt.Errorf("lookup product %s: %w", line.ProductID, err)
	}
	if !p.IsAvailable {
		return QuotedItem{}, fmt.Errorf("%w: %s", ErrProductUnavailable, p.Name)
	}
	if line.Quantity < 1 || line.Quantity > MaxQuantity {
		return QuotedItem{}, ErrInvalidQuantity
	}

	price := p.Price
	labels := make([]string, 0, len(line.Customizations)+1)
	picked := make(map[string]bool, len(line.Customizations))
	for _, ref := range line.Customizations {
		typ := product.CustomizationType(strings.ToLower(strings.TrimSpace(ref.Type)))
		name := strings.TrimSpace(ref.Name)
		// A drink has one size and one milk; extras may stack but not repeat.
		key := string(typ) + "=" + name
		if typ == product.CustomizationSize || typ == product.CustomizationMilk {
			key = string(typ)
		}
		if picked[key] {
			return QuotedItem{}, fmt.Errorf("%w: %s %q on %s", ErrDuplicateOption, ref.Type, ref.Name, p.Name)
		}
		picked[key] = true

		c, err := s.catalog.FindCustomization(ctx, p.ID, typ, name)
		switch {
		case errors.Is(err, product.ErrCustomizationNotFound):
			return QuotedItem{}, fmt.Errorf("%w: %s %q on %s", ErrInvalidCustomization, ref.Type, ref.Name, p.Name)
		case err != nil:
			return QuotedItem{}, fmt.Errorf("lookup customization: %w", err)
		}
		price = price.Add(c.PriceAdd)
		labels = append(labels, customizationLabel(c))
	}
	if notes := strings.TrimSpace(line.Notes); notes != "" {
		labels = append(labels, notes)
	}

	return QuotedItem{
		Item: Item{
			ProductID:      p.ID,
			Quantity:       line.Quantity,
			Price:          price,
			Customizations: strings.Join(labels, ", "),
		},
		ProductName: p.Name,
	}, nil
}

// customizationLabel renders "Size: Large (16oz)".
func customizationLabel(c *product.Customization) string {
	t := string(c.Type)
	if t != "" {
		t = strings.ToUpper(t[:1]) + t[1:]
	}
	return t + ": " + c.Name
}

// ListOrders returns the caller's own orders, newest first. Admins see every
// order and may filter by status and customer.
func (s *Service) ListOrders(ctx context.Context, caller auth.Identity, f Filter) ([]Order, error) {
	admin := caller.IsAdmin()
	if !admin {
		f.CustomerID = caller.ID
		f.Status = ""
	}
	if f.Status != "" && !f.Status.Valid() {
		return nil, ErrUnknownStatus
	}
	orders, err := s.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	if !admin {
		for i := range orders {
			orders[i].Customer = nil
		}
	}
	return orders, nil
}

func (s *Service) GetOrder(ctx context.Context, caller auth.Identity, id string) (*Order, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !caller.IsAdmin() {
		if o.CustomerID != caller.ID {
			return nil, ErrForbidden
		}
		o.Customer = nil
	}
	return o, nil
}

// UpdateStatus moves an order along the lifecycle. Admin only.
func (s *Service) UpdateStatus(ctx context.Context, caller auth.Identity, id string, to Status) (o *Order, err error) {
	ctx, span := s.tracer.Start(ctx, "order.UpdateStatus", trace.WithAttributes(
		attribute.String("order.id", id), attribute.String("order.status", string(to))))
	defer func() { endSpan(span, err) }()

	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	if !to.Valid() {
		return nil, ErrUnknownStatus
	}
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(cur.Status, to) {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidTransition, cur.Status, to)
	}
	return s.transition(ctx, caller, cur, to)
}

// CancelOrder lets the owner (or an admin) withdraw an order that has not
// been confirmed yet.
func (s *Service) CancelOrder(ctx context.Context, caller auth.Identity, id string) (*Order, error) {
	cur, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur.CustomerID != caller.ID && !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	if cur.Status != StatusPending {
		return nil, fmt.Errorf("%w: only pending orders can be cancelled, order is %s", ErrInvalidTransition, cur.Status)
	}
	return s.transition(ctx, caller, cur, StatusCancelled)
}

func (s *Service) transition(ctx context.Context, caller auth.Identity, cur *Order, to Status) (*Order, error) {
	now := s.now().UTC()
	if err := s.repo.UpdateStatus(ctx, cur.ID, cur.Status, to, now); err != nil {
		return nil, err
	}
	from := cur.Status
	cur.Status = to
	cur.UpdatedAt = now
	if !caller.IsAdmin() {
		cur.Customer = nil
	}
	s.log.InfoContext(ctx, "order status changed",
		"order_id", cur.ID, "from", from, "to", to, "actor_id", caller.ID)

	s.publish(ctx, events.Event{
		Type:           events.TypeOrderStatusChanged,
		OrderID:        cur.ID,
		CustomerID:     cur.CustomerID,
		Status:         string(to),
		PreviousStatus: string(from),
		Total:          cur.TotalPrice,
		ActorID:        caller.ID,
		OccurredAt:     now,
	})
	return cur, nil
}

// Quote prices cart lines exactly as CreateOrder would, without persisting.
func (s *Service) Quote(ctx context.Context, lines []CreateOrderItem) ([]QuotedItem, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	out := make([]QuotedItem, 0, len(lines))
	for i, line := range lines {
		it, err := s.priceItem(ctx, line)
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i+1, err)
		}
		out = append(out, it)
	}
	return out, nil
}

const recentOrders = 5

// Stats summarizes orders for the admin dashboard.
func (s *Service) Stats(ctx context.Context, caller auth.Identity) (Stats, error) {
	if !caller.IsAdmin() {
		return Stats{}, ErrForbidden
	}
	st, err := s.repo.Stats(ctx, recentOrders)
	if err != nil {
		return Stats{}, fmt.Errorf("order stats: %w", err)
	}
	if st.RecentOrders == nil {
		st.RecentOrders = []Order{}
	}
	return st, nil
}

func (s *Service) publish(ctx context.Context, ev events.Event) {
	err := s.events.Publish(ctx, ev)
	metrics.RecordEvent(ev.Type, err == nil)
	if err != nil {
		s.log.WarnContext(ctx, "publish order event failed",
			"type", ev.Type, "order_id", ev.OrderID, "err", err)
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
