package order

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/MikeMC777/coffee-orders/internal/auth"
	"github.com/MikeMC777/coffee-orders/internal/events"
	"github.com/MikeMC777/coffee-orders/internal/product"
)

//
// ---------- STUBS & FAKES ----------
//

// memRepo implements Repository in memory.
type memRepo struct {
	mu     sync.Mutex
	orders map[string]*Order
	failOn error
}

func newMemRepo() *memRepo { return &memRepo{orders: map[string]*Order{}} }

func (m *memRepo) Create(_ context.Context, o *Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failOn != nil {
		return m.failOn
	}
	cp := *o
	cp.Items = append([]Item(nil), o.Items...)
	m.orders[o.ID] = &cp
	return nil
}

func (m *memRepo) GetByID(_ context.Context, id string) (*Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, ErrOrderNotFound
	}
	cp := *o
	return &cp, nil
}

func (m *memRepo) List(_ context.Context, f Filter) ([]Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []Order{}
	for _, o := range m.orders {
		if f.CustomerID != "" && o.CustomerID != f.CustomerID {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		out = append(out, *o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memRepo) UpdateStatus(_ context.Context, id string, from, to Status, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return ErrOrderNotFound
	}
	if o.Status != from {
		return ErrConcurrentTransition
	}
	o.Status = to
	o.UpdatedAt = at
	return nil
}

func (m *memRepo) Stats(_ context.Context, recent int) (Stats, error) {
	all, _ := m.List(context.Background(), Filter{})
	st := Stats{TotalOrders: len(all), TotalRevenue: decimal.Zero}
	for _, o := range all {
		st.TotalRevenue = st.TotalRevenue.Add(o.TotalPrice)
	}
	if len(all) > recent {
		all = all[:recent]
	}
	st.RecentOrders = all
	return st, nil
}

func (m *memRepo) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

// fakeCatalog implements Catalog over a fixed product set.
type fakeCatalog struct {
	products map[string]product.Product
	custom   []product.Customization
}

func (c *fakeCatalog) GetByID(_ context.Context, id string) (*product.Product, error) {
	p, ok := c.products[id]
	if !ok {
		return nil, product.ErrNotFound
	}
	return &p, nil
}

func (c *fakeCatalog) FindCustomization(_ context.Context, productID string, typ product.CustomizationType, name string) (*product.Customization, error) {
	for _, cu := range c.custom {
		if cu.ProductID == productID && cu.Type == typ && cu.Name == name {
			cp := cu
			return &cp, nil
		}
	}
	return nil, product.ErrCustomizationNotFound
}

type capturePublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *capturePublisher) Publish(_ context.Context, ev events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func (p *capturePublisher) Close() error { return nil }

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func newCatalog() *fakeCatalog {
	return &fakeCatalog{
		products: map[string]product.Product{
			"cappuccino": {ID: "cappuccino", Name: "Cappuccino", Price: dec("4.00"), IsAvailable: true},
			"espresso":   {ID: "espresso", Name: "Espresso", Price: dec("2.50"), IsAvailable: true},
			"mocha":      {ID: "mocha", Name: "Mocha", Price: dec("4.75"), IsAvailable: false},
		},
		custom: []product.Customization{
			{ID: "c1", ProductID: "cappuccino", Type: product.CustomizationSize, Name: "Large (16oz)", PriceAdd: dec("0.75")},
			{ID: "c2", ProductID: "cappuccino", Type: product.CustomizationMilk, Name: "Oat Milk", PriceAdd: dec("0.50")},
			{ID: "c3", ProductID: "espresso", Type: product.CustomizationExtra, Name: "Extra Shot", PriceAdd: dec("0.80")},
		},
	}
}

type fixture struct {
	svc   *Service
	repo  *memRepo
	pub   *capturePublisher
	clock time.Time
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		repo:  newMemRepo(),
		pub:   &capturePublisher{},
		clock: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	f.svc = NewService(f.repo, newCatalog(), f.pub, slog.New(slog.NewTextHandler(io.Discard, nil)))
	f.svc.now = func() time.Time { return f.clock }
	n := 0
	f.svc.newID = func() string { n++; return fmt.Sprintf("id-%d", n) }
	return f
}

func (f *fixture) advance(d time.Duration) { f.clock = f.clock.Add(d) }

var (
	customerU1 = auth.Identity{ID: "U1", Email: "u1@example.com", Roles: []auth.Role{auth.RoleCustomer}}
	customerU2 = auth.Identity{ID: "U2", Email: "u2@example.com", Roles: []auth.Role{auth.RoleCustomer}}
	admin      = auth.Identity{ID: "A1", Email: "admin@example.com", Roles: []auth.Role{auth.RoleAdmin}}
)

func basicCart() CreateOrderRequest {
	return CreateOrderRequest{
		DeliveryAddress: "789 Customer Rd",
		Items: []CreateOrderItem{
			{ProductID: "cappuccino", Quantity: 2},
			{ProductID: "espresso", Quantity: 1},
		},
	}
}

func mustCreate(t *testing.T, f *fixture, caller auth.Identity) *Order {
	t.Helper()
	o, err := f.svc.CreateOrder(context.Background(), caller, basicCart())
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	return o
}

//
// ---------- TESTS ----------
//

func TestCreateOrder_EndToEnd(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	o := mustCreate(t, f, customerU1)

	if !o.TotalPrice.Equal(dec("10.50")) {
		t.Fatalf("total = %s, want 10.50", o.TotalPrice)
	}
	if o.Status != StatusPending {
		t.Fatalf("status = %s, want PENDING", o.Status)
	}
	if o.CustomerID != "U1" {
		t.Fatalf("customer = %s, want U1", o.CustomerID)
	}
	if len(o.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(o.Items))
	}
	if !o.Items[0].Price.Equal(dec("4.00")) || !o.Items[1].Price.Equal(dec("2.50")) {
		t.Fatalf("item prices = %s, %s", o.Items[0].Price, o.Items[1].Price)
	}
	for _, it := range o.Items {
		if it.OrderID != o.ID || it.ID == "" {
			t.Fatalf("item not linked to order: %+v", it)
		}
	}

	stored, err := f.repo.GetByID(context.Background(), o.ID)
	if err != nil {
		t.Fatalf("stored order: %v", err)
	}
	if !stored.TotalPrice.Equal(SumItems(stored.Items)) {
		t.Fatalf("stored total %s != sum of items %s", stored.TotalPrice, SumItems(stored.Items))
	}

	if len(f.pub.events) != 1 || f.pub.events[0].Type != events.TypeOrderCreated {
		t.Fatalf("events = %+v, want one order.created", f.pub.events)
	}
}

func TestCreateOrder_PricesCustomizationsFromCatalog(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	o, err := f.svc.CreateOrder(context.Background(), customerU1, CreateOrderRequest{
		DeliveryAddress: "1 Main St",
		Items: []CreateOrderItem{{
			ProductID: "cappuccino",
			Quantity:  3,
			Customizations: []CustomizationRef{
				{Type: "size", Name: "Large (16oz)"},
				{Type: "MILK", Name: "Oat Milk"},
			},
			Notes: "extra hot",
		}},
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}

	// 4.00 + 0.75 + 0.50
	if !o.Items[0].Price.Equal(dec("5.25")) {
		t.Fatalf("unit price = %s, want 5.25", o.Items[0].Price)
	}
	if !o.TotalPrice.Equal(dec("15.75")) {
		t.Fatalf("total = %s, want 15.75", o.TotalPrice)
	}
	want := "Size: Large (16oz), Milk: Oat Milk, extra hot"
	if o.Items[0].Customizations != want {
		t.Fatalf("customizations = %q, want %q", o.Items[0].Customizations, want)
	}
}

func TestCreateOrder_Rejections(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		req  CreateOrderRequest
		kind error
		want error
	}{
		{
			name: "unavailable product",
			req: CreateOrderRequest{DeliveryAddress: "x", Items: []CreateOrderItem{
				{ProductID: "cappuccino", Quantity: 1},
				{ProductID: "mocha", Quantity: 1},
			}},
			kind: ErrUnavailable,
			want: ErrProductUnavailable,
		},
		{
			name: "unknown product",
			req: CreateOrderRequest{DeliveryAddress: "x", Items: []CreateOrderItem{
				{ProductID: "cappuccino", Quantity: 1},
				{ProductID: "latte-xl", Quantity: 1},
			}},
			kind: ErrNotFound,
			want: ErrProductNotFound,
		},
		{
			name: "zero quantity",
			req: CreateOrderRequest{DeliveryAddress: "x", Items: []CreateOrderItem{
				{ProductID: "espresso", Quantity: 0},
			}},
			kind: ErrValidation,
			want: ErrInvalidQuantity,
		},
		{
			name: "quantity above limit",
			req: CreateOrderRequest{DeliveryAddress: "x", Items: []CreateOrderItem{
				{ProductID: "espresso", Quantity: MaxQuantity + 1},
			}},
			kind: ErrValidation,
			want: ErrInvalidQuantity,
		},
		{
			name: "two sizes on one item",
			req: CreateOrderRequest{DeliveryAddress: "x", Items: []CreateOrderItem{
				{ProductID: "cappuccino", Quantity: 1, Customizations: []CustomizationRef{
					{Type: "size", Name: "Large (16oz)"},
					{Type: "Size", Name: "Large (16oz)"},
				}},
			}},
			kind: ErrValidation,
			want: ErrDuplicateOption,
		},
		{
			name: "repeated extra",
			req: CreateOrderRequest{DeliveryAddress: "x", Items: []CreateOrderItem{
				{ProductID: "espresso", Quantity: 1, Customizations: []CustomizationRef{
					{Type: "extra", Name: "Extra Shot"},
					{Type: "extra", Name: " Extra Shot "},
				}},
			}},
			kind: ErrValidation,
			want: ErrDuplicateOption,
		},
		{
			name: "customization of another product",
			req: CreateOrderRequest{DeliveryAddress: "x", Items: []CreateOrderItem{
				{ProductID: "espresso", Quantity: 1, Customizations: []CustomizationRef{{Type: "milk", Name: "Oat Milk"}}},
			}},
			kind: ErrNotFound,
			want: ErrInvalidCustomization,
		},
		{
			name: "empty cart",
			req:  CreateOrderRequest{DeliveryAddress: "x"},
			kind: ErrValidation,
			want: ErrEmptyCart,
		},
		{
			name: "blank address",
			req:  CreateOrderRequest{DeliveryAddress: "   ", Items: []CreateOrderItem{{ProductID: "espresso", Quantity: 1}}},
			kind: ErrValidation,
			want: ErrMissingAddress,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)

			_, err := f.svc.CreateOrder(context.Background(), customerU1, tc.req)
			if !errors.Is(err, tc.want) || !errors.Is(err, tc.kind) {
				t.Fatalf("err = %v, want %v (kind %v)", err, tc.want, tc.kind)
			}
			if n := f.repo.count(); n != 0 {
				t.Fatalf("persisted %d orders after rejection", n)
			}
			if len(f.pub.events) != 0 {
				t.Fatalf("published %d events after rejection", len(f.pub.events))
			}
		})
	}
}

func TestCreateOrder_TotalBeyondColumnRange(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	cat := f.svc.catalog.(*fakeCatalog)
	p := cat.products["espresso"]
	p.Price = dec("99999999.99")
	cat.products["espresso"] = p

	_, err := f.svc.CreateOrder(context.Background(), customerU1, CreateOrderRequest{
		DeliveryAddress: "x",
		Items:           []CreateOrderItem{{ProductID: "espresso", Quantity: MaxQuantity}},
	})
	if !errors.Is(err, ErrTotalTooLarge) || !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want ErrTotalTooLarge", err)
	}
	if n := f.repo.count(); n != 0 {
		t.Fatalf("persisted %d orders", n)
	}
}

func TestCreateOrder_AnonymousForbidden(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	_, err := f.svc.CreateOrder(context.Background(), auth.Identity{}, basicCart())
	if !errors.Is(err, ErrForbidden) {
		t.Fatalf("err = %v, want ErrForbidden", err)
	}
}

func TestCreateOrder_PersistFailureIsInternal(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.repo.failOn = errors.New("connection reset")

	_, err := f.svc.CreateOrder(context.Background(), customerU1, basicCart())
	if err == nil {
		t.Fatal("expected error")
	}
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrUnavailable, ErrForbidden, ErrInvalidTransition, ErrConflict} {
		if errors.Is(err, kind) {
			t.Fatalf("persist failure classified as %v", kind)
		}
	}
}

func TestCreateOrder_PublishFailureDoesNotFail(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	f.pub.err = errors.New("broker down")

	if _, err := f.svc.CreateOrder(context.Background(), customerU1, basicCart()); err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if f.repo.count() != 1 {
		t.Fatal("order not persisted")
	}
}

func TestListOrders_OwnershipIsolation(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	first := mustCreate(t, f, customerU1)
	f.advance(time.Minute)
	mustCreate(t, f, customerU2)
	f.advance(time.Minute)
	second := mustCreate(t, f, customerU1)

	// A customer cannot widen the filter to other owners.
	mine, err := f.svc.ListOrders(context.Background(), customerU1, Filter{CustomerID: "U2"})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("got %d orders, want 2", len(mine))
	}
	for _, o := range mine {
		if o.CustomerID != "U1" {
			t.Fatalf("customer U1 saw order of %s", o.CustomerID)
		}
	}
	if mine[0].ID != second.ID || mine[1].ID != first.ID {
		t.Fatalf("not newest first: %s, %s", mine[0].ID, mine[1].ID)
	}

	all, err := f.svc.ListOrders(context.Background(), admin, Filter{})
	if err != nil {
		t.Fatalf("admin ListOrders: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("admin got %d orders, want 3", len(all))
	}
}

func TestListOrders_AdminStatusFilter(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	a := mustCreate(t, f, customerU1)
	mustCreate(t, f, customerU2)
	if _, err := f.svc.UpdateStatus(context.Background(), admin, a.ID, StatusConfirmed); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	got, err := f.svc.ListOrders(context.Background(), admin, Filter{Status: StatusConfirmed})
	if err != nil {
		t.Fatalf("ListOrders: %v", err)
	}
	if len(got) != 1 || got[0].ID != a.ID {
		t.Fatalf("filtered = %+v, want only %s", got, a.ID)
	}

	if _, err := f.svc.ListOrders(context.Background(), admin, Filter{Status: "SHIPPED"}); !errors.Is(err, ErrValidation) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestGetOrder_Access(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	o := mustCreate(t, f, customerU1)
	f.repo.orders[o.ID].Customer = &Customer{Name: "Jane", Email: "u1@example.com"}

	got, err := f.svc.GetOrder(context.Background(), customerU1, o.ID)
	if err != nil {
		t.Fatalf("owner GetOrder: %v", err)
	}
	if got.Customer != nil {
		t.Fatal("customer details leaked to non-admin view")
	}

	if _, err := f.svc.GetOrder(context.Background(), customerU2, o.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("other customer err = %v, want ErrForbidden", err)
	}

	got, err = f.svc.GetOrder(context.Background(), admin, o.ID)
	if err != nil {
		t.Fatalf("admin GetOrder: %v", err)
	}
	if got.Customer == nil || got.Customer.Name != "Jane" {
		t.Fatalf("admin view customer = %+v", got.Customer)
	}

	if _, err := f.svc.GetOrder(context.Background(), admin, "missing"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("err = %v, want ErrOrderNotFound", err)
	}
}

func TestUpdateStatus_AllPairs(t *testing.T) {
	t.Parallel()

	// path reaches each status from PENDING.
	path := map[Status][]Status{
		StatusPending:   nil,
		StatusConfirmed: {StatusConfirmed},
		StatusPreparing: {StatusConfirmed, StatusPreparing},
		StatusReady:     {StatusConfirmed, StatusPreparing, StatusReady},
		StatusDelivered: {StatusConfirmed, StatusPreparing, StatusReady, StatusDelivered},
		StatusCancelled: {StatusCancelled},
	}

	for _, from := range Statuses {
		for _, to := range Statuses {
			from, to := from, to
			t.Run(fmt.Sprintf("%s_to_%s", from, to), func(t *testing.T) {
				t.Parallel()
				f := newFixture(t)
				ctx := context.Background()
				o := mustCreate(t, f, customerU1)
				for _, step := range path[from] {
					if _, err := f.svc.UpdateStatus(ctx, admin, o.ID, step); err != nil {
						t.Fatalf("setup %s: %v", step, err)
					}
				}
				before, _ := f.repo.GetByID(ctx, o.ID)
				f.advance(time.Hour)

				got, err := f.svc.UpdateStatus(ctx, admin, o.ID, to)
				after, _ := f.repo.GetByID(ctx, o.ID)

				if CanTransition(from, to) {
					if err != nil {
						t.Fatalf("UpdateStatus: %v", err)
					}
					if got.Status != to || after.Status != to {
						t.Fatalf("status = %s/%s, want %s", got.Status, after.Status, to)
					}
					if !after.UpdatedAt.Equal(f.clock) {
						t.Fatalf("updatedAt = %v, want %v", after.UpdatedAt, f.clock)
					}
					return
				}
				if !errors.Is(err, ErrInvalidTransition) {
					t.Fatalf("err = %v, want ErrInvalidTransition", err)
				}
				if after.Status != from || !after.UpdatedAt.Equal(before.UpdatedAt) {
					t.Fatalf("rejected transition mutated order: %s at %v", after.Status, after.UpdatedAt)
				}
			})
		}
	}
}

func TestUpdateStatus_Guards(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	o := mustCreate(t, f, customerU1)

	if _, err := f.svc.UpdateStatus(ctx, customerU1, o.ID, StatusConfirmed); !errors.Is(err, ErrForbidden) {
		t.Fatalf("owner err = %v, want ErrForbidden", err)
	}
	if _, err := f.svc.UpdateStatus(ctx, admin, "missing", StatusConfirmed); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("missing err = %v, want ErrOrderNotFound", err)
	}
	if _, err := f.svc.UpdateStatus(ctx, admin, o.ID, "SHIPPED"); !errors.Is(err, ErrUnknownStatus) {
		t.Fatalf("unknown err = %v, want ErrUnknownStatus", err)
	}

	if _, err := f.svc.UpdateStatus(ctx, admin, o.ID, StatusConfirmed); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	last := f.pub.events[len(f.pub.events)-1]
	if last.Type != events.TypeOrderStatusChanged || last.PreviousStatus != "PENDING" || last.Status != "CONFIRMED" || last.ActorID != "A1" {
		t.Fatalf("event = %+v", last)
	}
}

// staleRepo reports a status that another writer has already changed.
type staleRepo struct{ *memRepo }

func (s staleRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	o, err := s.memRepo.GetByID(ctx, id)
	if err == nil {
		o.Status = StatusPending
	}
	return o, err
}

func TestUpdateStatus_ConcurrentChangeConflicts(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()
	o := mustCreate(t, f, customerU1)
	if _, err := f.svc.UpdateStatus(ctx, admin, o.ID, StatusCancelled); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	f.svc.repo = staleRepo{f.repo}
	_, err := f.svc.UpdateStatus(ctx, admin, o.ID, StatusConfirmed)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("err = %v, want ErrConflict", err)
	}
	if got, _ := f.repo.GetByID(ctx, o.ID); got.Status != StatusCancelled {
		t.Fatalf("status = %s, want CANCELLED", got.Status)
	}
}

func TestCancelOrder(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	o := mustCreate(t, f, customerU1)
	if _, err := f.svc.CancelOrder(ctx, customerU2, o.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("stranger err = %v, want ErrForbidden", err)
	}
	got, err := f.svc.CancelOrder(ctx, customerU1, o.ID)
	if err != nil {
		t.Fatalf("CancelOrder: %v", err)
	}
	if got.Status != StatusCancelled {
		t.Fatalf("status = %s, want CANCELLED", got.Status)
	}
	if _, err := f.svc.CancelOrder(ctx, customerU1, o.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second cancel err = %v, want ErrInvalidTransition", err)
	}

	confirmed := mustCreate(t, f, customerU1)
	if _, err := f.svc.UpdateStatus(ctx, admin, confirmed.ID, StatusConfirmed); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if _, err := f.svc.CancelOrder(ctx, customerU1, confirmed.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("confirmed cancel err = %v, want ErrInvalidTransition", err)
	}
}

func TestStats(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.svc.Stats(ctx, customerU1); !errors.Is(err, ErrForbidden) {
		t.Fatalf("customer err = %v, want ErrForbidden", err)
	}

	st, err := f.svc.Stats(ctx, admin)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.TotalOrders != 0 || st.RecentOrders == nil {
		t.Fatalf("empty stats = %+v", st)
	}

	for i := 0; i < 7; i++ {
		mustCreate(t, f, customerU1)
		f.advance(time.Second)
	}
	st, err = f.svc.Stats(ctx, admin)
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if st.TotalOrders != 7 || !st.TotalRevenue.Equal(dec("73.50")) || len(st.RecentOrders) != 5 {
		t.Fatalf("stats = %d orders, %s revenue, %d recent", st.TotalOrders, st.TotalRevenue, len(st.RecentOrders))
	}
}

func TestQuote_PricesWithoutPersisting(t *testing.T) {
	t.Parallel()
	f := newFixture(t)

	lines, err := f.svc.Quote(context.Background(), basicCart().Items)
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if len(lines) != 2 || lines[0].ProductName != "Cappuccino" || !lines[1].Price.Equal(dec("2.50")) {
		t.Fatalf("lines = %+v", lines)
	}
	if f.repo.count() != 0 || len(f.pub.events) != 0 {
		t.Fatal("quote had side effects")
	}
	if _, err := f.svc.Quote(context.Background(), nil); !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("err = %v, want ErrEmptyCart", err)
	}
}
