package order

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type Repository interface {
	// Create stores the order and all of its items atomically.
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id string) (*Order, error)
	List(ctx context.Context, f Filter) ([]Order, error)
	// UpdateStatus sets status to `to` only if it still equals `from`.
	UpdateStatus(ctx context.Context, id string, from, to Status, at time.Time) error
	Stats(ctx context.Context, recent int) (Stats, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, o *Order) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
    INSERT INTO orders (id, customer_id, status, total_price, delivery_address, created_at, updated_at)
    VALUES ($1,$2,$3,$4,$5,$6,$7)
  `, o.ID, o.CustomerID, string(o.Status), o.TotalPrice.String(), o.DeliveryAddress, o.CreatedAt, o.UpdatedAt); err != nil {
		return err
	}

	batch := &pgx.Batch{}
	for i, it := range o.Items {
		batch.Queue(`
      INSERT INTO order_items (id, order_id, product_id, line_no, quantity, price, customizations, created_at, updated_at)
      VALUES ($1,$2,$3,$4,$5,$6,NULLIF($7,''),$8,$8)
    `, it.ID, o.ID, it.ProductID, i, it.Quantity, it.Price.String(), it.Customizations, o.CreatedAt)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

const orderColumns = `o.id, o.customer_id, o.status, o.total_price::text, o.delivery_address, o.created_at, o.updated_at,
       u.name, u.email, u.phone`

func scanOrder(row pgx.Row) (*Order, error) {
	var (
		o                  Order
		status, total      string
		name, email, phone *string
	)
	if err := row.Scan(&o.ID, &o.CustomerID, &status, &total, &o.DeliveryAddress, &o.CreatedAt, &o.UpdatedAt,
		&name, &email, &phone); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(total)
	if err != nil {
		return nil, fmt.Errorf("order %s total %q: %w", o.ID, total, err)
	}
	o.Status = Status(status)
	o.TotalPrice = d
	if name != nil || email != nil {
		o.Customer = &Customer{Name: deref(name), Email: deref(email), Phone: deref(phone)}
	}
	return &o, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `
    SELECT `+orderColumns+`
    FROM orders o LEFT JOIN users u ON u.id = o.customer_id
    WHERE o.id=$1
  `, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	items, err := r.itemsFor(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	if o.Items == nil {
		o.Items = []Item{}
	}
	return o, nil
}

func (r *PGRepo) List(ctx context.Context, f Filter) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}
	rows, err := r.db.Query(ctx, `
    SELECT `+orderColumns+`
    FROM orders o LEFT JOIN users u ON u.id = o.customer_id
    WHERE ($1 = '' OR o.customer_id = $1)
      AND ($2 = '' OR o.status = $2)
    ORDER BY o.created_at DESC, o.id
    LIMIT $3 OFFSET $4
  `, f.CustomerID, string(f.Status), limit, offset)
	if err != nil {
		return nil, err
	}
	out, err := collectOrders(rows)
	if err != nil {
		return nil, err
	}
	return out, r.attachItems(ctx, out)
}

func collectOrders(rows pgx.Rows) ([]Order, error) {
	defer rows.Close()
	out := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func (r *PGRepo) attachItems(ctx context.Context, orders []Order) error {
	if len(orders) == 0 {
		return nil
	}
	ids := make([]string, len(orders))
	for i, o := range orders {
		ids[i] = o.ID
	}
	items, err := r.itemsFor(ctx, ids)
	if err != nil {
		return err
	}
	for i := range orders {
		orders[i].Items = items[orders[i].ID]
		if orders[i].Items == nil {
			orders[i].Items = []Item{}
		}
	}
	return nil
}

func (r *PGRepo) itemsFor(ctx context.Context, orderIDs []string) (map[string][]Item, error) {
	rows, err := r.db.Query(ctx, `
    SELECT id, order_id, product_id, quantity, price::text, COALESCE(customizations, '')
    FROM order_items
    WHERE order_id = ANY($1)
    ORDER BY order_id, line_no
  `, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]Item, len(orderIDs))
	for rows.Next() {
		var (
			it    Item
			price string
		)
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &price, &it.Customizations); err != nil {
			return nil, err
		}
		if it.Price, err = decimal.NewFromString(price); err != nil {
			return nil, fmt.Errorf("item %s price %q: %w", it.ID, price, err)
		}
		out[it.OrderID] = append(out[it.OrderID], it)
	}
	return out, rows.Err()
}

func (r *PGRepo) UpdateStatus(ctx context.Context, id string, from, to Status, at time.Time) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tag, err := r.db.Exec(ctx, `
    UPDATE orders
    SET status = $3, updated_at = $4
    WHERE id = $1 AND status = $2
  `, id, string(from), string(to), at)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM orders WHERE id=$1)`, id).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrOrderNotFound
	}
	return ErrConcurrentTransition
}

func (r *PGRepo) Stats(ctx context.Context, recent int) (Stats, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var (
		st      Stats
		revenue string
	)
	if err := r.db.QueryRow(ctx, `
    SELECT COUNT(*), COALESCE(SUM(total_price), 0)::text FROM orders
  `).Scan(&st.TotalOrders, &revenue); err != nil {
		return Stats{}, err
	}
	d, err := decimal.NewFromString(revenue)
	if err != nil {
		return Stats{}, fmt.Errorf("revenue %q: %w", revenue, err)
	}
	st.TotalRevenue = d

	rows, err := r.db.Query(ctx, `
    SELECT `+orderColumns+`
    FROM orders o LEFT JOIN users u ON u.id = o.customer_id
    ORDER BY o.created_at DESC, o.id
    LIMIT $1
  `, recent)
	if err != nil {
		return Stats{}, err
	}
	if st.RecentOrders, err = collectOrders(rows); err != nil {
		return Stats{}, err
	}
	return st, nil
}
