// Package product provides the catalog: products, their customizations, and
// the PostgreSQL repository behind them.
package product

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/coffee-orders/internal/db"
)

var (
	ErrNotFound              = errors.New("product not found")
	ErrCustomizationNotFound = errors.New("customization not found")
	ErrInUse                 = errors.New("product is referenced by orders")
	ErrAlreadyExist          = errors.New("customization already exists")
)

type Query struct {
	Q             string
	Category      string
	AvailableOnly bool
	Limit         int
	Offset        int
}

// Patch carries a partial update; nil fields are left unchanged.
type Patch struct {
	Name        *string
	Description *string
	Price       *decimal.Decimal
	Image       *string
	Category    *string
	IsAvailable *bool
}

type Repository interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, q Query) ([]Product, error)
	Update(ctx context.Context, id string, patch Patch) (*Product, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int, error)

	CreateCustomization(ctx context.Context, c *Customization) error
	ListCustomizations(ctx context.Context, productID string) ([]Customization, error)
	FindCustomization(ctx context.Context, productID string, typ CustomizationType, name string) (*Customization, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const productColumns = `id, name, description, price::text, image, category, is_available, created_at, updated_at`

func scanProduct(row pgx.Row) (*Product, error) {
	var (
		p     Product
		price string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &price, &p.Image, &p.Category, &p.IsAvailable, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("product %s price %q: %w", p.ID, price, err)
	}
	p.Price = d
	return &p, nil
}

func (r *PGRepo) Create(ctx context.Context, p *Product) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO products (id, name, description, price, image, category, is_available, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,NOW(),NOW())
		RETURNING created_at, updated_at
	`, p.ID, p.Name, p.Description, p.Price.String(), p.Image, p.Category, p.IsAvailable).
		Scan(&p.CreatedAt, &p.UpdatedAt)
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	p, err := scanProduct(r.db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *PGRepo) List(ctx context.Context, q Query) ([]Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	limit := q.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE ($1 = '' OR name ILIKE '%'||$1||'%' OR description ILIKE '%'||$1||'%')
		  AND ($2 = '' OR category = $2)
		  AND (NOT $3 OR is_available)
		ORDER BY created_at DESC
		LIMIT $4 OFFSET $5
	`, strings.TrimSpace(q.Q), strings.TrimSpace(q.Category), q.AvailableOnly, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *PGRepo) Update(ctx context.Context, id string, patch Patch) (*Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var price *string
	if patch.Price != nil {
		s := patch.Price.String()
		price = &s
	}
	p, err := scanProduct(r.db.QueryRow(ctx, `
		UPDATE products
		SET name         = COALESCE($2, name),
		    description  = COALESCE($3, description),
		    price        = COALESCE($4::numeric, price),
		    image        = COALESCE($5, image),
		    category     = COALESCE($6, category),
		    is_available = COALESCE($7, is_available),
		    updated_at   = NOW()
		WHERE id = $1
		RETURNING `+productColumns,
		id, patch.Name, patch.Description, price, patch.Image, patch.Category, patch.IsAvailable))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (r *PGRepo) Delete(ctx context.Context, id string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cmd, err := r.db.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if db.IsForeignKeyViolation(err) {
		return false, ErrInUse
	}
	if err != nil {
		return false, err
	}
	return cmd.RowsAffected() > 0, nil
}

func (r *PGRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM products`).Scan(&n)
	return n, err
}

func (r *PGRepo) CreateCustomization(ctx context.Context, c *Customization) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.db.Exec(ctx, `
		INSERT INTO product_customizations (id, product_id, type, name, price_add, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,NOW(),NOW())
	`, c.ID, c.ProductID, string(c.Type), c.Name, c.PriceAdd.String())
	switch {
	case db.IsUniqueViolation(err):
		return ErrAlreadyExist
	case db.IsForeignKeyViolation(err):
		return ErrNotFound
	}
	return err
}

func scanCustomization(row pgx.Row) (*Customization, error) {
	var (
		c     Customization
		typ   string
		price string
	)
	if err := row.Scan(&c.ID, &c.ProductID, &typ, &c.Name, &price); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("customization %s price %q: %w", c.ID, price, err)
	}
	c.Type = CustomizationType(typ)
	c.PriceAdd = d
	return &c, nil
}

func (r *PGRepo) ListCustomizations(ctx context.Context, productID string) ([]Customization, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, product_id, type, name, price_add::text
		FROM product_customizations
		WHERE product_id = $1
		ORDER BY type, price_add, name
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Customization
	for rows.Next() {
		c, err := scanCustomization(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

func (r *PGRepo) FindCustomization(ctx context.Context, productID string, typ CustomizationType, name string) (*Customization, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	c, err := scanCustomization(r.db.QueryRow(ctx, `
		SELECT id, product_id, type, name, price_add::text
		FROM product_customizations
		WHERE product_id = $1 AND type = $2 AND name = $3
	`, productID, string(typ), name))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrCustomizationNotFound
	}
	return c, err
}
