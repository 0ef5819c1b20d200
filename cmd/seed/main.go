// Command seed resets the database to a small demo catalog with two
// customers, one administrator and a couple of orders.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/MikeMC777/coffee-orders/internal/auth"
	"github.com/MikeMC777/coffee-orders/internal/config"
	"github.com/MikeMC777/coffee-orders/internal/db"
	"github.com/MikeMC777/coffee-orders/internal/events"
	"github.com/MikeMC777/coffee-orders/internal/order"
	"github.com/MikeMC777/coffee-orders/internal/product"
	"github.com/MikeMC777/coffee-orders/internal/telemetry"
	"github.com/MikeMC777/coffee-orders/internal/user"
)

const demoPassword = "password123"

func main() {
	cfg := config.Load()
	log := telemetry.NewLogger(os.Stdout, cfg.LogLevel, "coffee-seed")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("seed failed", "err", err)
		os.Exit(1)
	}
	log.Info("database seeded", "password", demoPassword)
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	pool, err := db.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := db.Migrate(ctx, pool); err != nil {
		return err
	}
	if err := truncate(ctx, pool); err != nil {
		return err
	}
	log.Info("cleared existing data")

	users := user.NewPGRepo(pool)
	customers, admin, err := seedUsers(ctx, users)
	if err != nil {
		return err
	}
	log.Info("created users", "customers", len(customers))

	products := product.NewPGRepo(pool)
	ids, err := seedCatalog(ctx, products)
	if err != nil {
		return err
	}
	log.Info("created products", "products", len(ids))

	svc := order.NewService(order.NewPGRepo(pool), products, events.Nop{}, log)
	return seedOrders(ctx, svc, customers, admin, ids)
}

func truncate(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `TRUNCATE order_items, orders, product_customizations, products, users`)
	if err != nil {
		return fmt.Errorf("truncate: %w", err)
	}
	return nil
}

func seedUsers(ctx context.Context, repo user.Repository) ([]auth.Identity, auth.Identity, error) {
	hash, err := user.HashPassword(demoPassword)
	if err != nil {
		return nil, auth.Identity{}, err
	}
	accounts := []user.User{
		{Email: "customer1@coffeeorder.com", Name: "John Doe", Phone: "5551234567",
			Address: "789 Customer Rd", City: "Chicago", PostalCode: "60601", Roles: []auth.Role{auth.RoleCustomer}},
		{Email: "customer2@coffeeorder.com", Name: "Jane Smith", Phone: "5559876543",
			Address: "321 Customer Ln", City: "Houston", PostalCode: "77001", Roles: []auth.Role{auth.RoleCustomer}},
		{Email: "admin@coffeeorder.com", Name: "Store Admin", Roles: []auth.Role{auth.RoleAdmin}},
	}
	var customers []auth.Identity
	var admin auth.Identity
	for i := range accounts {
		u := &accounts[i]
		u.ID = uuid.NewString()
		u.PasswordHash = hash
		if err := repo.Create(ctx, u); err != nil {
			return nil, auth.Identity{}, fmt.Errorf("create %s: %w", u.Email, err)
		}
		if u.Identity().IsAdmin() {
			admin = u.Identity()
		} else {
			customers = append(customers, u.Identity())
		}
	}
	return customers, admin, nil
}

type seedProduct struct {
	name, description, category, image, price string
	options                                   []seedOption
}

type seedOption struct {
	typ        product.CustomizationType
	name, cost string
}

func seedCatalog(ctx context.Context, repo product.Repository) (map[string]string, error) {
	catalog := []seedProduct{
		{name: "Espresso", description: "Strong and concentrated coffee", category: "Espresso", image: "/images/espresso.jpg", price: "2.50"},
		{name: "Cappuccino", description: "Espresso with steamed milk and foam", category: "Milk Coffee", image: "/images/cappuccino.jpg", price: "4.00",
			options: []seedOption{
				{product.CustomizationSize, "Small (8oz)", "0"},
				{product.CustomizationSize, "Medium (12oz)", "0.50"},
				{product.CustomizationSize, "Large (16oz)", "1.00"},
			}},
		{name: "Latte", description: "Espresso with steamed milk", category: "Milk Coffee", image: "/images/latte.jpg", price: "4.00",
			options: []seedOption{
				{product.CustomizationMilk, "Whole Milk", "0"},
				{product.CustomizationMilk, "Almond Milk", "0.50"},
				{product.CustomizationMilk, "Oat Milk", "0.50"},
				{product.CustomizationMilk, "Soy Milk", "0.50"},
			}},
		{name: "Mocha", description: "Espresso with chocolate and milk", category: "Specialty", image: "/images/mocha.jpg", price: "4.50",
			options: []seedOption{
				{product.CustomizationExtra, "Extra Shot", "0.75"},
				{product.CustomizationExtra, "Whipped Cream", "0.50"},
				{product.CustomizationExtra, "Chocolate Drizzle", "0.50"},
			}},
		{name: "Americano", description: "Espresso with hot water", category: "Espresso", image: "/images/americano.jpg", price: "3.00"},
		{name: "Macchiato", description: "Espresso with a dash of milk", category: "Espresso", image: "/images/macchiato.jpg", price: "3.50"},
	}

	ids := make(map[string]string, len(catalog))
	for _, sp := range catalog {
		p := &product.Product{
			ID:          uuid.NewString(),
			Name:        sp.name,
			Description: sp.description,
			Price:       decimal.RequireFromString(sp.price),
			Image:       sp.image,
			Category:    sp.category,
			IsAvailable: true,
		}
		if err := repo.Create(ctx, p); err != nil {
			return nil, fmt.Errorf("create product %s: %w", sp.name, err)
		}
		ids[sp.name] = p.ID
		for _, o := range sp.options {
			c := &product.Customization{
				ID:        uuid.NewString(),
				ProductID: p.ID,
				Type:      o.typ,
				Name:      o.name,
				PriceAdd:  decimal.RequireFromString(o.cost),
			}
			if err := repo.CreateCustomization(ctx, c); err != nil {
				return nil, fmt.Errorf("create customization %s/%s: %w", sp.name, o.name, err)
			}
		}
	}
	return ids, nil
}

func seedOrders(ctx context.Context, svc *order.Service, customers []auth.Identity, admin auth.Identity, ids map[string]string) error {
	first, err := svc.CreateOrder(ctx, customers[0], order.CreateOrderRequest{
		DeliveryAddress: "789 Customer Rd, Chicago, IL 60601",
		Items: []order.CreateOrderItem{
			{ProductID: ids["Cappuccino"], Quantity: 2, Customizations: []order.CustomizationRef{{Type: "size", Name: "Large (16oz)"}}},
			{ProductID: ids["Espresso"], Quantity: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("first order: %w", err)
	}
	for _, st := range []order.Status{order.StatusConfirmed, order.StatusPreparing, order.StatusReady, order.StatusDelivered} {
		if _, err := svc.UpdateStatus(ctx, admin, first.ID, st); err != nil {
			return fmt.Errorf("advance first order to %s: %w", st, err)
		}
	}

	_, err = svc.CreateOrder(ctx, customers[1], order.CreateOrderRequest{
		DeliveryAddress: "321 Customer Ln, Houston, TX 77001",
		Items: []order.CreateOrderItem{
			{ProductID: ids["Latte"], Quantity: 2, Customizations: []order.CustomizationRef{{Type: "milk", Name: "Almond Milk"}}},
			{ProductID: ids["Mocha"], Quantity: 2, Customizations: []order.CustomizationRef{{Type: "extra", Name: "Whipped Cream"}}},
		},
	})
	if err != nil {
		return fmt.Errorf("second order: %w", err)
	}
	return nil
}
