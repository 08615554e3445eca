package seed

import (
	"context"
	"errors"
	"fmt"

	"shop-backend/internal/db"
	"shop-backend/internal/domain"
	categoryrepo "shop-backend/internal/repository/category"
	productrepo "shop-backend/internal/repository/product"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type productSeed struct {
	SKU          string
	Name         string
	Description  string
	UnitPrice    string
	ImageURL     string
	UnitsInStock int
	Category     string
}

var products = []productSeed{
	{SKU: "BOOK-TECH-1000", Name: "Crash Course in Go", Description: "Learn Go from the ground up", UnitPrice: "14.99", ImageURL: "assets/images/products/books/book-luv2code-1000.png", UnitsInStock: 100, Category: "Books"},
	{SKU: "BOOK-TECH-1001", Name: "Become a Guru in SQL", Description: "Queries, indexes and transactions", UnitPrice: "20.99", ImageURL: "assets/images/products/books/book-luv2code-1001.png", UnitsInStock: 100, Category: "Books"},
	{SKU: "COFFEEMUG-1000", Name: "Coffee Mug - Express", Description: "Do you love mathematics? If so, then you need this elegant coffee mug", UnitPrice: "18.99", ImageURL: "assets/images/products/coffeemugs/coffeemug-luv2code-1000.png", UnitsInStock: 100, Category: "Coffee Mugs"},
	{SKU: "MOUSEPAD-1000", Name: "Mouse Pad - Express", Description: "Fractal pattern mouse pad", UnitPrice: "17.99", ImageURL: "assets/images/products/mousepads/mousepad-luv2code-1000.png", UnitsInStock: 100, Category: "Mouse Pads"},
	{SKU: "LUGGAGETAG-1000", Name: "Luggage Tag - Cherish", Description: "Never lose your bag again", UnitPrice: "16.99", ImageURL: "assets/images/products/luggagetags/luggagetag-luv2code-1000.png", UnitsInStock: 100, Category: "Luggage Tags"},
}

// Apply loads countries, states and a small demo catalog in one transaction.
// It is idempotent: existing rows are matched by code, name or SKU.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, c := range countries {
		if err := upsertCountry(ctx, tx, c); err != nil {
			return fmt.Errorf("seed country %s: %w", c.Code, err)
		}
	}

	categories := categoryrepo.NewPostgres(tx)
	catalog := productrepo.NewPostgres(tx, nil)
	for _, p := range products {
		cat, err := categories.UpsertByName(ctx, p.Category)
		if err != nil {
			return fmt.Errorf("seed category %s: %w", p.Category, err)
		}
		_, err = catalog.UpsertBySKU(ctx, domain.Product{
			SKU:          p.SKU,
			Name:         p.Name,
			Description:  p.Description,
			UnitPrice:    decimal.RequireFromString(p.UnitPrice),
			ImageURL:     p.ImageURL,
			Active:       true,
			UnitsInStock: p.UnitsInStock,
			CategoryID:   cat.ID,
		})
		if err != nil {
			return fmt.Errorf("seed product %s: %w", p.SKU, err)
		}
	}

	return tx.Commit(ctx)
}

func upsertCountry(ctx context.Context, q db.Querier, c countrySeed) error {
	const findQ = `SELECT id FROM country WHERE code = $1`
	const insertQ = `INSERT INTO country (code, name) VALUES ($1, $2) RETURNING id`

	var id int
	err := q.QueryRow(ctx, findQ, c.Code).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		err = q.QueryRow(ctx, insertQ, c.Code, c.Name).Scan(&id)
	}
	if err != nil {
		return err
	}

	const stateQ = `
INSERT INTO state (name, country_id)
SELECT $1::varchar, $2::int
WHERE NOT EXISTS (SELECT 1 FROM state WHERE name = $1 AND country_id = $2)
`
	for _, name := range c.States {
		if _, err := q.Exec(ctx, stateQ, name, id); err != nil {
			return fmt.Errorf("state %s: %w", name, err)
		}
	}
	return nil
}
