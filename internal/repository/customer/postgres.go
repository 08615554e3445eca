package customer

import (
	"context"
	"errors"
	"fmt"

	"shop-backend/internal/db"
	"shop-backend/internal/domain"
	"shop-backend/internal/logger"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type postgresRepo struct {
	db  db.Querier
	log *zap.SugaredLogger
}

// NewPostgres returns a Repository running on q, which may be the pool or an open transaction.
func NewPostgres(q db.Querier, log *zap.SugaredLogger) Repository {
	return &postgresRepo{db: q, log: logger.OrNop(log).With("repo", "customer")}
}

func (r *postgresRepo) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	const q = `
SELECT id, COALESCE(first_name, ''), COALESCE(last_name, ''), email
FROM customer
WHERE email = $1
`
	var c domain.Customer
	err := r.db.QueryRow(ctx, q, email).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.log.Errorw("find by email failed", "error", err)
		return nil, err
	}
	return &c, nil
}

func (r *postgresRepo) FindOrCreate(ctx context.Context, candidate *domain.Customer) (*domain.Customer, bool, error) {
	// The no-op update makes RETURNING yield the existing row on conflict;
	// xmax = 0 only for a freshly inserted tuple.
	const q = `
INSERT INTO customer (first_name, last_name, email)
VALUES ($1, $2, $3)
ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
RETURNING id, COALESCE(first_name, ''), COALESCE(last_name, ''), email, (xmax = 0)
`
	var (
		stored   domain.Customer
		inserted bool
	)
	err := r.db.QueryRow(ctx, q, candidate.FirstName, candidate.LastName, candidate.Email).
		Scan(&stored.ID, &stored.FirstName, &stored.LastName, &stored.Email, &inserted)
	if err != nil {
		r.log.Errorw("find or create failed", "error", err)
		return nil, false, err
	}
	if inserted {
		candidate.ID = stored.ID
		return candidate, true, nil
	}
	return &stored, false, nil
}

func (r *postgresRepo) Save(ctx context.Context, c *domain.Customer) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if c.IsNew() {
		if err := insertCustomer(ctx, tx, c); err != nil {
			return err
		}
	}

	for _, order := range c.Orders() {
		if !order.IsNew() {
			continue
		}
		if err := insertOrder(ctx, tx, c.ID, order); err != nil {
			r.log.Errorw("insert order failed", "customer_id", c.ID, "tracking_number", order.TrackingNumber, "error", err)
			return err
		}
	}

	return tx.Commit(ctx)
}

func insertCustomer(ctx context.Context, tx pgx.Tx, c *domain.Customer) error {
	const q = `
INSERT INTO customer (first_name, last_name, email)
VALUES ($1, $2, $3)
RETURNING id
`
	if err := tx.QueryRow(ctx, q, c.FirstName, c.LastName, c.Email).Scan(&c.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyExists
		}
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

func insertOrder(ctx context.Context, tx pgx.Tx, customerID int64, o *domain.Order) error {
	billingID, err := insertAddress(ctx, tx, o.BillingAddress)
	if err != nil {
		return fmt.Errorf("insert billing address: %w", err)
	}
	shippingID, err := insertAddress(ctx, tx, o.ShippingAddress)
	if err != nil {
		return fmt.Errorf("insert shipping address: %w", err)
	}

	const q = `
INSERT INTO orders (order_tracking_number, total_price, total_quantity, status, billing_address_id, shipping_address_id, customer_id)
VALUES ($1, $2::numeric, $3, NULLIF($4, ''), $5, $6, $7)
RETURNING id, date_created, last_updated
`
	err = tx.QueryRow(ctx, q,
		o.TrackingNumber,
		o.TotalPrice.String(),
		o.TotalQuantity,
		o.Status,
		billingID,
		shippingID,
		customerID,
	).Scan(&o.ID, &o.DateCreated, &o.LastUpdated)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("insert order %s: %w", o.TrackingNumber, domain.ErrAlreadyExists)
		}
		return fmt.Errorf("insert order: %w", err)
	}

	const itemQ = `
INSERT INTO order_item (image_url, unit_price, quantity, order_id, product_id)
VALUES (NULLIF($1, ''), $2::numeric, $3, $4, NULLIF($5, 0))
RETURNING id
`
	for _, item := range o.Items() {
		if err := tx.QueryRow(ctx, itemQ, item.ImageURL, item.UnitPrice.String(), item.Quantity, o.ID, item.ProductID).Scan(&item.ID); err != nil {
			return fmt.Errorf("insert order item product_id=%d: %w", item.ProductID, err)
		}
	}
	return nil
}

// insertAddress stores a and returns its id. A nil address stays NULL, and an
// address that already has an id (billing == shipping) is not written twice.
func insertAddress(ctx context.Context, tx pgx.Tx, a *domain.Address) (*int64, error) {
	if a == nil {
		return nil, nil
	}
	if a.ID != 0 {
		return &a.ID, nil
	}
	const q = `
INSERT INTO address (street, city, state, country, zip_code)
VALUES ($1, $2, $3, $4, $5)
RETURNING id
`
	if err := tx.QueryRow(ctx, q, a.Street, a.City, a.State, a.Country, a.ZipCode).Scan(&a.ID); err != nil {
		return nil, err
	}
	return &a.ID, nil
}
