package customer

import (
	"context"

	"shop-backend/internal/domain"
)

// Repository persists and fetches customers together with the orders they own.
type Repository interface {
	// FindByEmail matches the email exactly; ErrNotFound when absent.
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	// FindOrCreate returns the stored customer for candidate.Email, inserting
	// candidate when none exists. The bool reports whether a row was created.
	FindOrCreate(ctx context.Context, candidate *domain.Customer) (*domain.Customer, bool, error)
	// Save writes the customer (when new) and every unsaved order it owns,
	// with addresses and items, as one unit.
	Save(ctx context.Context, c *domain.Customer) error
}
