package order

import (
	"context"

	"shop-backend/internal/domain"
)

// Repository reads persisted orders back for order history.
type Repository interface {
	ListByCustomerEmail(ctx context.Context, email string, page domain.PageRequest) (domain.Page[*domain.Order], error)
}
