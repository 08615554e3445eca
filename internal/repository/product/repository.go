package product

import (
	"context"

	"shop-backend/internal/domain"
)

type Repository interface {
	List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Product], error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	ListByCategory(ctx context.Context, categoryID int64, page domain.PageRequest) (domain.Page[domain.Product], error)
	SearchByName(ctx context.Context, fragment string, page domain.PageRequest) (domain.Page[domain.Product], error)
	UpsertBySKU(ctx context.Context, p domain.Product) (*domain.Product, error)
}
