package category

import (
	"context"

	"shop-backend/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.ProductCategory, error)
	UpsertByName(ctx context.Context, name string) (*domain.ProductCategory, error)
}
