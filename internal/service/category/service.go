package category

import (
	"context"
	"errors"
	"strings"

	"shop-backend/internal/domain"
	"shop-backend/internal/repository/category"
)

type Service struct {
	repo category.Repository
}

func New(repo category.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.ProductCategory, error) {
	return s.repo.List(ctx)
}

// Ensure returns the category with that name, creating it if needed.
func (s *Service) Ensure(ctx context.Context, name string) (*domain.ProductCategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("category name required")
	}
	return s.repo.UpsertByName(ctx, name)
}
