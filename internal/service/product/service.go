package product

import (
	"context"
	"strings"

	"shop-backend/internal/domain"
	productrepo "shop-backend/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Product], error) {
	return s.repo.List(ctx, page)
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByCategory(ctx context.Context, categoryID int64, page domain.PageRequest) (domain.Page[domain.Product], error) {
	return s.repo.ListByCategory(ctx, categoryID, page)
}

// SearchByName trims the fragment; a blank fragment lists everything.
func (s *Service) SearchByName(ctx context.Context, fragment string, page domain.PageRequest) (domain.Page[domain.Product], error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return s.repo.List(ctx, page)
	}
	return s.repo.SearchByName(ctx, fragment, page)
}

func (s *Service) Upsert(ctx context.Context, p domain.Product) (*domain.Product, error) {
	return s.repo.UpsertBySKU(ctx, p)
}
