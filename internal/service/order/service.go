// Package order serves a customer's order history.
package order

import (
	"context"

	"shop-backend/internal/domain"
	orderrepo "shop-backend/internal/repository/order"
)

type Service struct {
	repo orderrepo.Repository
}

func New(repo orderrepo.Repository) *Service {
	return &Service{repo: repo}
}

// History lists orders for the exact email, newest first.
func (s *Service) History(ctx context.Context, email string, page domain.PageRequest) (domain.Page[*domain.Order], error) {
	return s.repo.ListByCustomerEmail(ctx, email, page)
}
