package country

import (
	"context"

	"shop-backend/internal/domain"
)

// Repository is the read side of the country/state reference data.
type Repository interface {
	ListCountries(ctx context.Context) ([]domain.Country, error)
	ListStatesByCountryCode(ctx context.Context, code string) ([]domain.State, error)
}
