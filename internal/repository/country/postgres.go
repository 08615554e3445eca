package country

import (
	"context"

	"shop-backend/internal/db"
	"shop-backend/internal/domain"
	"shop-backend/internal/logger"

	"go.uber.org/zap"
)

type postgresRepo struct {
	db  db.Querier
	log *zap.SugaredLogger
}

func NewPostgres(q db.Querier, log *zap.SugaredLogger) Repository {
	return &postgresRepo{db: q, log: logger.OrNop(log).With("repo", "country")}
}

func (r *postgresRepo) ListCountries(ctx context.Context) ([]domain.Country, error) {
	const q = `
SELECT id, name, code
FROM country
ORDER BY id ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		r.log.Errorw("list countries failed", "error", err)
		return nil, err
	}
	defer rows.Close()

	result := []domain.Country{}
	for rows.Next() {
		var c domain.Country
		if err := rows.Scan(&c.ID, &c.Name, &c.Code); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListStatesByCountryCode returns an empty slice for an unknown code.
func (r *postgresRepo) ListStatesByCountryCode(ctx context.Context, code string) ([]domain.State, error) {
	const q = `
SELECT s.id, s.name, s.country_id
FROM state s
JOIN country c ON c.id = s.country_id
WHERE c.code = $1
ORDER BY s.id ASC
`
	rows, err := r.db.Query(ctx, q, code)
	if err != nil {
		r.log.Errorw("list states failed", "code", code, "error", err)
		return nil, err
	}
	defer rows.Close()

	result := []domain.State{}
	for rows.Next() {
		var s domain.State
		if err := rows.Scan(&s.ID, &s.Name, &s.CountryID); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
