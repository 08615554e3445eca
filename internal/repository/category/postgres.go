package category

import (
	"context"

	"shop-backend/internal/db"
	"shop-backend/internal/domain"
)

type postgresRepo struct {
	db db.Querier
}

func NewPostgres(q db.Querier) Repository {
	return &postgresRepo{db: q}
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.ProductCategory, error) {
	const q = `
SELECT id, category_name
FROM product_category
ORDER BY category_name ASC
`
	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ProductCategory
	for rows.Next() {
		var c domain.ProductCategory
		if err := rows.Scan(&c.ID, &c.CategoryName); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) UpsertByName(ctx context.Context, name string) (*domain.ProductCategory, error) {
	const q = `
INSERT INTO product_category (category_name)
VALUES ($1)
ON CONFLICT (category_name) DO UPDATE SET category_name = EXCLUDED.category_name
RETURNING id, category_name
`
	var out domain.ProductCategory
	if err := r.db.QueryRow(ctx, q, name).Scan(&out.ID, &out.CategoryName); err != nil {
		return nil, err
	}
	return &out, nil
}
