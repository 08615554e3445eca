package product

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shop-backend/internal/db"
	"shop-backend/internal/domain"
	"shop-backend/internal/logger"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const productColumns = `id, sku, name, COALESCE(description, ''), unit_price::text, COALESCE(image_url, ''), active, units_in_stock, category_id, date_created, last_updated`

type postgresRepo struct {
	db  db.Querier
	log *zap.SugaredLogger
}

func NewPostgres(q db.Querier, log *zap.SugaredLogger) Repository {
	return &postgresRepo{db: q, log: logger.OrNop(log).With("repo", "product")}
}

func (r *postgresRepo) List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Product], error) {
	return r.listWhere(ctx, "TRUE", nil, page)
}

func (r *postgresRepo) ListByCategory(ctx context.Context, categoryID int64, page domain.PageRequest) (domain.Page[domain.Product], error) {
	return r.listWhere(ctx, "category_id = $1", []any{categoryID}, page)
}

// SearchByName matches fragment anywhere in the name, case-insensitively.
func (r *postgresRepo) SearchByName(ctx context.Context, fragment string, page domain.PageRequest) (domain.Page[domain.Product], error) {
	return r.listWhere(ctx, "name ILIKE $1", []any{"%" + escapeLike(fragment) + "%"}, page)
}

func (r *postgresRepo) listWhere(ctx context.Context, where string, args []any, page domain.PageRequest) (domain.Page[domain.Product], error) {
	out := domain.Page[domain.Product]{Number: page.Number, Size: page.Size}

	countQ := `SELECT count(*) FROM product WHERE ` + where
	if err := r.db.QueryRow(ctx, countQ, args...).Scan(&out.TotalElements); err != nil {
		r.log.Errorw("count products failed", "where", where, "error", err)
		return out, err
	}
	if out.TotalElements == 0 {
		return out, nil
	}

	n := len(args)
	q := fmt.Sprintf(`
SELECT %s
FROM product
WHERE %s
ORDER BY id ASC
LIMIT $%d OFFSET $%d
`, productColumns, where, n+1, n+2)
	rows, err := r.db.Query(ctx, q, append(args, page.Size, page.Offset())...)
	if err != nil {
		r.log.Errorw("list products failed", "where", where, "error", err)
		return out, err
	}
	defer rows.Close()

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return out, err
		}
		out.Items = append(out.Items, *p)
	}
	if err := rows.Err(); err != nil {
		return out, err
	}
	return out, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	q := `SELECT ` + productColumns + ` FROM product WHERE id = $1`
	p, err := scanProduct(r.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.log.Errorw("get product failed", "id", id, "error", err)
		return nil, err
	}
	return p, nil
}

func (r *postgresRepo) UpsertBySKU(ctx context.Context, p domain.Product) (*domain.Product, error) {
	const q = `
INSERT INTO product (sku, name, description, unit_price, image_url, active, units_in_stock, category_id)
VALUES ($1, $2, NULLIF($3, ''), $4::numeric, NULLIF($5, ''), $6, $7, $8)
ON CONFLICT (sku) DO UPDATE SET
    name = EXCLUDED.name,
    description = EXCLUDED.description,
    unit_price = EXCLUDED.unit_price,
    image_url = EXCLUDED.image_url,
    active = EXCLUDED.active,
    units_in_stock = EXCLUDED.units_in_stock,
    category_id = EXCLUDED.category_id,
    last_updated = now()
RETURNING ` + productColumns
	out, err := scanProduct(r.db.QueryRow(ctx, q,
		p.SKU,
		p.Name,
		p.Description,
		p.UnitPrice.String(),
		p.ImageURL,
		p.Active,
		p.UnitsInStock,
		p.CategoryID,
	))
	if err != nil {
		r.log.Errorw("upsert product failed", "sku", p.SKU, "error", err)
		return nil, err
	}
	r.log.Debugw("upserted product", "sku", out.SKU, "id", out.ID)
	return out, nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var (
		p     domain.Product
		price string
	)
	if err := row.Scan(&p.ID, &p.SKU, &p.Name, &p.Description, &price, &p.ImageURL, &p.Active, &p.UnitsInStock, &p.CategoryID, &p.DateCreated, &p.LastUpdated); err != nil {
		return nil, err
	}
	var err error
	if p.UnitPrice, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("parse unit price %q: %w", price, err)
	}
	return &p, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
