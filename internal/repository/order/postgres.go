package order

import (
	"context"

	"shop-backend/internal/db"
	"shop-backend/internal/domain"
	"shop-backend/internal/logger"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type postgresRepo struct {
	db  db.Querier
	log *zap.SugaredLogger
}

func NewPostgres(q db.Querier, log *zap.SugaredLogger) Repository {
	return &postgresRepo{db: q, log: logger.OrNop(log).With("repo", "order")}
}

// ListByCustomerEmail returns the customer's orders newest first, items and
// addresses included.
func (r *postgresRepo) ListByCustomerEmail(ctx context.Context, email string, page domain.PageRequest) (domain.Page[*domain.Order], error) {
	out := domain.Page[*domain.Order]{Number: page.Number, Size: page.Size}

	const countQ = `
SELECT count(*)
FROM orders o
JOIN customer c ON c.id = o.customer_id
WHERE c.email = $1
`
	if err := r.db.QueryRow(ctx, countQ, email).Scan(&out.TotalElements); err != nil {
		return out, err
	}
	if out.TotalElements == 0 {
		return out, nil
	}

	const q = `
SELECT o.id, o.order_tracking_number, COALESCE(o.total_price, 0)::text, COALESCE(o.total_quantity, 0), COALESCE(o.status, ''),
       o.date_created, o.last_updated,
       b.id, COALESCE(b.street, ''), COALESCE(b.city, ''), COALESCE(b.state, ''), COALESCE(b.country, ''), COALESCE(b.zip_code, ''),
       s.id, COALESCE(s.street, ''), COALESCE(s.city, ''), COALESCE(s.state, ''), COALESCE(s.country, ''), COALESCE(s.zip_code, '')
FROM orders o
JOIN customer c ON c.id = o.customer_id
LEFT JOIN address b ON b.id = o.billing_address_id
LEFT JOIN address s ON s.id = o.shipping_address_id
WHERE c.email = $1
ORDER BY o.date_created DESC, o.id DESC
LIMIT $2 OFFSET $3
`
	rows, err := r.db.Query(ctx, q, email, page.Size, page.Offset())
	if err != nil {
		r.log.Errorw("list orders failed", "error", err)
		return out, err
	}
	defer rows.Close()

	byID := make(map[int64]*domain.Order)
	var ids []int64
	for rows.Next() {
		var (
			o                 domain.Order
			total             string
			billingID, shipID *int64
			billing, shipping domain.Address
		)
		if err := rows.Scan(
			&o.ID, &o.TrackingNumber, &total, &o.TotalQuantity, &o.Status,
			&o.DateCreated, &o.LastUpdated,
			&billingID, &billing.Street, &billing.City, &billing.State, &billing.Country, &billing.ZipCode,
			&shipID, &shipping.Street, &shipping.City, &shipping.State, &shipping.Country, &shipping.ZipCode,
		); err != nil {
			return out, err
		}
		if o.TotalPrice, err = decimal.NewFromString(total); err != nil {
			return out, err
		}
		if billingID != nil {
			billing.ID = *billingID
			o.BillingAddress = &billing
		}
		if shipID != nil {
			shipping.ID = *shipID
			o.ShippingAddress = &shipping
		}
		order := o
		byID[order.ID] = &order
		ids = append(ids, order.ID)
		out.Items = append(out.Items, &order)
	}
	if err := rows.Err(); err != nil {
		return out, err
	}

	if err := r.attachItems(ctx, ids, byID); err != nil {
		return out, err
	}
	return out, nil
}

func (r *postgresRepo) attachItems(ctx context.Context, ids []int64, byID map[int64]*domain.Order) error {
	const q = `
SELECT id, order_id, COALESCE(image_url, ''), COALESCE(unit_price, 0)::text, COALESCE(quantity, 0), COALESCE(product_id, 0)
FROM order_item
WHERE order_id = ANY($1)
ORDER BY id ASC
`
	rows, err := r.db.Query(ctx, q, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			item    domain.OrderItem
			orderID int64
			price   string
		)
		if err := rows.Scan(&item.ID, &orderID, &item.ImageURL, &price, &item.Quantity, &item.ProductID); err != nil {
			return err
		}
		if item.UnitPrice, err = decimal.NewFromString(price); err != nil {
			return err
		}
		if o, ok := byID[orderID]; ok {
			it := item
			o.Add(&it)
		}
	}
	return rows.Err()
}
