package checkout_test

import (
	"context"
	"fmt"
	"testing"

	"shop-backend/internal/dbtest"
	"shop-backend/internal/domain"
	"shop-backend/internal/repository/unitofwork"
	"shop-backend/internal/service/checkout"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newService(pool *pgxpool.Pool) *checkout.Service {
	factory := unitofwork.NewFactory(pool, nil)
	return checkout.New(checkout.UnitOfWorkFactoryFunc(func() checkout.UnitOfWork {
		return factory.Create()
	}), nil, nil)
}

func insertProducts(ctx context.Context, t *testing.T, pool *pgxpool.Pool, n int) []int64 {
	t.Helper()
	var categoryID int64
	require.NoError(t, pool.QueryRow(ctx, `INSERT INTO product_category (category_name) VALUES ('Books') RETURNING id`).Scan(&categoryID))
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		var id int64
		require.NoError(t, pool.QueryRow(ctx, `
INSERT INTO product (sku, name, unit_price, category_id)
VALUES ($1, 'Book', 5.00, $2)
RETURNING id`, fmt.Sprintf("SKU-%d", i), categoryID).Scan(&id))
		ids = append(ids, id)
	}
	return ids
}

func purchase(email string, productIDs ...int64) domain.Purchase {
	p := domain.Purchase{
		Customer:        &domain.Customer{FirstName: "Ada", LastName: "Lovelace", Email: email},
		BillingAddress:  &domain.Address{Street: "1 Main", City: "Austin", State: "Texas", Country: "United States", ZipCode: "73301"},
		ShippingAddress: &domain.Address{Street: "1 Main", City: "Austin", State: "Texas", Country: "United States", ZipCode: "73301"},
		Order:           &domain.Order{TotalQuantity: len(productIDs), TotalPrice: decimal.NewFromInt(5 * int64(len(productIDs)))},
	}
	for _, id := range productIDs {
		p.OrderItems = append(p.OrderItems, &domain.OrderItem{ProductID: id, Quantity: 1, UnitPrice: decimal.NewFromInt(5)})
	}
	return p
}

func TestPlaceOrder_Postgres_NewThenRepeatCustomer(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.Pool(t)
	ids := insertProducts(ctx, t, pool, 2)
	svc := newService(pool)

	first, err := svc.PlaceOrder(ctx, purchase("new@x.com", ids...))
	require.NoError(t, err)
	assert.Equal(t, 1, dbtest.Count(ctx, t, pool, "customer"))
	assert.Equal(t, 1, dbtest.Count(ctx, t, pool, "orders"))
	assert.Equal(t, 2, dbtest.Count(ctx, t, pool, "order_item"))
	assert.Equal(t, 2, dbtest.Count(ctx, t, pool, "address"))

	second, err := svc.PlaceOrder(ctx, purchase("new@x.com", ids[0]))
	require.NoError(t, err)
	assert.NotEqual(t, first.OrderTrackingNumber, second.OrderTrackingNumber)
	assert.Equal(t, 1, dbtest.Count(ctx, t, pool, "customer"))
	assert.Equal(t, 2, dbtest.Count(ctx, t, pool, "orders"))

	var owners int
	require.NoError(t, pool.QueryRow(ctx, `SELECT count(DISTINCT customer_id) FROM orders`).Scan(&owners))
	assert.Equal(t, 1, owners)
}

func TestPlaceOrder_Postgres_FailureLeavesNoTrace(t *testing.T) {
	ctx := context.Background()
	pool := dbtest.Pool(t)
	ids := insertProducts(ctx, t, pool, 1)
	svc := newService(pool)

	res, err := svc.PlaceOrder(ctx, purchase("new@x.com", ids[0], 424242))

	require.Error(t, err)
	assert.Nil(t, res)
	for _, table := range []string{"customer", "address", "orders", "order_item"} {
		assert.Zero(t, dbtest.Count(ctx, t, pool, table), table)
	}
}
