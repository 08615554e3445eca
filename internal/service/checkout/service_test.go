package checkout

import (
	"context"
	"errors"
	"testing"

	"shop-backend/internal/domain"
	"shop-backend/internal/events"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func purchaseFor(email string, productIDs ...int64) domain.Purchase {
	items := make([]*domain.OrderItem, 0, len(productIDs))
	for _, id := range productIDs {
		items = append(items, &domain.OrderItem{ProductID: id, Quantity: 1, UnitPrice: decimal.RequireFromString("9.99")})
	}
	return domain.Purchase{
		Customer:        &domain.Customer{FirstName: "New", LastName: "Buyer", Email: email},
		BillingAddress:  &domain.Address{Street: "1 Bill St", City: "Toronto"},
		ShippingAddress: &domain.Address{Street: "2 Ship St", City: "Toronto"},
		Order:           &domain.Order{TotalQuantity: len(productIDs), TotalPrice: decimal.RequireFromString("9.99").Mul(decimal.NewFromInt(int64(len(productIDs))))},
		OrderItems:      items,
	}
}

func TestPlaceOrder_TrackingNumbersAreDistinctUUIDs(t *testing.T) {
	store := newMemStore()
	svc := New(store.factory(), nil, nil)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		res, err := svc.PlaceOrder(context.Background(), purchaseFor("a@b.com", 1))
		require.NoError(t, err)

		parsed, err := uuid.Parse(res.OrderTrackingNumber)
		require.NoError(t, err)
		assert.Equal(t, parsed.String(), res.OrderTrackingNumber, "canonical form")
		assert.False(t, seen[res.OrderTrackingNumber], "duplicate %s", res.OrderTrackingNumber)
		seen[res.OrderTrackingNumber] = true
	}
}

func TestPlaceOrder_ExistingEmailReusesCustomer(t *testing.T) {
	store := newMemStore()
	store.seed(storedCustomer{first: "Original", email: "a@b.com", orders: []storedOrder{{trackingNumber: "old"}}})
	before, _ := store.get("a@b.com")
	svc := New(store.factory(), nil, nil)

	res, err := svc.PlaceOrder(context.Background(), purchaseFor("a@b.com", 1, 2))
	require.NoError(t, err)

	assert.Equal(t, 1, store.count(), "no second customer row")
	after, ok := store.get("a@b.com")
	require.True(t, ok)
	assert.Equal(t, before.id, after.id)
	assert.Equal(t, "Original", after.first, "candidate fields are dropped")
	require.Len(t, after.orders, 2)
	assert.Equal(t, res.OrderTrackingNumber, after.orders[1].trackingNumber)
}

func TestPlaceOrder_NewEmailCreatesOneCustomerWithOneOrder(t *testing.T) {
	store := newMemStore()
	svc := New(store.factory(), nil, nil)

	res, err := svc.PlaceOrder(context.Background(), purchaseFor("new@x.com", 7))
	require.NoError(t, err)

	assert.Equal(t, 1, store.count())
	c, ok := store.get("new@x.com")
	require.True(t, ok)
	require.Len(t, c.orders, 1)
	assert.Equal(t, res.OrderTrackingNumber, c.orders[0].trackingNumber)
	assert.Equal(t, []int64{7}, c.orders[0].productIDs)
}

func TestPlaceOrder_EmailMatchIsExact(t *testing.T) {
	store := newMemStore()
	store.seed(storedCustomer{email: "a@b.com"})
	svc := New(store.factory(), nil, nil)

	_, err := svc.PlaceOrder(context.Background(), purchaseFor("A@B.com", 1))
	require.NoError(t, err)
	assert.Equal(t, 2, store.count())
}

func TestPlaceOrder_SaveFailureStoresNothing(t *testing.T) {
	store := newMemStore()
	boom := errors.New("disk full")
	store.saveErr = boom
	svc := New(store.factory(), nil, nil)

	res, err := svc.PlaceOrder(context.Background(), purchaseFor("new@x.com", 1, 2))

	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, store.count(), "customer created inside the failed transaction is discarded")
}

func TestPlaceOrder_CommitFailureStoresNothing(t *testing.T) {
	store := newMemStore()
	store.commitErr = errors.New("serialization failure")
	svc := New(store.factory(), nil, nil)

	res, err := svc.PlaceOrder(context.Background(), purchaseFor("new@x.com", 1))

	assert.Nil(t, res)
	assert.ErrorIs(t, err, store.commitErr)
	assert.Zero(t, store.count())
}

func TestPlaceOrder_ItemOrderDoesNotMatter(t *testing.T) {
	perms := [][]int64{{1, 2, 3}, {3, 1, 2}, {2, 3, 1}, {3, 2, 1}}
	for i, ids := range perms {
		store := newMemStore()
		svc := New(store.factory(), nil, nil)

		_, err := svc.PlaceOrder(context.Background(), purchaseFor("a@b.com", ids...))
		require.NoError(t, err, "permutation %d", i)

		c, _ := store.get("a@b.com")
		require.Len(t, c.orders, 1)
		assert.ElementsMatch(t, []int64{1, 2, 3}, c.orders[0].productIDs, "permutation %d", i)
	}
}

func TestPlaceOrder_RejectsIncompletePurchase(t *testing.T) {
	svc := New(newMemStore().factory(), nil, nil)

	_, err := svc.PlaceOrder(context.Background(), domain.Purchase{Customer: &domain.Customer{Email: "a@b.com"}})
	assert.ErrorIs(t, err, domain.ErrInvalidPurchase)

	_, err = svc.PlaceOrder(context.Background(), domain.Purchase{Order: &domain.Order{}})
	assert.ErrorIs(t, err, domain.ErrInvalidPurchase)
}

type recordingPublisher struct {
	got []events.OrderPlaced
	err error
}

func (p *recordingPublisher) PublishOrderPlaced(_ context.Context, evt events.OrderPlaced) error {
	p.got = append(p.got, evt)
	return p.err
}

func TestPlaceOrder_PublishesAfterCommit(t *testing.T) {
	store := newMemStore()
	pub := &recordingPublisher{}
	svc := New(store.factory(), pub, nil)

	res, err := svc.PlaceOrder(context.Background(), purchaseFor("a@b.com", 1, 2))
	require.NoError(t, err)

	require.Len(t, pub.got, 1)
	assert.Equal(t, res.OrderTrackingNumber, pub.got[0].OrderTrackingNumber)
	assert.Equal(t, "a@b.com", pub.got[0].CustomerEmail)
	assert.Equal(t, 2, pub.got[0].TotalQuantity)
	assert.Equal(t, "19.98", pub.got[0].TotalPrice.String())
}

func TestPlaceOrder_PublishFailureDoesNotFailCheckout(t *testing.T) {
	store := newMemStore()
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := New(store.factory(), pub, nil)

	res, err := svc.PlaceOrder(context.Background(), purchaseFor("a@b.com", 1))
	require.NoError(t, err)
	assert.NotEmpty(t, res.OrderTrackingNumber)
	assert.Equal(t, 1, store.count())
}

func TestPlaceOrder_NoEventOnFailure(t *testing.T) {
	store := newMemStore()
	store.saveErr = errors.New("boom")
	pub := &recordingPublisher{}
	svc := New(store.factory(), pub, nil)

	_, err := svc.PlaceOrder(context.Background(), purchaseFor("a@b.com", 1))
	require.Error(t, err)
	assert.Empty(t, pub.got)
}
