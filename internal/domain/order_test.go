package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderAdd_LinksBothSides(t *testing.T) {
	order := &Order{}
	item := &OrderItem{ProductID: 7, Quantity: 2, UnitPrice: decimal.RequireFromString("9.99")}

	order.Add(item)

	require.Len(t, order.Items(), 1)
	assert.Same(t, item, order.Items()[0])
	assert.Same(t, order, item.Order())
}

func TestOrderAdd_IgnoresNilAndDuplicates(t *testing.T) {
	order := &Order{}
	item := &OrderItem{ProductID: 1}

	order.Add(nil)
	order.Add(item)
	order.Add(item)

	assert.Len(t, order.Items(), 1)
}

func TestOrderAdd_MovesItemBetweenOrders(t *testing.T) {
	first := &Order{}
	second := &Order{}
	item := &OrderItem{ProductID: 1}

	first.Add(item)
	second.Add(item)

	assert.Empty(t, first.Items())
	require.Len(t, second.Items(), 1)
	assert.Same(t, second, item.Order())
}

func TestOrderItems_ReturnsCopy(t *testing.T) {
	order := &Order{}
	order.Add(&OrderItem{ProductID: 1})

	items := order.Items()
	items[0] = nil

	assert.NotNil(t, order.Items()[0])
}

func TestCustomerAdd_LinksBothSides(t *testing.T) {
	customer := &Customer{Email: "a@b.com"}
	order := &Order{TrackingNumber: "t-1"}

	customer.Add(order)

	require.Len(t, customer.Orders(), 1)
	assert.Same(t, order, customer.Orders()[0])
	assert.Same(t, customer, order.Customer())
}

func TestCustomerAdd_MovesOrderBetweenCustomers(t *testing.T) {
	candidate := &Customer{Email: "a@b.com"}
	stored := &Customer{ID: 4, Email: "a@b.com"}
	order := &Order{}

	candidate.Add(order)
	stored.Add(order)

	assert.Empty(t, candidate.Orders())
	assert.Len(t, stored.Orders(), 1)
	assert.Same(t, stored, order.Customer())
}

func TestIsNew(t *testing.T) {
	assert.True(t, (&Customer{}).IsNew())
	assert.False(t, (&Customer{ID: 1}).IsNew())
	assert.True(t, (&Order{}).IsNew())
	assert.False(t, (&Order{ID: 3}).IsNew())
}
