package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Address is referenced by an order as its billing or shipping address.
type Address struct {
	ID      int64  `json:"id,omitempty"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	ZipCode string `json:"zipCode"`
}

// Order owns its items. Items are attached through Add, which sets both the
// order's item list and the item's back-reference.
type Order struct {
	ID              int64
	TrackingNumber  string
	TotalQuantity   int
	TotalPrice      decimal.Decimal
	Status          string
	BillingAddress  *Address
	ShippingAddress *Address
	DateCreated     time.Time
	LastUpdated     time.Time

	customer *Customer
	items    []*OrderItem
}

// OrderItem is a line of exactly one Order.
type OrderItem struct {
	ID        int64
	ImageURL  string
	UnitPrice decimal.Decimal
	Quantity  int
	ProductID int64

	order *Order
}

// Add attaches item to the order. An item already owned by another order is moved.
func (o *Order) Add(item *OrderItem) {
	if item == nil || item.order == o {
		return
	}
	if prev := item.order; prev != nil {
		prev.items = removeItem(prev.items, item)
	}
	item.order = o
	o.items = append(o.items, item)
}

// Items returns a copy of the attached items.
func (o *Order) Items() []*OrderItem {
	out := make([]*OrderItem, len(o.items))
	copy(out, o.items)
	return out
}

// Customer returns the owning customer, nil until the order is attached.
func (o *Order) Customer() *Customer {
	return o.customer
}

// IsNew reports whether the order has not been persisted yet.
func (o *Order) IsNew() bool {
	return o.ID == 0
}

// Order returns the owning order.
func (i *OrderItem) Order() *Order {
	return i.order
}

func removeItem(items []*OrderItem, target *OrderItem) []*OrderItem {
	for i, it := range items {
		if it == target {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return items
}
