package domain

// Customer is the aggregate root of the checkout graph. It exclusively owns
// its orders; orders are attached through Add only.
type Customer struct {
	ID        int64
	FirstName string
	LastName  string
	Email     string

	orders []*Order
}

// Add attaches order to the customer and points the order back at it.
// An order already owned by another customer is moved.
func (c *Customer) Add(order *Order) {
	if order == nil || order.customer == c {
		return
	}
	if prev := order.customer; prev != nil {
		prev.orders = removeOrder(prev.orders, order)
	}
	order.customer = c
	c.orders = append(c.orders, order)
}

// Orders returns a copy of the attached orders.
func (c *Customer) Orders() []*Order {
	out := make([]*Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// IsNew reports whether the customer has not been persisted yet.
func (c *Customer) IsNew() bool {
	return c.ID == 0
}

func removeOrder(orders []*Order, target *Order) []*Order {
	for i, o := range orders {
		if o == target {
			return append(orders[:i:i], orders[i+1:]...)
		}
	}
	return orders
}
