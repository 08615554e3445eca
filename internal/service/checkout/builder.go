package checkout

import (
	"shop-backend/internal/domain"

	"github.com/google/uuid"
)

// newTrackingNumber returns a random (v4) UUID in canonical form.
func newTrackingNumber() string {
	return uuid.NewString()
}

// buildOrder links the purchase into an order ready to be saved. The tracking
// number is set before any item is attached. Addresses are shared, not copied.
func buildOrder(p domain.Purchase, trackingNumber func() string) *domain.Order {
	order := p.Order
	order.TrackingNumber = trackingNumber()

	for _, item := range p.OrderItems {
		order.Add(item)
	}

	order.BillingAddress = p.BillingAddress
	order.ShippingAddress = p.ShippingAddress
	return order
}
