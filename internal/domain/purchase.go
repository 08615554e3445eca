package domain

// Purchase is the checkout input: an unsaved order skeleton, its items, the
// buyer and both addresses.
type Purchase struct {
	Customer        *Customer
	ShippingAddress *Address
	BillingAddress  *Address
	Order           *Order
	OrderItems      []*OrderItem
}

// PurchaseResponse is the only thing checkout hands back.
type PurchaseResponse struct {
	OrderTrackingNumber string `json:"orderTrackingNumber"`
}
