// Package events announces completed checkouts to downstream consumers.
package events

import (
	"context"

	"github.com/shopspring/decimal"
)

const RoutingKeyOrderPlaced = "order.placed"

// OrderPlaced is published once the checkout transaction has committed.
type OrderPlaced struct {
	OrderTrackingNumber string          `json:"orderTrackingNumber"`
	CustomerEmail       string          `json:"customerEmail"`
	TotalQuantity       int             `json:"totalQuantity"`
	TotalPrice          decimal.Decimal `json:"totalPrice"`
}

type Publisher interface {
	PublishOrderPlaced(ctx context.Context, evt OrderPlaced) error
}

// Noop drops every event. Used when no broker is configured.
type Noop struct{}

func (Noop) PublishOrderPlaced(context.Context, OrderPlaced) error { return nil }
