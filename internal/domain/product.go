package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int64           `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description,omitempty"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	ImageURL     string          `json:"imageUrl,omitempty"`
	Active       bool            `json:"active"`
	UnitsInStock int             `json:"unitsInStock"`
	CategoryID   int64           `json:"-"`
	DateCreated  time.Time       `json:"dateCreated"`
	LastUpdated  time.Time       `json:"lastUpdated"`
}
