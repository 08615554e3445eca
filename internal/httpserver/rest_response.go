package httpserver

import (
	"time"

	"shop-backend/internal/domain"

	"github.com/shopspring/decimal"
)

// Collection responses follow the Spring Data REST layout the storefront
// already consumes: items under _embedded.<rel>, paging under page.

type pageInfo struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

type collection struct {
	Embedded map[string]any `json:"_embedded"`
	Page     *pageInfo      `json:"page,omitempty"`
}

func embedded[T any](rel string, items []T) collection {
	if items == nil {
		items = []T{}
	}
	return collection{Embedded: map[string]any{rel: items}}
}

func pagedCollection[T, R any](rel string, page domain.Page[T], mapFn func(T) R) collection {
	out := make([]R, 0, len(page.Items))
	for _, item := range page.Items {
		out = append(out, mapFn(item))
	}
	c := embedded(rel, out)
	c.Page = &pageInfo{
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages(),
		Number:        page.Number,
	}
	return c
}

type productResponse struct {
	ID           int64           `json:"id"`
	SKU          string          `json:"sku"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	UnitPrice    decimal.Decimal `json:"unitPrice"`
	ImageURL     string          `json:"imageUrl"`
	Active       bool            `json:"active"`
	UnitsInStock int             `json:"unitsInStock"`
	CategoryID   int64           `json:"categoryId"`
	DateCreated  time.Time       `json:"dateCreated"`
	LastUpdated  time.Time       `json:"lastUpdated"`
}

func toProductResponse(p domain.Product) productResponse {
	return productResponse{
		ID:           p.ID,
		SKU:          p.SKU,
		Name:         p.Name,
		Description:  p.Description,
		UnitPrice:    p.UnitPrice,
		ImageURL:     p.ImageURL,
		Active:       p.Active,
		UnitsInStock: p.UnitsInStock,
		CategoryID:   p.CategoryID,
		DateCreated:  p.DateCreated,
		LastUpdated:  p.LastUpdated,
	}
}

type orderItemResponse struct {
	ID        int64           `json:"id"`
	ImageURL  string          `json:"imageUrl"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	ProductID int64           `json:"productId"`
}

type orderResponse struct {
	ID                  int64               `json:"id"`
	OrderTrackingNumber string              `json:"orderTrackingNumber"`
	TotalQuantity       int                 `json:"totalQuantity"`
	TotalPrice          decimal.Decimal     `json:"totalPrice"`
	Status              string              `json:"status,omitempty"`
	DateCreated         time.Time           `json:"dateCreated"`
	LastUpdated         time.Time           `json:"lastUpdated"`
	BillingAddress      *domain.Address     `json:"billingAddress,omitempty"`
	ShippingAddress     *domain.Address     `json:"shippingAddress,omitempty"`
	OrderItems          []orderItemResponse `json:"orderItems"`
}

func toOrderResponse(o *domain.Order) orderResponse {
	items := o.Items()
	out := orderResponse{
		ID:                  o.ID,
		OrderTrackingNumber: o.TrackingNumber,
		TotalQuantity:       o.TotalQuantity,
		TotalPrice:          o.TotalPrice,
		Status:              o.Status,
		DateCreated:         o.DateCreated,
		LastUpdated:         o.LastUpdated,
		BillingAddress:      o.BillingAddress,
		ShippingAddress:     o.ShippingAddress,
		OrderItems:          make([]orderItemResponse, 0, len(items)),
	}
	for _, it := range items {
		out.OrderItems = append(out.OrderItems, orderItemResponse{
			ID:        it.ID,
			ImageURL:  it.ImageURL,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			ProductID: it.ProductID,
		})
	}
	return out
}
