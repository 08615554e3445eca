package httpserver

import (
	"net/http"
	"strings"

	"shop-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type purchaseRequest struct {
	Customer struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
	} `json:"customer"`
	ShippingAddress *domain.Address `json:"shippingAddress"`
	BillingAddress  *domain.Address `json:"billingAddress"`
	Order           struct {
		TotalPrice    decimal.Decimal `json:"totalPrice"`
		TotalQuantity int             `json:"totalQuantity"`
	} `json:"order"`
	OrderItems []orderItemRequest `json:"orderItems"`
}

type orderItemRequest struct {
	ImageURL  string          `json:"imageUrl"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
	Quantity  int             `json:"quantity"`
	ProductID int64           `json:"productId"`
}

// toPurchase builds unsaved domain values. Addresses are passed through
// unchecked; only the customer email is required here.
func (r purchaseRequest) toPurchase() domain.Purchase {
	items := make([]*domain.OrderItem, 0, len(r.OrderItems))
	for _, it := range r.OrderItems {
		items = append(items, &domain.OrderItem{
			ImageURL:  it.ImageURL,
			UnitPrice: it.UnitPrice,
			Quantity:  it.Quantity,
			ProductID: it.ProductID,
		})
	}
	return domain.Purchase{
		Customer: &domain.Customer{
			FirstName: r.Customer.FirstName,
			LastName:  r.Customer.LastName,
			Email:     r.Customer.Email,
		},
		ShippingAddress: r.ShippingAddress,
		BillingAddress:  r.BillingAddress,
		Order: &domain.Order{
			TotalPrice:    r.Order.TotalPrice,
			TotalQuantity: r.Order.TotalQuantity,
		},
		OrderItems: items,
	}
}

func (h *handlers) purchase(c *gin.Context) {
	var req purchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid purchase payload")
		return
	}
	if strings.TrimSpace(req.Customer.Email) == "" {
		badRequest(c, "customer.email is required")
		return
	}

	res, err := h.deps.Checkout.PlaceOrder(c.Request.Context(), req.toPurchase())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
