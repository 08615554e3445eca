package httpserver

import (
	"net/http"

	"shop-backend/internal/auth"

	"github.com/gin-gonic/gin"
)

func (h *handlers) listOrdersByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		badRequest(c, "email is required")
		return
	}
	if h.deps.Verifier != nil {
		claims, ok := auth.ClaimsFrom(c.Request.Context())
		if !ok || claims.Email != email {
			c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
	}

	page, err := h.deps.Orders.History(c.Request.Context(), email, pageRequest(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pagedCollection("orders", page, toOrderResponse))
}
