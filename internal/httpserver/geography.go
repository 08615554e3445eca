package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handlers) listCountries(c *gin.Context) {
	countries, err := h.deps.Geography.ListCountries(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, embedded("countries", countries))
}

func (h *handlers) listStatesByCountryCode(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		badRequest(c, "code is required")
		return
	}
	states, err := h.deps.Geography.ListStatesByCountryCode(c.Request.Context(), code)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, embedded("states", states))
}
