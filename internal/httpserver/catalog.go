package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handlers) listProducts(c *gin.Context) {
	page, err := h.deps.Products.List(c.Request.Context(), pageRequest(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pagedCollection("products", page, toProductResponse))
}

func (h *handlers) getProduct(c *gin.Context) {
	id, ok := int64Param(c.Param("id"))
	if !ok {
		badRequest(c, "invalid product id")
		return
	}
	p, err := h.deps.Products.Get(c.Request.Context(), id)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toProductResponse(*p))
}

func (h *handlers) listProductsByCategory(c *gin.Context) {
	id, ok := int64Param(c.Query("id"))
	if !ok {
		badRequest(c, "invalid category id")
		return
	}
	page, err := h.deps.Products.ListByCategory(c.Request.Context(), id, pageRequest(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pagedCollection("products", page, toProductResponse))
}

func (h *handlers) searchProducts(c *gin.Context) {
	page, err := h.deps.Products.SearchByName(c.Request.Context(), c.Query("name"), pageRequest(c))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, pagedCollection("products", page, toProductResponse))
}

func (h *handlers) listCategories(c *gin.Context) {
	categories, err := h.deps.Categories.List(c.Request.Context())
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, embedded("productCategory", categories))
}
