package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"shop-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type handlers struct {
	deps Deps
	log  *zap.SugaredLogger
}

// writeError maps domain sentinels to status codes. Anything else is logged
// and reported as a bare 500.
func (h *handlers) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrInvalidPurchase):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	default:
		h.log.Errorw("request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}

// pageRequest reads ?page= and ?size=. Unparseable values fall back to defaults.
func pageRequest(c *gin.Context) domain.PageRequest {
	number, _ := strconv.Atoi(c.Query("page"))
	size, _ := strconv.Atoi(c.Query("size"))
	return domain.NewPageRequest(number, size)
}

func int64Param(raw string) (int64, bool) {
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
