package httpserver

import (
	"net/http"
	"time"

	"shop-backend/internal/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func accessLog(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Infow("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"clientIP", c.ClientIP(),
		)
	}
}

// requireBearer verifies the Authorization header and stores the claims on
// the request context.
func requireBearer(v *auth.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := v.Verify(auth.BearerToken(c.GetHeader("Authorization")))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid token"})
			return
		}
		c.Request = c.Request.WithContext(auth.WithClaims(c.Request.Context(), claims))
		c.Next()
	}
}
