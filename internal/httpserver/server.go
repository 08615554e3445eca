package httpserver

import (
	"context"
	"net/http"
	"time"

	"shop-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Pinger reports whether the database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Options carries the settings the router needs from config.
type Options struct {
	Addr           string
	BasePath       string
	AllowedOrigins []string
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	log        *zap.SugaredLogger
}

// New builds a Server with every API route mounted under opts.BasePath.
func New(opts Options, log *zap.SugaredLogger, db Pinger, deps Deps) *Server {
	log = logger.OrNop(log)
	router := buildRouter(log, db, deps, opts)

	httpSrv := &http.Server{
		Addr:              opts.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		log:        log,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not configured"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "db not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
