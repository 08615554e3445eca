package httpserver

import (
	"context"
	"strings"

	"shop-backend/internal/auth"
	"shop-backend/internal/domain"
	"shop-backend/internal/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type (
	checkoutService interface {
		PlaceOrder(ctx context.Context, p domain.Purchase) (*domain.PurchaseResponse, error)
	}

	geographyService interface {
		ListCountries(ctx context.Context) ([]domain.Country, error)
		ListStatesByCountryCode(ctx context.Context, code string) ([]domain.State, error)
	}

	productService interface {
		List(ctx context.Context, page domain.PageRequest) (domain.Page[domain.Product], error)
		Get(ctx context.Context, id int64) (*domain.Product, error)
		ListByCategory(ctx context.Context, categoryID int64, page domain.PageRequest) (domain.Page[domain.Product], error)
		SearchByName(ctx context.Context, fragment string, page domain.PageRequest) (domain.Page[domain.Product], error)
	}

	categoryService interface {
		List(ctx context.Context) ([]domain.ProductCategory, error)
	}

	orderService interface {
		History(ctx context.Context, email string, page domain.PageRequest) (domain.Page[*domain.Order], error)
	}
)

// Deps are the services behind the routes. A nil Verifier leaves order
// history open.
type Deps struct {
	Checkout   checkoutService
	Geography  geographyService
	Products   productService
	Categories categoryService
	Orders     orderService
	Verifier   *auth.Verifier
}

// buildRouter wires routes for the API.
func buildRouter(log *zap.SugaredLogger, db Pinger, deps Deps, opts Options) *gin.Engine {
	log = logger.OrNop(log)
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(accessLog(log), gin.Recovery())
	if len(opts.AllowedOrigins) > 0 {
		router.Use(underPrefix(opts.BasePath, cors.New(cors.Config{
			AllowOrigins:  opts.AllowedOrigins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders: []string{"Content-Length"},
		})))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := &handlers{deps: deps, log: log}
	api := router.Group(opts.BasePath)
	{
		api.GET("/countries", h.listCountries)
		api.GET("/states/search/findByCountryCode", h.listStatesByCountryCode)

		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)
		api.GET("/products/search/findByCategoryId", h.listProductsByCategory)
		api.GET("/products/search/findByNameContaining", h.searchProducts)
		api.GET("/product-category", h.listCategories)

		api.POST("/checkout/purchase", h.purchase)

		orders := api.Group("/orders")
		if deps.Verifier != nil {
			orders.Use(requireBearer(deps.Verifier))
		}
		orders.GET("/search/findByCustomerEmail", h.listOrdersByEmail)
	}

	return router
}

// underPrefix runs mw only for requests below prefix, so CORS applies to the
// API and not to the probes.
func underPrefix(prefix string, mw gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := c.Request.URL.Path
		if prefix == "" || p == prefix || strings.HasPrefix(p, prefix+"/") {
			mw(c)
		}
	}
}
