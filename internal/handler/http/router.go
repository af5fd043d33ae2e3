package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/muhammadnaveedsaleem774/noorfab/internal/service"
	"github.com/muhammadnaveedsaleem774/noorfab/pkg/health"
	"github.com/muhammadnaveedsaleem774/noorfab/pkg/middleware"
)

// Services bundles the storefront services the router exposes.
type Services struct {
	Cart     *service.CartService
	Wishlist *service.WishlistService
	Catalog  *service.CatalogService
	Orders   *service.OrderService
	Profile  *service.ProfileService
}

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(
	services Services,
	healthHandler *health.Handler,
	logger *slog.Logger,
	pprofCIDRs []string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	// Pprof debug endpoints with IP allowlist.
	middleware.RegisterPprof(r, pprofCIDRs, logger)

	cartHandler := NewCartHandler(services.Cart, logger)
	wishlistHandler := NewWishlistHandler(services.Wishlist, logger)
	productHandler := NewProductHandler(services.Catalog, logger)
	orderHandler := NewOrderHandler(services.Orders, logger)
	profileHandler := NewProfileHandler(services.Profile, logger)

	r.Route("/api/v1", func(r chi.Router) {
		// Public catalog routes.
		r.Get("/products", productHandler.ListProducts)
		r.Get("/products/{slug}", productHandler.GetProduct)
		r.Get("/collections", productHandler.ListCollections)
		r.Get("/collections/{slug}", productHandler.GetCollection)

		// Per-user routes require the gateway-injected user id.
		r.Group(func(r chi.Router) {
			r.Use(ContentTypeJSON)
			r.Use(UserIDFromHeader)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartHandler.GetCart)
				r.Delete("/", cartHandler.ClearCart)
				r.Post("/items", cartHandler.AddItem)
				r.Put("/items/{itemId}", cartHandler.UpdateItemQuantity)
				r.Delete("/items/{itemId}", cartHandler.RemoveItem)
			})

			r.Route("/wishlist", func(r chi.Router) {
				r.Get("/", wishlistHandler.GetWishlist)
				r.Delete("/", wishlistHandler.ClearWishlist)
				r.Post("/items", wishlistHandler.AddProduct)
				r.Get("/items/{productId}", wishlistHandler.ContainsProduct)
				r.Delete("/items/{productId}", wishlistHandler.RemoveProduct)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", orderHandler.ListOrders)
				r.Post("/", orderHandler.Checkout)
				r.Get("/{orderId}", orderHandler.GetOrder)
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", profileHandler.GetProfile)
				r.Put("/", profileHandler.UpdateProfile)
			})
		})
	})

	return r
}
