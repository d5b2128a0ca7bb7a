package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hellospace/storefront/internal/service"
	"github.com/hellospace/storefront/pkg/health"
	"github.com/hellospace/storefront/pkg/middleware"
)

// RouterConfig carries everything the router needs.
type RouterConfig struct {
	Auth     *service.AuthService
	Catalog  *service.CatalogService
	Cart     *service.CartService
	Wishlist *service.WishlistService
	Orders   *service.OrderService
	Inquiry  *service.InquiryService

	Health *health.Registry
	Logger *slog.Logger

	RateLimitRPS   int
	RateLimitBurst int
}

// NewRouter creates the chi router with all storefront routes registered.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.CORS)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.Metrics("storefront"))
	r.Use(middleware.RequestLog(cfg.Logger))
	if cfg.RateLimitRPS > 0 {
		r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst, cfg.Logger))
	}

	r.Get("/health/live", cfg.Health.Live())
	r.Get("/health/ready", cfg.Health.Ready())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	authHandler := NewAuthHandler(cfg.Auth, cfg.Logger)
	catalogHandler := NewCatalogHandler(cfg.Catalog, cfg.Logger)
	cartHandler := NewCartHandler(cfg.Cart, cfg.Logger)
	wishlistHandler := NewWishlistHandler(cfg.Wishlist, cfg.Logger)
	orderHandler := NewOrderHandler(cfg.Orders, cfg.Logger)
	inquiryHandler := NewInquiryHandler(cfg.Inquiry, cfg.Logger)

	requireAuth := middleware.Auth(cfg.Auth.VerifyToken)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.SignUp)
			r.Post("/signin", authHandler.SignIn)
			r.Post("/signout", authHandler.SignOut)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", catalogHandler.ListProducts)
			r.Get("/facets", catalogHandler.GetFacets)
			r.Get("/{idOrSlug}", catalogHandler.GetProduct)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(requireAuth)

			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.ClearCart)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{productId}", cartHandler.UpdateQuantity)
			r.Delete("/items/{productId}", cartHandler.RemoveItem)
		})

		r.Route("/wishlist", func(r chi.Router) {
			r.Use(requireAuth)

			r.Get("/", wishlistHandler.GetWishlist)
			r.Delete("/", wishlistHandler.Clear)
			r.Get("/{productId}", wishlistHandler.Contains)
			r.Post("/{productId}", wishlistHandler.AddItem)
			r.Delete("/{productId}", wishlistHandler.RemoveItem)
			r.Post("/{productId}/move-to-cart", wishlistHandler.MoveToCart)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Use(requireAuth)

			r.Post("/", orderHandler.Checkout)
			r.Get("/", orderHandler.ListOrders)
			r.Get("/{orderId}", orderHandler.GetOrder)
			r.Patch("/{orderId}/status", orderHandler.UpdateStatus)
		})

		r.Route("/inquiries", func(r chi.Router) {
			r.Post("/contact", inquiryHandler.SubmitContact)
			r.Post("/consultation", inquiryHandler.SubmitConsultation)
			r.Post("/newsletter", inquiryHandler.SubscribeNewsletter)
		})
	})

	return r
}
