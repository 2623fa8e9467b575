package httpapi

import (
	"net/http"
	"time"

	"github.com/AnujGadekar1/verto-eshop/internal/cart"
	"github.com/AnujGadekar1/verto-eshop/internal/catalog"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// NewRouter assembles the storefront API that the UI consumes.
func NewRouter(cartStore *cart.Store, catalogSvc *catalog.Service, notifications NotificationStore, requestTimeout time.Duration) http.Handler {
	cartHandler := NewCartHandler(cartStore, catalogSvc)
	productHandler := NewProductHandler(catalogSvc)
	notificationHandler := NewNotificationHandler(notifications)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", productHandler.Get)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.Get)
			r.Post("/items", cartHandler.AddItem)
			r.Put("/items/{productID}", cartHandler.SetQuantity)
			r.Delete("/items/{productID}", cartHandler.RemoveItem)
			r.Post("/checkout", cartHandler.Checkout)
			r.Post("/toggle", cartHandler.Toggle)
			r.Delete("/last-order", cartHandler.ClearLastOrder)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", notificationHandler.List)
			r.Delete("/{id}", notificationHandler.Dismiss)
		})
	})

	return otelhttp.NewHandler(r, "storefront")
}
