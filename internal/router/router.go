package router

import (
	"net/http"
	"strings"

	"glassysee/internal/auth"
	"glassysee/internal/handler"
	"glassysee/internal/middleware"

	"github.com/rs/zerolog"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	adminHandler *handler.AdminHandler,
	tokens *auth.TokenIssuer,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()
	adminOnly := middleware.AdminAuth(tokens, logger)

	// Health check endpoint (no authentication required)
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Product routes: reads are public, mutations are admin-only.
	productRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		collection := r.URL.Path == "/api/products" || r.URL.Path == "/api/products/"

		switch {
		case r.Method == http.MethodGet && collection:
			productHandler.GetAll(w, r)
		case r.Method == http.MethodGet:
			productHandler.GetByID(w, r)
		case r.Method == http.MethodPost && collection:
			adminOnly(http.HandlerFunc(productHandler.Create)).ServeHTTP(w, r)
		case r.Method == http.MethodPut && !collection:
			adminOnly(http.HandlerFunc(productHandler.Update)).ServeHTTP(w, r)
		case r.Method == http.MethodDelete && !collection:
			adminOnly(http.HandlerFunc(productHandler.Delete)).ServeHTTP(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.HandleFunc("/api/products", productRouteHandler)
	mux.HandleFunc("/api/products/", productRouteHandler)

	// Cart routes, keyed by the session cookie.
	cartRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		collection := r.URL.Path == "/api/cart" || r.URL.Path == "/api/cart/"

		switch {
		case r.Method == http.MethodGet && collection:
			cartHandler.Get(w, r)
		case r.Method == http.MethodPost && collection:
			cartHandler.Add(w, r)
		case r.Method == http.MethodPut && collection:
			cartHandler.Update(w, r)
		case r.Method == http.MethodDelete && collection:
			cartHandler.Clear(w, r)
		case r.Method == http.MethodDelete:
			cartHandler.Remove(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.HandleFunc("/api/cart", cartRouteHandler)
	mux.HandleFunc("/api/cart/", cartRouteHandler)

	// Checkout
	mux.HandleFunc("/api/checkout", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		orderHandler.Checkout(w, r)
	})

	// Order routes: the admin console lists orders and mutates status;
	// a single order can be fetched by ID (checkout confirmation page).
	orderRouteHandler := func(w http.ResponseWriter, r *http.Request) {
		collection := r.URL.Path == "/api/orders" || r.URL.Path == "/api/orders/"

		switch {
		case r.Method == http.MethodGet && collection:
			adminOnly(http.HandlerFunc(orderHandler.GetAll)).ServeHTTP(w, r)
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/api/orders/"):
			orderHandler.GetByID(w, r)
		case r.Method == http.MethodPut && collection:
			adminOnly(http.HandlerFunc(orderHandler.UpdateStatus)).ServeHTTP(w, r)
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	}
	mux.HandleFunc("/api/orders", orderRouteHandler)
	mux.HandleFunc("/api/orders/", orderRouteHandler)

	// Admin login and email test ping
	mux.HandleFunc("/api/admin/login", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		adminHandler.Login(w, r)
	})
	mux.HandleFunc("/api/test-email", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		adminOnly(http.HandlerFunc(adminHandler.TestEmail)).ServeHTTP(w, r)
	})

	// Apply middleware in order: Recovery -> Logging -> CORS -> RateLimit
	rateLimiter := middleware.NewRateLimiter(logger)
	var h http.Handler = mux
	h = rateLimiter.Middleware(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.Recovery(logger)(h)

	return h
}
