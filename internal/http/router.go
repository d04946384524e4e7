package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(h *Handler, corsAllowOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(CORS(corsAllowOrigins))

	r.Get("/health", h.Health)

	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", h.ListProducts)
		r.Get("/{productId}", h.GetProduct)
	})

	r.Route("/api/cart/{userId}", func(r chi.Router) {
		r.Get("/", h.GetCart)
		r.Delete("/", h.ClearCart)
		r.Post("/items", h.AddItem)
		r.Put("/items/{productId}", h.UpdateQuantity)
		r.Delete("/items/{productId}", h.RemoveItem)
		r.Post("/checkout", h.Checkout)
	})

	r.Route("/api/orders/{userId}", func(r chi.Router) {
		r.Get("/", h.ListOrders)
		r.Get("/confirmation", h.Confirmation)
	})

	return r
}
