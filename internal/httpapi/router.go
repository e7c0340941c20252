package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/andreasstove999/fresh-market/internal/middleware"
)

func NewRouter(h *Handler, corsAllowOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Logger)
	r.Use(middleware.CORS(corsAllowOrigins))

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/catalog/products", h.ListProducts)

		r.Route("/sessions", func(r chi.Router) {
			r.Post("/", h.CreateSession)
			r.Post("/{sessionId}/category", h.ChangeCategory)
			r.Get("/{sessionId}/products", h.SessionProducts)
		})

		r.Route("/cart/{sessionId}", func(r chi.Router) {
			r.Get("/", h.GetCart)
			r.Post("/items", h.AddItem)
			r.Delete("/items/{productId}", h.RemoveItem)
			r.Post("/checkout", h.Checkout)
		})
	})

	return r
}
