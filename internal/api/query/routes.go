package query

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers query preview routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/queries", func(r chi.Router) {
		r.Post("/preview", h.Preview)
		r.Post("/strategy", h.Strategy)
	})
}
