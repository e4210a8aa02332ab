package comparison

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers comparison page routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/comparisons", func(r chi.Router) {
		r.Post("/", h.OpenComparison)

		r.Route("/{comparison_id}", func(r chi.Router) {
			r.Get("/", h.GetComparison)
			r.Delete("/", h.CloseComparison)
			r.Post("/navigate", h.Navigate)
			r.Put("/model", h.SelectModel)
		})
	})
}
