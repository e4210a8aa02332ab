package savedresult

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers saved result routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/saved-results", func(r chi.Router) {
		r.Post("/", h.CreateSavedResult)
		r.Get("/", h.ListSavedResults)

		r.Route("/{result_id}", func(r chi.Router) {
			r.Get("/", h.GetSavedResult)
			r.Delete("/", h.DeleteSavedResult)
			r.Get("/export", h.ExportSavedResult)
		})
	})
}
