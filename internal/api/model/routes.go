package model

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers model catalog routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/models", func(r chi.Router) {
		r.Get("/", h.ListModels)
		r.Get("/{value}", h.GetModel)
	})
}
