package render

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers rendering routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/render/markdown", h.RenderMarkdown)
}
