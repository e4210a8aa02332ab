package model

import (
	"net/http"

	"github.com/futig/contract-workbench/internal/entity"
	"github.com/futig/contract-workbench/internal/pkg/logger"
	"github.com/futig/contract-workbench/internal/pkg/response"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	catalog      ModelCatalog
	defaultModel string
}

func NewHandler(catalog ModelCatalog, defaultModel string) *Handler {
	return &Handler{
		catalog:      catalog,
		defaultModel: defaultModel,
	}
}

// ListModels handles GET /models
func (h *Handler) ListModels(w http.ResponseWriter, r *http.Request) {
	response.Success(w, &entity.ListModelsResponse{
		Models:   h.catalog.List(),
		Selected: h.defaultModel,
	})
}

// GetModel handles GET /models/{value}
func (h *Handler) GetModel(w http.ResponseWriter, r *http.Request) {
	value := chi.URLParam(r, "value")
	ctx := logger.AddFields(r.Context(),
		zap.String("model", value),
		zap.String("action", "GetModel"),
	)

	info, ok := h.catalog.GetModelInfo(value)
	if !ok {
		response.Error(ctx, w, http.StatusNotFound, "model not found", nil)
		return
	}

	response.Success(w, info)
}
