package comparison

import (
	"encoding/json"
	"net/http"

	"github.com/futig/contract-workbench/internal/entity"
	"github.com/futig/contract-workbench/internal/pkg/logger"
	"github.com/futig/contract-workbench/internal/pkg/response"
	comparisonuc "github.com/futig/contract-workbench/internal/usecase/comparison"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	manager ComparisonManager
}

func NewHandler(manager ComparisonManager) *Handler {
	return &Handler{manager: manager}
}

// OpenComparison handles POST /comparisons?resultId=
func (h *Handler) OpenComparison(w http.ResponseWriter, r *http.Request) {
	resultID := r.URL.Query().Get(comparisonuc.ResultIDParam)
	ctx := logger.AddFields(r.Context(),
		zap.String("result_id", resultID),
		zap.String("action", "OpenComparison"),
	)

	dto, err := h.manager.Open(ctx, resultID)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Created(w, dto)
}

// GetComparison handles GET /comparisons/{comparison_id}
func (h *Handler) GetComparison(w http.ResponseWriter, r *http.Request) {
	comparisonID := chi.URLParam(r, "comparison_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("comparison_id", comparisonID),
		zap.String("action", "GetComparison"),
	)

	dto, err := h.manager.Get(ctx, comparisonID)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Success(w, dto)
}

// Navigate handles POST /comparisons/{comparison_id}/navigate?resultId=
func (h *Handler) Navigate(w http.ResponseWriter, r *http.Request) {
	comparisonID := chi.URLParam(r, "comparison_id")
	resultID := r.URL.Query().Get(comparisonuc.ResultIDParam)
	ctx := logger.AddFields(r.Context(),
		zap.String("comparison_id", comparisonID),
		zap.String("result_id", resultID),
		zap.String("action", "NavigateComparison"),
	)

	if resultID == "" {
		response.Error(ctx, w, http.StatusBadRequest, "resultId is required", nil)
		return
	}

	dto, err := h.manager.Navigate(ctx, comparisonID, resultID)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Success(w, dto)
}

// SelectModel handles PUT /comparisons/{comparison_id}/model
func (h *Handler) SelectModel(w http.ResponseWriter, r *http.Request) {
	comparisonID := chi.URLParam(r, "comparison_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("comparison_id", comparisonID),
		zap.String("action", "SelectModel"),
	)

	var req entity.SelectModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	dto, err := h.manager.SelectModel(ctx, comparisonID, req.Value)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Success(w, dto)
}

// CloseComparison handles DELETE /comparisons/{comparison_id}
func (h *Handler) CloseComparison(w http.ResponseWriter, r *http.Request) {
	comparisonID := chi.URLParam(r, "comparison_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("comparison_id", comparisonID),
		zap.String("action", "CloseComparison"),
	)

	if err := h.manager.Close(ctx, comparisonID); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Success(w, &entity.DeleteResponse{Status: "closed"})
}
