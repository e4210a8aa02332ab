package savedresult

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/futig/contract-workbench/internal/entity"
	"github.com/futig/contract-workbench/internal/pkg/logger"
	"github.com/futig/contract-workbench/internal/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase  SavedResultUsecase
	renderer MarkdownRenderer
}

func NewHandler(usecase SavedResultUsecase, renderer MarkdownRenderer) *Handler {
	return &Handler{
		usecase:  usecase,
		renderer: renderer,
	}
}

// CreateSavedResult handles POST /saved-results
func (h *Handler) CreateSavedResult(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateSavedResult")

	var req entity.CreateSavedResultRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.usecase.Create(ctx, &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Created(w, toSavedResultDetail(result, h.renderer.Transform(ctx, result.Summary)))
}

// ListSavedResults handles GET /saved-results
func (h *Handler) ListSavedResults(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListSavedResults")

	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	req := entity.ListSavedResultsRequest{
		Skip:  skip,
		Limit: limit,
	}

	results, err := h.usecase.List(ctx, &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	summaries := make([]*entity.SavedResultSummary, 0, len(results))
	for _, res := range results {
		summaries = append(summaries, toSavedResultSummary(res))
	}

	ctxzap.Debug(ctx, "saved results listed",
		zap.Int("skip", req.Skip),
		zap.Int("limit", req.Limit),
		zap.Int("count", len(summaries)),
	)

	response.Success(w, &entity.ListSavedResultsResponse{
		Results: summaries,
	})
}

// GetSavedResult handles GET /saved-results/{result_id}
func (h *Handler) GetSavedResult(w http.ResponseWriter, r *http.Request) {
	resultID := chi.URLParam(r, "result_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("result_id", resultID),
		zap.String("action", "GetSavedResult"),
	)

	result, err := h.usecase.Get(ctx, resultID)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toSavedResultDetail(result, h.renderer.Transform(ctx, result.Summary)))
}

// DeleteSavedResult handles DELETE /saved-results/{result_id}
func (h *Handler) DeleteSavedResult(w http.ResponseWriter, r *http.Request) {
	resultID := chi.URLParam(r, "result_id")
	ctx := logger.AddFields(r.Context(),
		zap.String("result_id", resultID),
		zap.String("action", "DeleteSavedResult"),
	)

	if err := h.usecase.Delete(ctx, resultID); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.Success(w, &entity.DeleteResponse{Status: "deleted"})
}

// ExportSavedResult handles GET /saved-results/{result_id}/export?format=
func (h *Handler) ExportSavedResult(w http.ResponseWriter, r *http.Request) {
	resultID := chi.URLParam(r, "result_id")
	format := entity.ResultFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = entity.FormatMarkdown
	}

	ctx := logger.AddFields(r.Context(),
		zap.String("result_id", resultID),
		zap.String("format", string(format)),
		zap.String("action", "ExportSavedResult"),
	)

	export, err := h.usecase.Export(ctx, resultID, format)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	w.Header().Set("Content-Type", export.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.Filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(export.Data)))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(export.Data); err != nil {
		ctxzap.Warn(ctx, "failed to write export", zap.Error(err))
	}
}
