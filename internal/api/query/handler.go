package query

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/futig/contract-workbench/internal/entity"
	"github.com/futig/contract-workbench/internal/pkg/logger"
	"github.com/futig/contract-workbench/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const maxQueryBody = 1 << 20

type Handler struct {
	usecase PreviewUsecase
}

func NewHandler(usecase PreviewUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// decodeQuery reads an optional StructuredQuery. An empty or null body yields nil.
func decodeQuery(r *http.Request) (*entity.StructuredQuery, error) {
	var q *entity.StructuredQuery
	err := json.NewDecoder(io.LimitReader(r.Body, maxQueryBody)).Decode(&q)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	return q, err
}

// Preview handles POST /queries/preview
func (h *Handler) Preview(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "PreviewQuery")

	q, err := decodeQuery(r)
	if err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid query body", err)
		return
	}

	if q != nil {
		ctx = logger.AddFields(ctx, zap.String("template", string(q.Template)))
	}

	preview, err := h.usecase.Build(ctx, q)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	ctxzap.Debug(ctx, "query preview built", zap.Int("expectations", len(preview.Expectations)))

	response.Success(w, preview)
}

// Strategy handles POST /queries/strategy
func (h *Handler) Strategy(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "QueryStrategy")

	q, err := decodeQuery(r)
	if err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid query body", err)
		return
	}

	response.Success(w, &entity.StrategyResponse{
		Strategy: h.usecase.StrategyDescription(ctx, q),
	})
}
