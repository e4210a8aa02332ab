package render

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/futig/contract-workbench/internal/entity"
	"github.com/futig/contract-workbench/internal/pkg/logger"
	"github.com/futig/contract-workbench/internal/pkg/response"
)

const maxMarkdownBody = 4 << 20

type Handler struct {
	renderer MarkdownRenderer
}

func NewHandler(renderer MarkdownRenderer) *Handler {
	return &Handler{renderer: renderer}
}

// RenderMarkdown handles POST /render/markdown
func (h *Handler) RenderMarkdown(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "RenderMarkdown")

	var req entity.RenderMarkdownRequest
	if err := json.NewDecoder(io.LimitReader(r.Body, maxMarkdownBody)).Decode(&req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	var text string
	if req.Text != nil {
		text = *req.Text
	}

	response.Success(w, &entity.RenderMarkdownResponse{
		HTML: string(h.renderer.Transform(ctx, text)),
	})
}
