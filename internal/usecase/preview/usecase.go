package preview

import (
	"context"
	"fmt"

	"github.com/futig/contract-workbench/internal/entity"
	"github.com/futig/contract-workbench/internal/pkg/metrics"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// PreviewUsecase projects a structured query into the representations shown in
// the preview panel. It never modifies the query.
type PreviewUsecase struct {
	describer QueryDescriber
	clipboard ClipboardWriter
}

func NewUsecase(describer QueryDescriber, clipboard ClipboardWriter) *PreviewUsecase {
	return &PreviewUsecase{
		describer: describer,
		clipboard: clipboard,
	}
}

func (uc *PreviewUsecase) NaturalLanguage(ctx context.Context, q *entity.StructuredQuery) string {
	return uc.describer.ToNaturalLanguage(ctx, q)
}

func (uc *PreviewUsecase) Expectations(ctx context.Context, q *entity.StructuredQuery) []string {
	return uc.describer.GenerateExpectations(ctx, q)
}

func (uc *PreviewUsecase) FormattedJSON(q *entity.StructuredQuery) (string, error) {
	return FormattedJSON(q)
}

func (uc *PreviewUsecase) StrategyDescription(ctx context.Context, q *entity.StructuredQuery) string {
	strategy := StrategyDescription(q)
	if q != nil && strategy == "" {
		ctxzap.Warn(ctx, "no strategy description for template", zap.String("template", string(q.Template)))
	}
	return strategy
}

// Build computes every representation at once
func (uc *PreviewUsecase) Build(ctx context.Context, q *entity.StructuredQuery) (*entity.QueryPreview, error) {
	formatted, err := uc.FormattedJSON(q)
	if err != nil {
		return nil, err
	}

	sentence, expectations := uc.describe(ctx, q)
	if expectations == nil {
		expectations = []string{}
	}

	template := "none"
	switch {
	case q != nil && q.Template.IsKnown():
		template = string(q.Template)
	case q != nil:
		template = "unknown"
	}
	metrics.QueryPreviews.WithLabelValues(template).Inc()

	return &entity.QueryPreview{
		NaturalLanguage: sentence,
		Expectations:    expectations,
		JSON:            formatted,
		Strategy:        uc.StrategyDescription(ctx, q),
	}, nil
}

// describe asks the describer once when it supports Describe, otherwise once
// per representation. A failed Describe degrades to an empty description.
func (uc *PreviewUsecase) describe(ctx context.Context, q *entity.StructuredQuery) (string, []string) {
	d, ok := uc.describer.(Describer)
	if !ok {
		return uc.NaturalLanguage(ctx, q), uc.Expectations(ctx, q)
	}

	desc, err := d.Describe(ctx, q)
	if err != nil {
		ctxzap.Error(ctx, "failed to describe query", zap.Error(err))
		return "", []string{}
	}
	if desc == nil {
		return "", []string{}
	}
	return desc.NaturalLanguage, desc.Expectations
}

// CopyToClipboard writes text to the clipboard and reports failure to the caller
func (uc *PreviewUsecase) CopyToClipboard(ctx context.Context, text string) error {
	if uc.clipboard == nil {
		return entity.ErrClipboardUnavailable
	}

	if err := uc.clipboard.WriteAll(text); err != nil {
		ctxzap.Error(ctx, "failed to copy to clipboard", zap.Error(err))
		return fmt.Errorf("copy to clipboard: %w", err)
	}

	ctxzap.Info(ctx, "copied to clipboard", zap.Int("length", len(text)))
	return nil
}
