package query

import (
	"context"

	"github.com/futig/contract-workbench/internal/entity"
)

type PreviewUsecase interface {
	Build(ctx context.Context, q *entity.StructuredQuery) (*entity.QueryPreview, error)
	StrategyDescription(ctx context.Context, q *entity.StructuredQuery) string
}
