package savedresult

import (
	"context"

	"github.com/futig/contract-workbench/internal/entity"
	"github.com/futig/contract-workbench/internal/pkg/formatter"
)

type SavedResultRepository interface {
	Create(ctx context.Context, result entity.SavedResult) (*entity.SavedResult, error)
	Get(ctx context.Context, id string) (*entity.SavedResult, error)
	List(ctx context.Context, skip, limit int) ([]*entity.SavedResult, error)
	Delete(ctx context.Context, id string) error
}

type ModelCatalog interface {
	Contains(value string) bool
}

type FormatterFactory interface {
	Create(format entity.ResultFormat) (formatter.Formatter, error)
}
