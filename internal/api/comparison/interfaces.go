package comparison

import (
	"context"

	"github.com/futig/contract-workbench/internal/entity"
)

type ComparisonManager interface {
	Open(ctx context.Context, resultID string) (*entity.ComparisonDTO, error)
	Get(ctx context.Context, id string) (*entity.ComparisonDTO, error)
	Navigate(ctx context.Context, id, resultID string) (*entity.ComparisonDTO, error)
	SelectModel(ctx context.Context, id, value string) (*entity.ComparisonDTO, error)
	Close(ctx context.Context, id string) error
}
