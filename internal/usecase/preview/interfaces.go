package preview

import (
	"context"

	"github.com/futig/contract-workbench/internal/entity"
)

// QueryDescriber is the query builder contract the preview depends on
type QueryDescriber interface {
	ToNaturalLanguage(ctx context.Context, q *entity.StructuredQuery) string
	GenerateExpectations(ctx context.Context, q *entity.StructuredQuery) []string
}

// Describer returns the sentence and expectations in one call. Build prefers it
// over QueryDescriber when the describer provides both.
type Describer interface {
	Describe(ctx context.Context, q *entity.StructuredQuery) (*entity.QueryDescription, error)
}

type ClipboardWriter interface {
	WriteAll(text string) error
}
