package savedresult

import (
	"context"
	"html/template"

	"github.com/futig/contract-workbench/internal/entity"
	savedresultuc "github.com/futig/contract-workbench/internal/usecase/savedresult"
)

type SavedResultUsecase interface {
	Create(ctx context.Context, req *entity.CreateSavedResultRequest) (*entity.SavedResult, error)
	Get(ctx context.Context, id string) (*entity.SavedResult, error)
	List(ctx context.Context, req *entity.ListSavedResultsRequest) ([]*entity.SavedResult, error)
	Delete(ctx context.Context, id string) error
	Export(ctx context.Context, id string, format entity.ResultFormat) (*savedresultuc.Export, error)
}

type MarkdownRenderer interface {
	Transform(ctx context.Context, text string) template.HTML
}
