package savedresult

import (
	"context"
	"fmt"
	"strings"

	"github.com/futig/contract-workbench/internal/entity"
	"github.com/futig/contract-workbench/internal/pkg/formatter"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type SavedResultUsecase struct {
	repo         SavedResultRepository
	catalog      ModelCatalog
	formatters   FormatterFactory
	defaultModel string
}

func NewUsecase(
	repo SavedResultRepository,
	catalog ModelCatalog,
	formatters FormatterFactory,
	defaultModel string,
) *SavedResultUsecase {
	return &SavedResultUsecase{
		repo:         repo,
		catalog:      catalog,
		formatters:   formatters,
		defaultModel: defaultModel,
	}
}

// Export is a rendered saved result ready to be sent as a file
type Export struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (uc *SavedResultUsecase) Create(ctx context.Context, req *entity.CreateSavedResultRequest) (*entity.SavedResult, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, fmt.Errorf("%w: title", entity.ErrMissingField)
	}
	if req.Query == nil {
		return nil, fmt.Errorf("%w: query", entity.ErrMissingField)
	}
	if !req.Query.Template.IsKnown() {
		return nil, fmt.Errorf("%w: template %q", entity.ErrInvalidParameter, req.Query.Template)
	}

	model := req.Model
	if model == "" {
		model = uc.defaultModel
	}
	if !uc.catalog.Contains(model) {
		return nil, fmt.Errorf("%w: %q", entity.ErrUnknownModel, model)
	}

	result, err := uc.repo.Create(ctx, entity.SavedResult{
		ID:       uuid.New().String(),
		Title:    strings.TrimSpace(req.Title),
		Template: req.Query.Template,
		Query:    req.Query,
		Summary:  req.Summary,
		Model:    model,
	})
	if err != nil {
		return nil, fmt.Errorf("create saved result: %w", err)
	}

	ctxzap.Info(ctx, "saved result created",
		zap.String("result_id", result.ID),
		zap.String("template", string(result.Template)),
	)

	return result, nil
}

func (uc *SavedResultUsecase) Get(ctx context.Context, id string) (*entity.SavedResult, error) {
	return uc.repo.Get(ctx, id)
}

func (uc *SavedResultUsecase) List(ctx context.Context, req *entity.ListSavedResultsRequest) ([]*entity.SavedResult, error) {
	req.Normalize()
	return uc.repo.List(ctx, req.Skip, req.Limit)
}

func (uc *SavedResultUsecase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	ctxzap.Info(ctx, "saved result deleted", zap.String("result_id", id))
	return nil
}

func (uc *SavedResultUsecase) Export(ctx context.Context, id string, format entity.ResultFormat) (*Export, error) {
	if !format.IsValid() {
		return nil, fmt.Errorf("%w: %q", entity.ErrInvalidFormat, format)
	}

	result, err := uc.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	f, err := uc.formatters.Create(format)
	if err != nil {
		return nil, err
	}

	data, err := f.Format(formatter.Document{
		Title:    result.Title,
		Subtitle: fmt.Sprintf("%s · %s", result.Template, result.CreatedAt.Format("2006-01-02")),
		Body:     result.Summary,
	})
	if err != nil {
		return nil, fmt.Errorf("format saved result: %w", err)
	}

	ctxzap.Debug(ctx, "saved result exported",
		zap.String("result_id", id),
		zap.String("format", string(format)),
		zap.Int("bytes", len(data)),
	)

	return &Export{
		Filename:    "result-" + result.ID + f.FileExtension(),
		ContentType: f.ContentType(),
		Data:        data,
	}, nil
}
