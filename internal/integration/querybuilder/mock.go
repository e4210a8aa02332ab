package querybuilder

import (
	"context"

	"github.com/futig/contract-workbench/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector phrases queries locally instead of calling the query builder service
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Describe(ctx context.Context, q *entity.StructuredQuery) (*entity.QueryDescription, error) {
	ctxzap.Debug(ctx, "[MOCK] describing query")
	return describeLocally(q), nil
}

func (m *MockConnector) ToNaturalLanguage(ctx context.Context, q *entity.StructuredQuery) string {
	desc, _ := m.Describe(ctx, q)
	return desc.NaturalLanguage
}

func (m *MockConnector) GenerateExpectations(ctx context.Context, q *entity.StructuredQuery) []string {
	desc, _ := m.Describe(ctx, q)
	return desc.Expectations
}
