package query

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/futig/contract-workbench/internal/entity"
	"github.com/futig/contract-workbench/internal/integration/querybuilder"
	"github.com/futig/contract-workbench/internal/usecase/preview"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newRouter(t *testing.T) http.Handler {
	uc := preview.NewUsecase(querybuilder.NewMockConnector(zaptest.NewLogger(t)), nil)

	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc))
	return r
}

func post(t *testing.T, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	newRouter(t).ServeHTTP(rec, req)
	return rec
}

func TestPreview_NullQuery(t *testing.T) {
	rec := post(t, "/queries/preview", "null")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.QueryPreview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "{}", resp.JSON)
	assert.Equal(t, "", resp.Strategy)
	assert.Empty(t, resp.Expectations)
}

func TestPreview_EmptyBody(t *testing.T) {
	rec := post(t, "/queries/preview", "")
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestPreview_Query(t *testing.T) {
	rec := post(t, "/queries/preview", `{
		"id": "q-1",
		"template": "FIND_CONTRACTS",
		"filters": {"jurisdiction": "Delaware"},
		"confidence": 0.9
	}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.QueryPreview
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.NaturalLanguage)
	assert.NotEmpty(t, resp.Strategy)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(resp.JSON), &fields))
	assert.Len(t, fields, 6)
	assert.NotContains(t, fields, "id")
	assert.NotContains(t, fields, "confidence")
	assert.JSONEq(t, `{"jurisdiction":"Delaware"}`, string(fields["filters"]))
}

func TestPreview_InvalidBody(t *testing.T) {
	rec := post(t, "/queries/preview", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStrategy(t *testing.T) {
	rec := post(t, "/queries/strategy", `{"template":"ANALYZE_CONTRACT"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.StrategyResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, preview.StrategyDescription(&entity.StructuredQuery{Template: entity.TemplateAnalyzeContract}), resp.Strategy)

	rec = post(t, "/queries/strategy", `{"template":"SUMMARIZE"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "", resp.Strategy)
}
