package model

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/futig/contract-workbench/internal/catalog"
	"github.com/futig/contract-workbench/internal/entity"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter() http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(catalog.New(), catalog.ModelPrimary))
	return r
}

func TestListModels(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/models/", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.ListModelsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Models, 2)
	assert.Equal(t, catalog.ModelPrimary, resp.Models[0].Value)
	assert.Equal(t, catalog.ModelSecondary, resp.Models[1].Value)
	assert.Equal(t, catalog.ModelPrimary, resp.Selected)
}

func TestGetModel(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/models/secondary", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var info entity.ModelOption
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &info))
	assert.Equal(t, catalog.ModelSecondary, info.Value)
	require.NotNil(t, info.Badge)
}

func TestGetModel_NotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/models/tertiary", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
