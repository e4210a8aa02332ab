package comparison

import (
	"context"
	"testing"
	"time"

	"github.com/futig/contract-workbench/internal/catalog"
	"github.com/futig/contract-workbench/internal/entity"
	"github.com/futig/contract-workbench/internal/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapLoader map[string]*entity.SavedResult

func (m mapLoader) Get(_ context.Context, id string) (*entity.SavedResult, error) {
	r, ok := m[id]
	if !ok {
		return nil, entity.ErrSavedResultNotFound
	}
	return r, nil
}

func newTestManager(t *testing.T, loader mapLoader) *Manager {
	m := NewManager(Config{
		IdleTTL:         time.Minute,
		CleanupInterval: time.Minute,
		LoadTimeout:     time.Second,
		DefaultModel:    catalog.ModelPrimary,
	}, loader, catalog.New())
	t.Cleanup(m.Shutdown)
	return m
}

func TestManager_OpenWithResult(t *testing.T) {
	m := newTestManager(t, mapLoader{"r1": {ID: "r1", Title: "Lease comparison"}})
	ctx := context.Background()

	dto, err := m.Open(ctx, "r1")
	require.NoError(t, err)

	wb := dto.Workbench
	assert.Equal(t, entity.WorkbenchModeComparison, wb.Mode)
	assert.Equal(t, comparisonTitle, wb.PageTitle)
	assert.Equal(t, comparisonIcon, wb.PageIcon)
	assert.Equal(t, entity.WorkbenchTabCompare, wb.ActiveTab)
	assert.True(t, wb.Ready)
	require.NotNil(t, wb.SavedResult)
	assert.Equal(t, "Lease comparison", wb.SavedResult.Title)
}

func TestManager_OpenWithMissingResult(t *testing.T) {
	m := newTestManager(t, mapLoader{})

	dto, err := m.Open(context.Background(), "nope")
	require.NoError(t, err)

	assert.Equal(t, entity.WorkbenchModeComparison, dto.Workbench.Mode)
	assert.Nil(t, dto.Workbench.SavedResult)
	require.NotNil(t, dto.Workbench.LastError)
}

func TestManager_NavigateAndSelectModel(t *testing.T) {
	m := newTestManager(t, mapLoader{
		"r1": {ID: "r1"},
		"r2": {ID: "r2"},
	})
	ctx := context.Background()

	dto, err := m.Open(ctx, "")
	require.NoError(t, err)
	assert.Nil(t, dto.Workbench.SavedResult)

	dto, err = m.Navigate(ctx, dto.ID, "r2")
	require.NoError(t, err)
	require.NotNil(t, dto.Workbench.SavedResult)
	assert.Equal(t, "r2", dto.Workbench.SavedResult.ID)

	dto, err = m.SelectModel(ctx, dto.ID, catalog.ModelSecondary)
	require.NoError(t, err)
	assert.Equal(t, catalog.ModelSecondary, dto.Workbench.Model)

	_, err = m.SelectModel(ctx, dto.ID, "gpt-9")
	assert.ErrorIs(t, err, entity.ErrUnknownModel)

	got, err := m.Get(ctx, dto.ID)
	require.NoError(t, err)
	assert.Equal(t, catalog.ModelSecondary, got.Workbench.Model)
}

func TestManager_Close(t *testing.T) {
	m := newTestManager(t, mapLoader{})
	ctx := context.Background()

	dto, err := m.Open(ctx, "")
	require.NoError(t, err)

	require.NoError(t, m.Close(ctx, dto.ID))

	_, err = m.Get(ctx, dto.ID)
	assert.ErrorIs(t, err, entity.ErrComparisonNotFound)
	assert.ErrorIs(t, m.Close(ctx, dto.ID), entity.ErrComparisonNotFound)

	_, err = m.Navigate(ctx, dto.ID, "r1")
	assert.ErrorIs(t, err, entity.ErrComparisonNotFound)
}

func TestManager_IdlePageIsEvicted(t *testing.T) {
	m := NewManager(Config{
		IdleTTL:         50 * time.Millisecond,
		CleanupInterval: 10 * time.Millisecond,
		LoadTimeout:     time.Second,
		DefaultModel:    catalog.ModelPrimary,
	}, mapLoader{}, catalog.New())
	t.Cleanup(m.Shutdown)
	ctx := context.Background()

	active := testutil.ToFloat64(metrics.ComparisonsActive)

	dto, err := m.Open(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, active+1, testutil.ToFloat64(metrics.ComparisonsActive))

	v, ok := m.pages.Get(dto.ID)
	require.True(t, ok)
	shell := v.(*page).shell

	select {
	case <-shell.Done():
	case <-time.After(time.Second):
		t.Fatal("idle comparison page was not closed")
	}

	require.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.ComparisonsActive) == active
	}, time.Second, 10*time.Millisecond)

	_, err = m.Get(ctx, dto.ID)
	assert.ErrorIs(t, err, entity.ErrComparisonNotFound)

	_, err = m.Navigate(ctx, dto.ID, "r1")
	assert.ErrorIs(t, err, entity.ErrComparisonNotFound)
}

func TestManager_TouchDoesNotRestoreRemovedPage(t *testing.T) {
	m := newTestManager(t, mapLoader{})
	ctx := context.Background()

	dto, err := m.Open(ctx, "")
	require.NoError(t, err)

	m.pages.Delete(dto.ID)

	_, err = m.touch(dto.ID)
	assert.ErrorIs(t, err, entity.ErrComparisonNotFound)
	assert.Equal(t, 0, m.pages.ItemCount())

	_, err = m.SelectModel(ctx, dto.ID, catalog.ModelSecondary)
	assert.ErrorIs(t, err, entity.ErrComparisonNotFound)
	assert.Equal(t, 0, m.pages.ItemCount())
}
