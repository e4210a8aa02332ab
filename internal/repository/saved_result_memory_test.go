package repository

import (
	"context"
	"testing"
	"time"

	"github.com/futig/contract-workbench/internal/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSavedResultMemory_CRUD(t *testing.T) {
	repo := NewSavedResultMemory()
	ctx := context.Background()

	tick := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	repo.now = func() time.Time {
		tick = tick.Add(time.Minute)
		return tick
	}

	first, err := repo.Create(ctx, entity.SavedResult{ID: uuid.NewString(), Title: "first", Template: entity.TemplateFindContracts})
	require.NoError(t, err)
	second, err := repo.Create(ctx, entity.SavedResult{ID: uuid.NewString(), Title: "second", Template: entity.TemplateCompareClauses})
	require.NoError(t, err)

	got, err := repo.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "first", got.Title)

	list, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")

	page, err := repo.List(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, first.ID, page[0].ID)

	empty, err := repo.List(ctx, 5, 10)
	require.NoError(t, err)
	assert.Empty(t, empty)

	require.NoError(t, repo.Delete(ctx, first.ID))
	_, err = repo.Get(ctx, first.ID)
	assert.ErrorIs(t, err, entity.ErrSavedResultNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, first.ID), entity.ErrSavedResultNotFound)
}

func TestSavedResultMemory_InvalidID(t *testing.T) {
	repo := NewSavedResultMemory()
	ctx := context.Background()

	_, err := repo.Create(ctx, entity.SavedResult{ID: "not-a-uuid"})
	assert.ErrorIs(t, err, entity.ErrInvalidParameter)

	_, err = repo.Get(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, entity.ErrSavedResultNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "not-a-uuid"), entity.ErrSavedResultNotFound)
}

func TestIDParsing(t *testing.T) {
	id := uuid.NewString()

	parsed, err := parseID(id)
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	looked, err := lookupID(id)
	require.NoError(t, err)
	assert.Equal(t, parsed, looked)

	_, err = parseID("42")
	assert.ErrorIs(t, err, entity.ErrInvalidParameter)

	_, err = lookupID("42")
	assert.ErrorIs(t, err, entity.ErrSavedResultNotFound)
}
