package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/futig/contract-workbench/internal/entity"
)

var _ SavedResultRepository = &SavedResultMemory{}

// SavedResultMemory keeps saved results in process memory. Used with ENABLE_MOCKS.
type SavedResultMemory struct {
	mu      sync.RWMutex
	results map[string]entity.SavedResult
	now     func() time.Time
}

func NewSavedResultMemory() *SavedResultMemory {
	return &SavedResultMemory{
		results: make(map[string]entity.SavedResult),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (r *SavedResultMemory) Create(_ context.Context, result entity.SavedResult) (*entity.SavedResult, error) {
	if _, err := parseID(result.ID); err != nil {
		return nil, err
	}

	result.CreatedAt = r.now()

	r.mu.Lock()
	r.results[result.ID] = result
	r.mu.Unlock()

	return &result, nil
}

func (r *SavedResultMemory) Get(_ context.Context, id string) (*entity.SavedResult, error) {
	if _, err := lookupID(id); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	result, ok := r.results[id]
	if !ok {
		return nil, entity.ErrSavedResultNotFound
	}
	return &result, nil
}

func (r *SavedResultMemory) List(_ context.Context, skip, limit int) ([]*entity.SavedResult, error) {
	r.mu.RLock()
	all := make([]*entity.SavedResult, 0, len(r.results))
	for _, result := range r.results {
		result := result
		all = append(all, &result)
	}
	r.mu.RUnlock()

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if skip >= len(all) {
		return []*entity.SavedResult{}, nil
	}
	end := min(skip+limit, len(all))
	return all[skip:end], nil
}

func (r *SavedResultMemory) Delete(_ context.Context, id string) error {
	if _, err := lookupID(id); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.results[id]; !ok {
		return entity.ErrSavedResultNotFound
	}
	delete(r.results, id)
	return nil
}
