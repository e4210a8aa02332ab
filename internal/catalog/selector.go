package catalog

import (
	"sync"

	"github.com/futig/contract-workbench/internal/entity"
)

// ChangeListener receives the value passed to OnModelChange
type ChangeListener func(value string)

// Selector tracks the chosen model and notifies listeners when the user picks
// another entry. The owner feeds the authoritative value in through
// SetSelected and persists changes from its listener.
type Selector struct {
	catalog *Catalog

	mu        sync.RWMutex
	selected  string
	listeners []ChangeListener
}

func NewSelector(catalog *Catalog, selected string) *Selector {
	return &Selector{
		catalog:  catalog,
		selected: selected,
	}
}

func (s *Selector) Options() []entity.ModelOption {
	return s.catalog.List()
}

func (s *Selector) Selected() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selected
}

// SetSelected overrides the selection from the owner without emitting
func (s *Selector) SetSelected(value string) {
	s.mu.Lock()
	s.selected = value
	s.mu.Unlock()
}

func (s *Selector) Subscribe(l ChangeListener) {
	s.mu.Lock()
	s.listeners = append(s.listeners, l)
	s.mu.Unlock()
}

// OnModelChange records the value and emits it to every listener once.
// The value is not checked against the catalog.
func (s *Selector) OnModelChange(value string) {
	s.mu.Lock()
	s.selected = value
	listeners := make([]ChangeListener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, l := range listeners {
		l(value)
	}
}

func (s *Selector) GetModelInfo(value string) (entity.ModelOption, bool) {
	return s.catalog.GetModelInfo(value)
}

// SelectedInfo returns the catalog entry for the current selection
func (s *Selector) SelectedInfo() (entity.ModelOption, bool) {
	return s.catalog.GetModelInfo(s.Selected())
}
