package workbench

import (
	"context"
	"fmt"
	"sync"

	"github.com/futig/contract-workbench/internal/entity"
	"github.com/futig/contract-workbench/internal/pkg/metrics"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	defaultTitle = "Contract Search"
	defaultIcon  = "search"
)

// SavedResultLoader fetches previously computed query outcomes
type SavedResultLoader interface {
	Get(ctx context.Context, id string) (*entity.SavedResult, error)
}

// Workbench is the state behind the contract search, analysis and comparison pages
type Workbench struct {
	loader SavedResultLoader

	mu          sync.Mutex
	mode        entity.WorkbenchMode
	pageTitle   string
	pageIcon    string
	activeTab   entity.WorkbenchTab
	model       string
	savedResult *entity.SavedResult
	lastErr     *string

	ready     chan struct{}
	readyOnce sync.Once
}

func New(loader SavedResultLoader, model string) *Workbench {
	return &Workbench{
		loader:    loader,
		mode:      entity.WorkbenchModeSearch,
		pageTitle: defaultTitle,
		pageIcon:  defaultIcon,
		activeTab: entity.WorkbenchTabResults,
		model:     model,
		ready:     make(chan struct{}),
	}
}

// LoadSavedResult replaces the displayed result. Failures are recorded on the
// workbench and returned.
func (w *Workbench) LoadSavedResult(ctx context.Context, id string) error {
	ctx = ctxzap.ToContext(ctx, ctxzap.Extract(ctx).With(zap.String("result_id", id)))

	result, err := w.loader.Get(ctx, id)
	if err != nil {
		msg := err.Error()
		w.mu.Lock()
		w.lastErr = &msg
		w.mu.Unlock()

		metrics.SavedResultLoads.WithLabelValues("error").Inc()
		return fmt.Errorf("load saved result %s: %w", id, err)
	}

	w.mu.Lock()
	w.savedResult = result
	w.lastErr = nil
	w.mu.Unlock()

	metrics.SavedResultLoads.WithLabelValues("ok").Inc()
	ctxzap.Info(ctx, "saved result loaded into workbench")
	return nil
}

func (w *Workbench) SetMode(mode entity.WorkbenchMode, title, icon string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.mode = mode
	w.pageTitle = title
	w.pageIcon = icon
}

// UpdateTabForMode switches the active tab to the one that belongs to the current mode
func (w *Workbench) UpdateTabForMode() {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.activeTab = TabForMode(w.mode)
}

func TabForMode(mode entity.WorkbenchMode) entity.WorkbenchTab {
	switch mode {
	case entity.WorkbenchModeComparison:
		return entity.WorkbenchTabCompare
	case entity.WorkbenchModeAnalysis:
		return entity.WorkbenchTabAnalyze
	default:
		return entity.WorkbenchTabResults
	}
}

func (w *Workbench) Model() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.model
}

func (w *Workbench) SetModel(value string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.model = value
}

// Ready is closed once the view has been configured
func (w *Workbench) Ready() <-chan struct{} {
	return w.ready
}

func (w *Workbench) MarkReady() {
	w.readyOnce.Do(func() { close(w.ready) })
}

func (w *Workbench) Snapshot() entity.WorkbenchState {
	w.mu.Lock()
	defer w.mu.Unlock()

	state := entity.WorkbenchState{
		Mode:      w.mode,
		PageTitle: w.pageTitle,
		PageIcon:  w.pageIcon,
		ActiveTab: w.activeTab,
		Model:     w.model,
	}

	select {
	case <-w.ready:
		state.Ready = true
	default:
	}

	if w.savedResult != nil {
		result := *w.savedResult
		state.SavedResult = &result
	}
	if w.lastErr != nil {
		msg := *w.lastErr
		state.LastError = &msg
	}

	return state
}
