package comparison

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/futig/contract-workbench/internal/catalog"
	"github.com/futig/contract-workbench/internal/entity"
	"github.com/futig/contract-workbench/internal/pkg/logger"
	"github.com/futig/contract-workbench/internal/pkg/metrics"
	"github.com/futig/contract-workbench/internal/workbench"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const navigationBuffer = 8

type Config struct {
	IdleTTL         time.Duration
	CleanupInterval time.Duration
	LoadTimeout     time.Duration
	DefaultModel    string
}

type page struct {
	id        string
	shell     *Shell
	workbench *workbench.Workbench
	nav       chan NavigationEvent
	createdAt time.Time
}

// Manager keeps open comparison pages. Pages idle for longer than IdleTTL are
// evicted and their navigation subscription is closed.
type Manager struct {
	cfg     Config
	loader  workbench.SavedResultLoader
	catalog *catalog.Catalog
	pages   *cache.Cache
}

func NewManager(cfg Config, loader workbench.SavedResultLoader, cat *catalog.Catalog) *Manager {
	pages := cache.New(cfg.IdleTTL, cfg.CleanupInterval)
	pages.OnEvicted(func(_ string, v interface{}) {
		p := v.(*page)
		p.shell.Close()
		metrics.ComparisonsActive.Dec()
	})

	return &Manager{
		cfg:     cfg,
		loader:  loader,
		catalog: cat,
		pages:   pages,
	}
}

// Open creates a comparison page. When resultID is set the saved result is
// loaded before Open returns; a failed load is reported on the workbench state.
func (m *Manager) Open(ctx context.Context, resultID string) (*entity.ComparisonDTO, error) {
	p := &page{
		id:        uuid.New().String(),
		workbench: workbench.New(m.loader, m.cfg.DefaultModel),
		nav:       make(chan NavigationEvent, navigationBuffer),
		createdAt: time.Now().UTC(),
	}
	p.shell = NewShell(p.workbench, m.cfg.LoadTimeout)

	bgCtx := logger.AddFields(logger.Detach(ctx), zap.String("comparison_id", p.id))
	p.shell.Start(bgCtx, p.nav)
	p.shell.AfterViewInit()

	m.pages.Set(p.id, p, cache.DefaultExpiration)
	metrics.ComparisonsActive.Inc()

	ctxzap.Info(ctx, "comparison opened", zap.String("comparison_id", p.id), zap.String("result_id", resultID))

	if resultID != "" {
		if err := m.navigate(ctx, p, resultID); err != nil {
			ctxzap.Warn(ctx, "initial saved result load failed", zap.Error(err))
		}
	}

	return m.toDTO(p), nil
}

func (m *Manager) Get(ctx context.Context, id string) (*entity.ComparisonDTO, error) {
	p, err := m.touch(id)
	if err != nil {
		return nil, err
	}
	return m.toDTO(p), nil
}

// Navigate delivers a navigation event with the given resultId and waits for the load
func (m *Manager) Navigate(ctx context.Context, id, resultID string) (*entity.ComparisonDTO, error) {
	p, err := m.touch(id)
	if err != nil {
		return nil, err
	}

	if err := m.navigate(ctx, p, resultID); err != nil {
		ctxzap.Warn(ctx, "saved result load failed", zap.String("result_id", resultID), zap.Error(err))
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	return m.toDTO(p), nil
}

func (m *Manager) navigate(ctx context.Context, p *page, resultID string) error {
	done := make(chan error, 1)
	ev := NavigationEvent{
		Params: url.Values{ResultIDParam: []string{resultID}},
		Done:   done,
	}

	select {
	case p.nav <- ev:
	case <-p.shell.Done():
		return entity.ErrWorkbenchClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-done:
		return err
	case <-p.shell.Done():
		return entity.ErrWorkbenchClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SelectModel changes the inference tier used by the comparison page
func (m *Manager) SelectModel(ctx context.Context, id, value string) (*entity.ComparisonDTO, error) {
	p, err := m.touch(id)
	if err != nil {
		return nil, err
	}

	if !m.catalog.Contains(value) {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnknownModel, value)
	}

	selector := catalog.NewSelector(m.catalog, p.workbench.Model())
	selector.Subscribe(p.workbench.SetModel)
	selector.OnModelChange(value)

	ctxzap.Info(ctx, "comparison model changed", zap.String("comparison_id", id), zap.String("model", value))

	return m.toDTO(p), nil
}

func (m *Manager) Close(ctx context.Context, id string) error {
	if _, ok := m.pages.Get(id); !ok {
		return entity.ErrComparisonNotFound
	}
	m.pages.Delete(id)

	ctxzap.Info(ctx, "comparison closed", zap.String("comparison_id", id))
	return nil
}

// Shutdown closes every open page
func (m *Manager) Shutdown() {
	for id := range m.pages.Items() {
		m.pages.Delete(id)
	}
}

// touch returns the page and restarts its idle timer
func (m *Manager) touch(id string) (*page, error) {
	v, ok := m.pages.Get(id)
	if !ok {
		return nil, entity.ErrComparisonNotFound
	}
	p := v.(*page)
	// Replace fails when the page was evicted or closed after Get
	if err := m.pages.Replace(id, p, cache.DefaultExpiration); err != nil {
		return nil, entity.ErrComparisonNotFound
	}
	return p, nil
}

func (m *Manager) toDTO(p *page) *entity.ComparisonDTO {
	return &entity.ComparisonDTO{
		ID:        p.id,
		Workbench: p.workbench.Snapshot(),
		CreatedAt: p.createdAt,
	}
}
