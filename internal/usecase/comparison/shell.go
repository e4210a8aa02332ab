package comparison

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/futig/contract-workbench/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	ResultIDParam = "resultId"

	comparisonTitle = "Contract Comparison"
	comparisonIcon  = "compare_arrows"
)

// NavigationEvent carries the query parameters of one navigation. If Done is
// set it must be buffered; it receives the outcome of the load the event
// triggered, or nil when nothing was loaded.
type NavigationEvent struct {
	Params url.Values
	Done   chan<- error
}

func (e NavigationEvent) ResultID() string {
	return e.Params.Get(ResultIDParam)
}

// Shell hosts a workbench in comparison mode and loads saved results named by
// navigation events.
//
// All work happens on one goroutine. Loads wait for the workbench's ready
// signal, and AfterViewInit configures comparison mode before raising it, so
// the mode is always set before any saved result is loaded.
type Shell struct {
	wb          Workbench
	loadTimeout time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
	closed bool
}

func NewShell(wb Workbench, loadTimeout time.Duration) *Shell {
	return &Shell{
		wb:          wb,
		loadTimeout: loadTimeout,
	}
}

// Start subscribes to navigation events until Close is called, ctx is
// cancelled or nav is closed. Starting twice or after Close is a no-op.
func (s *Shell) Start(ctx context.Context, nav <-chan NavigationEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != nil || s.closed {
		return
	}

	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx, nav, s.done)
}

func (s *Shell) run(ctx context.Context, nav <-chan NavigationEvent, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			drain(nav, ctx.Err())
			return
		case ev, ok := <-nav:
			if !ok {
				return
			}
			s.handle(ctx, ev)
		}
	}
}

func (s *Shell) handle(ctx context.Context, ev NavigationEvent) {
	resultID := ev.ResultID()
	if resultID == "" {
		reply(ev, nil)
		return
	}

	select {
	case <-ctx.Done():
		reply(ev, ctx.Err())
		return
	case <-s.wb.Ready():
	}

	loadCtx, cancel := context.WithTimeout(ctx, s.loadTimeout)
	defer cancel()

	err := s.wb.LoadSavedResult(loadCtx, resultID)
	if err != nil {
		ctxzap.Warn(ctx, "failed to load saved result for comparison",
			zap.String("result_id", resultID),
			zap.Error(err),
		)
	}
	reply(ev, err)
}

// drain answers events that were queued when the subscription ended
func drain(nav <-chan NavigationEvent, err error) {
	for {
		select {
		case ev, ok := <-nav:
			if !ok {
				return
			}
			reply(ev, err)
		default:
			return
		}
	}
}

func reply(ev NavigationEvent, err error) {
	if ev.Done == nil {
		return
	}
	select {
	case ev.Done <- err:
	default:
	}
}

// AfterViewInit puts the workbench into comparison mode and marks it ready
func (s *Shell) AfterViewInit() {
	s.wb.SetMode(entity.WorkbenchModeComparison, comparisonTitle, comparisonIcon)
	s.wb.UpdateTabForMode()
	s.wb.MarkReady()
}

// Done is closed when the subscription goroutine has exited
func (s *Shell) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.done
}

// Close ends the navigation subscription and waits for it to stop
func (s *Shell) Close() {
	s.mu.Lock()
	s.closed = true
	cancel, done := s.cancel, s.done
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
