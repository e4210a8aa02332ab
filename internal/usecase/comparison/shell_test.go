package comparison

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/futig/contract-workbench/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("github.com/patrickmn/go-cache.(*janitor).Run"))
}

type fakeWorkbench struct {
	mu      sync.Mutex
	calls   []string
	loadErr error

	ready     chan struct{}
	readyOnce sync.Once
}

func newFakeWorkbench() *fakeWorkbench {
	return &fakeWorkbench{ready: make(chan struct{})}
}

func (f *fakeWorkbench) record(call string) {
	f.mu.Lock()
	f.calls = append(f.calls, call)
	f.mu.Unlock()
}

func (f *fakeWorkbench) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *fakeWorkbench) LoadSavedResult(_ context.Context, id string) error {
	f.record("load:" + id)
	return f.loadErr
}

func (f *fakeWorkbench) SetMode(mode entity.WorkbenchMode, title, icon string) {
	f.record("mode:" + string(mode))
}

func (f *fakeWorkbench) UpdateTabForMode() {
	f.record("tab")
}

func (f *fakeWorkbench) MarkReady() {
	f.readyOnce.Do(func() {
		f.record("ready")
		close(f.ready)
	})
}

func (f *fakeWorkbench) Ready() <-chan struct{} {
	return f.ready
}

func navEvent(resultID string) (NavigationEvent, chan error) {
	done := make(chan error, 1)
	params := url.Values{}
	if resultID != "" {
		params.Set(ResultIDParam, resultID)
	}
	return NavigationEvent{Params: params, Done: done}, done
}

func waitErr(t *testing.T, ch chan error) error {
	t.Helper()
	select {
	case err := <-ch:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for navigation to be handled")
		return nil
	}
}

func TestShell_ModeConfiguredBeforeLoad(t *testing.T) {
	wb := newFakeWorkbench()
	s := NewShell(wb, time.Second)
	nav := make(chan NavigationEvent, 1)

	s.Start(context.Background(), nav)
	defer s.Close()

	ev, done := navEvent("r1")
	nav <- ev

	// The load must wait for the view to be ready
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, wb.Calls())

	s.AfterViewInit()
	require.NoError(t, waitErr(t, done))

	assert.Equal(t, []string{"mode:comparison", "tab", "ready", "load:r1"}, wb.Calls())
}

func TestShell_EveryNavigationLoads(t *testing.T) {
	wb := newFakeWorkbench()
	s := NewShell(wb, time.Second)
	nav := make(chan NavigationEvent, 4)

	s.Start(context.Background(), nav)
	defer s.Close()
	s.AfterViewInit()

	first, done1 := navEvent("r1")
	empty, done2 := navEvent("")
	second, done3 := navEvent("r2")
	nav <- first
	nav <- empty
	nav <- second

	require.NoError(t, waitErr(t, done1))
	require.NoError(t, waitErr(t, done2))
	require.NoError(t, waitErr(t, done3))

	assert.Equal(t, []string{"mode:comparison", "tab", "ready", "load:r1", "load:r2"}, wb.Calls())
}

func TestShell_LoadErrorReported(t *testing.T) {
	wb := newFakeWorkbench()
	wb.loadErr = entity.ErrSavedResultNotFound
	s := NewShell(wb, time.Second)
	nav := make(chan NavigationEvent, 1)

	s.Start(context.Background(), nav)
	defer s.Close()
	s.AfterViewInit()

	ev, done := navEvent("missing")
	nav <- ev

	assert.True(t, errors.Is(waitErr(t, done), entity.ErrSavedResultNotFound))
}

func TestShell_CloseWhileWaitingForReady(t *testing.T) {
	wb := newFakeWorkbench()
	s := NewShell(wb, time.Second)
	nav := make(chan NavigationEvent, 1)

	s.Start(context.Background(), nav)

	ev, done := navEvent("r1")
	nav <- ev

	s.Close()

	assert.ErrorIs(t, waitErr(t, done), context.Canceled)
	assert.NotContains(t, wb.Calls(), "load:r1")

	select {
	case <-s.Done():
	default:
		t.Fatal("subscription goroutine still running")
	}
}

func TestShell_CloseIsIdempotent(t *testing.T) {
	s := NewShell(newFakeWorkbench(), time.Second)

	s.Close()
	s.Start(context.Background(), make(chan NavigationEvent))
	assert.Nil(t, s.Done(), "start after close must not subscribe")
	s.Close()
}

func TestShell_StopsWhenNavigationCloses(t *testing.T) {
	s := NewShell(newFakeWorkbench(), time.Second)
	nav := make(chan NavigationEvent)

	s.Start(context.Background(), nav)
	close(nav)

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("subscription did not stop")
	}
	s.Close()
}
