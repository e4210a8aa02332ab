package comparison

import (
	"context"

	"github.com/futig/contract-workbench/internal/entity"
	"github.com/futig/contract-workbench/internal/workbench"
)

// Workbench is what the comparison page needs from the workbench it hosts
type Workbench interface {
	LoadSavedResult(ctx context.Context, id string) error
	SetMode(mode entity.WorkbenchMode, title, icon string)
	UpdateTabForMode()
	MarkReady()
	Ready() <-chan struct{}
}

var _ Workbench = (*workbench.Workbench)(nil)
