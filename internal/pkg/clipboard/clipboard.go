package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/futig/contract-workbench/internal/entity"
)

// System writes to the operating system clipboard
type System struct{}

func NewSystem() *System {
	return &System{}
}

func (s *System) WriteAll(text string) error {
	if clipboard.Unsupported {
		return entity.ErrClipboardUnavailable
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrClipboardUnavailable, err)
	}
	return nil
}
