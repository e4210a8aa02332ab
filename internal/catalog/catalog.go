package catalog

import (
	"github.com/futig/contract-workbench/internal/entity"
)

const (
	ModelPrimary   = "primary"
	ModelSecondary = "secondary"

	DefaultModel = ModelPrimary
)

func strPtr(s string) *string {
	return &s
}

var defaultOptions = []entity.ModelOption{
	{
		Value:       ModelPrimary,
		Label:       "Primary",
		Description: "Fast and cost-efficient answers for everyday contract questions",
	},
	{
		Value:       ModelSecondary,
		Label:       "Secondary",
		Description: "Deeper reasoning for multi-contract and clause-level comparisons",
		Badge:       strPtr("Advanced"),
		Pricing:     strPtr("Higher cost per query"),
	},
}

// Catalog is the fixed, ordered list of inference tiers a user can choose from
type Catalog struct {
	options []entity.ModelOption
}

func New() *Catalog {
	return &Catalog{options: defaultOptions}
}

// List returns the options in display order. The slice is a copy.
func (c *Catalog) List() []entity.ModelOption {
	out := make([]entity.ModelOption, len(c.options))
	copy(out, c.options)
	return out
}

// GetModelInfo returns the first option whose value matches. A miss is not an error.
func (c *Catalog) GetModelInfo(value string) (entity.ModelOption, bool) {
	for _, opt := range c.options {
		if opt.Value == value {
			return opt, true
		}
	}
	return entity.ModelOption{}, false
}

func (c *Catalog) Contains(value string) bool {
	_, ok := c.GetModelInfo(value)
	return ok
}
