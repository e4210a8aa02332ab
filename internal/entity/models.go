package entity

import (
	"time"
)

// ModelOption describes one selectable inference tier
type ModelOption struct {
	Value       string  `json:"value"`
	Label       string  `json:"label"`
	Description string  `json:"description"`
	Badge       *string `json:"badge,omitempty"`
	Pricing     *string `json:"pricing,omitempty"`
}

type WorkbenchMode string

const (
	WorkbenchModeSearch     WorkbenchMode = "search"
	WorkbenchModeAnalysis   WorkbenchMode = "analysis"
	WorkbenchModeComparison WorkbenchMode = "comparison"
)

type WorkbenchTab string

const (
	WorkbenchTabResults WorkbenchTab = "results"
	WorkbenchTabAnalyze WorkbenchTab = "analyze"
	WorkbenchTabCompare WorkbenchTab = "compare"
)

// SavedResult is a previously computed query outcome
type SavedResult struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Template  Template         `json:"template"`
	Query     *StructuredQuery `json:"query"`
	Summary   string           `json:"summary"`
	Model     string           `json:"model"`
	CreatedAt time.Time        `json:"created_at"`
}

// WorkbenchState is a point-in-time copy of a workbench
type WorkbenchState struct {
	Mode        WorkbenchMode `json:"mode"`
	PageTitle   string        `json:"page_title"`
	PageIcon    string        `json:"page_icon"`
	ActiveTab   WorkbenchTab  `json:"active_tab"`
	Model       string        `json:"model"`
	Ready       bool          `json:"ready"`
	SavedResult *SavedResult  `json:"saved_result,omitempty"`
	LastError   *string       `json:"last_error,omitempty"`
}
