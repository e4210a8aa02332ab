package entity

import "time"

type ResultFormat string

const (
	FormatMarkdown ResultFormat = "markdown"
	FormatDOCX     ResultFormat = "docx"
	FormatPDF      ResultFormat = "pdf"
)

func (f ResultFormat) IsValid() bool {
	switch f {
	case FormatMarkdown, FormatDOCX, FormatPDF:
		return true
	default:
		return false
	}
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type ListModelsResponse struct {
	Models   []ModelOption `json:"models"`
	Selected string        `json:"selected"`
}

type RenderMarkdownRequest struct {
	Text *string `json:"text"`
}

type RenderMarkdownResponse struct {
	HTML string `json:"html"`
}

type StrategyResponse struct {
	Strategy string `json:"strategy"`
}

type CreateSavedResultRequest struct {
	Title   string           `json:"title"`
	Query   *StructuredQuery `json:"query"`
	Summary string           `json:"summary"`
	Model   string           `json:"model"`
}

type ListSavedResultsRequest struct {
	Skip  int
	Limit int
}

func (lr *ListSavedResultsRequest) Normalize() {
	if lr.Skip < 0 {
		lr.Skip = 0
	}
	if lr.Limit <= 0 {
		lr.Limit = 10
	}

	lr.Limit = min(lr.Limit, 100)
}

type SavedResultSummary struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Template  Template `json:"template"`
	CreatedAt string   `json:"created_at"`
}

type ListSavedResultsResponse struct {
	Results []*SavedResultSummary `json:"results"`
}

type SavedResultDetail struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Template    Template         `json:"template"`
	Query       *StructuredQuery `json:"query"`
	Summary     string           `json:"summary"`
	SummaryHTML string           `json:"summary_html"`
	Model       string           `json:"model"`
	CreatedAt   string           `json:"created_at"`
}

type DeleteResponse struct {
	Status string `json:"status"`
}

type ComparisonDTO struct {
	ID        string         `json:"comparison_id"`
	Workbench WorkbenchState `json:"workbench"`
	CreatedAt time.Time      `json:"created_at"`
}

type SelectModelRequest struct {
	Value string `json:"value"`
}
