package entity

import (
	"encoding/json"
	"time"
)

type Template string

// Template is the closed set of query shapes the workbench understands
const (
	TemplateCompareClauses   Template = "COMPARE_CLAUSES"
	TemplateFindContracts    Template = "FIND_CONTRACTS"
	TemplateAnalyzeContract  Template = "ANALYZE_CONTRACT"
	TemplateCompareContracts Template = "COMPARE_CONTRACTS"
)

func (t Template) IsKnown() bool {
	switch t {
	case TemplateCompareClauses, TemplateFindContracts, TemplateAnalyzeContract, TemplateCompareContracts:
		return true
	default:
		return false
	}
}

// StructuredQuery is a normalized search or comparison request produced by the
// query builder. Target, Filters, DisplayNames and Options are kept as raw JSON
// so that the key order chosen by the client survives a round trip.
type StructuredQuery struct {
	Template     Template        `json:"template"`
	Operation    *string         `json:"operation,omitempty"`
	Target       json.RawMessage `json:"target,omitempty"`
	Filters      json.RawMessage `json:"filters,omitempty"`
	DisplayNames json.RawMessage `json:"displayNames,omitempty"`
	Options      json.RawMessage `json:"options,omitempty"`

	// Bookkeeping fields that are never shown in the preview
	ID           string     `json:"id,omitempty"`
	OriginalText string     `json:"originalText,omitempty"`
	Confidence   float64    `json:"confidence,omitempty"`
	CreatedAt    *time.Time `json:"createdAt,omitempty"`
}

// OperationName returns the operation or "" when it is absent
func (q *StructuredQuery) OperationName() string {
	if q == nil || q.Operation == nil {
		return ""
	}
	return *q.Operation
}

// QueryPreview is the read-only projection of a query shown next to the builder form
type QueryPreview struct {
	NaturalLanguage string   `json:"natural_language"`
	Expectations    []string `json:"expectations"`
	JSON            string   `json:"json"`
	Strategy        string   `json:"strategy"`
}

type QueryDescription struct {
	NaturalLanguage string   `json:"natural_language"`
	Expectations    []string `json:"expectations"`
}

type DescribeQueryRequest struct {
	Query *StructuredQuery `json:"query"`
}
