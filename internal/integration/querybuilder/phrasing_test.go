package querybuilder

import (
	"encoding/json"
	"testing"

	"github.com/futig/contract-workbench/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestDescribeLocally(t *testing.T) {
	tests := []struct {
		name         string
		query        *entity.StructuredQuery
		sentence     string
		expectations []string
	}{
		{
			name:         "nil query",
			query:        nil,
			sentence:     emptyQuerySentence,
			expectations: []string{},
		},
		{
			name: "find contracts with target and filters",
			query: &entity.StructuredQuery{
				Template:     entity.TemplateFindContracts,
				Target:       json.RawMessage(`{"parties":["c1"]}`),
				Filters:      json.RawMessage(`{"jurisdiction":"Delaware","minValue":1000}`),
				DisplayNames: json.RawMessage(`{"c1":"Acme Corp"}`),
			},
			sentence: "Find contracts involving Acme Corp where jurisdiction is Delaware and minValue is 1000.",
			expectations: []string{
				"A list of contracts ranked by relevance",
				"Only contracts matching 2 filter(s)",
				"Results scoped to 1 selected item(s)",
			},
		},
		{
			name: "compare clauses",
			query: &entity.StructuredQuery{
				Template:     entity.TemplateCompareClauses,
				Operation:    strPtr("Termination"),
				Target:       json.RawMessage(`["a","b"]`),
				DisplayNames: json.RawMessage(`{"a":"MSA","b":"NDA"}`),
			},
			sentence: "Compare termination clauses across MSA and NDA.",
			expectations: []string{
				"Matching clauses shown side by side",
				"Differences highlighted per clause",
				"Results scoped to 2 selected item(s)",
			},
		},
		{
			name: "analyze without target",
			query: &entity.StructuredQuery{
				Template:  entity.TemplateAnalyzeContract,
				Operation: strPtr("Summarize"),
			},
			sentence: "Analyze the selected contract to summarize.",
			expectations: []string{
				"A structured summary of the contract",
				"Key obligations, risks and dates",
			},
		},
		{
			name: "unknown template",
			query: &entity.StructuredQuery{
				Template: "DRAFT_CLAUSE",
			},
			sentence:     "Run a draft_clause query.",
			expectations: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc := describeLocally(tt.query)
			assert.Equal(t, tt.sentence, desc.NaturalLanguage)
			assert.Equal(t, tt.expectations, desc.Expectations)
		})
	}
}

func TestJoinList(t *testing.T) {
	assert.Equal(t, "", joinList(nil))
	assert.Equal(t, "a", joinList([]string{"a"}))
	assert.Equal(t, "a and b", joinList([]string{"a", "b"}))
	assert.Equal(t, "a, b and c", joinList([]string{"a", "b", "c"}))
}

func TestCollectStrings_InvalidJSON(t *testing.T) {
	assert.Nil(t, collectStrings(json.RawMessage(`{`), nil))
	assert.Nil(t, phraseFilters(json.RawMessage(`[1,2]`), nil))
}

func strPtr(s string) *string {
	return &s
}
