package preview

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/futig/contract-workbench/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDescriber struct {
	sentence     string
	expectations []string
	seen         []*entity.StructuredQuery
}

func (s *stubDescriber) ToNaturalLanguage(_ context.Context, q *entity.StructuredQuery) string {
	s.seen = append(s.seen, q)
	return s.sentence
}

func (s *stubDescriber) GenerateExpectations(_ context.Context, q *entity.StructuredQuery) []string {
	s.seen = append(s.seen, q)
	return s.expectations
}

type stubSingleDescriber struct {
	stubDescriber
	desc  *entity.QueryDescription
	err   error
	calls int
}

func (s *stubSingleDescriber) Describe(_ context.Context, q *entity.StructuredQuery) (*entity.QueryDescription, error) {
	s.calls++
	s.seen = append(s.seen, q)
	return s.desc, s.err
}

type stubClipboard struct {
	text string
	err  error
}

func (s *stubClipboard) WriteAll(text string) error {
	if s.err != nil {
		return s.err
	}
	s.text = text
	return nil
}

func TestStrategyDescription(t *testing.T) {
	tests := []struct {
		name  string
		query *entity.StructuredQuery
		want  string
	}{
		{name: "compare clauses", query: &entity.StructuredQuery{Template: entity.TemplateCompareClauses}, want: strategyCompareClauses},
		{name: "find contracts", query: &entity.StructuredQuery{Template: entity.TemplateFindContracts}, want: strategyFindContracts},
		{name: "analyze contract", query: &entity.StructuredQuery{Template: entity.TemplateAnalyzeContract}, want: strategyAnalyzeContract},
		{name: "compare contracts", query: &entity.StructuredQuery{Template: entity.TemplateCompareContracts}, want: strategyCompareContracts},
		{name: "unknown template", query: &entity.StructuredQuery{Template: "SUMMARIZE_PORTFOLIO"}, want: ""},
		{name: "empty template", query: &entity.StructuredQuery{}, want: ""},
		{name: "nil query", query: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StrategyDescription(tt.query))
		})
	}
}

func TestStrategyDescription_FindContractsSentence(t *testing.T) {
	q := &entity.StructuredQuery{
		Template: entity.TemplateFindContracts,
		Filters:  json.RawMessage(`{"jurisdiction":"NY"}`),
	}

	assert.Equal(t,
		"Searches the contract database using structured filters to find every contract that matches your criteria, then ranks the results by relevance.",
		StrategyDescription(q),
	)
}

func TestFormattedJSON_Nil(t *testing.T) {
	out, err := FormattedJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "{}", out)
}

func TestFormattedJSON_ExactShape(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	q := &entity.StructuredQuery{
		Template:     entity.TemplateFindContracts,
		Operation:    strPtr("search"),
		Target:       json.RawMessage(`{"type":"contract"}`),
		Filters:      json.RawMessage(`{"b":1,"a":[1,2],"note":"<x> & y"}`),
		DisplayNames: json.RawMessage(`{}`),
		ID:           "q-1",
		OriginalText: "find all NDAs",
		Confidence:   0.9,
		CreatedAt:    &created,
	}

	out, err := FormattedJSON(q)
	require.NoError(t, err)

	want := `{
  "template": "FIND_CONTRACTS",
  "operation": "search",
  "target": {
    "type": "contract"
  },
  "filters": {
    "b": 1,
    "a": [
      1,
      2
    ],
    "note": "<x> & y"
  },
  "displayNames": {},
  "options": null
}`
	assert.Equal(t, want, out)
}

func TestFormattedJSON_MatchesBrowserStringify(t *testing.T) {
	q := &entity.StructuredQuery{
		Template:  entity.TemplateFindContracts,
		Operation: strPtr(""),
		Target:    json.RawMessage(`[1e21, 1.5e-7, -0, 0.000001]`),
		Filters:   json.RawMessage(`{"amount":1.50,"big":1e2,"name":"Acme\/x","dup":1,"tab":"a\u0009b","dup":2}`),
		Options:   json.RawMessage(`{"ctl":"\u001f","uni":"\u00e9"}`),
	}

	out, err := FormattedJSON(q)
	require.NoError(t, err)

	want := `{
  "template": "FIND_CONTRACTS",
  "operation": "",
  "target": [
    1e+21,
    1.5e-7,
    0,
    0.000001
  ],
  "filters": {
    "amount": 1.5,
    "big": 100,
    "name": "Acme/x",
    "dup": 2,
    "tab": "a\tb"
  },
  "displayNames": null,
  "options": {
    "ctl": "\u001f",
    "uni": "é"
  }
}`
	assert.Equal(t, want, out)
}

func TestFormattedJSON_InvalidRawField(t *testing.T) {
	_, err := FormattedJSON(&entity.StructuredQuery{Filters: json.RawMessage(`{"a":`)})
	assert.Error(t, err)
}

func TestFormattedJSON_OnlySixFields(t *testing.T) {
	raw := []byte(`{
		"template": "COMPARE_CONTRACTS",
		"operation": "compare",
		"target": ["a", "b"],
		"filters": {},
		"displayNames": {"a": "MSA"},
		"options": {"depth": "full"},
		"id": "abc",
		"originalText": "compare a and b",
		"confidence": 0.5,
		"somethingElse": true
	}`)

	var q entity.StructuredQuery
	require.NoError(t, json.Unmarshal(raw, &q))

	out, err := FormattedJSON(&q)
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))

	keys := make([]string, 0, len(parsed))
	for k := range parsed {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"template", "operation", "target", "filters", "displayNames", "options"}, keys)
}

func TestFormattedJSON_AbsentFieldsAreNull(t *testing.T) {
	out, err := FormattedJSON(&entity.StructuredQuery{Template: entity.TemplateAnalyzeContract})
	require.NoError(t, err)

	var parsed map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &parsed))
	assert.Len(t, parsed, 6)
	assert.Nil(t, parsed["operation"])
	assert.Nil(t, parsed["filters"])
}

func TestPreviewUsecase_Build(t *testing.T) {
	describer := &stubDescriber{sentence: "Find NDAs.", expectations: []string{"a list"}}
	uc := NewUsecase(describer, nil)
	q := &entity.StructuredQuery{Template: entity.TemplateFindContracts}

	p, err := uc.Build(context.Background(), q)
	require.NoError(t, err)

	assert.Equal(t, "Find NDAs.", p.NaturalLanguage)
	assert.Equal(t, []string{"a list"}, p.Expectations)
	assert.Equal(t, strategyFindContracts, p.Strategy)
	assert.Contains(t, p.JSON, `"template": "FIND_CONTRACTS"`)
	for _, seen := range describer.seen {
		assert.Same(t, q, seen)
	}
}

func TestPreviewUsecase_Build_NilQuery(t *testing.T) {
	describer := &stubDescriber{}
	uc := NewUsecase(describer, nil)

	p, err := uc.Build(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, "{}", p.JSON)
	assert.Equal(t, "", p.Strategy)
	assert.Equal(t, []string{}, p.Expectations)
	require.Len(t, describer.seen, 2)
	assert.Nil(t, describer.seen[0])
}

func TestPreviewUsecase_Build_DescribesOnce(t *testing.T) {
	describer := &stubSingleDescriber{
		desc: &entity.QueryDescription{NaturalLanguage: "Compare indemnity.", Expectations: []string{"a table"}},
	}
	uc := NewUsecase(describer, nil)

	p, err := uc.Build(context.Background(), &entity.StructuredQuery{Template: entity.TemplateCompareClauses})
	require.NoError(t, err)

	assert.Equal(t, 1, describer.calls)
	assert.Len(t, describer.seen, 1)
	assert.Equal(t, "Compare indemnity.", p.NaturalLanguage)
	assert.Equal(t, []string{"a table"}, p.Expectations)
}

func TestPreviewUsecase_Build_DescribeFailureDegrades(t *testing.T) {
	describer := &stubSingleDescriber{err: errors.New("service down")}
	uc := NewUsecase(describer, nil)

	p, err := uc.Build(context.Background(), &entity.StructuredQuery{Template: entity.TemplateFindContracts})
	require.NoError(t, err)

	assert.Equal(t, 1, describer.calls)
	assert.Equal(t, "", p.NaturalLanguage)
	assert.Equal(t, []string{}, p.Expectations)
	assert.Equal(t, strategyFindContracts, p.Strategy)
}

func TestPreviewUsecase_CopyToClipboard(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		cb := &stubClipboard{}
		uc := NewUsecase(&stubDescriber{}, cb)

		require.NoError(t, uc.CopyToClipboard(ctx, "{}"))
		assert.Equal(t, "{}", cb.text)
	})

	t.Run("failure is returned", func(t *testing.T) {
		boom := errors.New("no display")
		uc := NewUsecase(&stubDescriber{}, &stubClipboard{err: boom})

		err := uc.CopyToClipboard(ctx, "{}")
		assert.ErrorIs(t, err, boom)
	})

	t.Run("no clipboard", func(t *testing.T) {
		uc := NewUsecase(&stubDescriber{}, nil)

		err := uc.CopyToClipboard(ctx, "{}")
		assert.ErrorIs(t, err, entity.ErrClipboardUnavailable)
	})
}

func strPtr(s string) *string { return &s }
