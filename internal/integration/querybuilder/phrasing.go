package querybuilder

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/futig/contract-workbench/internal/entity"
)

const emptyQuerySentence = "Choose a template to start building a query."

// describeLocally phrases a query without calling the remote service
func describeLocally(q *entity.StructuredQuery) *entity.QueryDescription {
	if q == nil {
		return &entity.QueryDescription{NaturalLanguage: emptyQuerySentence, Expectations: []string{}}
	}

	names := decodeDisplayNames(q.DisplayNames)
	targets := collectStrings(q.Target, names)
	filters := phraseFilters(q.Filters, names)

	var b strings.Builder
	switch q.Template {
	case entity.TemplateFindContracts:
		b.WriteString("Find contracts")
		if len(targets) > 0 {
			fmt.Fprintf(&b, " involving %s", joinList(targets))
		}
	case entity.TemplateAnalyzeContract:
		b.WriteString("Analyze ")
		b.WriteString(orDefault(joinList(targets), "the selected contract"))
	case entity.TemplateCompareClauses:
		clause := orDefault(q.OperationName(), "matching")
		fmt.Fprintf(&b, "Compare %s clauses across %s", strings.ToLower(clause), orDefault(joinList(targets), "the selected contracts"))
	case entity.TemplateCompareContracts:
		fmt.Fprintf(&b, "Compare %s", orDefault(joinList(targets), "the selected contracts"))
	default:
		fmt.Fprintf(&b, "Run a %s query", strings.ToLower(orDefault(string(q.Template), "custom")))
	}

	if q.OperationName() != "" && q.Template != entity.TemplateCompareClauses {
		fmt.Fprintf(&b, " to %s", strings.ToLower(q.OperationName()))
	}
	if len(filters) > 0 {
		fmt.Fprintf(&b, " where %s", joinList(filters))
	}
	b.WriteString(".")

	return &entity.QueryDescription{
		NaturalLanguage: b.String(),
		Expectations:    expectationsFor(q, targets, filters),
	}
}

func expectationsFor(q *entity.StructuredQuery, targets, filters []string) []string {
	out := []string{}
	switch q.Template {
	case entity.TemplateFindContracts:
		out = append(out, "A list of contracts ranked by relevance")
		if len(filters) > 0 {
			out = append(out, fmt.Sprintf("Only contracts matching %d filter(s)", len(filters)))
		}
	case entity.TemplateAnalyzeContract:
		out = append(out, "A structured summary of the contract", "Key obligations, risks and dates")
	case entity.TemplateCompareClauses:
		out = append(out, "Matching clauses shown side by side", "Differences highlighted per clause")
	case entity.TemplateCompareContracts:
		out = append(out, "A section-by-section comparison", "A summary of the most significant differences")
	}
	if len(targets) > 0 {
		out = append(out, fmt.Sprintf("Results scoped to %d selected item(s)", len(targets)))
	}
	return out
}

func decodeDisplayNames(raw json.RawMessage) map[string]string {
	names := map[string]string{}
	if len(raw) == 0 {
		return names
	}
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return names
	}
	for k, v := range generic {
		if s, ok := v.(string); ok {
			names[k] = s
		}
	}
	return names
}

// collectStrings flattens every string leaf of raw, replacing ids with display names
func collectStrings(raw json.RawMessage, names map[string]string) []string {
	if len(raw) == 0 {
		return nil
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil
	}

	var out []string
	var walk func(v any)
	walk = func(v any) {
		switch t := v.(type) {
		case string:
			if t == "" {
				return
			}
			if name, ok := names[t]; ok {
				t = name
			}
			out = append(out, t)
		case []any:
			for _, item := range t {
				walk(item)
			}
		case map[string]any:
			keys := make([]string, 0, len(t))
			for k := range t {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				walk(t[k])
			}
		}
	}
	walk(generic)
	return out
}

func phraseFilters(raw json.RawMessage, names map[string]string) []string {
	if len(raw) == 0 {
		return nil
	}
	var generic map[string]any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil
	}

	keys := make([]string, 0, len(generic))
	for k := range generic {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		v := generic[k]
		if v == nil {
			continue
		}
		valueRaw, _ := json.Marshal(v)
		values := collectStrings(valueRaw, names)
		if len(values) == 0 {
			values = []string{strings.Trim(string(valueRaw), `"`)}
		}
		out = append(out, fmt.Sprintf("%s is %s", k, strings.Join(values, " or ")))
	}
	return out
}

func joinList(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
