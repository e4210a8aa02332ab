package preview

import "github.com/futig/contract-workbench/internal/entity"

const (
	strategyCompareClauses   = "Retrieves the matching clauses from each selected contract and aligns them side by side, highlighting differences in wording and obligations."
	strategyFindContracts    = "Searches the contract database using structured filters to find every contract that matches your criteria, then ranks the results by relevance."
	strategyAnalyzeContract  = "Loads the full text of the selected contract and analyzes its clauses to summarize key terms, obligations, risks and dates."
	strategyCompareContracts = "Retrieves the complete text of each selected contract and compares them section by section to surface the most significant differences."
)

// StrategyDescription explains how a query will be executed. New templates
// must be added here or they render as an empty description.
func StrategyDescription(q *entity.StructuredQuery) string {
	if q == nil {
		return ""
	}

	switch q.Template {
	case entity.TemplateCompareClauses:
		return strategyCompareClauses
	case entity.TemplateFindContracts:
		return strategyFindContracts
	case entity.TemplateAnalyzeContract:
		return strategyAnalyzeContract
	case entity.TemplateCompareContracts:
		return strategyCompareContracts
	default:
		return ""
	}
}
