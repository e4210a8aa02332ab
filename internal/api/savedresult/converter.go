package savedresult

import (
	"html/template"
	"time"

	"github.com/futig/contract-workbench/internal/entity"
)

func toSavedResultSummary(r *entity.SavedResult) *entity.SavedResultSummary {
	return &entity.SavedResultSummary{
		ID:        r.ID,
		Title:     r.Title,
		Template:  r.Template,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}

func toSavedResultDetail(r *entity.SavedResult, summaryHTML template.HTML) *entity.SavedResultDetail {
	return &entity.SavedResultDetail{
		ID:          r.ID,
		Title:       r.Title,
		Template:    r.Template,
		Query:       r.Query,
		Summary:     r.Summary,
		SummaryHTML: string(summaryHTML),
		Model:       r.Model,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
}
