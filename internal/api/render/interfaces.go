package render

import (
	"context"
	"html/template"
)

type MarkdownRenderer interface {
	Transform(ctx context.Context, text string) template.HTML
}
