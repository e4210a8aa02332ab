package formatter

import (
	"fmt"
	"strings"

	"github.com/futig/contract-workbench/internal/entity"
)

const defaultTitle = "Contract Query Result"

// Document is a saved result prepared for export
type Document struct {
	Title    string
	Subtitle string
	Body     string
}

func (d Document) title() string {
	if strings.TrimSpace(d.Title) == "" {
		return defaultTitle
	}
	return d.Title
}

// paragraphs splits the body on blank lines
func (d Document) paragraphs() []string {
	var out []string
	for _, p := range strings.Split(strings.ReplaceAll(d.Body, "\r\n", "\n"), "\n\n") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

type Formatter interface {
	Format(doc Document) ([]byte, error)
	ContentType() string
	FileExtension() string
}

type Factory struct{}

func NewFactory() *Factory {
	return &Factory{}
}

func (f *Factory) Create(format entity.ResultFormat) (Formatter, error) {
	switch format {
	case entity.FormatMarkdown:
		return NewMarkdownFormatter(), nil
	case entity.FormatDOCX:
		return NewDOCXFormatter(), nil
	case entity.FormatPDF:
		return NewPDFFormatter(), nil
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", entity.ErrInvalidFormat, format)
	}
}
