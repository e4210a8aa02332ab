package formatter

import (
	"bytes"
	"strings"

	"github.com/unidoc/unioffice/document"
)

const (
	docxContentType   = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	docxFileExtension = ".docx"
)

type DOCXFormatter struct{}

func NewDOCXFormatter() *DOCXFormatter {
	return &DOCXFormatter{}
}

func (df *DOCXFormatter) Format(doc Document) ([]byte, error) {
	d := document.New()
	defer d.Close()

	titlePar := d.AddParagraph()
	titlePar.SetStyle("Title")
	titlePar.AddRun().AddText(doc.title())

	if doc.Subtitle != "" {
		sub := d.AddParagraph()
		sub.SetStyle("Subtitle")
		sub.AddRun().AddText(doc.Subtitle)
	}

	for _, p := range doc.paragraphs() {
		par := d.AddParagraph()
		if heading, ok := strings.CutPrefix(p, "#"); ok && !strings.Contains(p, "\n") {
			par.SetStyle("Heading1")
			par.AddRun().AddText(strings.TrimLeft(heading, "# "))
			continue
		}

		run := par.AddRun()
		for i, line := range strings.Split(p, "\n") {
			if i > 0 {
				run.AddBreak()
			}
			run.AddText(line)
		}
	}

	var buf bytes.Buffer
	if err := d.Save(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (df *DOCXFormatter) ContentType() string {
	return docxContentType
}

func (df *DOCXFormatter) FileExtension() string {
	return docxFileExtension
}
