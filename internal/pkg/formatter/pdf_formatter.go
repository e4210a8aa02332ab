package formatter

import (
	"bytes"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfContentType   = "application/pdf"
	pdfFileExtension = ".pdf"

	// pdfFontName is the internal name used by gofpdf for the UTF-8 capable font
	pdfFontName = "DejaVuSans"

	// In the container image fonts live next to the binary
	pdfFontRuntimePath = "ttf/DejaVuSans.ttf"
	pdfFontSourcePath  = "internal/pkg/formatter/ttf/DejaVuSans.ttf"

	// core font used without the TTF; it only covers cp1252, so text is translated
	pdfFallbackFont = "Arial"
)

func identity(s string) string { return s }

type PDFFormatter struct{}

func NewPDFFormatter() *PDFFormatter {
	return &PDFFormatter{}
}

func resolveFontPath() string {
	for _, p := range []string{pdfFontRuntimePath, pdfFontSourcePath} {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// setupFont registers the UTF-8 font when it is available and returns the font
// name with the text encoder that font needs.
func setupFont(pdf *gofpdf.Fpdf) (string, func(string) string) {
	fontPath := resolveFontPath()
	if fontPath == "" {
		return pdfFallbackFont, pdf.UnicodeTranslatorFromDescriptor("")
	}

	pdf.AddUTF8Font(pdfFontName, "", fontPath)
	pdf.AddUTF8Font(pdfFontName, "B", fontPath)
	return pdfFontName, identity
}

func (pf *PDFFormatter) Format(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.title(), true)
	pdf.AddPage()

	fontName, text := setupFont(pdf)

	pdf.SetFont(fontName, "B", 18)
	pdf.MultiCell(0, 9, text(doc.title()), "", "", false)
	pdf.Ln(2)

	if doc.Subtitle != "" {
		pdf.SetFont(fontName, "", 10)
		pdf.MultiCell(0, 6, text(doc.Subtitle), "", "", false)
		pdf.Ln(4)
	}

	for _, p := range doc.paragraphs() {
		if heading, ok := strings.CutPrefix(p, "#"); ok && !strings.Contains(p, "\n") {
			pdf.SetFont(fontName, "B", 13)
			pdf.MultiCell(0, 8, text(strings.TrimLeft(heading, "# ")), "", "", false)
			continue
		}
		pdf.SetFont(fontName, "", 11)
		_, lineHeight := pdf.GetFontSize()
		pdf.MultiCell(0, lineHeight*1.5, text(p), "", "", false)
		pdf.Ln(2)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (pf *PDFFormatter) ContentType() string {
	return pdfContentType
}

func (pf *PDFFormatter) FileExtension() string {
	return pdfFileExtension
}
