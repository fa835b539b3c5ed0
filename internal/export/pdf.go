package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/jonathan/resume-builder/internal/preview"
	"golang.org/x/text/encoding/charmap"
)

const fontFamily = "Times"

// pdfEpoch pins the document dates so identical state gives identical bytes.
var pdfEpoch = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// DrawPDF lays doc out on Letter pages and draws it with fpdf. It returns
// the PDF bytes and the number of pages produced.
func DrawPDF(doc preview.Document) ([]byte, int, error) {
	pdf := newDocument(doc.Name)
	layout := Plan(doc, Letter, &fpdfMeasurer{pdf: pdf})

	for _, page := range layout.Pages {
		pdf.AddPage()
		for _, op := range page.Ops {
			switch op.Kind {
			case OpText:
				setStyle(pdf, op.Style)
				pdf.Text(op.X, op.Y, toWinAnsi(op.Text))
			case OpRule:
				pdf.SetLineWidth(0.3)
				pdf.Line(op.X, op.Y, op.X2, op.Y)
			}
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, 0, fmt.Errorf("failed to serialize PDF: %w", err)
	}
	return buf.Bytes(), len(layout.Pages), nil
}

func newDocument(title string) *fpdf.Fpdf {
	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetMargins(Letter.Margin, Letter.Margin, Letter.Margin)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle(title, true)
	pdf.SetCreator("resume-builder", true)
	pdf.SetCreationDate(pdfEpoch)
	pdf.SetModificationDate(pdfEpoch)
	pdf.SetCatalogSort(true)
	return pdf
}

func setStyle(pdf *fpdf.Fpdf, s Style) {
	face := ""
	if s.Bold {
		face += "B"
	}
	if s.Italic {
		face += "I"
	}
	pdf.SetFont(fontFamily, face, s.Size)
}

// fpdfMeasurer measures text with the core font metrics of an fpdf document.
type fpdfMeasurer struct {
	pdf *fpdf.Fpdf
}

func (m *fpdfMeasurer) TextWidth(text string, s Style) float64 {
	setStyle(m.pdf, s)
	return m.pdf.GetStringWidth(toWinAnsi(text))
}

func (m *fpdfMeasurer) SplitText(text string, width float64, s Style) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	setStyle(m.pdf, s)
	// SplitText indexes the width table by rune, so each Windows-1252 byte
	// is passed as the rune of the same value and mapped back afterwards.
	lines := m.pdf.SplitText(bytesToRunes(toWinAnsi(text)), width)
	for i, line := range lines {
		lines[i] = fromWinAnsi(runesToBytes(line))
	}
	return lines
}

// toWinAnsi encodes s as Windows-1252, the encoding of the PDF core fonts.
// Runes outside it become '?'.
func toWinAnsi(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		if b, ok := charmap.Windows1252.EncodeRune(r); ok {
			out = append(out, b)
		} else {
			out = append(out, '?')
		}
	}
	return string(out)
}

func fromWinAnsi(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		sb.WriteRune(charmap.Windows1252.DecodeByte(s[i]))
	}
	return sb.String()
}

func bytesToRunes(s string) string {
	runes := make([]rune, len(s))
	for i := 0; i < len(s); i++ {
		runes[i] = rune(s[i])
	}
	return string(runes)
}

func runesToBytes(s string) string {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		out = append(out, byte(r))
	}
	return string(out)
}
