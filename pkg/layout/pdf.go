package layout

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
)

const fontFamily = "Helvetica"

// PDFSurface renders onto an A4 portrait fpdf document in points.
type PDFSurface struct {
	pdf *fpdf.Fpdf
	tr  func(string) string
}

// NewPDFSurface creates an empty A4 document. Creation and modification dates
// are pinned to stamp and catalog entries are sorted so identical drawing
// produces identical bytes.
func NewPDFSurface(title string, stamp time.Time) *PDFSurface {
	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCellMargin(0)
	pdf.SetCreationDate(stamp)
	pdf.SetModificationDate(stamp)
	pdf.SetCatalogSort(true)
	pdf.SetTitle(title, true)
	pdf.SetCreator("SustainAssess", true)
	pdf.SetFont(fontFamily, "", 11)

	return &PDFSurface{
		pdf: pdf,
		tr:  pdf.UnicodeTranslatorFromDescriptor(""),
	}
}

func (s *PDFSurface) Size() (float64, float64) {
	return s.pdf.GetPageSize()
}

func (s *PDFSurface) AddPage() { s.pdf.AddPage() }

func (s *PDFSurface) PageCount() int { return s.pdf.PageCount() }

func (s *PDFSurface) SetPage(n int) { s.pdf.SetPage(n) }

func (s *PDFSurface) SetFont(style FontStyle, size float64) {
	s.pdf.SetFont(fontFamily, string(style), size)
}

func (s *PDFSurface) FontSize() float64 {
	size, _ := s.pdf.GetFontSize()
	return size
}

func (s *PDFSurface) SetTextColor(c Color) {
	s.pdf.SetTextColor(int(c.R), int(c.G), int(c.B))
}

func (s *PDFSurface) SetFillColor(c Color) {
	s.pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func (s *PDFSurface) SetDrawColor(c Color) {
	s.pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
}

func (s *PDFSurface) SetLineWidth(w float64) { s.pdf.SetLineWidth(w) }

func (s *PDFSurface) Rect(x, y, w, h float64, style DrawStyle) {
	s.pdf.Rect(x, y, w, h, string(style))
}

func (s *PDFSurface) Circle(x, y, r float64, style DrawStyle) {
	s.pdf.Circle(x, y, r, string(style))
}

func (s *PDFSurface) Line(x1, y1, x2, y2 float64) {
	s.pdf.Line(x1, y1, x2, y2)
}

func (s *PDFSurface) Polygon(points []Point, style DrawStyle) {
	pts := make([]fpdf.PointType, len(points))
	for i, p := range points {
		pts[i] = fpdf.PointType{X: p.X, Y: p.Y}
	}
	s.pdf.Polygon(pts, string(style))
}

func (s *PDFSurface) Text(x, y, w float64, text string, align Align) {
	text = s.tr(text)
	if w <= 0 {
		w = s.pdf.GetStringWidth(text)
	}
	s.pdf.SetXY(x, y)
	s.pdf.CellFormat(w, s.FontSize(), text, "", 0, string(align), false, 0, "")
}

func (s *PDFSurface) Paragraph(x, y, w, lineHeight float64, text string, align Align) int {
	lines := s.SplitText(text, w)
	for i, line := range lines {
		s.pdf.SetXY(x, y+float64(i)*lineHeight)
		s.pdf.CellFormat(w, lineHeight, s.tr(line), "", 0, string(align), false, 0, "")
	}
	return max(len(lines), 1)
}

// SplitText wraps on spaces and hard line breaks. Words wider than w are
// broken between runes. Lines are returned untranslated.
func (s *PDFSurface) SplitText(text string, w float64) []string {
	var lines []string
	for para := range strings.SplitSeq(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		line := ""
		for _, word := range words {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if s.width(candidate) <= w {
				line = candidate
				continue
			}
			if line != "" {
				lines = append(lines, line)
			}
			pieces := s.breakWord(word, w)
			lines = append(lines, pieces[:len(pieces)-1]...)
			line = pieces[len(pieces)-1]
		}
		lines = append(lines, line)
	}
	return lines
}

func (s *PDFSurface) breakWord(word string, w float64) []string {
	var pieces []string
	runes := []rune(word)
	start := 0
	for i := 1; i <= len(runes); i++ {
		if s.width(string(runes[start:i])) > w && i-1 > start {
			pieces = append(pieces, string(runes[start:i-1]))
			start = i - 1
		}
	}
	return append(pieces, string(runes[start:]))
}

func (s *PDFSurface) width(text string) float64 {
	return s.pdf.GetStringWidth(s.tr(text))
}

func (s *PDFSurface) Output(w io.Writer) error {
	if err := s.pdf.Error(); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return s.pdf.Output(w)
}
