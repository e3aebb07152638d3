package reportpdf

import (
	"github.com/JaimeStill/sustainassess/pkg/layout"
)

// flow writes blocks top to bottom through a Paginator.
type flow struct {
	p     *layout.Paginator
	s     layout.Surface
	left  float64
	width float64
}

func newFlow(s layout.Surface) *flow {
	w, h := s.Size()
	return &flow{
		p:     layout.NewPaginator(s, margin, h-contentFloor),
		s:     s,
		left:  margin,
		width: w - 2*margin,
	}
}

// heading keeps a section title on the same page as at least follow points
// of its content.
func (f *flow) heading(title string, follow float64) {
	f.p.Ensure(headingHeight + follow)
	f.s.SetFont(layout.Bold, headingSize)
	f.s.SetTextColor(brand)
	f.s.Text(f.left, f.p.Y(), 0, title, layout.AlignLeft)
	f.s.SetDrawColor(brand)
	f.s.SetLineWidth(1)
	f.s.Line(f.left, f.p.Y()+headingSize+4, f.left+f.width, f.p.Y()+headingSize+4)
	f.p.Advance(headingHeight)
}

func (f *flow) subheading(title string, follow float64) {
	f.p.Ensure(lineHeight + 6 + follow)
	f.s.SetFont(layout.Bold, 11)
	f.s.SetTextColor(ink)
	f.s.Text(f.left, f.p.Y(), 0, title, layout.AlignLeft)
	f.p.Advance(lineHeight + 6)
}

// paragraph writes wrapped text indented by indent. A block that fits on a
// fresh page moves there whole; a taller block continues line by line.
func (f *flow) paragraph(text string, indent float64, style layout.FontStyle, color layout.Color) {
	f.s.SetFont(style, bodySize)
	f.s.SetTextColor(color)

	x := f.left + indent
	w := f.width - indent
	lines := f.s.SplitText(text, w)
	h := float64(max(len(lines), 1)) * lineHeight

	f.p.Ensure(h)
	if f.p.Y()+h <= f.p.Bottom() {
		f.s.Paragraph(x, f.p.Y(), w, lineHeight, text, layout.AlignLeft)
		f.p.Advance(h)
		return
	}

	f.lines(x, w, lines)
}

// lines writes pre-split lines one at a time, breaking pages between them.
func (f *flow) lines(x, w float64, lines []string) {
	for _, line := range lines {
		f.p.Ensure(lineHeight)
		f.s.Text(x, f.p.Y(), w, line, layout.AlignLeft)
		f.p.Advance(lineHeight)
	}
}

// item writes a marker in the gutter followed by wrapped text.
func (f *flow) item(marker, text string) {
	const gutter = 18.0

	f.s.SetFont(layout.Regular, bodySize)
	h := f.p.TextHeight(text, f.width-gutter, lineHeight, 0)
	f.p.Ensure(h)

	f.s.SetTextColor(brand)
	f.s.Text(f.left+4, f.p.Y(), 0, marker, layout.AlignLeft)
	f.paragraph(text, gutter, layout.Regular, ink)
	f.p.Advance(4)
}

// rows writes a two-column key/value table. A value taller than a page
// continues line by line under its label.
func (f *flow) rows(rows [][2]string) {
	const (
		labelWidth = 150.0
		rowHeight  = 18.0
	)

	x := f.left + labelWidth
	w := f.width - labelWidth

	for _, r := range rows {
		f.s.SetFont(layout.Regular, bodySize)
		value := f.s.SplitText(r[1], w)
		text := float64(max(len(value), 1)) * lineHeight

		f.p.Ensure(text + (rowHeight - lineHeight))
		f.s.SetFont(layout.Bold, bodySize)
		f.s.SetTextColor(ink)
		f.s.Text(f.left, f.p.Y(), labelWidth, r[0]+":", layout.AlignLeft)
		f.s.SetFont(layout.Regular, bodySize)

		if f.p.Y()+text <= f.p.Bottom() {
			f.s.Paragraph(x, f.p.Y(), w, lineHeight, r[1], layout.AlignLeft)
			f.p.Advance(text)
		} else {
			f.lines(x, w, value)
		}
		f.p.Advance(rowHeight - lineHeight)
	}
}

// legend writes colored swatches with labels starting at x, y.
func (f *flow) legend(x, y float64, entries []legendEntry) {
	for i, e := range entries {
		ly := y + float64(i)*20
		f.s.SetFillColor(e.color)
		f.s.Rect(x, ly, 12, 12, layout.Fill)
		f.s.SetFont(layout.Regular, bodySize)
		f.s.SetTextColor(ink)
		f.s.Text(x+20, ly+1, 0, e.label, layout.AlignLeft)
	}
}

func (f *flow) gap() {
	f.p.Advance(blockGap)
}

type legendEntry struct {
	label string
	color layout.Color
}
