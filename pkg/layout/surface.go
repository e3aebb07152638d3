// Package layout draws paginated documents onto a Surface: text, shapes,
// pie charts, and a cursor-driven paginator with per-page footers.
package layout

import "io"

// DrawStyle selects fill, stroke, or both for shapes.
type DrawStyle string

const (
	Fill       DrawStyle = "F"
	Stroke     DrawStyle = "D"
	FillStroke DrawStyle = "FD"
)

// FontStyle selects the Helvetica variant.
type FontStyle string

const (
	Regular FontStyle = ""
	Bold    FontStyle = "B"
	Italic  FontStyle = "I"
)

// Align controls horizontal text alignment within a width.
type Align string

const (
	AlignLeft    Align = "L"
	AlignCenter  Align = "C"
	AlignRight   Align = "R"
	AlignJustify Align = "J"
)

// Point is a coordinate in page units. Y grows downward from the top edge.
type Point struct {
	X, Y float64
}

// Surface is a page-oriented drawing target. Coordinates are points with the
// origin at the top-left of the current page.
type Surface interface {
	Size() (width, height float64)
	AddPage()
	PageCount() int
	SetPage(n int)

	SetFont(style FontStyle, size float64)
	FontSize() float64
	SetTextColor(c Color)
	SetFillColor(c Color)
	SetDrawColor(c Color)
	SetLineWidth(w float64)

	Rect(x, y, w, h float64, style DrawStyle)
	Circle(x, y, r float64, style DrawStyle)
	Line(x1, y1, x2, y2 float64)
	Polygon(points []Point, style DrawStyle)

	// Text writes a single line whose top edge is at y. A zero width
	// means the natural width of the text.
	Text(x, y, w float64, text string, align Align)
	// Paragraph wraps text to width w starting at top edge y and returns
	// the number of lines written.
	Paragraph(x, y, w, lineHeight float64, text string, align Align) int
	// SplitText returns the lines text wraps to at width w in the current font.
	SplitText(text string, w float64) []string

	Output(w io.Writer) error
}
