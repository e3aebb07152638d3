package layout

import (
	"fmt"
	"io"
	"math"
)

// A4 page size in points.
const (
	A4Width  = 595.28
	A4Height = 841.89
)

// Op is one drawing call captured by a Recorder.
type Op struct {
	Page  int
	Kind  string
	X, Y  float64
	W, H  float64
	Text  string
	Font  FontStyle
	Size  float64
	Color Color
}

// Recorder is a Surface that records drawing calls instead of rendering them.
// Text is measured by estimate: a line holds width / (size/2) characters.
type Recorder struct {
	Ops []Op

	pages     int
	page      int
	font      FontStyle
	size      float64
	textColor Color
	fillColor Color
	drawColor Color
}

// NewRecorder creates an empty A4 Recorder.
func NewRecorder() *Recorder {
	return &Recorder{size: 11}
}

func (r *Recorder) Size() (float64, float64) { return A4Width, A4Height }

func (r *Recorder) AddPage() {
	r.pages++
	r.page = r.pages
}

func (r *Recorder) PageCount() int { return r.pages }

func (r *Recorder) SetPage(n int) {
	if n < 1 || n > r.pages {
		panic(fmt.Sprintf("layout: page %d out of range 1..%d", n, r.pages))
	}
	r.page = n
}

func (r *Recorder) SetFont(style FontStyle, size float64) {
	r.font = style
	r.size = size
}

func (r *Recorder) FontSize() float64 { return r.size }

func (r *Recorder) SetTextColor(c Color) { r.textColor = c }
func (r *Recorder) SetFillColor(c Color) { r.fillColor = c }
func (r *Recorder) SetDrawColor(c Color) { r.drawColor = c }
func (r *Recorder) SetLineWidth(float64) {}

func (r *Recorder) Rect(x, y, w, h float64, style DrawStyle) {
	r.record(Op{Kind: "rect", X: x, Y: y, W: w, H: h, Color: r.shapeColor(style)})
}

func (r *Recorder) Circle(x, y, rad float64, style DrawStyle) {
	r.record(Op{Kind: "circle", X: x, Y: y, W: rad, H: rad, Color: r.shapeColor(style)})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64) {
	r.record(Op{Kind: "line", X: x1, Y: y1, W: x2 - x1, H: y2 - y1, Color: r.drawColor})
}

func (r *Recorder) Polygon(points []Point, style DrawStyle) {
	r.record(Op{Kind: "polygon", W: float64(len(points)), Color: r.shapeColor(style)})
}

func (r *Recorder) Text(x, y, w float64, text string, align Align) {
	r.record(Op{Kind: "text", X: x, Y: y, W: w, H: r.size, Text: text, Font: r.font, Size: r.size, Color: r.textColor})
}

func (r *Recorder) Paragraph(x, y, w, lineHeight float64, text string, align Align) int {
	lines := max(len(r.SplitText(text, w)), 1)
	r.record(Op{
		Kind:  "paragraph",
		X:     x,
		Y:     y,
		W:     w,
		H:     float64(lines) * lineHeight,
		Text:  text,
		Font:  r.font,
		Size:  r.size,
		Color: r.textColor,
	})
	return lines
}

func (r *Recorder) SplitText(text string, w float64) []string {
	runes := []rune(text)
	perLine := max(int(w/(r.size/2)), 1)
	n := int(math.Ceil(float64(len(runes)) / float64(perLine)))

	lines := make([]string, 0, n)
	for i := 0; i < len(runes); i += perLine {
		lines = append(lines, string(runes[i:min(i+perLine, len(runes))]))
	}
	return lines
}

func (r *Recorder) Output(w io.Writer) error {
	_, err := fmt.Fprintf(w, "recorded %d ops on %d pages\n", len(r.Ops), r.pages)
	return err
}

// Texts returns the text of every text and paragraph op, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" || op.Kind == "paragraph" {
			out = append(out, op.Text)
		}
	}
	return out
}

// OnPage returns the ops drawn on page n.
func (r *Recorder) OnPage(n int) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Page == n {
			out = append(out, op)
		}
	}
	return out
}

func (r *Recorder) shapeColor(style DrawStyle) Color {
	if style == Stroke {
		return r.drawColor
	}
	return r.fillColor
}

func (r *Recorder) record(op Op) {
	op.Page = r.page
	r.Ops = append(r.Ops, op)
}
