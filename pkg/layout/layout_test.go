package layout_test

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/JaimeStill/sustainassess/pkg/layout"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    layout.Color
		wantErr bool
	}{
		{"#059669", layout.Color{0x05, 0x96, 0x69}, false},
		{"ffc107", layout.Color{0xff, 0xc1, 0x07}, false},
		{"#fff", layout.Color{}, true},
		{"#zzzzzz", layout.Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := layout.ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if s := layout.Hex("#059669").String(); s != "#059669" {
		t.Errorf("String() = %s", s)
	}
}

func TestSectors(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"three way", []float64{3, 2, 1}},
		{"single", []float64{0, 7, 0}},
		{"score", []float64{75, 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sectors := layout.Sectors(tt.values)
			if len(sectors) != len(tt.values) {
				t.Fatalf("len = %d", len(sectors))
			}
			if sectors[0].Start != -math.Pi/2 {
				t.Errorf("first start = %v, want -pi/2", sectors[0].Start)
			}

			var sum float64
			for i, s := range sectors {
				sum += s.Sweep
				if i > 0 {
					prev := sectors[i-1]
					if math.Abs(prev.Start+prev.Sweep-s.Start) > 1e-9 {
						t.Errorf("sector %d does not continue from previous", i)
					}
				}
			}
			if math.Abs(sum-2*math.Pi) > 1e-9 {
				t.Errorf("sum of sweeps = %v, want 2pi", sum)
			}
		})
	}

	if layout.Sectors([]float64{0, 0}) != nil {
		t.Error("expected nil for zero total")
	}
	if layout.Sectors(nil) != nil {
		t.Error("expected nil for no values")
	}
}

func TestSectorPolygonStep(t *testing.T) {
	sec := layout.Sector{Start: 0, Sweep: math.Pi}
	pts := layout.SectorPolygon(100, 100, 50, sec)

	// center + 91 arc points for 90 steps of 2 degrees
	if len(pts) != 92 {
		t.Fatalf("points = %d, want 92", len(pts))
	}
	if pts[0] != (layout.Point{X: 100, Y: 100}) {
		t.Errorf("first point = %v, want center", pts[0])
	}
	last := pts[len(pts)-1]
	if math.Abs(last.X-50) > 1e-9 || math.Abs(last.Y-100) > 1e-9 {
		t.Errorf("last point = %v, want (50,100)", last)
	}
}

func TestPieDraw(t *testing.T) {
	green := layout.Hex("#059669")
	light := layout.Hex("#34d399")

	t.Run("labels above threshold only", func(t *testing.T) {
		rec := layout.NewRecorder()
		rec.AddPage()

		layout.Pie{
			CX: 120, CY: 200, R: 50,
			Slices: []layout.Slice{
				{Value: 19, Color: green},
				{Value: 0, Color: light},
				{Value: 1, Color: light},
			},
			Hole:           0.3,
			LabelThreshold: 8,
		}.Draw(rec)

		var polygons, circles int
		for _, op := range rec.Ops {
			switch op.Kind {
			case "polygon":
				polygons++
			case "circle":
				circles++
				if op.W != 15 || op.Color != layout.White {
					t.Errorf("hole = %+v", op)
				}
			}
		}
		if polygons != 2 {
			t.Errorf("polygons = %d, want 2 (zero slice skipped)", polygons)
		}
		if circles != 1 {
			t.Errorf("circles = %d, want 1", circles)
		}
		if texts := rec.Texts(); len(texts) != 1 || texts[0] != "95%" {
			t.Errorf("labels = %v, want [95%%]", texts)
		}
	})

	t.Run("empty chart draws nothing", func(t *testing.T) {
		rec := layout.NewRecorder()
		rec.AddPage()
		layout.Pie{CX: 1, CY: 1, R: 1, Slices: []layout.Slice{{Value: 0}}, Hole: 0.3}.Draw(rec)
		if len(rec.Ops) != 0 {
			t.Errorf("ops = %d, want 0", len(rec.Ops))
		}
	})
}

func TestPaginator(t *testing.T) {
	rec := layout.NewRecorder()
	p := layout.NewPaginator(rec, 50, 770)

	if rec.PageCount() != 1 {
		t.Fatalf("pages = %d, want 1", rec.PageCount())
	}

	for i := range 40 {
		if p.Ensure(40) && p.Y() != 50 {
			t.Fatalf("cursor after break = %v", p.Y())
		}
		rec.Text(50, p.Y(), 0, strings.Repeat("x", i), layout.AlignLeft)
		p.Advance(40)
	}

	for _, op := range rec.Ops {
		if op.Y+40 > 770 {
			t.Errorf("block at y=%v on page %d crosses the bottom edge", op.Y, op.Page)
		}
	}

	pages := rec.PageCount()
	if pages < 2 {
		t.Fatalf("pages = %d, expected overflow", pages)
	}

	footers := map[int]int{}
	p.Finish(func(s layout.Surface, page, total int) {
		if total != pages {
			t.Errorf("total = %d, want %d", total, pages)
		}
		footers[page]++
		s.Text(50, 800, 0, "footer", layout.AlignLeft)
	})

	for i := 1; i <= pages; i++ {
		if footers[i] != 1 {
			t.Errorf("page %d footers = %d, want 1", i, footers[i])
		}
		var found int
		for _, op := range rec.OnPage(i) {
			if op.Text == "footer" {
				found++
			}
		}
		if found != 1 {
			t.Errorf("page %d has %d footer ops", i, found)
		}
	}
}

func TestTextHeight(t *testing.T) {
	rec := layout.NewRecorder()
	p := layout.NewPaginator(rec, 50, 770)
	rec.SetFont(layout.Regular, 10)

	// 100 characters at 20 per line on a 100pt width
	got := p.TextHeight(strings.Repeat("a", 100), 100, 12, 15)
	if got != 5*12+15 {
		t.Errorf("height = %v, want 75", got)
	}
	if got := p.TextHeight("", 100, 12, 0); got != 12 {
		t.Errorf("empty height = %v, want one line", got)
	}
}

func TestPDFSurfaceDeterministic(t *testing.T) {
	stamp := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)

	render := func() []byte {
		s := layout.NewPDFSurface("Test", stamp)
		p := layout.NewPaginator(s, 50, 770)
		s.SetFont(layout.Bold, 18)
		s.SetTextColor(layout.Hex("#065f46"))
		s.Text(50, p.Y(), 0, "Résumé of findings", layout.AlignLeft)
		p.Advance(30)
		layout.Pie{CX: 120, CY: 200, R: 50, Slices: []layout.Slice{
			{Value: 2, Color: layout.Hex("#059669")},
			{Value: 1, Color: layout.Hex("#10b981")},
		}, Hole: 0.3}.Draw(s)
		p.Break()
		s.SetFont(layout.Regular, 11)
		s.Paragraph(50, p.Y(), 500, 15, strings.Repeat("Sustainability matters. ", 40), layout.AlignJustify)
		p.Finish(func(s layout.Surface, page, total int) {
			s.SetFont(layout.Regular, 9)
			s.Text(50, 800, 495, "footer", layout.AlignRight)
		})

		var buf bytes.Buffer
		if err := s.Output(&buf); err != nil {
			t.Fatalf("output: %v", err)
		}
		return buf.Bytes()
	}

	first := render()
	second := render()
	if !bytes.Equal(first, second) {
		t.Error("identical drawing produced different bytes")
	}

	n, err := api.PageCount(bytes.NewReader(first), nil)
	if err != nil {
		t.Fatalf("page count: %v", err)
	}
	if n != 2 {
		t.Errorf("pages = %d, want 2", n)
	}
}
