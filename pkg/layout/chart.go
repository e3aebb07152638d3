package layout

import (
	"fmt"
	"math"
)

const maxArcStep = 2 * math.Pi / 180

// Sector is one slice of a pie: a start angle and sweep in radians, measured
// clockwise on screen from the +x axis.
type Sector struct {
	Start float64
	Sweep float64
	Share float64
}

// Mid returns the angle halfway through the sector.
func (s Sector) Mid() float64 { return s.Start + s.Sweep/2 }

// Sectors divides the circle among values in order, starting at 12 o'clock.
// It returns nil when the values sum to zero.
func Sectors(values []float64) []Sector {
	var total float64
	for _, v := range values {
		total += v
	}
	if total <= 0 {
		return nil
	}

	sectors := make([]Sector, len(values))
	angle := -math.Pi / 2
	for i, v := range values {
		share := v / total
		sweep := 2 * math.Pi * share
		sectors[i] = Sector{Start: angle, Sweep: sweep, Share: share}
		angle += sweep
	}
	return sectors
}

// Slice is one category of a Pie.
type Slice struct {
	Value float64
	Color Color
}

// Pie is a filled sector diagram with optional donut hole and percentage labels.
type Pie struct {
	CX, CY, R float64
	Slices    []Slice
	// Hole is the donut hole radius as a fraction of R; zero draws a full pie.
	Hole float64
	// LabelThreshold is the rounded percentage a slice must exceed to be labeled.
	LabelThreshold int
	// NoLabels suppresses percentage labels.
	NoLabels bool
}

// Draw fills each non-empty slice, the donut hole, then the labels.
// Nothing is drawn when every slice is empty.
func (p Pie) Draw(s Surface) {
	values := make([]float64, len(p.Slices))
	for i, sl := range p.Slices {
		values[i] = sl.Value
	}

	sectors := Sectors(values)
	if sectors == nil {
		return
	}

	for i, sec := range sectors {
		if p.Slices[i].Value <= 0 {
			continue
		}
		s.SetFillColor(p.Slices[i].Color)
		s.Polygon(SectorPolygon(p.CX, p.CY, p.R, sec), Fill)
	}

	if p.Hole > 0 {
		s.SetFillColor(White)
		s.Circle(p.CX, p.CY, p.R*p.Hole, Fill)
	}

	if p.NoLabels {
		return
	}

	s.SetTextColor(White)
	s.SetFont(Bold, 9)
	for i, sec := range sectors {
		if p.Slices[i].Value <= 0 {
			continue
		}
		pct := int(math.Round(sec.Share * 100))
		if pct <= p.LabelThreshold {
			continue
		}
		mid := sec.Mid()
		lx := p.CX + math.Cos(mid)*p.R*0.75
		ly := p.CY + math.Sin(mid)*p.R*0.75
		s.Text(lx-8, ly-4, 0, fmt.Sprintf("%d%%", pct), AlignLeft)
	}
}

// SectorPolygon approximates a sector as the center followed by points along
// the arc, at most 2 degrees apart.
func SectorPolygon(cx, cy, r float64, sec Sector) []Point {
	steps := max(int(math.Ceil(sec.Sweep/maxArcStep-1e-9)), 1)
	points := make([]Point, 0, steps+2)
	points = append(points, Point{cx, cy})

	for i := 0; i <= steps; i++ {
		a := sec.Start + sec.Sweep*float64(i)/float64(steps)
		points = append(points, Point{cx + r*math.Cos(a), cy + r*math.Sin(a)})
	}
	return points
}
