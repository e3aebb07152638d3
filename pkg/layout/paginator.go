package layout

// Paginator tracks a vertical cursor over a Surface and breaks to a new page
// before a block would cross the usable bottom edge.
type Paginator struct {
	surface Surface
	top     float64
	bottom  float64
	y       float64
}

// NewPaginator starts the first page with the cursor at top. Content must end
// at or above bottom.
func NewPaginator(s Surface, top, bottom float64) *Paginator {
	if s.PageCount() == 0 {
		s.AddPage()
	}
	return &Paginator{surface: s, top: top, bottom: bottom, y: top}
}

// Surface returns the underlying drawing surface.
func (p *Paginator) Surface() Surface { return p.surface }

// Y returns the cursor position.
func (p *Paginator) Y() float64 { return p.y }

// SetY moves the cursor to an absolute position on the current page.
func (p *Paginator) SetY(y float64) { p.y = y }

// Top returns the cursor position used after a page break.
func (p *Paginator) Top() float64 { return p.top }

// Bottom returns the lowest usable position.
func (p *Paginator) Bottom() float64 { return p.bottom }

// Advance moves the cursor down by h.
func (p *Paginator) Advance(h float64) { p.y += h }

// Ensure breaks the page when a block of height h does not fit below the
// cursor. It reports whether a break occurred.
func (p *Paginator) Ensure(h float64) bool {
	if p.y+h <= p.bottom || p.y == p.top {
		return false
	}
	p.Break()
	return true
}

// Break starts a new page and resets the cursor to the top margin.
func (p *Paginator) Break() {
	p.surface.AddPage()
	p.y = p.top
}

// TextHeight measures text wrapped to width in the surface's current font.
func (p *Paginator) TextHeight(text string, width, lineHeight, padding float64) float64 {
	lines := max(len(p.surface.SplitText(text, width)), 1)
	return float64(lines)*lineHeight + padding
}

// Finish revisits every page and draws the footer once on each.
func (p *Paginator) Finish(footer func(s Surface, page, total int)) {
	total := p.surface.PageCount()
	for i := 1; i <= total; i++ {
		p.surface.SetPage(i)
		footer(p.surface, i, total)
	}
}
