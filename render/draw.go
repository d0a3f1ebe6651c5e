package render

import "math"

// Primitives take field coordinates and project through ctx.
// Non-positive sizes draw nothing and log a warning.

// FillCircle paints every cell whose centre lies inside the circle
// A circle smaller than one cell still marks its centre cell
func (b *RenderBuffer) FillCircle(ctx RenderContext, x, y, r float64, ch rune, fg RGB, attrs Attr) {
	if r <= 0 {
		b.log.Warn().Float64("radius", r).Msg("circle with non-positive radius")
		return
	}
	c0, r0 := ctx.Project(x-r, y-r)
	c1, r1 := ctx.Project(x+r, y+r)
	drawn := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			fx, fy := ctx.Unproject(col, row)
			if (fx-x)*(fx-x)+(fy-y)*(fy-y) <= r*r {
				b.SetFg(col, row, ch, fg, attrs)
				drawn = true
			}
		}
	}
	if !drawn {
		cx, cy := ctx.Project(x, y)
		b.SetFg(cx, cy, ch, fg, attrs)
	}
}

// Circle paints the outline of a circle
func (b *RenderBuffer) Circle(ctx RenderContext, x, y, r float64, ch rune, fg RGB, attrs Attr) {
	if r <= 0 {
		b.log.Warn().Float64("radius", r).Msg("circle with non-positive radius")
		return
	}
	// One sample per cell of circumference at the finer axis
	steps := max(8, int(2*math.Pi*r*math.Max(ctx.scaleX(), ctx.scaleY()))*2)
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		col, row := ctx.Project(x+math.Cos(a)*r, y+math.Sin(a)*r)
		b.SetFg(col, row, ch, fg, attrs)
	}
}

// FillRect paints a rectangle centred on (cx, cy)
func (b *RenderBuffer) FillRect(ctx RenderContext, cx, cy, w, h float64, ch rune, fg RGB, attrs Attr) {
	if w <= 0 || h <= 0 {
		b.log.Warn().Float64("w", w).Float64("h", h).Msg("rect with non-positive size")
		return
	}
	c0, r0 := ctx.Project(cx-w/2, cy-h/2)
	cols, rows := ctx.Columns(w), ctx.Rows(h)
	for row := r0; row < r0+rows; row++ {
		for col := c0; col < c0+cols; col++ {
			b.SetFg(col, row, ch, fg, attrs)
		}
	}
}

// FillRectBg recolors the background of a rectangle given by its top-left corner
func (b *RenderBuffer) FillRectBg(ctx RenderContext, x, y, w, h float64, bg RGB) {
	if w <= 0 || h <= 0 {
		b.log.Warn().Float64("w", w).Float64("h", h).Msg("rect with non-positive size")
		return
	}
	c0, r0 := ctx.Project(x, y)
	c1, r1 := ctx.Project(x+w, y+h)
	for row := r0; row < max(r1, r0+1); row++ {
		for col := c0; col < max(c1, c0+1); col++ {
			b.SetBg(col, row, bg)
		}
	}
}

// Line paints the cells between two field points
func (b *RenderBuffer) Line(ctx RenderContext, x0, y0, x1, y1 float64, ch rune, fg RGB, attrs Attr) {
	c0, r0 := ctx.Project(x0, y0)
	c1, r1 := ctx.Project(x1, y1)
	dx, dy := abs(c1-c0), -abs(r1-r0)
	sx, sy := 1, 1
	if c0 > c1 {
		sx = -1
	}
	if r0 > r1 {
		sy = -1
	}
	err := dx + dy
	for {
		b.SetFg(c0, r0, ch, fg, attrs)
		if c0 == c1 && r0 == r1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			c0 += sx
		}
		if e2 <= dx {
			err += dx
			r0 += sy
		}
	}
}

// Polygon paints the closed outline through pts (x0, y0, x1, y1, ...)
func (b *RenderBuffer) Polygon(ctx RenderContext, pts []float64, ch rune, fg RGB, attrs Attr) {
	n := len(pts) / 2
	if n < 2 {
		b.log.Warn().Int("points", n).Msg("polygon with fewer than two points")
		return
	}
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		b.Line(ctx, pts[2*i], pts[2*i+1], pts[2*j], pts[2*j+1], ch, fg, attrs)
	}
}

// Glyph paints one rune at a field position
func (b *RenderBuffer) Glyph(ctx RenderContext, x, y float64, ch rune, fg RGB, attrs Attr) {
	col, row := ctx.Project(x, y)
	b.SetFg(col, row, ch, fg, attrs)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
