package physics

import "github.com/drillerjoe/space/vmath"

// CirclesOverlap reports whether two circles intersect (strict)
func CirclesOverlap(ax, ay, ar, bx, by, br float64) bool {
	return vmath.Dist(ax, ay, bx, by) < ar+br
}

// Rect is an axis-aligned rectangle with its top-left corner at (X, Y)
type Rect struct {
	X, Y, W, H float64
}

// RectAround builds a rectangle centred on (cx, cy)
func RectAround(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Overlaps reports strict intersection, touching edges do not count
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Contains reports whether the point lies inside the rectangle
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Scaled returns the rectangle shrunk or grown around its centre
func (r Rect) Scaled(f float64) Rect {
	cx, cy := r.X+r.W/2, r.Y+r.H/2
	return RectAround(cx, cy, r.W*f, r.H*f)
}
