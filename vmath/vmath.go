package vmath

import "math"

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Wrap maps v into [0, size) using true modulo, so size+1 becomes 1 and -1 becomes size-1
func Wrap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	r := math.Mod(v, size)
	if r < 0 {
		r += size
	}
	return r
}

// WrapMargin wraps v around [-margin, size+margin], reappearing on the opposite margin
func WrapMargin(v, size, margin float64) float64 {
	if v < -margin {
		return size + margin
	}
	if v > size+margin {
		return -margin
	}
	return v
}

// Dist returns the Euclidean distance between two points
func Dist(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}

// Length returns the magnitude of vector (x, y)
func Length(x, y float64) float64 {
	return math.Hypot(x, y)
}

// CapLength scales (x, y) down so its magnitude does not exceed max
func CapLength(x, y, max float64) (float64, float64) {
	l := Length(x, y)
	if l <= max || l == 0 {
		return x, y
	}
	s := max / l
	return x * s, y * s
}

// Lerp interpolates between a and b by t
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// SnapZero returns 0 when |v| is below eps
func SnapZero(v, eps float64) float64 {
	if math.Abs(v) < eps {
		return 0
	}
	return v
}
