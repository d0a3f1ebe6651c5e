package vmath

import (
	"math"
	"testing"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		v, size, want float64
	}{
		{5, 10, 5},
		{11, 10, 1},
		{-1, 10, 9},
		{10, 10, 0},
		{-25, 10, 5},
	}
	for _, tt := range tests {
		if got := Wrap(tt.v, tt.size); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Wrap(%v, %v): expected %v, got %v", tt.v, tt.size, tt.want, got)
		}
	}
}

func TestWrapMargin(t *testing.T) {
	if got := WrapMargin(-31, 800, 30); got != 830 {
		t.Errorf("Expected 830, got %v", got)
	}
	if got := WrapMargin(831, 800, 30); got != -30 {
		t.Errorf("Expected -30, got %v", got)
	}
	if got := WrapMargin(-30, 800, 30); got != -30 {
		t.Errorf("Expected value on the margin to stay, got %v", got)
	}
}

func TestCapLength(t *testing.T) {
	x, y := CapLength(30, 40, 10)
	if math.Abs(Length(x, y)-10) > 1e-9 {
		t.Errorf("Expected capped length 10, got %v", Length(x, y))
	}
	if math.Abs(x/y-0.75) > 1e-9 {
		t.Errorf("Expected direction preserved, got (%v, %v)", x, y)
	}

	x, y = CapLength(3, 4, 10)
	if x != 3 || y != 4 {
		t.Errorf("Expected short vector unchanged, got (%v, %v)", x, y)
	}
}

func TestClampAndSnap(t *testing.T) {
	if Clamp(-1, 0, 5) != 0 || Clamp(9, 0, 5) != 5 || Clamp(3, 0, 5) != 3 {
		t.Error("Expected Clamp to bound to [0,5]")
	}
	if ClampInt(-1, 0, 5) != 0 || ClampInt(9, 0, 5) != 5 {
		t.Error("Expected ClampInt to bound to [0,5]")
	}
	if SnapZero(0.004, 0.01) != 0 {
		t.Error("Expected small value snapped to 0")
	}
	if SnapZero(-0.5, 0.01) != -0.5 {
		t.Error("Expected large value kept")
	}
}

func TestFastRandDeterministic(t *testing.T) {
	a, b := NewFastRand(42), NewFastRand(42)
	for i := 0; i < 100; i++ {
		if a.Next() != b.Next() {
			t.Fatalf("Expected identical sequences at step %d", i)
		}
	}

	z := NewFastRand(0)
	if z.Next() == 0 {
		t.Error("Expected zero seed to be replaced with a working state")
	}
}

func TestFastRandRanges(t *testing.T) {
	r := NewFastRand(7)
	for i := 0; i < 1000; i++ {
		if n := r.Intn(6); n < 0 || n >= 6 {
			t.Fatalf("Intn(6) out of range: %d", n)
		}
		if f := r.Float64(); f < 0 || f >= 1 {
			t.Fatalf("Float64 out of range: %v", f)
		}
		if v := r.Range(-2, 3); v < -2 || v >= 3 {
			t.Fatalf("Range(-2,3) out of range: %v", v)
		}
		if s := r.Signed(4); s < -4 || s >= 4 {
			t.Fatalf("Signed(4) out of range: %v", s)
		}
	}
	if r.Intn(0) != 0 {
		t.Error("Expected Intn(0) to return 0")
	}
	if r.Chance(0) {
		t.Error("Expected Chance(0) to be false")
	}
}
