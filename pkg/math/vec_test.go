package math

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestHorizontalLength(t *testing.T) {
	v := mgl64.Vec3{3, 100, 4}
	got := HorizontalLength(v)
	if got != 5 {
		t.Errorf("HorizontalLength() = %v, want 5", got)
	}
}

func TestHorizontal(t *testing.T) {
	got := Horizontal(mgl64.Vec3{1, 2, 3})
	want := mgl64.Vec3{1, 0, 3}
	if got != want {
		t.Errorf("Horizontal() = %v, want %v", got, want)
	}
}

func TestMidpoint(t *testing.T) {
	got := Midpoint(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{4, 2, -6})
	want := mgl64.Vec3{2, 1, -3}
	if !ApproxEqual(got, want, 1e-12) {
		t.Errorf("Midpoint() = %v, want %v", got, want)
	}
}

func TestDistance(t *testing.T) {
	got := Distance(mgl64.Vec3{1, 1, 1}, mgl64.Vec3{1, 1, 3.5})
	if math.Abs(got-2.5) > 1e-12 {
		t.Errorf("Distance() = %v, want 2.5", got)
	}
}

func TestApproxEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b mgl64.Vec3
		eps  float64
		want bool
	}{
		{"rounding residue against zero", mgl64.Vec3{-2, 0, -4.440892098500626e-16}, mgl64.Vec3{-2, 0, 0}, 1e-9, true},
		{"exact", mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3}, 0, true},
		{"outside tolerance", mgl64.Vec3{0, 0, 1e-6}, mgl64.Vec3{0, 0, 0}, 1e-9, false},
		{"large values use absolute tolerance", mgl64.Vec3{1e6, 0, 0}, mgl64.Vec3{1e6 + 1e-3, 0, 0}, 1e-9, false},
		{"one component off", mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2.1, 3}, 0.05, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ApproxEqual(tt.a, tt.b, tt.eps); got != tt.want {
				t.Errorf("ApproxEqual(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.eps, got, tt.want)
			}
		})
	}
}
