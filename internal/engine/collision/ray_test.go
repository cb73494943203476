package collision

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestNewRayDegenerate(t *testing.T) {
	if _, ok := NewRay(mgl64.Vec3{}, mgl64.Vec3{}); ok {
		t.Error("expected zero direction to be rejected")
	}
	if _, ok := NewRay(mgl64.Vec3{}, mgl64.Vec3{math.NaN(), 0, 0}); ok {
		t.Error("expected NaN direction to be rejected")
	}
}

func TestNewRayNormalizes(t *testing.T) {
	r, ok := NewRay(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{0, 0, -5})
	if !ok {
		t.Fatal("expected valid ray")
	}
	if r.Direction != (mgl64.Vec3{0, 0, -1}) {
		t.Errorf("expected normalized direction (0,0,-1), got %v", r.Direction)
	}
}

func TestIntersectAABB(t *testing.T) {
	box := NewAABB(mgl64.Vec3{1, -1, -1}, mgl64.Vec3{3, 1, 1})

	tests := []struct {
		name    string
		origin  mgl64.Vec3
		dir     mgl64.Vec3
		wantHit bool
		wantT   float64
	}{
		{"hit from outside", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 0, 0}, true, 1},
		{"miss pointing away", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{-1, 0, 0}, false, 0},
		{"inside returns exit", mgl64.Vec3{2, 0, 0}, mgl64.Vec3{1, 0, 0}, true, 1},
		{"parallel outside slab", mgl64.Vec3{0, 5, 0}, mgl64.Vec3{1, 0, 0}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := NewRay(tt.origin, tt.dir)
			got, hit := r.IntersectAABB(box)
			if hit != tt.wantHit {
				t.Fatalf("expected hit=%v, got %v", tt.wantHit, hit)
			}
			if hit && math.Abs(got-tt.wantT) > 1e-9 {
				t.Errorf("expected t=%v, got %v", tt.wantT, got)
			}
		})
	}
}

func TestNewAABBOrdersCorners(t *testing.T) {
	box := NewAABB(mgl64.Vec3{3, -1, 5}, mgl64.Vec3{1, 2, -5})
	if box.Min != (mgl64.Vec3{1, -1, -5}) || box.Max != (mgl64.Vec3{3, 2, 5}) {
		t.Errorf("unexpected box %+v", box)
	}
	if !box.Contains(mgl64.Vec3{2, 0, 0}) {
		t.Error("expected center to be contained")
	}
}

func TestIntersectTriangle(t *testing.T) {
	// Unit triangle in the z = -2 plane.
	tri := Triangle{{-1, -1, -2}, {1, -1, -2}, {0, 1, -2}}

	tests := []struct {
		name    string
		origin  mgl64.Vec3
		dir     mgl64.Vec3
		wantHit bool
		wantT   float64
	}{
		{"front face", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, -1}, true, 2},
		{"back face", mgl64.Vec3{0, 0, -4}, mgl64.Vec3{0, 0, 1}, true, 2},
		{"behind origin", mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1}, false, 0},
		{"outside edge", mgl64.Vec3{5, 0, 0}, mgl64.Vec3{0, 0, -1}, false, 0},
		{"parallel", mgl64.Vec3{0, 0, -2}, mgl64.Vec3{1, 0, 0}, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, _ := NewRay(tt.origin, tt.dir)
			got, hit := r.IntersectTriangle(tri)
			if hit != tt.wantHit {
				t.Fatalf("expected hit=%v, got %v", tt.wantHit, hit)
			}
			if hit && math.Abs(got-tt.wantT) > 1e-9 {
				t.Errorf("expected t=%v, got %v", tt.wantT, got)
			}
		})
	}
}

func TestIntersectDegenerateTriangle(t *testing.T) {
	// All three vertices on one line.
	tri := Triangle{{0, 0, -1}, {1, 0, -1}, {2, 0, -1}}
	r, _ := NewRay(mgl64.Vec3{0.5, 0, 0}, mgl64.Vec3{0, 0, -1})
	if _, hit := r.IntersectTriangle(tri); hit {
		t.Error("expected zero-area triangle to miss")
	}
}
