// Package math provides small geometry helpers on top of mgl64 for the tour core.
package math

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis.
var Up = mgl64.Vec3{0, 1, 0}

// Horizontal returns v projected onto the XZ plane.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// HorizontalLength returns the magnitude of the XZ components.
func HorizontalLength(v mgl64.Vec3) float64 {
	return math.Hypot(v.X(), v.Z())
}

// Distance returns the distance between two points.
func Distance(a, b mgl64.Vec3) float64 {
	return a.Sub(b).Len()
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b mgl64.Vec3) mgl64.Vec3 {
	return a.Sub(b).Mul(0.5).Add(b)
}

// ApproxEqual reports whether every component of a and b differs by at most eps.
func ApproxEqual(a, b mgl64.Vec3, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}
