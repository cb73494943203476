package math

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// forward is the local forward axis: -Z, as in the view space convention.
var forward = mgl64.Vec3{0, 0, -1}

// YawQuat returns the rotation of yaw radians about +Y.
// Yaw 0 faces -Z; positive yaw turns towards -X (counter-clockwise seen from above).
func YawQuat(yaw float64) mgl64.Quat {
	return mgl64.QuatRotate(yaw, Up)
}

// Yaw extracts the heading of q, ignoring pitch and roll.
// When q looks straight up or down the heading is read from the rotated up axis,
// which then lies in the horizontal plane.
func Yaw(q mgl64.Quat) float64 {
	f := q.Rotate(forward)
	if math.Abs(f.X()) < 1e-12 && math.Abs(f.Z()) < 1e-12 {
		u := q.Rotate(Up)
		if f.Y() < 0 {
			return math.Atan2(-u.X(), -u.Z())
		}
		return math.Atan2(u.X(), u.Z())
	}
	return math.Atan2(-f.X(), -f.Z())
}

// Pitch extracts the elevation of q's forward axis in radians.
// Negative values look down.
func Pitch(q mgl64.Quat) float64 {
	f := q.Rotate(forward).Normalize()
	return math.Asin(mgl64.Clamp(f.Y(), -1, 1))
}

// HeadQuat builds a head orientation from yaw then pitch, without roll.
func HeadQuat(yaw, pitch float64) mgl64.Quat {
	return YawQuat(yaw).Mul(mgl64.QuatRotate(pitch, mgl64.Vec3{1, 0, 0}))
}

// WrapAngle maps a to the range (-Pi, Pi].
func WrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a <= 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
