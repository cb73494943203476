// Package rig holds the movable viewpoint the camera is attached to.
package rig

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/xrtour/pkg/math"
)

// Local axes of a rig. Forward is -Z.
var (
	LocalForward = mgl64.Vec3{0, 0, -1}
	LocalLeft    = mgl64.Vec3{-1, 0, 0}
	LocalRight   = mgl64.Vec3{1, 0, 0}
)

// Rig is the user's viewpoint anchor: a world position, a heading, and the
// offset of the view origin (camera) above it.
type Rig struct {
	Position   mgl64.Vec3
	Yaw        float64 // radians about +Y, 0 faces -Z
	ViewOffset mgl64.Vec3
}

// New creates a rig at position facing -Z.
func New(position, viewOffset mgl64.Vec3) *Rig {
	return &Rig{Position: position, ViewOffset: viewOffset}
}

// Orientation returns the rig heading as a quaternion.
func (r *Rig) Orientation() mgl64.Quat {
	return math.YawQuat(r.Yaw)
}

// Direction returns a local axis expressed in world space.
func (r *Rig) Direction(local mgl64.Vec3) mgl64.Vec3 {
	return r.Orientation().Rotate(local)
}

// Forward returns the world direction the rig faces.
func (r *Rig) Forward() mgl64.Vec3 {
	return r.Direction(LocalForward)
}

// TranslateLocal moves the rig by v expressed in its own frame.
func (r *Rig) TranslateLocal(v mgl64.Vec3) {
	r.Position = r.Position.Add(r.Direction(v))
}

// ViewPosition returns the world position of the view origin.
func (r *Rig) ViewPosition() mgl64.Vec3 {
	return r.Position.Add(r.Direction(r.ViewOffset))
}

// Reset places the rig at spawn facing -Z.
func (r *Rig) Reset(spawn mgl64.Vec3) {
	r.Position = spawn
	r.Yaw = 0
}
