// Package locomotion moves the rig through the scene while keeping it clear of
// the collision surface and glued to the floor.
package locomotion

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/xrtour/internal/game/rig"
)

// Default tuning, in world units and seconds.
const (
	DefaultSpeed             = 2.0
	DefaultWallClearance     = 1.3
	DefaultEyeHeight         = 1.0
	DefaultGroundProbeHeight = 1.5
)

var down = mgl64.Vec3{0, -1, 0}

// Prober answers nearest-hit ray queries; it reports false when unobstructed.
type Prober interface {
	Ready() bool
	Probe(origin, direction mgl64.Vec3) (float64, bool)
}

// Params tunes the controller.
type Params struct {
	Speed             float64 // units per second along the gaze heading
	WallClearance     float64 // minimum distance kept from walls
	EyeHeight         float64 // height of the horizontal probes above the rig
	GroundProbeHeight float64 // height the floor probe starts from
}

// DefaultParams returns the standard walking parameters.
func DefaultParams() Params {
	return Params{
		Speed:             DefaultSpeed,
		WallClearance:     DefaultWallClearance,
		EyeHeight:         DefaultEyeHeight,
		GroundProbeHeight: DefaultGroundProbeHeight,
	}
}

// Controller advances a rig each frame it is asked to move.
type Controller struct {
	rig    *rig.Rig
	prober Prober
	params Params
}

// NewController creates a controller driving r.
func NewController(r *rig.Rig, prober Prober, params Params) *Controller {
	return &Controller{rig: r, prober: prober, params: params}
}

// Params returns the controller's tuning.
func (c *Controller) Params() Params {
	return c.params
}

// Step advances the rig for one frame of dt seconds, heading along gazeYaw.
// It is a no-op until a collision surface is installed.
func (c *Controller) Step(dt, gazeYaw float64) {
	if c.prober == nil || !c.prober.Ready() {
		return
	}

	r := c.rig
	savedYaw := r.Yaw
	r.Yaw = gazeYaw

	if !c.blocked(rig.LocalForward) {
		r.TranslateLocal(rig.LocalForward.Mul(c.params.Speed * dt))
	}

	// Each side probes from wherever the previous correction left the rig.
	if d, ok := c.probe(rig.LocalLeft); ok && d < c.params.WallClearance {
		r.TranslateLocal(rig.LocalRight.Mul(c.params.WallClearance - d))
	}
	if d, ok := c.probe(rig.LocalRight); ok && d < c.params.WallClearance {
		r.TranslateLocal(rig.LocalLeft.Mul(c.params.WallClearance - d))
	}

	c.snapToGround()

	r.Yaw = savedYaw
}

func (c *Controller) blocked(local mgl64.Vec3) bool {
	d, ok := c.probe(local)
	return ok && d < c.params.WallClearance
}

// probe casts along a rig-local axis from eye height.
func (c *Controller) probe(local mgl64.Vec3) (float64, bool) {
	origin := c.rig.Position.Add(mgl64.Vec3{0, c.params.EyeHeight, 0})
	return c.prober.Probe(origin, c.rig.Direction(local))
}

func (c *Controller) snapToGround() {
	origin := c.rig.Position.Add(mgl64.Vec3{0, c.params.GroundProbeHeight, 0})
	d, ok := c.prober.Probe(origin, down)
	if !ok {
		return
	}
	c.rig.Position[1] = origin.Y() - d
}
