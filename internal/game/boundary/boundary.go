// Package boundary keeps the rig inside the tour area.
package boundary

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/Faultbox/xrtour/internal/game/rig"
	"github.com/Faultbox/xrtour/internal/logger"
	"github.com/Faultbox/xrtour/pkg/math"
)

// DefaultRadius is the horizontal distance from the origin the rig may wander.
const DefaultRadius = 100.0

// DefaultSpawn is where the rig starts and returns to.
var DefaultSpawn = mgl64.Vec3{0, 0, 10}

// Guard teleports the rig back to spawn when it leaves the tour area.
type Guard struct {
	radius float64
	spawn  mgl64.Vec3
	log    *zap.Logger
}

// NewGuard creates a guard.
func NewGuard(radius float64, spawn mgl64.Vec3) *Guard {
	return &Guard{radius: radius, spawn: spawn, log: logger.Named("boundary")}
}

// Spawn returns the reset point.
func (g *Guard) Spawn() mgl64.Vec3 {
	return g.spawn
}

// Outside reports whether pos is horizontally beyond the radius.
func (g *Guard) Outside(pos mgl64.Vec3) bool {
	return math.HorizontalLength(pos) > g.radius
}

// Check resets r to spawn with zero yaw if it is outside. Returns whether it did.
func (g *Guard) Check(r *rig.Rig) bool {
	if !g.Outside(r.Position) {
		return false
	}
	g.log.Info("rig left the tour area, returning to spawn",
		zap.Float64("x", r.Position.X()),
		zap.Float64("z", r.Position.Z()),
	)
	r.Reset(g.spawn)
	return true
}
