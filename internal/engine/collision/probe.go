package collision

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/Faultbox/xrtour/internal/logger"
)

// Prober casts probes against the single active collision surface.
// A Prober with no surface reports every probe as unobstructed.
type Prober struct {
	surface Surface
	log     *zap.Logger
}

// NewProber creates a prober with no surface installed.
func NewProber() *Prober {
	return &Prober{log: logger.Named("collision")}
}

// SetSurface replaces the active surface. Passing nil clears it.
func (p *Prober) SetSurface(s Surface) {
	p.surface = s
	if m, ok := s.(*Mesh); ok && m != nil {
		p.log.Info("collision surface installed",
			zap.String("mesh", m.Name),
			zap.Int("triangles", len(m.Triangles)),
		)
	}
}

// Ready reports whether a surface is installed.
func (p *Prober) Ready() bool {
	if p == nil || p.surface == nil {
		return false
	}
	if m, ok := p.surface.(*Mesh); ok {
		return m != nil
	}
	return true
}

// Probe casts a ray from origin along direction and returns the distance to
// the nearest hit. It returns false when no surface is set, the direction is
// degenerate, or nothing is hit.
func (p *Prober) Probe(origin, direction mgl64.Vec3) (float64, bool) {
	if !p.Ready() {
		return 0, false
	}
	r, ok := NewRay(origin, direction)
	if !ok {
		return 0, false
	}
	return p.surface.Raycast(r)
}
