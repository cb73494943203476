// Package renderer draws a top-down map of the tour with the SDL 2D renderer.
package renderer

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/xrtour/internal/engine/collision"
	"github.com/Faultbox/xrtour/internal/engine/scene"
	"github.com/Faultbox/xrtour/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width         int
	Height        int
	PixelsPerUnit float64
}

// Segment is a wall edge projected onto the ground plane.
type Segment [2]mgl64.Vec3

// MarkerKind selects how a marker is drawn.
type MarkerKind uint8

const (
	MarkerPOI MarkerKind = iota
	MarkerBlocked
)

// Marker is a named point drawn on the map.
type Marker struct {
	Name     string
	Position mgl64.Vec3
	Kind     MarkerKind
}

// Renderer draws the map, rig and overlay panel.
type Renderer struct {
	config  Config
	sdl     *sdl.Renderer
	walls   []Segment
	markers []Marker
	center  mgl64.Vec3
}

// New creates a renderer on an SDL renderer.
func New(r *sdl.Renderer, cfg Config) *Renderer {
	if cfg.PixelsPerUnit <= 0 {
		cfg.PixelsPerUnit = 12
	}
	return &Renderer{config: cfg, sdl: r}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	logger.Debug("renderer resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// SetScene extracts wall outlines from the collision surface and marks the
// given POI and blocked-zone nodes.
func (r *Renderer) SetScene(g *scene.Graph, pois []string, blockedMarker string) {
	r.walls = WallSegments(g.CollisionSurface())
	r.markers = r.markers[:0]
	for _, name := range pois {
		if p, ok := g.Position(name); ok {
			r.markers = append(r.markers, Marker{Name: name, Position: p, Kind: MarkerPOI})
		}
	}
	if p, ok := g.Position(blockedMarker); ok {
		r.markers = append(r.markers, Marker{Name: blockedMarker, Position: p, Kind: MarkerBlocked})
	}
	logger.Info("map built", zap.Int("walls", len(r.walls)), zap.Int("markers", len(r.markers)))
}

// WallSegments returns the ground-plane outline of every steep triangle in
// mesh. Floors and ceilings are skipped.
func WallSegments(mesh *collision.Mesh) []Segment {
	if mesh.Empty() {
		return nil
	}
	var out []Segment
	for _, tri := range mesh.Triangles {
		n := tri[1].Sub(tri[0]).Cross(tri[2].Sub(tri[0]))
		l := n.Len()
		if l == 0 || gomath.Abs(n.Y())/l > 0.5 {
			continue
		}
		for i := 0; i < 3; i++ {
			a, b := flatten(tri[i]), flatten(tri[(i+1)%3])
			if a.ApproxEqual(b) {
				continue
			}
			out = append(out, Segment{a, b})
		}
	}
	return out
}

func flatten(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}

// Project maps a world position to screen coordinates with the view centered
// on the current center. -Z is up on screen.
func (r *Renderer) Project(p mgl64.Vec3) (int32, int32) {
	d := p.Sub(r.center).Mul(r.config.PixelsPerUnit)
	x := float64(r.config.Width)/2 + d.X()
	y := float64(r.config.Height)/2 + d.Z()
	return int32(gomath.Round(x)), int32(gomath.Round(y))
}

// Begin clears the frame and centers the view on center.
func (r *Renderer) Begin(center mgl64.Vec3) {
	r.center = center
	r.sdl.SetDrawColor(25, 25, 38, 255)
	r.sdl.Clear()
}

// DrawMap draws walls and markers.
func (r *Renderer) DrawMap() {
	r.sdl.SetDrawColor(180, 180, 190, 255)
	for _, s := range r.walls {
		x1, y1 := r.Project(s[0])
		x2, y2 := r.Project(s[1])
		r.sdl.DrawLine(x1, y1, x2, y2)
	}

	for _, m := range r.markers {
		switch m.Kind {
		case MarkerBlocked:
			r.sdl.SetDrawColor(220, 60, 60, 255)
		default:
			r.sdl.SetDrawColor(90, 170, 250, 255)
		}
		x, y := r.Project(m.Position)
		r.sdl.FillRect(&sdl.Rect{X: x - 3, Y: y - 3, W: 7, H: 7})
	}
}

// DrawRadius outlines a circle of radius world units around p.
func (r *Renderer) DrawRadius(p mgl64.Vec3, radius float64) {
	const segments = 32
	r.sdl.SetDrawColor(90, 170, 250, 60)
	px, py := r.Project(p.Add(mgl64.Vec3{radius, 0, 0}))
	for i := 1; i <= segments; i++ {
		a := 2 * gomath.Pi * float64(i) / segments
		x, y := r.Project(p.Add(mgl64.Vec3{radius * gomath.Cos(a), 0, radius * gomath.Sin(a)}))
		r.sdl.DrawLine(px, py, x, y)
		px, py = x, y
	}
}

// DrawRig draws the rig and a heading tick.
func (r *Renderer) DrawRig(pos, forward mgl64.Vec3, moving bool) {
	if moving {
		r.sdl.SetDrawColor(120, 230, 120, 255)
	} else {
		r.sdl.SetDrawColor(240, 240, 240, 255)
	}
	x, y := r.Project(pos)
	r.sdl.FillRect(&sdl.Rect{X: x - 4, Y: y - 4, W: 9, H: 9})
	hx, hy := r.Project(pos.Add(flatten(forward).Mul(1.5)))
	r.sdl.DrawLine(x, y, hx, hy)
}

// DrawPanel draws the overlay panel marker and its facing line.
func (r *Renderer) DrawPanel(p *Panel) {
	if !p.Visible {
		return
	}
	if p.Blocked {
		r.sdl.SetDrawColor(220, 60, 60, 255)
	} else {
		r.sdl.SetDrawColor(250, 210, 80, 255)
	}
	x, y := r.Project(p.Position)
	r.sdl.DrawRect(&sdl.Rect{X: x - 8, Y: y - 5, W: 17, H: 11})
	fx, fy := r.Project(p.Facing)
	r.sdl.SetDrawColor(250, 210, 80, 120)
	r.sdl.DrawLine(x, y, fx, fy)
}

// End finishes the frame. The window presents it.
func (r *Renderer) End() {}
