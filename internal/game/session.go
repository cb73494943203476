// Package game runs the per-frame tour pipeline: input arbitration,
// locomotion, proximity overlays and the boundary guard.
package game

import (
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/xrtour/internal/config"
	"github.com/Faultbox/xrtour/internal/engine/collision"
	"github.com/Faultbox/xrtour/internal/engine/scene"
	"github.com/Faultbox/xrtour/internal/game/boundary"
	"github.com/Faultbox/xrtour/internal/game/control"
	"github.com/Faultbox/xrtour/internal/game/locomotion"
	"github.com/Faultbox/xrtour/internal/game/overlay"
	"github.com/Faultbox/xrtour/internal/game/poi"
	"github.com/Faultbox/xrtour/internal/game/proximity"
	"github.com/Faultbox/xrtour/internal/game/rig"
	"github.com/Faultbox/xrtour/internal/logger"
)

// Assets is everything loaded from disk that the tour needs.
type Assets struct {
	Graph    *scene.Graph
	Registry *poi.Registry
}

// Session owns the rig and the components that act on it each frame.
type Session struct {
	rig     *rig.Rig
	prober  *collision.Prober
	walker  *locomotion.Controller
	arbiter *control.Arbiter
	gaze    *control.DwellGaze
	trigger *proximity.Trigger
	guard   *boundary.Guard

	assets  Assets
	ready   bool
	started bool
	view    View
	log     *zap.Logger
}

// NewSession builds a session from cfg. widget may be nil for headless use.
func NewSession(cfg *config.Config, widget overlay.Widget) *Session {
	r := rig.New(cfg.Boundary.Spawn, cfg.Rig.ViewOffset)
	prober := collision.NewProber()
	gaze := control.NewDwellGaze(
		cfg.Input.GazePitchThreshold*gomath.Pi/180,
		cfg.Input.GazeDwell.Seconds(),
	)

	s := &Session{
		rig:    r,
		prober: prober,
		walker: locomotion.NewController(r, prober, locomotion.Params{
			Speed:             cfg.Locomotion.Speed,
			WallClearance:     cfg.Locomotion.WallClearance,
			EyeHeight:         cfg.Locomotion.EyeHeight,
			GroundProbeHeight: cfg.Locomotion.GroundProbeHeight,
		}),
		arbiter: control.NewArbiter(control.NewFallback(cfg.Input.ControllerTimeout), gaze),
		gaze:    gaze,
		trigger: proximity.NewTrigger(overlay.NewBoard(widget), proximity.Params{
			TriggerRadius: cfg.Proximity.TriggerRadius,
			BlockedRadius: cfg.Proximity.BlockedRadius,
			OverlayLift:   cfg.Proximity.OverlayLift,
			BlockedMarker: cfg.Proximity.BlockedMarker,
			BlockedPayload: poi.Payload{
				Title: cfg.Proximity.BlockedTitle,
				Body:  cfg.Proximity.BlockedBody,
			},
		}),
		guard: boundary.NewGuard(cfg.Boundary.Radius, cfg.Boundary.Spawn),
		log:   logger.Named("session"),
	}
	s.view = s.snapshot(false, false)
	return s
}

// Start begins the session and arms the controller countdown. Repeated calls
// are ignored.
func (s *Session) Start() {
	if s.started {
		return
	}
	s.started = true
	s.arbiter.Fallback().Start()
	s.log.Info("session started",
		zap.Float64("x", s.rig.Position.X()),
		zap.Float64("y", s.rig.Position.Y()),
		zap.Float64("z", s.rig.Position.Z()),
	)
}

// InstallAssets makes the collision surface, scene lookup and registry
// available. The rig cannot move before this.
func (s *Session) InstallAssets(a Assets) {
	if a.Registry == nil {
		a.Registry = poi.NewRegistry()
	}
	s.assets = a

	if a.Graph != nil {
		s.prober.SetSurface(a.Graph.CollisionSurface())
		s.trigger.SetAssets(a.Registry, a.Graph)
	}
	s.ready = s.prober.Ready()
	s.log.Info("assets installed",
		zap.Bool("collision", s.ready),
		zap.Int("pois", a.Registry.Len()),
	)
}

// Ready reports whether the collision surface is installed.
func (s *Session) Ready() bool {
	return s.ready
}

// Rig returns the session's rig.
func (s *Session) Rig() *rig.Rig {
	return s.rig
}

// Assets returns the installed assets.
func (s *Session) Assets() Assets {
	return s.assets
}

// Board returns the overlay board.
func (s *Session) Board() *overlay.Board {
	return s.trigger.Board()
}

// Mode returns the resolved input mode.
func (s *Session) Mode() control.Mode {
	return s.arbiter.Fallback().Mode()
}

// GazeProgress returns how far the current gaze dwell is towards a toggle.
func (s *Session) GazeProgress() float64 {
	return s.gaze.Progress()
}

// View returns the snapshot taken by the last Tick.
func (s *Session) View() View {
	return s.view
}

// Tick runs one frame of the pipeline and returns the resulting view.
func (s *Session) Tick(f Frame) View {
	if f.ControllerConnected {
		s.arbiter.Fallback().ControllerConnected()
	}

	moving := s.arbiter.Tick(control.Input{
		Dt:     f.Dt,
		Select: f.Select,
		Head:   f.Head,
	})
	if moving {
		s.walker.Step(f.Dt, f.Head.Yaw())
	}

	s.trigger.Evaluate(s.rig.Position, s.rig.ViewPosition())
	reset := s.guard.Check(s.rig)

	s.view = s.snapshot(moving, reset)
	s.view.Heading = f.Head.Yaw()
	return s.view
}

func (s *Session) snapshot(moving, reset bool) View {
	board := s.trigger.Board()
	return View{
		Ready:      s.ready,
		Position:   s.rig.Position,
		Eye:        s.rig.ViewPosition(),
		Heading:    s.rig.Yaw,
		Mode:       s.Mode(),
		Moving:     moving,
		Reset:      reset,
		Overlay:    board.State(),
		OverlayKey: board.Key(),
		Blocked:    board.Blocked(),
		Payload:    board.Payload(),
	}
}
