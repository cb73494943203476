package main

import (
	gomath "math"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/xrtour/internal/config"
	"github.com/Faultbox/xrtour/internal/engine/input"
	"github.com/Faultbox/xrtour/internal/engine/renderer"
	"github.com/Faultbox/xrtour/internal/engine/window"
	"github.com/Faultbox/xrtour/internal/game"
	"github.com/Faultbox/xrtour/internal/game/control"
	"github.com/Faultbox/xrtour/pkg/math"
)

const windowTitle = "XR Tour"

// Head turn rates in radians per second.
const (
	turnRate  = 1.6
	pitchRate = 1.0
	maxPitch  = 80 * gomath.Pi / 180
)

// host adapts SDL input and drawing to the tour loop. Arrow keys move the
// head, Space (or controller A) holds select, C simulates a controller
// connecting, Esc quits.
type host struct {
	cfg     *config.Config
	win     *window.Window
	in      *input.Input
	rend    *renderer.Renderer
	panel   *renderer.Panel
	session *game.Session

	yaw, pitch float64
	last       time.Time
	frameTime  time.Duration
	mapReady   bool
	caption    string
	mode       control.Mode
	ready      bool
}

func newHost(cfg *config.Config, win *window.Window, in *input.Input, rend *renderer.Renderer, panel *renderer.Panel, session *game.Session) *host {
	h := &host{
		cfg:     cfg,
		win:     win,
		in:      in,
		rend:    rend,
		panel:   panel,
		session: session,
		last:    time.Now(),
	}
	if cfg.Window.FPSLimit > 0 {
		h.frameTime = time.Second / time.Duration(cfg.Window.FPSLimit)
	}
	return h
}

// Poll implements game.Host.
func (h *host) Poll() (game.Frame, bool) {
	if h.frameTime > 0 {
		if wait := h.frameTime - time.Since(h.last); wait > 0 {
			sdl.Delay(uint32(wait / time.Millisecond))
		}
	}
	now := time.Now()
	dt := now.Sub(h.last).Seconds()
	h.last = now

	if h.in.Update() || h.in.IsKeyPressed(sdl.SCANCODE_ESCAPE) {
		return game.Frame{}, false
	}
	for _, e := range h.in.Events() {
		if e.Type == input.EventWindowResize {
			h.rend.Resize(e.Width, e.Height)
		}
	}

	if h.in.IsKeyHeld(sdl.SCANCODE_LEFT) {
		h.yaw += turnRate * dt
	}
	if h.in.IsKeyHeld(sdl.SCANCODE_RIGHT) {
		h.yaw -= turnRate * dt
	}
	if h.in.IsKeyHeld(sdl.SCANCODE_UP) {
		h.pitch += pitchRate * dt
	}
	if h.in.IsKeyHeld(sdl.SCANCODE_DOWN) {
		h.pitch -= pitchRate * dt
	}
	h.yaw = math.WrapAngle(h.yaw)
	h.pitch = mgl64.Clamp(h.pitch, -maxPitch, maxPitch)

	keyboard := h.in.IsKeyHeld(sdl.SCANCODE_SPACE)
	pad := h.in.IsButtonHeld(uint8(sdl.CONTROLLER_BUTTON_A))

	return game.Frame{
		Dt:     dt,
		Select: [2]bool{keyboard, pad},
		Head: control.Pose{
			Position:    h.session.Rig().ViewPosition(),
			Orientation: math.HeadQuat(h.yaw, h.pitch),
		},
		ControllerConnected: h.in.IsKeyPressed(sdl.SCANCODE_C) || h.in.ControllerAdded(),
	}, true
}

// Present implements game.Host.
func (h *host) Present(v game.View) {
	if v.Ready && !h.mapReady {
		a := h.session.Assets()
		h.rend.SetScene(a.Graph, a.Registry.Names(), h.cfg.Proximity.BlockedMarker)
		h.mapReady = true
	}

	h.rend.Begin(v.Position)
	if h.mapReady {
		h.rend.DrawMap()
	}
	if h.panel.Visible {
		h.rend.DrawRadius(h.panel.Position, h.cfg.Proximity.TriggerRadius)
	}
	h.rend.DrawRig(v.Position, math.YawQuat(h.yaw).Rotate(mgl64.Vec3{0, 0, -1}), v.Moving)
	h.rend.DrawPanel(h.panel)
	h.rend.End()
	h.win.Present()

	if caption := h.panel.Caption(); caption != h.caption || v.Mode != h.mode || v.Ready != h.ready {
		h.caption = caption
		h.mode = v.Mode
		h.ready = v.Ready
		h.win.SetTitle(h.title(v))
	}
}

func (h *host) title(v game.View) string {
	t := windowTitle
	if !v.Ready {
		t += " | loading"
	} else {
		t += " | " + v.Mode.String()
	}
	if h.caption != "" {
		t += " | " + h.caption
	}
	return t
}
