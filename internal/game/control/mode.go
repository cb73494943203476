// Package control decides each frame whether the user wants to move, from
// either a handheld controller or a gaze fallback.
package control

import (
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/xrtour/internal/logger"
)

// DefaultControllerTimeout is how long to wait for a controller before
// switching to gaze input.
const DefaultControllerTimeout = 2 * time.Second

// Mode is the resolved source of motion input.
type Mode uint8

const (
	ModeUndetermined Mode = iota
	ModeController
	ModeGaze
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeController:
		return "controller"
	case ModeGaze:
		return "gaze"
	default:
		return "undetermined"
	}
}

// Fallback is a dead man's switch: if no controller connects before the
// countdown elapses, input switches to gaze. The mode resolves once per session.
type Fallback struct {
	timeout   time.Duration
	remaining time.Duration
	armed     bool
	mode      Mode
	log       *zap.Logger
}

// NewFallback creates a fallback with the given countdown.
func NewFallback(timeout time.Duration) *Fallback {
	return &Fallback{timeout: timeout, log: logger.Named("control")}
}

// Start arms the countdown. Call once when the session begins.
func (f *Fallback) Start() {
	if f.mode != ModeUndetermined {
		return
	}
	f.remaining = f.timeout
	f.armed = true
}

// Mode returns the resolved input mode.
func (f *Fallback) Mode() Mode {
	return f.mode
}

// ControllerConnected records a physical controller connection. Before the
// countdown elapses it cancels the fallback; afterwards the gaze mode stays.
func (f *Fallback) ControllerConnected() {
	switch f.mode {
	case ModeUndetermined:
		f.resolve(ModeController)
	case ModeGaze:
		f.log.Debug("controller connected after gaze fallback, keeping gaze")
	}
}

// Advance runs the countdown by dt seconds.
func (f *Fallback) Advance(dt float64) {
	if !f.armed || f.mode != ModeUndetermined {
		return
	}
	f.remaining -= time.Duration(dt * float64(time.Second))
	if f.remaining <= 0 {
		f.resolve(ModeGaze)
	}
}

func (f *Fallback) resolve(m Mode) {
	f.mode = m
	f.armed = false
	f.log.Info("input mode resolved", zap.Stringer("mode", m))
}
