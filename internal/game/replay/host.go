package replay

import (
	"fmt"
	"io"

	"github.com/Faultbox/xrtour/internal/game"
	"github.com/Faultbox/xrtour/internal/game/control"
	"github.com/Faultbox/xrtour/internal/game/overlay"
)

// EventKind classifies a replay event.
type EventKind uint8

const (
	EventPosition EventKind = iota
	EventMode
	EventOverlayShown
	EventOverlayHidden
	EventReset
)

// Event is something noteworthy that happened during a replay.
type Event struct {
	Frame int
	Kind  EventKind
	View  game.View
}

// Host feeds scripted frames to a game loop and records what changed.
type Host struct {
	frames []game.Frame
	out    io.Writer
	every  int

	frame   int
	mode    control.Mode
	overlay string
	Events  []Event
}

// NewHost creates a host replaying frames. Every every frames the rig position
// is reported; 0 reports only changes. out may be nil.
func NewHost(frames []game.Frame, out io.Writer, every int) *Host {
	return &Host{frames: frames, out: out, every: every}
}

// Poll implements game.Host.
func (h *Host) Poll() (game.Frame, bool) {
	if h.frame >= len(h.frames) {
		return game.Frame{}, false
	}
	f := h.frames[h.frame]
	h.frame++
	return f, true
}

// Present implements game.Host.
func (h *Host) Present(v game.View) {
	n := h.frame

	if v.Mode != h.mode {
		h.mode = v.Mode
		h.record(n, EventMode, v, "input mode %s", v.Mode)
	}
	if key := visibleKey(v); key != h.overlay {
		h.overlay = key
		if key == "" {
			h.record(n, EventOverlayHidden, v, "overlay hidden")
		} else {
			h.record(n, EventOverlayShown, v, "overlay %s: %s", key, v.Payload.Title)
		}
	}
	if v.Reset {
		h.record(n, EventReset, v, "returned to spawn")
	}
	if h.every > 0 && n%h.every == 0 {
		h.record(n, EventPosition, v, "")
	}
}

// Frame returns how many frames have been polled.
func (h *Host) Frame() int {
	return h.frame
}

func (h *Host) record(n int, kind EventKind, v game.View, format string, args ...any) {
	h.Events = append(h.Events, Event{Frame: n, Kind: kind, View: v})
	if h.out == nil {
		return
	}
	p := v.Position
	line := fmt.Sprintf("%5d  (%7.2f, %5.2f, %7.2f)", n, p.X(), p.Y(), p.Z())
	if format != "" {
		line += "  " + fmt.Sprintf(format, args...)
	}
	fmt.Fprintln(h.out, line)
}

func visibleKey(v game.View) string {
	if v.Overlay != overlay.StateShowing {
		return ""
	}
	return v.OverlayKey
}
