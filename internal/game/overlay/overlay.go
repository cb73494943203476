// Package overlay tracks which informational panel is on screen.
package overlay

import (
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	"github.com/Faultbox/xrtour/internal/game/poi"
	"github.com/Faultbox/xrtour/internal/logger"
)

// BlockedKey is the key reported while the blocked-passage message shows.
// It is only a label: a POI may carry the same name, so use Blocked to tell them apart.
const BlockedKey = "blocked"

// Widget is the on-screen panel. Rendering is up to the implementation.
type Widget interface {
	SetPosition(p mgl64.Vec3)
	SetContent(key string, payload poi.Payload, blocked bool)
	SetVisible(visible bool)
	LookAt(p mgl64.Vec3)
}

// State is the overlay visibility state.
type State uint8

const (
	StateHidden State = iota
	StateShowing
)

// String returns the state name.
func (s State) String() string {
	if s == StateShowing {
		return "showing"
	}
	return "hidden"
}

// Board is the single overlay instance: the widget plus which key it shows.
type Board struct {
	widget  Widget
	state   State
	key     string
	blocked bool
	payload poi.Payload
	log     *zap.Logger
}

// NewBoard creates a hidden board driving widget. A nil widget is allowed;
// the state machine still runs.
func NewBoard(widget Widget) *Board {
	return &Board{widget: widget, log: logger.Named("overlay")}
}

// State returns the current state.
func (b *Board) State() State {
	return b.state
}

// Key returns the key being shown, or "" when hidden.
func (b *Board) Key() string {
	return b.key
}

// Payload returns the payload being shown.
func (b *Board) Payload() poi.Payload {
	return b.payload
}

// Visible reports whether the board is showing anything.
func (b *Board) Visible() bool {
	return b.state == StateShowing
}

// Blocked reports whether the blocked-passage message is showing.
func (b *Board) Blocked() bool {
	return b.state == StateShowing && b.blocked
}

// Show displays a POI payload under key at position, facing viewer.
// Returns false when that POI is already showing.
func (b *Board) Show(key string, payload poi.Payload, position, viewer mgl64.Vec3) bool {
	return b.show(key, false, payload, position, viewer)
}

// ShowBlocked displays the blocked-passage message at position, facing viewer.
// Returns false when it is already showing.
func (b *Board) ShowBlocked(payload poi.Payload, position, viewer mgl64.Vec3) bool {
	return b.show(BlockedKey, true, payload, position, viewer)
}

func (b *Board) show(key string, blocked bool, payload poi.Payload, position, viewer mgl64.Vec3) bool {
	if b.state == StateShowing && b.key == key && b.blocked == blocked {
		return false
	}
	if b.widget != nil {
		b.widget.SetPosition(position)
		b.widget.SetContent(key, payload, blocked)
		b.widget.LookAt(viewer)
		b.widget.SetVisible(true)
	}
	b.state = StateShowing
	b.key = key
	b.blocked = blocked
	b.payload = payload
	b.log.Debug("overlay shown", zap.String("key", key), zap.Bool("blocked", blocked))
	return true
}

// Hide hides the board and clears the key. Returns false when already hidden.
func (b *Board) Hide() bool {
	if b.state == StateHidden {
		return false
	}
	if b.widget != nil {
		b.widget.SetVisible(false)
	}
	b.log.Debug("overlay hidden", zap.String("key", b.key))
	b.state = StateHidden
	b.key = ""
	b.blocked = false
	b.payload = poi.Payload{}
	return true
}
