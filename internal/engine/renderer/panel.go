package renderer

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/xrtour/internal/game/poi"
)

// Panel is the overlay widget as seen from above: a marker where the panel
// floats plus the text the host shows alongside the map.
type Panel struct {
	Position mgl64.Vec3
	Facing   mgl64.Vec3 // point the panel turns towards
	Key      string
	Blocked  bool // showing the blocked-passage message
	Payload  poi.Payload
	Visible  bool
	Changes  int // content changes, for hosts that refresh text lazily
}

// SetPosition implements overlay.Widget.
func (p *Panel) SetPosition(pos mgl64.Vec3) {
	p.Position = pos
}

// SetContent implements overlay.Widget.
func (p *Panel) SetContent(key string, payload poi.Payload, blocked bool) {
	p.Key = key
	p.Blocked = blocked
	p.Payload = payload
	p.Changes++
}

// SetVisible implements overlay.Widget.
func (p *Panel) SetVisible(visible bool) {
	if p.Visible != visible {
		p.Changes++
	}
	p.Visible = visible
}

// LookAt implements overlay.Widget.
func (p *Panel) LookAt(target mgl64.Vec3) {
	p.Facing = target
}

// Caption returns a one-line summary of the panel, or "" when hidden.
func (p *Panel) Caption() string {
	if !p.Visible {
		return ""
	}
	if p.Payload.Body == "" {
		return p.Payload.Title
	}
	return p.Payload.Title + ": " + p.Payload.Body
}
