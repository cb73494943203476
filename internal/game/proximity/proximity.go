// Package proximity shows informational panels when the rig comes near a
// point of interest, and a warning near no-entry zones.
package proximity

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/xrtour/internal/game/overlay"
	"github.com/Faultbox/xrtour/internal/game/poi"
	"github.com/Faultbox/xrtour/pkg/math"
)

// Default radii and placement.
const (
	DefaultTriggerRadius = 3.0
	DefaultBlockedRadius = 2.0
	DefaultOverlayLift   = 1.3
)

// Locator resolves scene node names to world positions.
type Locator interface {
	Position(name string) (mgl64.Vec3, bool)
}

// Params tunes the trigger.
type Params struct {
	TriggerRadius  float64
	BlockedRadius  float64
	OverlayLift    float64 // panel height above its anchor
	BlockedMarker  string  // scene node marking a no-entry zone; "" disables
	BlockedPayload poi.Payload
}

// DefaultParams returns the standard trigger tuning.
func DefaultParams() Params {
	return Params{
		TriggerRadius: DefaultTriggerRadius,
		BlockedRadius: DefaultBlockedRadius,
		OverlayLift:   DefaultOverlayLift,
		BlockedMarker: "NoEntry",
		BlockedPayload: poi.Payload{
			Title: "No entry",
			Body:  "This passage is closed to visitors.",
		},
	}
}

// Trigger drives the overlay board from the rig position.
type Trigger struct {
	board    *overlay.Board
	params   Params
	registry *poi.Registry
	locator  Locator
}

// NewTrigger creates a trigger. Until SetAssets is called it only hides.
func NewTrigger(board *overlay.Board, params Params) *Trigger {
	return &Trigger{board: board, params: params}
}

// SetAssets installs the POI registry and the scene lookup.
func (t *Trigger) SetAssets(registry *poi.Registry, locator Locator) {
	t.registry = registry
	t.locator = locator
}

// Board returns the overlay board the trigger drives.
func (t *Trigger) Board() *overlay.Board {
	return t.board
}

// Evaluate updates the overlay for a rig at rigPos, orienting panels towards viewer.
func (t *Trigger) Evaluate(rigPos, viewer mgl64.Vec3) {
	if marker, ok := t.blockedMarker(); ok && math.Distance(rigPos, marker) < t.params.BlockedRadius {
		t.board.ShowBlocked(t.params.BlockedPayload, t.panelPosition(marker), viewer)
		return
	}

	name, anchor, payload, found := t.nearest(rigPos)
	if !found {
		t.board.Hide()
		return
	}
	t.board.Show(name, payload, t.panelPosition(anchor), viewer)
}

// Nearest returns the name of the closest POI in range of pos, if any.
func (t *Trigger) Nearest(pos mgl64.Vec3) (string, bool) {
	name, _, _, found := t.nearest(pos)
	return name, found
}

// nearest scans every POI with a resolvable node. Ties go to registry order.
func (t *Trigger) nearest(pos mgl64.Vec3) (name string, anchor mgl64.Vec3, payload poi.Payload, found bool) {
	if t.locator == nil {
		return "", mgl64.Vec3{}, poi.Payload{}, false
	}
	best := gomath.Inf(1)
	t.registry.Each(func(n string, p poi.Payload) bool {
		at, ok := t.locator.Position(n)
		if !ok {
			// Node not in the scene (yet).
			return true
		}
		d := math.Distance(pos, at)
		if d < t.params.TriggerRadius && d < best {
			best = d
			name, anchor, payload, found = n, at, p, true
		}
		return true
	})
	return name, anchor, payload, found
}

func (t *Trigger) blockedMarker() (mgl64.Vec3, bool) {
	if t.locator == nil || t.params.BlockedMarker == "" {
		return mgl64.Vec3{}, false
	}
	return t.locator.Position(t.params.BlockedMarker)
}

func (t *Trigger) panelPosition(anchor mgl64.Vec3) mgl64.Vec3 {
	return anchor.Add(mgl64.Vec3{0, t.params.OverlayLift, 0})
}
