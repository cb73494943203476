package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/xrtour/internal/game/control"
	"github.com/Faultbox/xrtour/internal/game/overlay"
	"github.com/Faultbox/xrtour/internal/game/poi"
)

// Frame is the input sampled by the host for one simulation step.
type Frame struct {
	Dt                  float64 // seconds since the previous frame
	Select              [2]bool // select held on the left and right controllers
	Head                control.Pose
	ControllerConnected bool // a controller connected during this frame
}

// View is a snapshot of the tour after a frame, for presentation.
type View struct {
	Ready    bool // assets installed
	Position mgl64.Vec3
	Eye      mgl64.Vec3
	Heading  float64 // head yaw the rig walks along
	Mode     control.Mode
	Moving   bool // the arbiter asked to move this frame
	Reset    bool // the boundary guard returned the rig to spawn

	Overlay    overlay.State
	OverlayKey string
	Blocked    bool // the overlay shows the blocked-passage message
	Payload    poi.Payload
}
