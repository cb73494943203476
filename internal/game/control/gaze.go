package control

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/Faultbox/xrtour/pkg/math"
)

// GazeMode is what a gaze controller asks for this frame.
type GazeMode uint8

const (
	GazeIdle GazeMode = iota
	GazeMove
)

// Pose is the head pose sampled from the headset.
type Pose struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// Yaw returns the heading of the pose.
func (p Pose) Yaw() float64 {
	return math.Yaw(p.Orientation)
}

// Gaze infers movement intent from head pose when no controller is present.
type Gaze interface {
	// Update is called once per frame while gaze input is active.
	Update(head Pose, dt float64) GazeMode
}

// Default dwell tuning.
const (
	DefaultGazePitchThreshold = -35 * gomath.Pi / 180
	DefaultGazeDwell          = 1.5
)

// DwellGaze toggles between idle and move when the user holds their head
// pitched down past a threshold for the dwell time. The head has to come back
// up before another toggle can arm.
type DwellGaze struct {
	threshold float64 // radians, negative is down
	dwell     float64 // seconds
	held      float64
	latched   bool
	mode      GazeMode
}

// NewDwellGaze creates a dwell gaze controller.
func NewDwellGaze(threshold, dwell float64) *DwellGaze {
	return &DwellGaze{threshold: threshold, dwell: dwell}
}

// Progress returns how far the current dwell is towards a toggle, in [0, 1].
func (g *DwellGaze) Progress() float64 {
	if g.dwell <= 0 || g.latched {
		return 0
	}
	return mgl64.Clamp(g.held/g.dwell, 0, 1)
}

// Update implements Gaze.
func (g *DwellGaze) Update(head Pose, dt float64) GazeMode {
	if math.Pitch(head.Orientation) > g.threshold {
		g.held = 0
		g.latched = false
		return g.mode
	}
	if g.latched {
		return g.mode
	}

	g.held += dt
	if g.held >= g.dwell {
		if g.mode == GazeMove {
			g.mode = GazeIdle
		} else {
			g.mode = GazeMove
		}
		g.held = 0
		g.latched = true
	}
	return g.mode
}
