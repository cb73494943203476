package control

// Input is the per-frame input the arbiter needs.
type Input struct {
	Dt     float64
	Select [2]bool // select (trigger) held, per controller
	Head   Pose
}

// SelectHeld reports whether any controller's select is held.
func (in Input) SelectHeld() bool {
	return in.Select[0] || in.Select[1]
}

// Arbiter combines controller and gaze input into a single move decision.
type Arbiter struct {
	fallback *Fallback
	gaze     Gaze
	gazeMode GazeMode
}

// NewArbiter creates an arbiter. gaze is polled only once the fallback
// resolves to gaze mode.
func NewArbiter(fallback *Fallback, gaze Gaze) *Arbiter {
	return &Arbiter{fallback: fallback, gaze: gaze}
}

// Fallback returns the arbiter's input-mode resolver.
func (a *Arbiter) Fallback() *Fallback {
	return a.fallback
}

// GazeMode returns the gaze state sampled on the last Tick.
func (a *Arbiter) GazeMode() GazeMode {
	return a.gazeMode
}

// Tick advances the fallback countdown, polls gaze when active, and reports
// whether the rig should move this frame.
func (a *Arbiter) Tick(in Input) bool {
	a.fallback.Advance(in.Dt)

	a.gazeMode = GazeIdle
	if a.fallback.Mode() == ModeGaze && a.gaze != nil {
		a.gazeMode = a.gaze.Update(in.Head, in.Dt)
	}
	return a.ShouldMove(in.SelectHeld())
}

// ShouldMove reports whether to move given the select state and the gaze
// state sampled on the last Tick.
func (a *Arbiter) ShouldMove(selectHeld bool) bool {
	if selectHeld {
		return true
	}
	return a.fallback.Mode() == ModeGaze && a.gazeMode == GazeMove
}
