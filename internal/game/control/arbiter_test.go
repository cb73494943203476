package control

import (
	"testing"
	"time"
)

// scriptedGaze reports a fixed mode and counts polls.
type scriptedGaze struct {
	mode  GazeMode
	polls int
}

func (g *scriptedGaze) Update(Pose, float64) GazeMode {
	g.polls++
	return g.mode
}

func arbiterIn(mode Mode, gaze Gaze) *Arbiter {
	f := NewFallback(time.Second)
	f.Start()
	switch mode {
	case ModeController:
		f.ControllerConnected()
	case ModeGaze:
		f.Advance(2)
	}
	return NewArbiter(f, gaze)
}

func TestArbiterShouldMove(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		gaze     GazeMode
		selected bool
		want     bool
	}{
		{"select held, controller mode", ModeController, GazeIdle, true, true},
		{"select held, gaze mode idle", ModeGaze, GazeIdle, true, true},
		{"select held, undetermined", ModeUndetermined, GazeIdle, true, true},
		{"select held and gaze move", ModeGaze, GazeMove, true, true},
		{"gaze move without select", ModeGaze, GazeMove, false, true},
		{"gaze idle without select", ModeGaze, GazeIdle, false, false},
		{"controller mode without select", ModeController, GazeMove, false, false},
		{"undetermined without select", ModeUndetermined, GazeMove, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := arbiterIn(tt.mode, &scriptedGaze{mode: tt.gaze})
			got := a.Tick(Input{Dt: 0.016, Select: [2]bool{false, tt.selected}})
			if got != tt.want {
				t.Errorf("expected move=%v, got %v", tt.want, got)
			}
		})
	}
}

func TestArbiterPollsGazeOnlyInGazeMode(t *testing.T) {
	g := &scriptedGaze{mode: GazeMove}
	a := arbiterIn(ModeController, g)
	a.Tick(Input{Dt: 0.016})
	if g.polls != 0 {
		t.Errorf("expected no gaze polls in controller mode, got %d", g.polls)
	}

	g = &scriptedGaze{mode: GazeMove}
	a = arbiterIn(ModeGaze, g)
	for i := 0; i < 3; i++ {
		a.Tick(Input{Dt: 0.016})
	}
	if g.polls != 3 {
		t.Errorf("expected one gaze poll per frame, got %d", g.polls)
	}
}

func TestArbiterTickDrivesFallback(t *testing.T) {
	f := NewFallback(500 * time.Millisecond)
	f.Start()
	a := NewArbiter(f, &scriptedGaze{mode: GazeMove})

	if a.Tick(Input{Dt: 0.25}) {
		t.Error("expected no movement before the fallback fires")
	}
	if !a.Tick(Input{Dt: 0.3}) {
		t.Error("expected gaze movement once the fallback fires")
	}
	if a.Fallback().Mode() != ModeGaze {
		t.Errorf("expected gaze mode, got %v", a.Fallback().Mode())
	}
}
