package control

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/xrtour/pkg/math"
)

func pose(pitchDeg float64) Pose {
	return Pose{Orientation: math.HeadQuat(0.3, pitchDeg*gomath.Pi/180)}
}

func TestDwellGazeToggles(t *testing.T) {
	g := NewDwellGaze(DefaultGazePitchThreshold, 1.0)

	// Looking ahead never toggles.
	for i := 0; i < 50; i++ {
		if g.Update(pose(0), 0.1) != GazeIdle {
			t.Fatal("expected idle while looking ahead")
		}
	}

	// Looking down for the dwell time starts movement.
	var mode GazeMode
	for i := 0; i < 11; i++ {
		mode = g.Update(pose(-60), 0.1)
	}
	if mode != GazeMove {
		t.Fatalf("expected move after dwell, got %v", mode)
	}

	// Keeping the head down does not toggle again.
	for i := 0; i < 30; i++ {
		mode = g.Update(pose(-60), 0.1)
	}
	if mode != GazeMove {
		t.Fatalf("expected move to latch while head stays down, got %v", mode)
	}

	// Looking up keeps moving; a second dwell stops.
	if g.Update(pose(10), 0.1) != GazeMove {
		t.Fatal("expected move to persist when looking up")
	}
	for i := 0; i < 11; i++ {
		mode = g.Update(pose(-60), 0.1)
	}
	if mode != GazeIdle {
		t.Errorf("expected idle after second dwell, got %v", mode)
	}
}

func TestDwellGazeInterruptedDwell(t *testing.T) {
	g := NewDwellGaze(DefaultGazePitchThreshold, 1.0)
	for i := 0; i < 8; i++ {
		g.Update(pose(-60), 0.1)
	}
	if p := g.Progress(); p < 0.75 || p > 0.85 {
		t.Errorf("expected progress ~0.8, got %v", p)
	}

	g.Update(pose(0), 0.1)
	if g.Progress() != 0 {
		t.Errorf("expected progress reset, got %v", g.Progress())
	}
	for i := 0; i < 8; i++ {
		if g.Update(pose(-60), 0.1) != GazeIdle {
			t.Fatal("expected interrupted dwell to start over")
		}
	}
}
