// Package replay drives a session from a scripted walk instead of live input.
package replay

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/xrtour/internal/game"
	"github.com/Faultbox/xrtour/internal/game/control"
	"github.com/Faultbox/xrtour/pkg/math"
)

// DefaultDt is the frame time used when a script gives none.
const DefaultDt = 1.0 / 60

// Step is a run of identical frames.
type Step struct {
	Repeat  int     `yaml:"repeat"`  // number of frames, at least 1
	Dt      float64 `yaml:"dt"`      // seconds per frame; 0 uses the script default
	Select  [2]bool `yaml:"select"`  // left, right
	Yaw     float64 `yaml:"yaw"`     // head yaw in degrees, positive turns left
	Pitch   float64 `yaml:"pitch"`   // head pitch in degrees, negative looks down
	Connect bool    `yaml:"connect"` // a controller connects on the step's first frame
}

// Script is a named sequence of steps.
type Script struct {
	Name  string  `yaml:"name"`
	Dt    float64 `yaml:"dt"`
	Steps []Step  `yaml:"steps"`
}

// Load reads a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a script document.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.Dt < 0 {
		return nil, fmt.Errorf("negative dt %v", s.Dt)
	}
	for i, st := range s.Steps {
		if st.Repeat < 0 || st.Dt < 0 {
			return nil, fmt.Errorf("step %d: negative repeat or dt", i)
		}
	}
	return &s, nil
}

// Frames expands the script into one frame per simulation step.
func (s *Script) Frames() []game.Frame {
	dt := s.Dt
	if dt == 0 {
		dt = DefaultDt
	}

	var frames []game.Frame
	for _, st := range s.Steps {
		n := st.Repeat
		if n == 0 {
			n = 1
		}
		stepDt := st.Dt
		if stepDt == 0 {
			stepDt = dt
		}
		head := control.Pose{
			Orientation: math.HeadQuat(mgl64.DegToRad(st.Yaw), mgl64.DegToRad(st.Pitch)),
		}
		for i := 0; i < n; i++ {
			frames = append(frames, game.Frame{
				Dt:                  stepDt,
				Select:              st.Select,
				Head:                head,
				ControllerConnected: st.Connect && i == 0,
			})
		}
	}
	return frames
}
