// Package config handles tour configuration loading and management.
package config

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// Config holds all tour settings.
type Config struct {
	Window     WindowConfig     `yaml:"window"`
	Locomotion LocomotionConfig `yaml:"locomotion"`
	Input      InputConfig      `yaml:"input"`
	Proximity  ProximityConfig  `yaml:"proximity"`
	Boundary   BoundaryConfig   `yaml:"boundary"`
	Rig        RigConfig        `yaml:"rig"`
	Data       DataConfig       `yaml:"data"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// WindowConfig holds settings for the desktop walker window.
type WindowConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Fullscreen    bool    `yaml:"fullscreen"`
	VSync         bool    `yaml:"vsync"`
	FPSLimit      int     `yaml:"fps_limit"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"` // top-down map zoom
}

// LocomotionConfig holds walking and collision settings.
type LocomotionConfig struct {
	Speed             float64       `yaml:"speed"`
	WallClearance     float64       `yaml:"wall_clearance"`
	EyeHeight         float64       `yaml:"eye_height"`
	GroundProbeHeight float64       `yaml:"ground_probe_height"`
	MaxFrameDelta     time.Duration `yaml:"max_frame_delta"` // 0 disables clamping
}

// InputConfig holds controller and gaze fallback settings.
type InputConfig struct {
	ControllerTimeout  time.Duration `yaml:"controller_timeout"`
	GazePitchThreshold float64       `yaml:"gaze_pitch_threshold"` // degrees, negative is down
	GazeDwell          time.Duration `yaml:"gaze_dwell"`
}

// ProximityConfig holds point-of-interest trigger settings.
type ProximityConfig struct {
	TriggerRadius float64 `yaml:"trigger_radius"`
	BlockedRadius float64 `yaml:"blocked_radius"`
	OverlayLift   float64 `yaml:"overlay_lift"`
	BlockedMarker string  `yaml:"blocked_marker"`
	BlockedTitle  string  `yaml:"blocked_title"`
	BlockedBody   string  `yaml:"blocked_body"`
}

// BoundaryConfig holds the tour area limits.
type BoundaryConfig struct {
	Radius float64    `yaml:"radius"`
	Spawn  mgl64.Vec3 `yaml:"spawn"`
}

// RigConfig holds the viewpoint geometry.
type RigConfig struct {
	ViewOffset mgl64.Vec3 `yaml:"view_offset"`
}

// DataConfig holds tour data file paths.
type DataConfig struct {
	Scene    string `yaml:"scene"`    // scene description (YAML)
	Registry string `yaml:"registry"` // points of interest (JSON or YAML)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:         1280,
			Height:        720,
			Fullscreen:    false,
			VSync:         true,
			FPSLimit:      0,
			PixelsPerUnit: 12,
		},
		Locomotion: LocomotionConfig{
			Speed:             2.0,
			WallClearance:     1.3,
			EyeHeight:         1.0,
			GroundProbeHeight: 1.5,
			MaxFrameDelta:     100 * time.Millisecond,
		},
		Input: InputConfig{
			ControllerTimeout:  2 * time.Second,
			GazePitchThreshold: -35,
			GazeDwell:          1500 * time.Millisecond,
		},
		Proximity: ProximityConfig{
			TriggerRadius: 3.0,
			BlockedRadius: 2.0,
			OverlayLift:   1.3,
			BlockedMarker: "NoEntry",
			BlockedTitle:  "No entry",
			BlockedBody:   "This passage is closed to visitors.",
		},
		Boundary: BoundaryConfig{
			Radius: 100,
			Spawn:  mgl64.Vec3{0, 0, 10},
		},
		Rig: RigConfig{
			ViewOffset: mgl64.Vec3{0, 1.6, 0},
		},
		Data: DataConfig{
			Scene:    "tour.yaml",
			Registry: "college.json",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
