package game

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/xrtour/internal/logger"
)

// Host feeds frames in and shows views. The desktop walker and the scripted
// replay are both hosts.
type Host interface {
	// Poll returns the next frame, or false when the host wants to stop.
	Poll() (Frame, bool)
	// Present shows the state after a frame.
	Present(v View)
}

// Driver advances the tour by one frame. states.Manager is the usual driver.
type Driver interface {
	Update(f Frame) error
}

// Game is the main loop.
type Game struct {
	session  *Session
	driver   Driver
	host     Host
	maxDelta float64
	running  bool
}

// New creates a game loop. maxDelta clamps each frame's dt; 0 disables it.
func New(session *Session, driver Driver, host Host, maxDelta time.Duration) *Game {
	return &Game{
		session:  session,
		driver:   driver,
		host:     host,
		maxDelta: maxDelta.Seconds(),
	}
}

// Run loops until the host stops, ctx is cancelled, or the driver fails.
func (g *Game) Run(ctx context.Context) error {
	g.running = true
	defer func() { g.running = false }()

	frameCount := 0
	elapsed := 0.0

	logger.Info("starting tour loop")

	for {
		select {
		case <-ctx.Done():
			logger.Info("tour loop cancelled")
			return ctx.Err()
		default:
		}

		f, ok := g.host.Poll()
		if !ok {
			logger.Info("host stopped, leaving tour loop")
			return nil
		}
		f.Dt = g.clamp(f.Dt)

		if err := g.driver.Update(f); err != nil {
			return fmt.Errorf("update error: %w", err)
		}
		g.host.Present(g.session.View())

		frameCount++
		elapsed += f.Dt
		if elapsed >= 1 {
			logger.Debug("fps", zap.Int("count", frameCount), zap.Float64("dt", f.Dt))
			frameCount = 0
			elapsed = 0
		}
	}
}

// Running reports whether Run is in progress.
func (g *Game) Running() bool {
	return g.running
}

func (g *Game) clamp(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if g.maxDelta > 0 && dt > g.maxDelta {
		return g.maxDelta
	}
	return dt
}
