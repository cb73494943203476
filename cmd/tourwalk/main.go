// tourwalk is the desktop walker: a top-down view of the tour driven from
// the keyboard or a game controller.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"go.uber.org/zap"

	"github.com/Faultbox/xrtour/internal/config"
	"github.com/Faultbox/xrtour/internal/engine/input"
	"github.com/Faultbox/xrtour/internal/engine/renderer"
	"github.com/Faultbox/xrtour/internal/engine/window"
	"github.com/Faultbox/xrtour/internal/game"
	"github.com/Faultbox/xrtour/internal/game/states"
	"github.com/Faultbox/xrtour/internal/logger"
)

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== XR Tour walker ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if err := run(cfg); err != nil {
		logger.Error("walker error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("walker closed normally")
}

func run(cfg *config.Config) error {
	win, err := window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
	})
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	defer win.Close()

	width, height := win.GetSize()
	panel := &renderer.Panel{}
	rend := renderer.New(win.Renderer(), renderer.Config{
		Width:         width,
		Height:        height,
		PixelsPerUnit: cfg.Window.PixelsPerUnit,
	})

	in := input.New()
	defer in.Close()

	session := game.NewSession(cfg, panel)
	manager := states.NewManager()
	manager.Change(states.NewLoadingState(session, states.PathLoader(cfg.Data.Scene, cfg.Data.Registry), manager))
	defer manager.Close()

	host := newHost(cfg, win, in, rend, panel, session)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return game.New(session, manager, host, cfg.Locomotion.MaxFrameDelta).Run(ctx)
}
