package states

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/xrtour/internal/game"
	"github.com/Faultbox/xrtour/internal/logger"
)

// Loader loads tour assets. It should return promptly once ctx is cancelled.
type Loader func(ctx context.Context) (game.Assets, error)

// PathLoader returns a Loader reading the scene and registry at the given paths.
func PathLoader(scenePath, registryPath string) Loader {
	return func(ctx context.Context) (game.Assets, error) {
		return game.LoadAssets(ctx, scenePath, registryPath)
	}
}

type loadResult struct {
	assets game.Assets
	err    error
}

// LoadingState loads assets in the background while the session already
// ticks. The rig cannot move until the assets arrive.
type LoadingState struct {
	session *game.Session
	load    Loader
	manager *Manager

	StatusMsg string
	ErrorMsg  string

	cancel    context.CancelFunc
	done      chan loadResult
	startTime time.Time
}

// NewLoadingState creates a loading state that switches to touring when load
// succeeds.
func NewLoadingState(session *game.Session, load Loader, manager *Manager) *LoadingState {
	return &LoadingState{
		session:   session,
		load:      load,
		manager:   manager,
		StatusMsg: "Loading tour...",
	}
}

// Name implements State.
func (s *LoadingState) Name() string {
	return "loading"
}

// Enter starts the session and the background load.
func (s *LoadingState) Enter() error {
	s.startTime = time.Now()
	s.ErrorMsg = ""
	s.session.Start()

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan loadResult, 1)

	logger.Info("entering LoadingState")

	go func() {
		assets, err := s.load(ctx)
		s.done <- loadResult{assets: assets, err: err}
	}()
	return nil
}

// Exit cancels a load still in flight.
func (s *LoadingState) Exit() error {
	if s.cancel != nil {
		s.cancel()
	}
	return nil
}

// Update ticks the session and installs the assets once they are loaded.
func (s *LoadingState) Update(f game.Frame) error {
	s.session.Tick(f)

	select {
	case res := <-s.done:
		if res.err != nil {
			s.ErrorMsg = res.err.Error()
			return fmt.Errorf("loading tour: %w", res.err)
		}
		s.session.InstallAssets(res.assets)
		s.StatusMsg = "Ready"
		logger.Info("tour loaded", zap.Duration("took", time.Since(s.startTime)))
		s.manager.Change(NewTouringState(s.session))
	default:
	}
	return nil
}
