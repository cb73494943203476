package states

import (
	"go.uber.org/zap"

	"github.com/Faultbox/xrtour/internal/game"
	"github.com/Faultbox/xrtour/internal/logger"
)

// TouringState runs the walk once assets are installed.
type TouringState struct {
	session *game.Session

	// Resets counts boundary resets since entering the state.
	Resets int
}

// NewTouringState creates the touring state.
func NewTouringState(session *game.Session) *TouringState {
	return &TouringState{session: session}
}

// Name implements State.
func (s *TouringState) Name() string {
	return "touring"
}

// Enter is called when entering this state.
func (s *TouringState) Enter() error {
	logger.Info("entering TouringState", zap.Stringer("mode", s.session.Mode()))
	return nil
}

// Exit is called when leaving this state.
func (s *TouringState) Exit() error {
	return nil
}

// Update is called every frame.
func (s *TouringState) Update(f game.Frame) error {
	if v := s.session.Tick(f); v.Reset {
		s.Resets++
	}
	return nil
}
