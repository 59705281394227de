package colormatch

import (
	"math/rand"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

// headless adapts a Session to registry.Session for remote play.
type headless struct {
	*Session
}

// NewHeadless creates a session configured like the arcade game.
func NewHeadless(seed int64) (registry.Session, error) {
	s, err := NewSession(optionsFromConfig(loadConfig()), rand.New(rand.NewSource(seed)))
	if err != nil {
		return nil, err
	}
	return headless{Session: s}, nil
}

// Apply resolves one event.
func (h headless) Apply(ev core.Event) error {
	_, err := h.Session.Apply(ev)
	return err
}

// Snapshot returns the session snapshot.
func (h headless) Snapshot() any {
	return h.Session.Snapshot()
}

// State returns the current game state.
func (h headless) State() core.GameState {
	status := h.Session.Status()
	return core.GameState{
		Score:    h.Session.Score(),
		GameOver: status.Terminal(),
		Status:   status,
	}
}
