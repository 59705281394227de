package isomap

import (
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

// headless adapts a Session to registry.Session for remote play.
type headless struct {
	*Session
}

// NewHeadless creates a run on the configured map. The map is fixed, so the
// seed is unused.
func NewHeadless(int64) (registry.Session, error) {
	s, err := NewSession(layoutFromConfig(loadConfig()))
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

// Snapshot returns the run snapshot.
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
