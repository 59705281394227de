package colormatch

import (
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/grid"
)

// Snapshot is a read-only view of a session for renderers and remote clients.
type Snapshot struct {
	Game      string      `json:"game"`
	Rows      int         `json:"rows"`
	Cols      int         `json:"cols"`
	Cells     [][]Cell    `json:"cells"`
	Remaining int         `json:"remaining"`
	Attempts  int         `json:"attempts"`
	Score     int         `json:"score"`
	Status    core.Status `json:"status"`
	Selected  *grid.Coord `json:"selected,omitempty"`
	Last      *Outcome    `json:"last,omitempty"`
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Game:      GameID,
		Rows:      s.board.Rows(),
		Cols:      s.board.Cols(),
		Cells:     s.board.Cells(),
		Remaining: s.board.Remaining(),
		Attempts:  s.attempts,
		Score:     s.score,
		Status:    s.status,
	}
	if s.selected != nil {
		sel := *s.selected
		snap.Selected = &sel
	}
	if s.last != nil {
		last := *s.last
		snap.Last = &last
	}
	return snap
}
