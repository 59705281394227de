package isomap

import "github.com/vovakirdan/tile-arcade/internal/core"

// Snapshot is a read-only view of a run.
type Snapshot struct {
	Game        string       `json:"game"`
	Rows        int          `json:"rows"`
	Cols        int          `json:"cols"`
	Cells       [][]Cell     `json:"cells"`
	Actor       Actor        `json:"actor"`
	TargetCoins int          `json:"target_coins"`
	Moves       int          `json:"moves"`
	Score       int          `json:"score"`
	Status      core.Status  `json:"status"`
	Last        *MoveOutcome `json:"last,omitempty"`
}

// Snapshot captures the current run.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Game:        GameID,
		Rows:        s.world.Rows(),
		Cols:        s.world.Cols(),
		Cells:       s.world.Cells(),
		Actor:       s.actor,
		TargetCoins: s.targetCoins,
		Moves:       s.moves,
		Score:       s.Score(),
		Status:      s.status,
	}
	if s.last != nil {
		last := *s.last
		snap.Last = &last
	}
	return snap
}
