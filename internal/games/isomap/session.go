package isomap

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-arcade/internal/applog"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/grid"
)

// MoveOutcome describes one accepted move.
type MoveOutcome struct {
	From     grid.Coord  `json:"from"`
	To       grid.Coord  `json:"to"`
	Occupant Occupant    `json:"occupant"`
	Status   core.Status `json:"status"`

	// ExitLocked is set when the actor reached the exit without meeting
	// the coin and key requirements.
	ExitLocked bool `json:"exit_locked,omitempty"`
}

// Session is one run through a world. It has no reset: a new run is a new
// session.
type Session struct {
	world       *World
	actor       Actor
	targetCoins int
	moves       int
	status      core.Status
	last        *MoveOutcome

	logger *log.Logger
}

// NewSession places the actor at the layout's start.
func NewSession(layout Layout) (*Session, error) {
	if layout.Lives <= 0 {
		return nil, fmt.Errorf("isomap: lives %d: %w", layout.Lives, core.ErrConfigurationMissing)
	}
	world, err := NewWorld(layout)
	if err != nil {
		return nil, err
	}

	s := &Session{
		world:       world,
		actor:       Actor{Pos: layout.Start, Lives: layout.Lives},
		targetCoins: layout.TargetCoins,
		status:      core.StatusPlaying,
		logger:      applog.For("isomap"),
	}
	s.logger.Info("new run",
		"size", fmt.Sprintf("%dx%d", world.Rows(), world.Cols()),
		"start", layout.Start,
		"coins", world.Count(OccupantCoin),
		"target", layout.TargetCoins,
	)
	return s, nil
}

// Move steps the actor one cell. The delta must be a single orthogonal step.
// A rejected move leaves the session unchanged.
func (s *Session) Move(dx, dy int) (MoveOutcome, error) {
	if s.status.Terminal() {
		return MoveOutcome{}, core.ErrGameOver
	}
	if core.Abs(dx)+core.Abs(dy) != 1 {
		return MoveOutcome{}, fmt.Errorf("isomap: move (%d,%d): %w", dx, dy, core.ErrInvalidMove)
	}

	from := s.actor.Pos
	to := from.Add(dy, dx)
	cell, err := s.world.Get(to)
	if err != nil {
		return MoveOutcome{}, fmt.Errorf("isomap: %w", err)
	}
	if !cell.Walkable {
		return MoveOutcome{}, fmt.Errorf("isomap: %v terrain %d: %w", to, cell.TerrainID, core.ErrBlocked)
	}

	s.actor.Pos = to
	s.moves++
	out := MoveOutcome{From: from, To: to, Occupant: s.world.take(to)}
	s.resolve(&out)
	out.Status = s.status
	s.last = &out
	return out, nil
}

// resolve applies the effect of the occupant the actor just stepped on.
func (s *Session) resolve(out *MoveOutcome) {
	switch out.Occupant {
	case OccupantCoin:
		s.actor.Inventory.Coins++
		s.logger.Info("coin collected", "coins", s.actor.Inventory.Coins, "target", s.targetCoins)
	case OccupantKey:
		s.actor.Inventory.HasKey = true
		s.logger.Info("key collected")
	case OccupantTrap:
		s.actor.Lives--
		s.logger.Info("trap", "lives", s.actor.Lives)
		if s.actor.Lives <= 0 {
			s.status = core.StatusLoss
			s.logger.Info("game over", "moves", s.moves)
		}
	case OccupantExit:
		if s.actor.Inventory.Coins >= s.targetCoins && s.actor.Inventory.HasKey {
			s.status = core.StatusWin
			s.logger.Info("exit reached", "moves", s.moves, "coins", s.actor.Inventory.Coins)
			return
		}
		out.ExitLocked = true
		s.logger.Debug("exit locked", "coins", s.actor.Inventory.Coins, "has_key", s.actor.Inventory.HasKey)
	}
}

// Apply resolves one external event. Only moves are understood.
func (s *Session) Apply(ev core.Event) (MoveOutcome, error) {
	switch ev.Kind {
	case core.EventNone, "":
		return MoveOutcome{}, nil
	case core.EventMove:
		return s.Move(ev.DX, ev.DY)
	default:
		return MoveOutcome{}, &core.UnsupportedEventError{Game: GameID, Kind: ev.Kind}
	}
}

// World returns the session's world. Callers must treat it as read-only.
func (s *Session) World() *World { return s.world }

// Actor returns a copy of the actor.
func (s *Session) Actor() Actor { return s.actor }

// TargetCoins returns the coins required to open the exit.
func (s *Session) TargetCoins() int { return s.targetCoins }

// Moves returns the number of accepted moves.
func (s *Session) Moves() int { return s.moves }

// Status returns the session state.
func (s *Session) Status() core.Status { return s.status }

// LastOutcome returns the most recent accepted move, if any.
func (s *Session) LastOutcome() (MoveOutcome, bool) {
	if s.last == nil {
		return MoveOutcome{}, false
	}
	return *s.last, true
}

// Score ranks a run: coins are worth 100, each remaining life 50, and a
// win adds 500.
func (s *Session) Score() int {
	score := s.actor.Inventory.Coins*100 + s.actor.Lives*50
	if s.status == core.StatusWin {
		score += 500
	}
	return score
}
