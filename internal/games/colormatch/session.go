package colormatch

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tile-arcade/internal/applog"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/grid"
)

// Options configures a color-matching session.
type Options struct {
	Rows      int
	Cols      int
	Tolerance float64
	Scoring   Scoring
}

// DefaultOptions returns the 6×8 board with the classic tolerance and scoring.
func DefaultOptions() Options {
	return Options{
		Rows:      6,
		Cols:      8,
		Tolerance: DefaultTolerance,
		Scoring:   DefaultScoring(),
	}
}

// Outcome describes one resolved selection.
type Outcome struct {
	Attempt int  `json:"attempt"`
	Removed int  `json:"removed"`
	Points  int  `json:"points"`
	Total   int  `json:"total"`
	Cleared bool `json:"cleared"`
}

// Session is the controller of one color-matching game. It owns its board
// exclusively and is mutated only by the caller's goroutine.
type Session struct {
	board     *Board
	rng       *rand.Rand
	tolerance float64
	scoring   Scoring

	attempts int
	score    int
	selected *grid.Coord
	status   core.Status
	last     *Outcome

	logger *log.Logger
}

// NewSession creates a session with a freshly drawn board.
func NewSession(opts Options, rng *rand.Rand) (*Session, error) {
	if err := checkTolerance(opts.Tolerance); err != nil {
		return nil, err
	}
	board, err := NewBoard(opts.Rows, opts.Cols, rng)
	if err != nil {
		return nil, fmt.Errorf("colormatch: %w", err)
	}
	return newSession(board, opts, rng), nil
}

// NewSessionWithBoard creates a session around an existing board. Reset still
// draws random colors from rng.
func NewSessionWithBoard(board *Board, opts Options, rng *rand.Rand) (*Session, error) {
	if err := checkTolerance(opts.Tolerance); err != nil {
		return nil, err
	}
	return newSession(board, opts, rng), nil
}

func newSession(board *Board, opts Options, rng *rand.Rand) *Session {
	return &Session{
		board:     board,
		rng:       rng,
		tolerance: opts.Tolerance,
		scoring:   opts.Scoring,
		status:    core.StatusPlaying,
		logger:    applog.For("colormatch"),
	}
}

// Select marks c as the pending selection. Selecting an eliminated or
// out-of-range cell is rejected and does not consume an attempt.
func (s *Session) Select(c grid.Coord) error {
	if s.status.Terminal() {
		return core.ErrGameOver
	}
	cell, err := s.board.Get(c)
	if err != nil {
		return fmt.Errorf("colormatch: %w", err)
	}
	if cell.Eliminated {
		return fmt.Errorf("colormatch: %v already eliminated: %w", c, core.ErrInvalidSelection)
	}
	s.selected = &c
	return nil
}

// Resolve applies the pending selection, if any: it eliminates similar cells,
// counts the attempt and scores it. The selection is cleared afterward.
func (s *Session) Resolve() (Outcome, bool) {
	if s.selected == nil {
		return Outcome{}, false
	}
	ref := *s.selected
	s.selected = nil

	removed, err := EliminateSimilar(s.board, ref, s.tolerance)
	if err != nil {
		// Select validated ref, so this only happens if the board changed
		// underneath a pending selection.
		s.logger.Debug("selection dropped", "cell", ref, "err", err)
		return Outcome{}, false
	}

	s.attempts++
	points := s.scoring.Delta(removed, s.attempts)
	s.score += points

	out := Outcome{
		Attempt: s.attempts,
		Removed: removed,
		Points:  points,
		Total:   s.score,
	}

	s.logger.Info("attempt resolved",
		"attempt", out.Attempt,
		"removed", out.Removed,
		"points", out.Points,
		"total", out.Total,
	)

	if s.board.Cleared() {
		s.status = core.StatusWin
		out.Cleared = true
		s.logger.Info("board cleared", "score", s.score, "attempts", s.attempts)
	}

	s.last = &out
	return out, true
}

// Apply resolves one external event. Select events are resolved immediately.
func (s *Session) Apply(ev core.Event) (Outcome, error) {
	switch ev.Kind {
	case core.EventNone, "":
		return Outcome{}, nil
	case core.EventReset:
		s.Reset()
		return Outcome{}, nil
	case core.EventSelect:
		if err := s.Select(grid.At(ev.Row, ev.Col)); err != nil {
			return Outcome{}, err
		}
		out, _ := s.Resolve()
		return out, nil
	default:
		return Outcome{}, &core.UnsupportedEventError{Game: GameID, Kind: ev.Kind}
	}
}

// Reset draws a new board and zeroes every counter.
func (s *Session) Reset() {
	s.board.Shuffle(s.rng)
	s.attempts = 0
	s.score = 0
	s.selected = nil
	s.last = nil
	s.status = core.StatusPlaying
	s.logger.Info("new game", "rows", s.board.Rows(), "cols", s.board.Cols())
}

// Board returns the session's board. Callers must treat it as read-only.
func (s *Session) Board() *Board { return s.board }

// Attempts returns the number of resolved selections.
func (s *Session) Attempts() int { return s.attempts }

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Status returns the session state.
func (s *Session) Status() core.Status { return s.status }

// Selected returns the pending selection, if any.
func (s *Session) Selected() (grid.Coord, bool) {
	if s.selected == nil {
		return grid.Coord{}, false
	}
	return *s.selected, true
}

// LastOutcome returns the most recent resolved selection, if any.
func (s *Session) LastOutcome() (Outcome, bool) {
	if s.last == nil {
		return Outcome{}, false
	}
	return *s.last, true
}

// Tolerance returns the match tolerance in use.
func (s *Session) Tolerance() float64 { return s.tolerance }

// IsRejection reports whether err is an input-validation rejection rather
// than a programming error.
func IsRejection(err error) bool {
	return errors.Is(err, core.ErrOutOfBounds) ||
		errors.Is(err, core.ErrInvalidSelection) ||
		errors.Is(err, core.ErrGameOver)
}
