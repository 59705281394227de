package core

import "errors"

// Status is the session state shared by every grid game.
// Transitions only happen in response to an input event; Win and Loss are
// sticky until the game is explicitly reset.
type Status int

const (
	StatusPlaying Status = iota
	StatusWin
	StatusLoss
)

// String returns the lowercase name used in snapshots and storage.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "playing"
	case StatusWin:
		return "win"
	case StatusLoss:
		return "loss"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session has ended.
func (s Status) Terminal() bool {
	return s == StatusWin || s == StatusLoss
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Errors returned by game cores. All of them are input-validation outcomes:
// the offending event is rejected and state is left unchanged.
var (
	// ErrOutOfBounds is returned for a coordinate outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrInvalidSelection is returned when selecting an already eliminated cell.
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrConfigurationMissing is returned when layout data is absent or unusable.
	// It is fatal at startup, never a runtime condition.
	ErrConfigurationMissing = errors.New("configuration missing")

	// ErrInvalidMove is returned for a movement delta that is not a unit step.
	ErrInvalidMove = errors.New("invalid move")

	// ErrBlocked is returned when the target cell is not walkable.
	ErrBlocked = errors.New("cell not walkable")

	// ErrInvalidTolerance is returned for a match tolerance outside [0, 1].
	ErrInvalidTolerance = errors.New("tolerance out of range")

	// ErrGameOver is returned for events received in a terminal state.
	ErrGameOver = errors.New("game is over")
)
