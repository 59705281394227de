package core

import "fmt"

// EventKind names the single external event a game core resolves per tick.
type EventKind string

const (
	EventNone   EventKind = "none"
	EventSelect EventKind = "select"
	EventMove   EventKind = "move"
	EventReset  EventKind = "reset"
)

// Event is one discrete input for a grid game: a cell selection, a one-cell
// move or a reset. Edge detection (one move per key press) happens before an
// Event is built, so a core only ever sees whole events.
type Event struct {
	Kind EventKind `json:"type"`
	Row  int       `json:"row,omitempty"`
	Col  int       `json:"col,omitempty"`
	DX   int       `json:"dx,omitempty"`
	DY   int       `json:"dy,omitempty"`
}

// Select builds a selection event.
func Select(row, col int) Event {
	return Event{Kind: EventSelect, Row: row, Col: col}
}

// Move builds a movement event.
func Move(dx, dy int) Event {
	return Event{Kind: EventMove, DX: dx, DY: dy}
}

// Reset builds a reset event.
func Reset() Event {
	return Event{Kind: EventReset}
}

// String returns a compact description for logs.
func (e Event) String() string {
	switch e.Kind {
	case EventSelect:
		return fmt.Sprintf("select(%d,%d)", e.Row, e.Col)
	case EventMove:
		return fmt.Sprintf("move(%d,%d)", e.DX, e.DY)
	case "":
		return string(EventNone)
	default:
		return string(e.Kind)
	}
}

// UnsupportedEventError is returned when a game receives an event kind it
// does not understand (e.g. a move sent to the color-matching game).
type UnsupportedEventError struct {
	Game string
	Kind EventKind
}

func (e *UnsupportedEventError) Error() string {
	return fmt.Sprintf("%s: unsupported event %q", e.Game, e.Kind)
}
