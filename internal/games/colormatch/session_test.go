package colormatch

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/grid"
)

func newTestSession(t *testing.T, colors [][]RGB, tolerance float64) *Session {
	t.Helper()
	opts := DefaultOptions()
	opts.Tolerance = tolerance
	s, err := NewSessionWithBoard(mustBoard(t, colors), opts, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("NewSessionWithBoard() failed: %v", err)
	}
	return s
}

func TestSessionResolveScoresAndClearsSelection(t *testing.T) {
	s := newTestSession(t, [][]RGB{
		{red, red, red, red},
		{red, green, blue, black},
	}, 0)

	if err := s.Select(grid.At(0, 0)); err != nil {
		t.Fatalf("Select() failed: %v", err)
	}
	if _, ok := s.Selected(); !ok {
		t.Fatal("selection should be pending before Resolve")
	}

	out, ok := s.Resolve()
	if !ok {
		t.Fatal("Resolve() should resolve the pending selection")
	}
	if out.Attempt != 1 || out.Removed != 5 || out.Points != 50 || out.Total != 50 {
		t.Errorf("outcome = %+v, expected attempt 1 removing 5 for 50", out)
	}
	if _, ok := s.Selected(); ok {
		t.Error("selection should be cleared after Resolve")
	}
	if s.Status() != core.StatusPlaying {
		t.Errorf("status = %v, expected playing", s.Status())
	}

	if _, ok := s.Resolve(); ok {
		t.Error("Resolve() without a selection should do nothing")
	}
	if s.Attempts() != 1 {
		t.Errorf("attempts = %d, expected 1", s.Attempts())
	}
}

func TestSessionRejectedSelectionDoesNotConsumeAttempt(t *testing.T) {
	s := newTestSession(t, [][]RGB{{red, green}}, 0)

	if _, err := s.Apply(core.Select(0, 0)); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		ev   core.Event
		err  error
	}{
		{"eliminated cell", core.Select(0, 0), core.ErrInvalidSelection},
		{"row out of range", core.Select(1, 0), core.ErrOutOfBounds},
		{"negative col", core.Select(0, -1), core.ErrOutOfBounds},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.Apply(tc.ev)
			if !errors.Is(err, tc.err) {
				t.Errorf("Apply(%v) error = %v, expected %v", tc.ev, err, tc.err)
			}
			if !IsRejection(err) {
				t.Errorf("%v should be a rejection", err)
			}
			if s.Attempts() != 1 || s.Score() != 10 {
				t.Errorf("state changed: attempts=%d score=%d", s.Attempts(), s.Score())
			}
		})
	}
}

func TestSessionWinIsStickyUntilReset(t *testing.T) {
	s := newTestSession(t, [][]RGB{{red, red2}, {red, red2}}, 1)

	out, err := s.Apply(core.Select(1, 1))
	if err != nil {
		t.Fatal(err)
	}
	if !out.Cleared || s.Status() != core.StatusWin {
		t.Fatalf("expected win after clearing the board, got %+v status=%v", out, s.Status())
	}

	if _, err := s.Apply(core.Select(0, 0)); !errors.Is(err, core.ErrGameOver) {
		t.Errorf("select after win error = %v, expected ErrGameOver", err)
	}
	if s.Status() != core.StatusWin {
		t.Error("win must be sticky")
	}

	if _, err := s.Apply(core.Reset()); err != nil {
		t.Fatal(err)
	}
	if s.Status() != core.StatusPlaying || s.Attempts() != 0 || s.Score() != 0 {
		t.Errorf("reset state: status=%v attempts=%d score=%d", s.Status(), s.Attempts(), s.Score())
	}
	if s.Board().Remaining() != 4 {
		t.Errorf("reset should restore every cell, %d remaining", s.Board().Remaining())
	}
	if _, ok := s.LastOutcome(); ok {
		t.Error("reset should clear the last outcome")
	}
}

func TestSessionScoreAcrossAttempts(t *testing.T) {
	colors := make([][]RGB, 1)
	for i := range 12 {
		// Twelve distinct grays, one per attempt.
		v := float64(i*20) / 255
		colors[0] = append(colors[0], RGB{R: v, G: v, B: v})
	}
	s := newTestSession(t, colors, 0)

	expected := 0
	for i := range 12 {
		out, err := s.Apply(core.Select(0, i))
		if err != nil {
			t.Fatalf("attempt %d: %v", i+1, err)
		}
		expected += max(10-i, 1)
		if out.Total != expected {
			t.Fatalf("attempt %d total = %d, expected %d", i+1, out.Total, expected)
		}
	}
	if s.Status() != core.StatusWin {
		t.Errorf("status = %v after clearing, expected win", s.Status())
	}
}

func TestSessionUnsupportedEvent(t *testing.T) {
	s := newTestSession(t, [][]RGB{{red}}, 0)

	var unsupported *core.UnsupportedEventError
	if _, err := s.Apply(core.Move(1, 0)); !errors.As(err, &unsupported) {
		t.Errorf("error = %v, expected UnsupportedEventError", err)
	}
	if _, err := s.Apply(core.Event{}); err != nil {
		t.Errorf("empty event should be a no-op, got %v", err)
	}
}

func TestNewSessionValidatesOptions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	opts := DefaultOptions()
	opts.Tolerance = -0.1
	if _, err := NewSession(opts, rng); !errors.Is(err, core.ErrInvalidTolerance) {
		t.Errorf("error = %v, expected ErrInvalidTolerance", err)
	}

	opts = DefaultOptions()
	opts.Tolerance = math.NaN()
	if _, err := NewSession(opts, rng); !errors.Is(err, core.ErrInvalidTolerance) {
		t.Errorf("NaN tolerance error = %v, expected ErrInvalidTolerance", err)
	}

	opts = DefaultOptions()
	opts.Rows = 0
	if _, err := NewSession(opts, rng); !errors.Is(err, core.ErrConfigurationMissing) {
		t.Errorf("error = %v, expected ErrConfigurationMissing", err)
	}
}

func TestSnapshotIsReadOnly(t *testing.T) {
	s := newTestSession(t, [][]RGB{{red, green}}, 0)
	if _, err := s.Apply(core.Select(0, 0)); err != nil {
		t.Fatal(err)
	}

	snap := s.Snapshot()
	if snap.Attempts != 1 || snap.Remaining != 1 || snap.Last == nil || snap.Last.Removed != 1 {
		t.Errorf("snapshot = %+v", snap)
	}

	snap.Cells[0][1].Eliminated = true
	if s.Board().Remaining() != 1 {
		t.Error("mutating a snapshot must not affect the session")
	}
}
