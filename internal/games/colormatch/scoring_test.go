package colormatch

import "testing"

func TestScoringDelta(t *testing.T) {
	s := DefaultScoring()

	tests := []struct {
		name     string
		removed  int
		attempt  int
		expected int
	}{
		{"first attempt", 5, 1, 50},
		{"second attempt", 4, 2, 36},
		{"tenth attempt", 2, 10, 2},
		{"floor reached", 3, 11, 3},
		{"far past floor", 7, 40, 7},
		{"nothing removed", 0, 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Delta(tc.removed, tc.attempt); got != tc.expected {
				t.Errorf("Delta(%d, %d) = %d, expected %d", tc.removed, tc.attempt, got, tc.expected)
			}
		})
	}
}

func TestPointsPerItemDecreasesToFloor(t *testing.T) {
	s := Scoring{BasePoints: 10, PenaltyPerAttempt: 3}

	prev := s.PointsPerItem(1)
	for attempt := 2; attempt < 10; attempt++ {
		got := s.PointsPerItem(attempt)
		if got > prev {
			t.Fatalf("points rose from %d to %d at attempt %d", prev, got, attempt)
		}
		if got < 1 {
			t.Fatalf("points fell below the floor at attempt %d", attempt)
		}
		prev = got
	}
	if s.PointsPerItem(5) != 1 {
		t.Errorf("PointsPerItem(5) = %d, expected floor of 1", s.PointsPerItem(5))
	}
}
