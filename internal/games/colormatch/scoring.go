package colormatch

// Default scoring constants.
const (
	DefaultBasePoints        = 10
	DefaultPenaltyPerAttempt = 1
	DefaultTolerance         = 0.2
)

// Scoring decays the value of each removed cell with every attempt, floored
// at one point per cell.
type Scoring struct {
	BasePoints        int
	PenaltyPerAttempt int
}

// DefaultScoring returns the classic 10 points, minus 1 per attempt.
func DefaultScoring() Scoring {
	return Scoring{
		BasePoints:        DefaultBasePoints,
		PenaltyPerAttempt: DefaultPenaltyPerAttempt,
	}
}

// PointsPerItem returns the value of one removed cell on the given 1-based
// attempt.
func (s Scoring) PointsPerItem(attempt int) int {
	if attempt < 1 {
		attempt = 1
	}
	return max(s.BasePoints-(attempt-1)*s.PenaltyPerAttempt, 1)
}

// Delta returns the score earned by removing removed cells on attempt.
func (s Scoring) Delta(removed, attempt int) int {
	return removed * s.PointsPerItem(attempt)
}
