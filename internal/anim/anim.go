// Package anim holds presentation-only animation state: a frame-rate gate
// and a sprite-sheet cursor. Nothing here affects game rules.
package anim

import "time"

// FrameGate lets a frame advance at most Rate times per second.
type FrameGate struct {
	Rate float64
	last time.Duration
}

// NewFrameGate creates a gate for rate frames per second.
func NewFrameGate(rate float64) FrameGate {
	return FrameGate{Rate: rate}
}

// Interval returns the minimum time between two frames.
func (g FrameGate) Interval() time.Duration {
	if g.Rate <= 0 {
		return 0
	}
	return time.Duration(float64(time.Second) / g.Rate)
}

// Ready reports whether a frame may advance at now and, if so, records now
// as the last advance. A non-positive rate never advances.
func (g *FrameGate) Ready(now time.Duration) bool {
	if g.Rate <= 0 {
		return false
	}
	if now-g.last < g.Interval() {
		return false
	}
	g.last = now
	return true
}

// Reset forgets the last advance.
func (g *FrameGate) Reset() {
	g.last = 0
}
