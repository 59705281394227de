package anim

import (
	"testing"
	"time"
)

func TestFrameGate(t *testing.T) {
	g := NewFrameGate(10)

	if g.Interval() != 100*time.Millisecond {
		t.Fatalf("Interval() = %v, expected 100ms", g.Interval())
	}

	tests := []struct {
		now      time.Duration
		expected bool
	}{
		{50 * time.Millisecond, false},
		{100 * time.Millisecond, true},
		{150 * time.Millisecond, false},
		{199 * time.Millisecond, false},
		{200 * time.Millisecond, true},
		{500 * time.Millisecond, true},
	}

	for _, tc := range tests {
		if got := g.Ready(tc.now); got != tc.expected {
			t.Errorf("Ready(%v) = %v, expected %v", tc.now, got, tc.expected)
		}
	}
}

func TestFrameGateZeroRate(t *testing.T) {
	g := NewFrameGate(0)
	if g.Ready(time.Hour) {
		t.Error("a zero-rate gate should never be ready")
	}
}

func TestSpriteAdvancesOnlyWhileMoving(t *testing.T) {
	s := NewSprite(1, 6, 10)

	s.Update(time.Second)
	if s.Frame() != 0 {
		t.Fatalf("idle sprite advanced to frame %d", s.Frame())
	}

	s.MarkMoving()
	s.Update(time.Second)
	if s.Frame() != 1 {
		t.Fatalf("frame = %d, expected 1", s.Frame())
	}
	if s.Moving() {
		t.Error("Update should clear the moving flag")
	}

	s.MarkMoving()
	s.Update(time.Second + 50*time.Millisecond)
	if s.Frame() != 1 {
		t.Error("frame advanced faster than the frame rate")
	}
}

func TestSpriteFramesWrap(t *testing.T) {
	s := NewSprite(1, 6, 10)

	now := time.Duration(0)
	for range 6 {
		now += 100 * time.Millisecond
		s.MarkMoving()
		s.Update(now)
	}
	if s.Frame() != 0 {
		t.Errorf("frame = %d after a full cycle, expected 0", s.Frame())
	}
}

func TestSpriteSetAnimationBounds(t *testing.T) {
	s := NewSprite(3, 6, 10)

	s.SetAnimation(2)
	if s.Animation() != 2 {
		t.Fatalf("animation = %d, expected 2", s.Animation())
	}
	s.SetAnimation(3)
	s.SetAnimation(-1)
	if s.Animation() != 2 {
		t.Errorf("out-of-range SetAnimation changed animation to %d", s.Animation())
	}
}

func TestSpriteFace(t *testing.T) {
	tests := []struct {
		dir   Direction
		angle float64
		flip  bool
	}{
		{DirUp, 90, false},
		{DirDown, -90, false},
		{DirLeft, 0, true},
		{DirRight, 0, false},
	}

	s := NewSprite(1, 6, 10)
	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			s.Face(tc.dir)
			if s.Angle() != tc.angle || s.FlipX() != tc.flip || s.Facing() != tc.dir {
				t.Errorf("Face(%v): angle=%v flip=%v", tc.dir, s.Angle(), s.FlipX())
			}
		})
	}
}

func TestDirectionOf(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		dx, dy := d.Delta()
		got, ok := DirectionOf(dx, dy)
		if !ok || got != d {
			t.Errorf("DirectionOf(%d,%d) = %v, %v", dx, dy, got, ok)
		}
	}
	if _, ok := DirectionOf(1, 1); ok {
		t.Error("diagonal should not map to a direction")
	}
}
