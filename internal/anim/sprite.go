package anim

import "time"

// Direction is one of the four facing directions.
type Direction int

const (
	DirRight Direction = iota
	DirLeft
	DirUp
	DirDown
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirRight:
		return "right"
	case DirLeft:
		return "left"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Delta returns the screen step for d; y grows downward.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirRight:
		return 1, 0
	case DirLeft:
		return -1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	}
	return 0, 0
}

// DirectionOf maps a unit step to a direction.
func DirectionOf(dx, dy int) (Direction, bool) {
	switch {
	case dx > 0 && dy == 0:
		return DirRight, true
	case dx < 0 && dy == 0:
		return DirLeft, true
	case dy < 0 && dx == 0:
		return DirUp, true
	case dy > 0 && dx == 0:
		return DirDown, true
	}
	return DirRight, false
}

// Sprite tracks which cell of an animations×frames sheet to show.
type Sprite struct {
	animations int
	frames     int
	animation  int
	frame      int
	gate       FrameGate
	moving     bool

	facing Direction
	angle  float64
	flipX  bool
}

// NewSprite creates a sprite for a sheet with the given layout.
// Non-positive sizes are treated as 1.
func NewSprite(animations, frames int, frameRate float64) *Sprite {
	return &Sprite{
		animations: max(animations, 1),
		frames:     max(frames, 1),
		gate:       NewFrameGate(frameRate),
	}
}

// Animations returns the number of animation rows.
func (s *Sprite) Animations() int { return s.animations }

// Frames returns the number of frames per animation.
func (s *Sprite) Frames() int { return s.frames }

// Animation returns the current animation row.
func (s *Sprite) Animation() int { return s.animation }

// Frame returns the current frame.
func (s *Sprite) Frame() int { return s.frame }

// Moving reports whether the sprite was marked moving since the last Update.
func (s *Sprite) Moving() bool { return s.moving }

// Facing returns the last direction set with Face.
func (s *Sprite) Facing() Direction { return s.facing }

// Angle returns the rotation in degrees.
func (s *Sprite) Angle() float64 { return s.angle }

// FlipX reports whether the sheet is mirrored horizontally.
func (s *Sprite) FlipX() bool { return s.flipX }

// SetAnimation selects an animation row. Out-of-range values are ignored.
func (s *Sprite) SetAnimation(i int) {
	if i >= 0 && i < s.animations {
		s.animation = i
	}
}

// Face turns the sprite. Up and down rotate the sheet by ±90°, left mirrors
// it, right restores the original orientation.
func (s *Sprite) Face(d Direction) {
	s.facing = d
	switch d {
	case DirUp:
		s.angle, s.flipX = 90, false
	case DirDown:
		s.angle, s.flipX = -90, false
	case DirLeft:
		s.angle, s.flipX = 0, true
	case DirRight:
		s.angle, s.flipX = 0, false
	}
}

// MarkMoving flags the sprite as moving for the next Update.
func (s *Sprite) MarkMoving() {
	s.moving = true
}

// Update advances the frame if the sprite is moving and the gate allows it,
// then clears the moving flag.
func (s *Sprite) Update(now time.Duration) {
	if s.moving && s.gate.Ready(now) {
		s.frame = (s.frame + 1) % s.frames
	}
	s.moving = false
}

// Reset returns to the first frame of the first animation, facing right.
func (s *Sprite) Reset() {
	s.animation = 0
	s.frame = 0
	s.moving = false
	s.gate.Reset()
	s.Face(DirRight)
}
