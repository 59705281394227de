package isomap

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// camera follows the actor in projected screen space, easing between
// positions instead of jumping.
type camera struct {
	x, y     float32
	tx, ty   *gween.Tween
	duration float32
}

func newCamera(duration float32) *camera {
	return &camera{duration: duration}
}

// snap moves the camera to (x, y) immediately.
func (c *camera) snap(x, y float32) {
	c.x, c.y = x, y
	c.tx, c.ty = nil, nil
}

// follow starts easing from the current position toward (x, y).
func (c *camera) follow(x, y float32) {
	if c.duration <= 0 {
		c.snap(x, y)
		return
	}
	c.tx = gween.New(c.x, x, c.duration, ease.OutQuad)
	c.ty = gween.New(c.y, y, c.duration, ease.OutQuad)
}

// update advances the easing by dt seconds.
func (c *camera) update(dt float32) {
	if c.tx != nil {
		var done bool
		if c.x, done = c.tx.Update(dt); done {
			c.tx = nil
		}
	}
	if c.ty != nil {
		var done bool
		if c.y, done = c.ty.Update(dt); done {
			c.ty = nil
		}
	}
}

// moving reports whether an ease is in progress.
func (c *camera) moving() bool {
	return c.tx != nil || c.ty != nil
}

// position returns the camera position rounded to character cells.
func (c *camera) position() (int, int) {
	return round(c.x), round(c.y)
}

func round(v float32) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}
