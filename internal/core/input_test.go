package core

import "testing"

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		dx, dy int
	}{
		{"up", ActionUp, 0, -1},
		{"down", ActionDown, 0, 1},
		{"right", ActionRight, 1, 0},
		{"left", ActionLeft, -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			f.Set(tc.action)
			dx, dy, ok := f.Direction()
			if !ok || dx != tc.dx || dy != tc.dy {
				t.Errorf("Direction() = (%d, %d, %v), expected (%d, %d, true)", dx, dy, ok, tc.dx, tc.dy)
			}
		})
	}

	if _, _, ok := NewInputFrame().Direction(); ok {
		t.Error("empty frame should have no direction")
	}
}

func TestInputFrameSingleDirectionPerFrame(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionLeft)
	f.Set(ActionUp)

	dx, dy, _ := f.Direction()
	if dx != 0 || dy != -1 {
		t.Errorf("Direction() = (%d, %d), expected vertical step to win", dx, dy)
	}
}

func TestInputFrameClickAndClear(t *testing.T) {
	f := NewInputFrame()
	f.Click(12, 3)

	if !f.Has(ActionClick) || f.Pointer != (Point{X: 12, Y: 3}) {
		t.Fatalf("Click not recorded: %+v", f)
	}

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionClick) || f.Pointer != (Point{}) {
		t.Error("Clear should drop actions and pointer")
	}
	if !clone.Has(ActionClick) || clone.Pointer.X != 12 {
		t.Error("Clone should be independent of the original")
	}
}

func TestStatus(t *testing.T) {
	if StatusPlaying.Terminal() {
		t.Error("playing is not terminal")
	}
	if !StatusWin.Terminal() || !StatusLoss.Terminal() {
		t.Error("win and loss are terminal")
	}
	if b, _ := StatusLoss.MarshalText(); string(b) != "loss" {
		t.Errorf("MarshalText() = %q", b)
	}
}
