package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("New screen should be filled with spaces, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X')
	if s.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", s.Get(5, 5))
	}

	// Out of bounds writes are dropped, reads return a blank
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')
	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
}

func TestScreenColors(t *testing.T) {
	s := NewScreen(4, 2)

	s.SetColored(0, 0, '$', ColorYellow)
	s.SetHex(1, 0, '█', "#ff0000")

	if c := s.GetCell(0, 0); c.Color != ColorYellow || c.Hex != "" {
		t.Errorf("palette cell = %+v", c)
	}
	if c := s.GetCell(1, 0); c.Hex != "#ff0000" || c.Rune != '█' {
		t.Errorf("hex cell = %+v", c)
	}

	s.Clear()
	if c := s.GetCell(1, 0); c != blankCell {
		t.Errorf("Clear() left %+v", c)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 3)

	s.DrawText(2, 1, "Hello")
	if got := s.Row(1); !strings.HasPrefix(got, "  Hello") {
		t.Errorf("Row(1) = %q", got)
	}

	// Multi-byte runes advance one cell each
	s.DrawText(0, 2, "█▓")
	if s.Get(0, 2) != '█' || s.Get(1, 2) != '▓' {
		t.Errorf("multi-byte text misplaced: %q", s.Row(2))
	}

	s.DrawTextCentered(0, "abcd")
	if s.Get(8, 0) != 'a' {
		t.Errorf("DrawTextCentered placed text at %q", s.Row(0))
	}
}

func TestScreenDrawRectAndBox(t *testing.T) {
	s := NewScreen(6, 4)

	s.DrawRectHex(NewRect(1, 1, 2, 2), '#', "#00ff00")
	if s.GetCell(2, 2).Hex != "#00ff00" || s.Get(3, 2) != ' ' {
		t.Error("DrawRectHex should fill exactly the rectangle")
	}

	s.DrawBox(NewRect(0, 0, 6, 4))
	if s.Get(0, 0) != '┌' || s.Get(5, 3) != '┘' || s.Get(2, 0) != '─' || s.Get(0, 2) != '│' {
		t.Errorf("DrawBox outline wrong:\n%s", s.String())
	}
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(5, 5)
	s.Set(1, 1, 'X')
	s.Set(4, 4, 'Y')

	s.Resize(3, 3)

	if s.Width() != 3 || s.Height() != 3 {
		t.Fatalf("size after resize = %dx%d", s.Width(), s.Height())
	}
	if s.Get(1, 1) != 'X' {
		t.Error("Resize should preserve content inside the new bounds")
	}

	s.Resize(6, 6)
	if s.Get(4, 4) != ' ' {
		t.Error("content clipped by a shrink must not come back")
	}
}
