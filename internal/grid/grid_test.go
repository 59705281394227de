package grid_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/grid"
)

func TestNewGrid(t *testing.T) {
	g, err := grid.New(3, 4, func(c grid.Coord) int { return c.Row*10 + c.Col })
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if g.Rows() != 3 || g.Cols() != 4 || g.Len() != 12 {
		t.Fatalf("expected 3x4 grid, got %dx%d (%d cells)", g.Rows(), g.Cols(), g.Len())
	}

	v, err := g.Get(grid.At(2, 3))
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if v != 23 {
		t.Errorf("Get(2,3) = %d, expected 23", v)
	}
}

func TestNewGridInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		if _, err := grid.New[int](dims[0], dims[1], nil); !errors.Is(err, core.ErrConfigurationMissing) {
			t.Errorf("New(%d, %d) error = %v, expected ErrConfigurationMissing", dims[0], dims[1], err)
		}
	}
}

func TestGridBounds(t *testing.T) {
	g, _ := grid.New[int](6, 8, nil)

	testCases := []struct {
		coord    grid.Coord
		expected bool
	}{
		{grid.At(0, 0), true},
		{grid.At(5, 7), true},
		{grid.At(-1, 0), false},
		{grid.At(0, -1), false},
		{grid.At(6, 0), false},
		{grid.At(0, 8), false},
	}

	for _, tc := range testCases {
		if got := g.InBounds(tc.coord); got != tc.expected {
			t.Errorf("InBounds(%v) = %v, expected %v", tc.coord, got, tc.expected)
		}

		_, err := g.Get(tc.coord)
		if tc.expected && err != nil {
			t.Errorf("Get(%v) unexpected error: %v", tc.coord, err)
		}
		if !tc.expected && !errors.Is(err, core.ErrOutOfBounds) {
			t.Errorf("Get(%v) error = %v, expected ErrOutOfBounds", tc.coord, err)
		}
	}
}

func TestGridSetOutOfBoundsDoesNotMutate(t *testing.T) {
	g, _ := grid.New(2, 2, func(grid.Coord) int { return 1 })

	if err := g.Set(grid.At(2, 0), 9); !errors.Is(err, core.ErrOutOfBounds) {
		t.Fatalf("Set() error = %v, expected ErrOutOfBounds", err)
	}
	if err := g.Update(grid.At(0, 5), func(v *int) { *v = 9 }); !errors.Is(err, core.ErrOutOfBounds) {
		t.Fatalf("Update() error = %v, expected ErrOutOfBounds", err)
	}
	if n := g.Count(func(v int) bool { return v == 1 }); n != 4 {
		t.Errorf("rejected writes changed the grid: %d cells still 1", n)
	}
}

func TestGridSetUpdateReset(t *testing.T) {
	g, _ := grid.New[int](2, 3, nil)

	if err := g.Set(grid.At(1, 2), 5); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := g.Update(grid.At(1, 2), func(v *int) { *v *= 2 }); err != nil {
		t.Fatalf("Update() failed: %v", err)
	}
	if v, _ := g.Get(grid.At(1, 2)); v != 10 {
		t.Errorf("cell = %d, expected 10", v)
	}

	g.Reset(func(grid.Coord) int { return 7 })
	if n := g.Count(func(v int) bool { return v == 7 }); n != 6 {
		t.Errorf("Reset() should refill every cell, %d of 6 refilled", n)
	}
	if g.Rows() != 2 || g.Cols() != 3 {
		t.Error("Reset() must not change dimensions")
	}
}

func TestGridEachOrderAndSnapshot(t *testing.T) {
	g, _ := grid.New(2, 2, func(c grid.Coord) int { return c.Row*2 + c.Col })

	var order []grid.Coord
	g.Each(func(c grid.Coord, _ int) { order = append(order, c) })
	expected := []grid.Coord{grid.At(0, 0), grid.At(0, 1), grid.At(1, 0), grid.At(1, 1)}
	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("Each order = %v, expected %v", order, expected)
		}
	}

	snap := g.Snapshot()
	snap[0][0] = 99
	if v, _ := g.Get(grid.At(0, 0)); v != 0 {
		t.Error("Snapshot must be a deep copy")
	}
	if snap[1][1] != 3 {
		t.Errorf("snapshot[1][1] = %d, expected 3", snap[1][1])
	}
}
