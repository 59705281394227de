// Package grid provides the fixed-size 2D cell store shared by the grid games.
// Dimensions are fixed at construction; every access is bounds-checked and an
// out-of-range index never mutates the grid.
package grid

import (
	"fmt"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// Coord addresses one cell. Row grows downward, Col grows to the right.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// At is a convenience constructor for Coord.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns the coordinate offset by (dRow, dCol).
func (c Coord) Add(dRow, dCol int) Coord {
	return Coord{Row: c.Row + dRow, Col: c.Col + dCol}
}

// Grid is a rows×cols array of cells stored in row-major order.
type Grid[T any] struct {
	rows  int
	cols  int
	cells []T
}

// New creates a grid and fills every cell with fill(coord).
// A nil fill leaves cells at their zero value.
func New[T any](rows, cols int, fill func(Coord) T) (*Grid[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("grid: invalid dimensions %dx%d: %w", rows, cols, core.ErrConfigurationMissing)
	}
	g := &Grid[T]{
		rows:  rows,
		cols:  cols,
		cells: make([]T, rows*cols),
	}
	g.Reset(fill)
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid[T]) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid[T]) Cols() int {
	return g.cols
}

// Len returns the total number of cells.
func (g *Grid[T]) Len() int {
	return len(g.cells)
}

// InBounds reports whether c lies in [0,rows)×[0,cols).
func (g *Grid[T]) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

func (g *Grid[T]) index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Get returns the cell at c or ErrOutOfBounds.
func (g *Grid[T]) Get(c Coord) (T, error) {
	if !g.InBounds(c) {
		var zero T
		return zero, g.outOfBounds(c)
	}
	return g.cells[g.index(c)], nil
}

// Set replaces the cell at c. Out-of-range coordinates are rejected.
func (g *Grid[T]) Set(c Coord, v T) error {
	if !g.InBounds(c) {
		return g.outOfBounds(c)
	}
	g.cells[g.index(c)] = v
	return nil
}

// Update applies fn to the cell at c in place.
func (g *Grid[T]) Update(c Coord, fn func(*T)) error {
	if !g.InBounds(c) {
		return g.outOfBounds(c)
	}
	fn(&g.cells[g.index(c)])
	return nil
}

// Reset regenerates every cell from fill. Dimensions are unchanged.
func (g *Grid[T]) Reset(fill func(Coord) T) {
	var zero T
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			c := Coord{Row: row, Col: col}
			if fill == nil {
				g.cells[g.index(c)] = zero
				continue
			}
			g.cells[g.index(c)] = fill(c)
		}
	}
}

// Each calls fn for every cell in row-major order.
func (g *Grid[T]) Each(fn func(Coord, T)) {
	for i, v := range g.cells {
		fn(Coord{Row: i / g.cols, Col: i % g.cols}, v)
	}
}

// EachPtr calls fn with a pointer to every cell in row-major order.
func (g *Grid[T]) EachPtr(fn func(Coord, *T)) {
	for i := range g.cells {
		fn(Coord{Row: i / g.cols, Col: i % g.cols}, &g.cells[i])
	}
}

// Count returns the number of cells matching pred.
func (g *Grid[T]) Count(pred func(T) bool) int {
	n := 0
	for _, v := range g.cells {
		if pred(v) {
			n++
		}
	}
	return n
}

// Snapshot returns a deep copy of the cells as rows.
func (g *Grid[T]) Snapshot() [][]T {
	out := make([][]T, g.rows)
	for row := range out {
		out[row] = make([]T, g.cols)
		copy(out[row], g.cells[row*g.cols:(row+1)*g.cols])
	}
	return out
}

func (g *Grid[T]) outOfBounds(c Coord) error {
	return fmt.Errorf("grid: %v outside %dx%d: %w", c, g.rows, g.cols, core.ErrOutOfBounds)
}
