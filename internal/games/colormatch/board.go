package colormatch

import (
	"math/rand"

	"github.com/vovakirdan/tile-arcade/internal/grid"
)

// Cell is one colored quad of the board.
// An eliminated cell is never selected or drawn again until the board is reset.
type Cell struct {
	Color      RGB  `json:"color"`
	Eliminated bool `json:"eliminated"`
}

// Board is the fixed rows×cols grid of colored cells.
type Board struct {
	cells *grid.Grid[Cell]
}

// NewBoard creates a board filled with random colors.
func NewBoard(rows, cols int, rng *rand.Rand) (*Board, error) {
	cells, err := grid.New(rows, cols, randomCell(rng))
	if err != nil {
		return nil, err
	}
	return &Board{cells: cells}, nil
}

// NewBoardFrom creates a board with the given colors, one slice per row.
// Every row must have the same length.
func NewBoardFrom(colors [][]RGB) (*Board, error) {
	rows := len(colors)
	cols := 0
	if rows > 0 {
		cols = len(colors[0])
	}
	for _, row := range colors {
		if len(row) != cols {
			cols = 0
			break
		}
	}
	cells, err := grid.New(rows, cols, func(c grid.Coord) Cell {
		return Cell{Color: colors[c.Row][c.Col]}
	})
	if err != nil {
		return nil, err
	}
	return &Board{cells: cells}, nil
}

func randomCell(rng *rand.Rand) func(grid.Coord) Cell {
	return func(grid.Coord) Cell {
		return Cell{Color: RandomRGB(rng)}
	}
}

// Shuffle redraws every cell with a fresh random color and clears eliminations.
func (b *Board) Shuffle(rng *rand.Rand) {
	b.cells.Reset(randomCell(rng))
}

// Rows returns the board height in cells.
func (b *Board) Rows() int { return b.cells.Rows() }

// Cols returns the board width in cells.
func (b *Board) Cols() int { return b.cells.Cols() }

// InBounds reports whether c addresses a cell of the board.
func (b *Board) InBounds(c grid.Coord) bool { return b.cells.InBounds(c) }

// Get returns the cell at c.
func (b *Board) Get(c grid.Coord) (Cell, error) {
	return b.cells.Get(c)
}

// Remaining returns the number of cells not yet eliminated.
func (b *Board) Remaining() int {
	return b.cells.Count(func(c Cell) bool { return !c.Eliminated })
}

// Cleared reports whether every cell has been eliminated.
func (b *Board) Cleared() bool {
	return b.Remaining() == 0
}

// Cells returns a copy of the board for rendering.
func (b *Board) Cells() [][]Cell {
	return b.cells.Snapshot()
}
