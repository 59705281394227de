package colormatch

import (
	"fmt"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/grid"
)

// EliminateSimilar removes every remaining cell whose color is within
// tolerance of the color at ref, ref included, and returns how many cells
// were removed.
//
// ref must address a cell that is still on the board; otherwise the board is
// left untouched and ErrOutOfBounds or ErrInvalidSelection is returned.
func EliminateSimilar(b *Board, ref grid.Coord, tolerance float64) (int, error) {
	if err := checkTolerance(tolerance); err != nil {
		return 0, err
	}

	target, err := b.cells.Get(ref)
	if err != nil {
		return 0, fmt.Errorf("colormatch: select %v: %w", ref, err)
	}
	if target.Eliminated {
		return 0, fmt.Errorf("colormatch: select %v: cell already eliminated: %w", ref, core.ErrInvalidSelection)
	}

	removed := 0
	b.cells.EachPtr(func(_ grid.Coord, cell *Cell) {
		if cell.Eliminated {
			return
		}
		if Distance(target.Color, cell.Color) <= tolerance {
			cell.Eliminated = true
			removed++
		}
	})
	return removed, nil
}

// checkTolerance rejects values outside [0, 1], NaN included.
func checkTolerance(t float64) error {
	if !(t >= 0 && t <= 1) {
		return fmt.Errorf("colormatch: tolerance %v: %w", t, core.ErrInvalidTolerance)
	}
	return nil
}
