package colormatch

import (
	"fmt"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/grid"
)

const (
	boardTop  = 2 // Title line plus a gap
	hudHeight = 4
)

// layout maps board cells to screen rectangles and back.
type layout struct {
	rows, cols int
	cellW      int
	cellH      int
	originX    int
	originY    int
}

func newLayout(rows, cols, cellW, cellH, screenW int) layout {
	cellW = max(cellW, 1)
	cellH = max(cellH, 1)
	return layout{
		rows:    rows,
		cols:    cols,
		cellW:   cellW,
		cellH:   cellH,
		originX: max((screenW-cols*cellW)/2, 0),
		originY: boardTop,
	}
}

func (l layout) minWidth() int  { return l.cols * l.cellW }
func (l layout) minHeight() int { return boardTop + l.rows*l.cellH + hudHeight }

// cellRect returns the screen rectangle of c.
func (l layout) cellRect(c grid.Coord) core.Rect {
	return core.NewRect(l.originX+c.Col*l.cellW, l.originY+c.Row*l.cellH, l.cellW, l.cellH)
}

// cellAt returns the cell under screen position (x, y).
func (l layout) cellAt(x, y int) (grid.Coord, bool) {
	x -= l.originX
	y -= l.originY
	if x < 0 || y < 0 {
		return grid.Coord{}, false
	}
	c := grid.At(y/l.cellH, x/l.cellW)
	if c.Row >= l.rows || c.Col >= l.cols {
		return grid.Coord{}, false
	}
	return c, true
}

// Render draws the board, cursor and HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small for Color Match")
		return
	}

	dst.DrawTextCenteredColored(0, "C O L O R   M A T C H", core.ColorBrightWhite)

	cells := g.session.Board().Cells()
	for row := range cells {
		for col, cell := range cells[row] {
			r := g.layout.cellRect(grid.At(row, col))
			if cell.Eliminated {
				cx, cy := r.Center()
				dst.SetColored(cx, cy, '·', core.ColorGray)
				continue
			}
			dst.DrawRectHex(r, '█', cell.Color.Hex())
		}
	}

	if !g.session.Status().Terminal() {
		dst.DrawBoxColored(g.layout.cellRect(g.cursor), core.ColorBrightWhite)
	}

	hudY := g.layout.originY + g.layout.rows*g.layout.cellH + 1
	stats := fmt.Sprintf("Attempt: %d   Score: %d   Remaining: %d   Next pick: %d pts/cell",
		g.session.Attempts(), g.session.Score(), g.session.Board().Remaining(),
		g.session.scoring.PointsPerItem(g.session.Attempts()+1))
	dst.DrawTextCentered(hudY, stats)

	msgColor := core.ColorYellow
	if g.session.Status() == core.StatusWin {
		msgColor = core.ColorBrightGreen
	}
	dst.DrawTextCenteredColored(hudY+1, g.message, msgColor)

	if g.paused {
		dst.DrawTextCenteredColored(hudY+2, "PAUSED - press P to resume", core.ColorCyan)
		return
	}
	dst.DrawTextCenteredColored(hudY+2, "Click/Enter: pick  Arrows: move  R: restart  Q: quit", core.ColorGray)
}
