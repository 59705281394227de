package isomap

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/grid"
)

const (
	minWidth  = 48
	minHeight = 14
	hudHeight = 3
)

// projection maps grid cells to isometric screen offsets in characters.
// A tile is tileW characters wide and tileH/4 rows tall.
type projection struct {
	tileW int
	tileH int
}

// project returns the top-left screen offset of c relative to the origin.
func (p projection) project(c grid.Coord) (float32, float32) {
	x, y := c.Col, c.Row
	return float32((x - y) * p.tileW / 2), float32((x + y) * p.tileH / 4)
}

func (p projection) rows() int { return max(p.tileH/4, 1) }

type terrainStyle struct {
	glyph rune
	hex   string
}

var terrainStyles = map[int]terrainStyle{
	0: {'░', "#5a9e3c"}, // grass
	1: {'█', "#8a8a8a"}, // wall
	2: {'▒', "#b09a6a"}, // stone
	3: {'▓', "#d9501e"}, // lava
	4: {'≈', "#3a7bd5"}, // water
	5: {'░', "#e0c98a"}, // sand
	6: {'≈', "#1f4f9a"}, // deep water
}

var unknownTerrain = terrainStyle{'?', "#666666"}

type occupantStyle struct {
	glyph rune
	color core.Color
}

var occupantStyles = map[Occupant]occupantStyle{
	OccupantCoin: {'$', core.ColorBrightYellow},
	OccupantTrap: {'^', core.ColorBrightRed},
	OccupantKey:  {'k', core.ColorBrightCyan},
	OccupantExit: {'▣', core.ColorBrightGreen},
}

// Render draws the map around the camera, then the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small for Iso Quest")
		return
	}

	dst.DrawTextCenteredColored(0, "I S O   Q U E S T", core.ColorBrightWhite)

	viewTop := 1
	viewH := dst.Height() - hudHeight - viewTop
	camX, camY := g.camera.position()
	originX := dst.Width()/2 - g.proj.tileW/2 - camX
	originY := viewTop + viewH/2 - camY

	world := g.session.World()
	cells := world.Cells()
	actor := g.session.Actor()

	// Rows are drawn back to front so nearer tiles win on overlap.
	for row := range cells {
		for col, cell := range cells[row] {
			px, py := g.proj.project(grid.At(row, col))
			x := originX + int(px)
			y := originY + int(py)
			g.drawTile(dst, x, y, viewTop, viewH, cell)
		}
	}

	ax, ay := g.proj.project(actor.Pos)
	g.putInView(dst, originX+int(ax)+(g.proj.tileW-1)/2, originY+int(ay), viewTop, viewH, '@', core.ColorBrightWhite)

	g.renderHUD(dst)
}

func (g *Game) drawTile(dst *core.Screen, x, y, viewTop, viewH int, cell Cell) {
	style, ok := terrainStyles[cell.TerrainID]
	if !ok {
		style = unknownTerrain
	}
	for dy := range g.proj.rows() {
		if y+dy < viewTop || y+dy >= viewTop+viewH {
			continue
		}
		for dx := range g.proj.tileW {
			dst.SetHex(x+dx, y+dy, style.glyph, style.hex)
		}
	}
	if occ, ok := occupantStyles[cell.Occupant]; ok {
		g.putInView(dst, x+(g.proj.tileW-1)/2, y, viewTop, viewH, occ.glyph, occ.color)
	}
}

func (g *Game) putInView(dst *core.Screen, x, y, viewTop, viewH int, r rune, c core.Color) {
	if y < viewTop || y >= viewTop+viewH {
		return
	}
	dst.SetColored(x, y, r, c)
}

func (g *Game) renderHUD(dst *core.Screen) {
	actor := g.session.Actor()
	hudY := dst.Height() - hudHeight

	key := "no"
	if actor.Inventory.HasKey {
		key = "yes"
	}
	lives := strings.Repeat("♥", max(actor.Lives, 0))
	stats := fmt.Sprintf("Coins: %d/%d   Key: %s   Lives: %s   Moves: %d",
		actor.Inventory.Coins, g.session.TargetCoins(), key, lives, g.session.Moves())
	dst.DrawTextCentered(hudY, stats)

	msgColor := core.ColorYellow
	switch g.session.Status() {
	case core.StatusWin:
		msgColor = core.ColorBrightGreen
	case core.StatusLoss:
		msgColor = core.ColorBrightRed
	}
	dst.DrawTextCenteredColored(hudY+1, g.message, msgColor)

	if g.paused {
		dst.DrawTextCenteredColored(hudY+2, "PAUSED - press P to resume", core.ColorCyan)
		return
	}
	dst.DrawTextCenteredColored(hudY+2, "Arrows/WASD: move  P: pause  R: restart  Q: quit", core.ColorGray)
}
