package spritewalk

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// legs is the walk cycle, one pose per sheet frame.
var legs = []string{"/ \\", " | ", "/ \\", "| |", " | ", "| |"}

// animationColors tints each animation row.
var animationColors = []core.Color{
	core.ColorBrightCyan,
	core.ColorBrightMagenta,
	core.ColorBrightYellow,
	core.ColorBrightGreen,
}

// Render draws the field, the sprite and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small for Sprite Walk")
		return
	}

	dst.DrawTextCenteredColored(0, "S P R I T E   W A L K", core.ColorBrightWhite)
	dst.DrawBoxColored(core.NewRect(0, fieldTop, dst.Width(), dst.Height()-fieldTop-hudHeight), core.ColorGray)

	x := int(math.Round(float64(g.drawX)))
	y := int(math.Round(float64(g.drawY)))
	color := animationColors[g.sprite.Animation()%len(animationColors)]

	dst.DrawTextColored(x, y, "("+string(g.headGlyph())+")", color)
	dst.DrawTextColored(x, y+1, legs[g.sprite.Frame()%len(legs)], color)

	hudY := dst.Height() - hudHeight
	stats := fmt.Sprintf("Frame: %d/%d   Animation: %d/%d   Facing: %-5s  Angle: %4.0f   Distance: %d",
		g.sprite.Frame()+1, g.sprite.Frames(),
		g.sprite.Animation()+1, g.sprite.Animations(),
		g.sprite.Facing(), g.sprite.Angle(), g.distance)
	dst.DrawTextCentered(hudY, stats)

	if g.paused {
		dst.DrawTextCenteredColored(hudY+1, "PAUSED - press P to resume", core.ColorCyan)
	}
	dst.DrawTextCenteredColored(hudY+2, "WASD/Arrows: walk  Enter: next animation  R: reset  Q: quit", core.ColorGray)
}

// headGlyph shows which way the sheet is oriented.
func (g *Game) headGlyph() rune {
	switch {
	case g.sprite.Angle() > 0:
		return '^'
	case g.sprite.Angle() < 0:
		return 'v'
	case g.sprite.FlipX():
		return '<'
	default:
		return '>'
	}
}
