package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = func() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{core.ColorDefault: lipgloss.NewStyle()}
	for c := core.ColorRed; c <= core.ColorGray; c++ {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.ANSI()))
	}
	return styles
}()

// hexStyles caches styles for 24-bit colors. SSH sessions render
// concurrently, so it is a sync.Map.
var hexStyles sync.Map // map[string]lipgloss.Style

// styleFor returns the style of a cell.
func styleFor(c core.Cell) lipgloss.Style {
	if c.Hex != "" {
		if st, ok := hexStyles.Load(c.Hex); ok {
			return st.(lipgloss.Style)
		}
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex))
		hexStyles.Store(c.Hex, st)
		return st
	}
	if st, ok := colorStyles[c.Color]; ok {
		return st
	}
	return colorStyles[core.ColorDefault]
}

// sameStyle reports whether two cells render with the same style.
func sameStyle(a, b core.Cell) bool {
	return a.Color == b.Color && a.Hex == b.Hex
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			// Collect consecutive cells with the same style
			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if !sameStyle(cell, start) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styleFor(start).Render(run.String()))
		}
	}
	return sb.String()
}
