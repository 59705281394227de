package core

import (
	"fmt"
	"strconv"
)

// Color is a palette foreground for a screen cell. Cells that need an exact
// color use a "#rrggbb" hex string instead (see Screen.SetHex).
type Color uint8

// Palette colors used by HUDs and text.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// ansi holds the 256-color code of each palette entry after ColorDefault.
var ansi = [...]int{1, 2, 3, 4, 5, 6, 7, 9, 10, 11, 12, 13, 14, 15, 208, 245}

// ANSI returns the terminal 256-color code, or "" for ColorDefault and
// unknown values.
func (c Color) ANSI() string {
	if c == ColorDefault || int(c) > len(ansi) {
		return ""
	}
	return strconv.Itoa(ansi[c-1])
}

// Hex formats 8-bit channels as "#rrggbb".
func Hex(r, g, b uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}
