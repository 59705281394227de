package colormatch

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

// maxDistance is the diagonal of the unit color cube, the largest possible
// Euclidean distance between two colors.
var maxDistance = math.Sqrt(3)

// RGB is a color with each component in [0, 1].
type RGB struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// RandomRGB draws each component as one of the 256 byte levels.
func RandomRGB(rng *rand.Rand) RGB {
	return RGB{
		R: float64(rng.Intn(256)) / 255,
		G: float64(rng.Intn(256)) / 255,
		B: float64(rng.Intn(256)) / 255,
	}
}

// Distance returns the Euclidean distance between a and b normalized by the
// cube diagonal, so the result is in [0, 1].
func Distance(a, b RGB) float64 {
	dr := a.R - b.R
	dg := a.G - b.G
	db := a.B - b.B
	d := math.Sqrt(dr*dr+dg*dg+db*db) / maxDistance
	return math.Min(d, 1)
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return core.Hex(channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}
