package isomap

import "github.com/vovakirdan/tile-arcade/internal/grid"

// Inventory holds what the actor has collected.
type Inventory struct {
	HasKey bool `json:"has_key"`
	Coins  int  `json:"coins"`
}

// Actor is the player-controlled character.
type Actor struct {
	Pos       grid.Coord `json:"pos"`
	Inventory Inventory  `json:"inventory"`
	Lives     int        `json:"lives"`
}
