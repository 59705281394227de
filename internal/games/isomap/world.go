package isomap

import (
	"fmt"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/grid"
)

// Cell is one tile of the map.
type Cell struct {
	TerrainID int      `json:"terrain"`
	Walkable  bool     `json:"walkable"`
	Occupant  Occupant `json:"occupant"`
}

// World is the tile grid with its occupants.
type World struct {
	cells  *grid.Grid[Cell]
	layout Layout
}

// NewWorld builds a world from layout. Placements outside the map are
// skipped; the exit is always placed at layout.Exit.
func NewWorld(layout Layout) (*World, error) {
	rows := len(layout.Terrain)
	cols := 0
	if rows > 0 {
		cols = len(layout.Terrain[0])
	}
	w := &World{layout: layout}
	cells, err := grid.New(rows, cols, w.terrainCell)
	if err != nil {
		return nil, fmt.Errorf("isomap: terrain: %w", err)
	}
	w.cells = cells
	if !w.InBounds(layout.Start) {
		return nil, fmt.Errorf("isomap: start %v: %w", layout.Start, core.ErrOutOfBounds)
	}
	if !w.InBounds(layout.Exit) {
		return nil, fmt.Errorf("isomap: exit %v: %w", layout.Exit, core.ErrOutOfBounds)
	}
	w.placeObjects()
	return w, nil
}

// Reset restores the terrain and every occupant of the layout, including
// the ones already taken.
func (w *World) Reset() {
	w.cells.Reset(w.terrainCell)
	w.placeObjects()
}

func (w *World) terrainCell(c grid.Coord) Cell {
	id := w.layout.Terrain[c.Row][c.Col]
	return Cell{TerrainID: id, Walkable: w.layout.Tileset.IsWalkable(id)}
}

func (w *World) placeObjects() {
	for _, p := range w.layout.Objects {
		c := grid.At(p.Y, p.X)
		if !w.cells.InBounds(c) {
			continue
		}
		_ = w.cells.Update(c, func(cell *Cell) { cell.Occupant = p.Occupant })
	}
	_ = w.cells.Update(w.layout.Exit, func(cell *Cell) { cell.Occupant = OccupantExit })
}

// Rows returns the map height.
func (w *World) Rows() int { return w.cells.Rows() }

// Cols returns the map width.
func (w *World) Cols() int { return w.cells.Cols() }

// InBounds reports whether c is on the map.
func (w *World) InBounds(c grid.Coord) bool { return w.cells.InBounds(c) }

// Get returns the cell at c.
func (w *World) Get(c grid.Coord) (Cell, error) { return w.cells.Get(c) }

// Layout returns the layout the world was built from.
func (w *World) Layout() Layout { return w.layout }

// take removes a consumable occupant from c and returns what was there.
func (w *World) take(c grid.Coord) Occupant {
	var occ Occupant
	_ = w.cells.Update(c, func(cell *Cell) {
		occ = cell.Occupant
		if occ.Consumable() {
			cell.Occupant = OccupantNone
		}
	})
	return occ
}

// Count returns how many cells hold occ.
func (w *World) Count(occ Occupant) int {
	return w.cells.Count(func(c Cell) bool { return c.Occupant == occ })
}

// Cells returns a copy of the map for rendering.
func (w *World) Cells() [][]Cell {
	return w.cells.Snapshot()
}
