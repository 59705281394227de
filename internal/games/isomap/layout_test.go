package isomap

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/grid"
)

func TestParseTileset(t *testing.T) {
	input := `# comment
tileset=tiles.png

tileCount=7
tileWidth = 64
tileHeight=32
not a pair
walkable=0, 2,5
`
	ts, err := ParseTileset(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseTileset() failed: %v", err)
	}

	if ts.Image != "tiles.png" || ts.Count != 7 || ts.Width != 64 || ts.Height != 32 {
		t.Errorf("tileset = %+v", ts)
	}
	for id, expected := range map[int]bool{0: true, 1: false, 2: true, 5: true, 6: false} {
		if got := ts.IsWalkable(id); got != expected {
			t.Errorf("IsWalkable(%d) = %v, expected %v", id, got, expected)
		}
	}
}

func TestParseTilesetWithoutWalkableList(t *testing.T) {
	ts, err := ParseTileset(strings.NewReader("tileCount=3\n"))
	if err != nil {
		t.Fatal(err)
	}
	if !ts.IsWalkable(0) || !ts.IsWalkable(99) {
		t.Error("every tile should be walkable when no list is given")
	}
}

func TestParseTilesetBadNumber(t *testing.T) {
	if _, err := ParseTileset(strings.NewReader("tileWidth=wide\n")); err == nil {
		t.Error("expected an error for a non-numeric width")
	}
}

func TestParseTerrain(t *testing.T) {
	rows, err := ParseTerrain(strings.NewReader("1 1 1\n1 0 1\n\n1 1 1\n"))
	if err != nil {
		t.Fatalf("ParseTerrain() failed: %v", err)
	}
	if len(rows) != 3 || len(rows[0]) != 3 || rows[1][1] != 0 {
		t.Errorf("terrain = %v", rows)
	}

	if _, err := ParseTerrain(strings.NewReader("1 1\n1\n")); !errors.Is(err, core.ErrConfigurationMissing) {
		t.Errorf("ragged terrain error = %v", err)
	}
	if _, err := ParseTerrain(strings.NewReader("\n")); !errors.Is(err, core.ErrConfigurationMissing) {
		t.Errorf("empty terrain error = %v", err)
	}
}

func TestParseObjects(t *testing.T) {
	objs, err := ParseObjects(strings.NewReader("coin 3 1\nkey 7 10 trap\n6 7\n"))
	if err != nil {
		t.Fatalf("ParseObjects() failed: %v", err)
	}

	expected := []Placement{
		{OccupantCoin, 3, 1},
		{OccupantKey, 7, 10},
		{OccupantTrap, 6, 7},
	}
	if len(objs) != len(expected) {
		t.Fatalf("got %d objects, expected %d", len(objs), len(expected))
	}
	for i := range expected {
		if objs[i] != expected[i] {
			t.Errorf("object %d = %+v, expected %+v", i, objs[i], expected[i])
		}
	}
}

func TestParseObjectsErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown type", "chest 1 1"},
		{"bad coordinate", "coin x 1"},
		{"truncated", "coin 1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseObjects(strings.NewReader(tc.input)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestDefaultLayout(t *testing.T) {
	layout, err := DefaultLayout()
	if err != nil {
		t.Fatalf("DefaultLayout() failed: %v", err)
	}

	w, err := NewWorld(layout)
	if err != nil {
		t.Fatalf("NewWorld() failed: %v", err)
	}
	if w.Rows() != 15 || w.Cols() != 15 {
		t.Errorf("world = %dx%d, expected 15x15", w.Rows(), w.Cols())
	}

	exit, _ := w.Get(grid.At(13, 13))
	if exit.Occupant != OccupantExit || !exit.Walkable {
		t.Errorf("exit cell = %+v", exit)
	}
	start, _ := w.Get(layout.Start)
	if start.Occupant != OccupantNone || !start.Walkable {
		t.Errorf("start cell = %+v", start)
	}
	if w.Count(OccupantKey) != 1 || w.Count(OccupantCoin) < layout.TargetCoins {
		t.Error("default map must offer the key and enough coins")
	}
	if layout.Lives != 3 || layout.TargetCoins != 1 {
		t.Errorf("rules = lives %d target %d", layout.Lives, layout.TargetCoins)
	}
}

func TestDefaultLayoutEveryTileWalkable(t *testing.T) {
	layout, err := DefaultLayout()
	if err != nil {
		t.Fatal(err)
	}
	w, _ := NewWorld(layout)

	for _, row := range w.Cells() {
		for _, cell := range row {
			if !cell.Walkable {
				t.Fatalf("terrain %d is not walkable on the built-in map", cell.TerrainID)
			}
		}
	}
}

func TestRestrictedTilesetExitIsReachable(t *testing.T) {
	tileset := filepath.Join(t.TempDir(), "tileset.cfg")
	writeFile(t, tileset, "tileCount=7\nwalkable=0,2,5\n")

	layout, err := LoadLayout(tileset, "", "", DefaultRules())
	if err != nil {
		t.Fatalf("LoadLayout() failed: %v", err)
	}
	w, _ := NewWorld(layout)
	if cell, _ := w.Get(grid.At(0, 1)); cell.Walkable {
		t.Error("wall should not be walkable with a restricted tileset")
	}

	seen := map[grid.Coord]bool{layout.Start: true}
	queue := []grid.Coord{layout.Start}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range []grid.Coord{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}} {
			n := c.Add(d.Row, d.Col)
			cell, err := w.Get(n)
			if err != nil || !cell.Walkable || seen[n] {
				continue
			}
			seen[n] = true
			queue = append(queue, n)
		}
	}

	if !seen[layout.Exit] {
		t.Error("exit cannot be reached from the start")
	}
}

func TestLoadLayoutFromFiles(t *testing.T) {
	dir := t.TempDir()
	terrain := filepath.Join(dir, "terrain.txt")
	objects := filepath.Join(dir, "objects.txt")
	writeFile(t, terrain, "0 0 0\n0 0 0\n0 0 0\n")
	writeFile(t, objects, "coin 1 0\ntrap 9 9\n")

	rules := Rules{Start: grid.At(0, 0), Exit: grid.At(2, 2), TargetCoins: 1, Lives: 2}
	layout, err := LoadLayout("", terrain, objects, rules)
	if err != nil {
		t.Fatalf("LoadLayout() failed: %v", err)
	}

	w, err := NewWorld(layout)
	if err != nil {
		t.Fatalf("NewWorld() failed: %v", err)
	}
	if cell, _ := w.Get(grid.At(0, 1)); cell.Occupant != OccupantCoin {
		t.Errorf("coin not placed: %+v", cell)
	}
	if w.Count(OccupantTrap) != 0 {
		t.Error("placements outside the map should be skipped")
	}
	if layout.Tileset.Count != 7 {
		t.Error("empty tileset path should use the built-in tileset")
	}
}

func TestLoadLayoutMissingFile(t *testing.T) {
	_, err := LoadLayout("", filepath.Join(t.TempDir(), "nope.txt"), "", DefaultRules())
	if !errors.Is(err, core.ErrConfigurationMissing) {
		t.Errorf("error = %v, expected ErrConfigurationMissing", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
