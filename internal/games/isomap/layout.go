package isomap

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/grid"
)

//go:embed assets/*
var assets embed.FS

// Tileset describes the tile sheet and which terrain ids can be walked on.
type Tileset struct {
	Image  string
	Count  int
	Width  int
	Height int

	// Walkable lists walkable terrain ids. Nil means every id is walkable.
	Walkable map[int]bool
}

// IsWalkable reports whether terrain id can be entered.
func (t Tileset) IsWalkable(id int) bool {
	if t.Walkable == nil {
		return true
	}
	return t.Walkable[id]
}

// Placement puts an occupant at a map position.
type Placement struct {
	Occupant Occupant
	X, Y     int
}

// Layout is everything needed to build a world.
type Layout struct {
	Tileset     Tileset
	Terrain     [][]int
	Objects     []Placement
	Start       grid.Coord
	Exit        grid.Coord
	TargetCoins int
	Lives       int
}

// Rules are the layout values that come from game configuration rather than
// from the map files.
type Rules struct {
	Start       grid.Coord
	Exit        grid.Coord
	TargetCoins int
	Lives       int
}

// DefaultRules returns the classic rules: start at (1,1), exit at (13,13),
// one coin and three lives.
func DefaultRules() Rules {
	return Rules{
		Start:       grid.At(1, 1),
		Exit:        grid.At(13, 13),
		TargetCoins: 1,
		Lives:       3,
	}
}

// ParseTileset reads "key=value" lines. Blank lines and lines starting with
// '#' are skipped, as are lines without '='.
func ParseTileset(r io.Reader) (Tileset, error) {
	var ts Tileset
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		key, val, ok := strings.Cut(text, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)

		var err error
		switch key {
		case "tileset":
			ts.Image = val
		case "tileCount":
			ts.Count, err = strconv.Atoi(val)
		case "tileWidth":
			ts.Width, err = strconv.Atoi(val)
		case "tileHeight":
			ts.Height, err = strconv.Atoi(val)
		case "walkable":
			ts.Walkable, err = parseIDList(val)
		}
		if err != nil {
			return Tileset{}, fmt.Errorf("isomap: tileset line %d: %s: %w", line, key, err)
		}
	}
	if err := sc.Err(); err != nil {
		return Tileset{}, fmt.Errorf("isomap: read tileset: %w", err)
	}
	return ts, nil
}

func parseIDList(s string) (map[int]bool, error) {
	ids := make(map[int]bool)
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		id, err := strconv.Atoi(f)
		if err != nil {
			return nil, err
		}
		ids[id] = true
	}
	return ids, nil
}

// ParseTerrain reads one row of whitespace-separated terrain ids per line.
// All rows must have the same length.
func ParseTerrain(r io.Reader) ([][]int, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			id, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("isomap: terrain line %d: %w", line, err)
			}
			row[i] = id
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("isomap: terrain line %d has %d columns, expected %d: %w",
				line, len(row), len(rows[0]), core.ErrConfigurationMissing)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("isomap: read terrain: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("isomap: terrain is empty: %w", core.ErrConfigurationMissing)
	}
	return rows, nil
}

// ParseObjects reads whitespace-separated "type x y" triples.
func ParseObjects(r io.Reader) ([]Placement, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("isomap: read objects: %w", err)
	}
	fields := strings.Fields(string(data))
	if len(fields)%3 != 0 {
		return nil, fmt.Errorf("isomap: objects: %d fields is not a list of \"type x y\"", len(fields))
	}

	objects := make([]Placement, 0, len(fields)/3)
	for i := 0; i < len(fields); i += 3 {
		occ, err := ParseOccupant(fields[i])
		if err != nil {
			return nil, err
		}
		x, errX := strconv.Atoi(fields[i+1])
		y, errY := strconv.Atoi(fields[i+2])
		if err := errors.Join(errX, errY); err != nil {
			return nil, fmt.Errorf("isomap: object %d: %w", i/3+1, err)
		}
		objects = append(objects, Placement{Occupant: occ, X: x, Y: y})
	}
	return objects, nil
}

// DefaultLayout returns the built-in 15×15 map.
func DefaultLayout() (Layout, error) {
	return loadLayout(assets, "assets/tileset.cfg", "assets/terrain.txt", "assets/objects.txt", DefaultRules())
}

// LoadLayout reads layout files from disk. Empty paths fall back to the
// built-in file for that part.
func LoadLayout(tilesetPath, terrainPath, objectsPath string, rules Rules) (Layout, error) {
	fsys := layeredFS{}
	return loadLayout(fsys,
		pick(tilesetPath, "assets/tileset.cfg"),
		pick(terrainPath, "assets/terrain.txt"),
		pick(objectsPath, "assets/objects.txt"),
		rules)
}

func pick(path, fallback string) string {
	if path == "" {
		return fallback
	}
	return path
}

// layeredFS opens embedded assets by their "assets/" name and anything else
// from the OS.
type layeredFS struct{}

func (layeredFS) Open(name string) (fs.File, error) {
	if strings.HasPrefix(name, "assets/") {
		return assets.Open(name)
	}
	return os.Open(name)
}

func loadLayout(fsys fs.FS, tilesetPath, terrainPath, objectsPath string, rules Rules) (Layout, error) {
	var l Layout
	var err error

	if l.Tileset, err = parseFile(fsys, tilesetPath, ParseTileset); err != nil {
		return Layout{}, err
	}
	if l.Terrain, err = parseFile(fsys, terrainPath, ParseTerrain); err != nil {
		return Layout{}, err
	}
	if l.Objects, err = parseFile(fsys, objectsPath, ParseObjects); err != nil {
		return Layout{}, err
	}

	l.Start = rules.Start
	l.Exit = rules.Exit
	l.TargetCoins = rules.TargetCoins
	l.Lives = rules.Lives
	return l, nil
}

func parseFile[T any](fsys fs.FS, path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	f, err := fsys.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zero, fmt.Errorf("isomap: %s: %w", path, core.ErrConfigurationMissing)
		}
		return zero, fmt.Errorf("isomap: open %s: %w", path, err)
	}
	defer f.Close()

	v, err := parse(f)
	if err != nil {
		return zero, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}
