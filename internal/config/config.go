// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// ColorMatchConfig contains all configuration for the color-matching game.
type ColorMatchConfig struct {
	Board     ColorMatchBoard   `yaml:"board"`
	Tolerance float64           `yaml:"tolerance"` // Normalized color distance in [0, 1]
	Scoring   ColorMatchScoring `yaml:"scoring"`
}

// ColorMatchBoard defines the board size and the on-screen size of a cell.
type ColorMatchBoard struct {
	Rows       int `yaml:"rows"`
	Cols       int `yaml:"cols"`
	CellWidth  int `yaml:"cell_width"`  // Characters per cell horizontally
	CellHeight int `yaml:"cell_height"` // Characters per cell vertically
}

// ColorMatchScoring defines the per-attempt point decay.
type ColorMatchScoring struct {
	BasePoints        int `yaml:"base_points"`
	PenaltyPerAttempt int `yaml:"penalty_per_attempt"`
}

// IsoMapConfig contains all configuration for the isometric exploration game.
type IsoMapConfig struct {
	Files  IsoMapFiles  `yaml:"files"`
	Rules  IsoMapRules  `yaml:"rules"`
	Tile   IsoMapTile   `yaml:"tile"`
	Camera IsoMapCamera `yaml:"camera"`
}

// IsoMapFiles points at optional layout files. Empty paths use the embedded map.
type IsoMapFiles struct {
	Tileset string `yaml:"tileset"` // key=value tileset description
	Terrain string `yaml:"terrain"` // whitespace-delimited terrain ids
	Objects string `yaml:"objects"` // "type x y" placements
}

// IsoMapRules defines the win and loss conditions.
type IsoMapRules struct {
	TargetCoins int `yaml:"target_coins"`
	Lives       int `yaml:"lives"`
	StartX      int `yaml:"start_x"`
	StartY      int `yaml:"start_y"`
	ExitX       int `yaml:"exit_x"`
	ExitY       int `yaml:"exit_y"`
}

// IsoMapTile defines the projected size of one tile in characters.
type IsoMapTile struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// IsoMapCamera defines how the camera follows the actor.
type IsoMapCamera struct {
	EaseSeconds float64 `yaml:"ease_seconds"` // 0 snaps instantly
}

// SpriteWalkConfig contains all configuration for the sprite movement demo.
type SpriteWalkConfig struct {
	Sprite SpriteWalkSprite `yaml:"sprite"`
	Motion SpriteWalkMotion `yaml:"motion"`
}

// SpriteWalkSprite defines the animation sheet layout.
type SpriteWalkSprite struct {
	Animations int     `yaml:"animations"`
	Frames     int     `yaml:"frames"`
	FrameRate  float64 `yaml:"frame_rate"` // Frames per second while moving
}

// SpriteWalkMotion defines how far and how smoothly the sprite moves.
type SpriteWalkMotion struct {
	Speed        int     `yaml:"speed"`         // Cells per key press
	GlideSeconds float64 `yaml:"glide_seconds"` // Duration of the eased glide
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. Empty means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case "", DifficultyNormal:
		return DifficultyNormal, true
	case DifficultyEasy:
		return DifficultyEasy, true
	case DifficultyHard:
		return DifficultyHard, true
	default:
		return DifficultyNormal, false
	}
}
