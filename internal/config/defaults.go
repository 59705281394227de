package config

import (
	_ "embed"
)

//go:embed defaults/colormatch.yaml
var defaultColorMatchYAML []byte

//go:embed defaults/isomap.yaml
var defaultIsoMapYAML []byte

//go:embed defaults/spritewalk.yaml
var defaultSpriteWalkYAML []byte

// DefaultColorMatchConfig returns the default color-matching configuration.
func DefaultColorMatchConfig() ColorMatchConfig {
	return ColorMatchConfig{
		Board: ColorMatchBoard{
			Rows:       6,
			Cols:       8,
			CellWidth:  6,
			CellHeight: 3,
		},
		Tolerance: 0.2,
		Scoring: ColorMatchScoring{
			BasePoints:        10,
			PenaltyPerAttempt: 1,
		},
	}
}

// DefaultIsoMapConfig returns the default isometric game configuration.
func DefaultIsoMapConfig() IsoMapConfig {
	return IsoMapConfig{
		Rules: IsoMapRules{
			TargetCoins: 1,
			Lives:       3,
			StartX:      1,
			StartY:      1,
			ExitX:       13,
			ExitY:       13,
		},
		Tile: IsoMapTile{
			Width:  4,
			Height: 4,
		},
		Camera: IsoMapCamera{
			EaseSeconds: 0.25,
		},
	}
}

// DefaultSpriteWalkConfig returns the default sprite demo configuration.
func DefaultSpriteWalkConfig() SpriteWalkConfig {
	return SpriteWalkConfig{
		Sprite: SpriteWalkSprite{
			Animations: 1,
			Frames:     6,
			FrameRate:  10,
		},
		Motion: SpriteWalkMotion{
			Speed:        1,
			GlideSeconds: 0.12,
		},
	}
}
