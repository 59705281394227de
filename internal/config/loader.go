package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadColorMatch loads the color-matching configuration.
// Search order: customPath -> ~/.arcade/configs/colormatch.yaml -> ./configs/colormatch.yaml -> embedded default
func LoadColorMatch(customPath string) (ColorMatchConfig, error) {
	return load(customPath, "colormatch.yaml", defaultColorMatchYAML, DefaultColorMatchConfig)
}

// LoadIsoMap loads the isometric game configuration.
// Search order: customPath -> ~/.arcade/configs/isomap.yaml -> ./configs/isomap.yaml -> embedded default
func LoadIsoMap(customPath string) (IsoMapConfig, error) {
	return load(customPath, "isomap.yaml", defaultIsoMapYAML, DefaultIsoMapConfig)
}

// LoadSpriteWalk loads the sprite demo configuration.
// Search order: customPath -> ~/.arcade/configs/spritewalk.yaml -> ./configs/spritewalk.yaml -> embedded default
func LoadSpriteWalk(customPath string) (SpriteWalkConfig, error) {
	return load(customPath, "spritewalk.yaml", defaultSpriteWalkYAML, DefaultSpriteWalkConfig)
}

// load resolves a config file through the search order. Only an explicit
// customPath can fail; the other locations fall through silently.
// Fields missing from a file keep the hardcoded defaults.
func load[T any](customPath, filename string, embedded []byte, defaults func() T) (T, error) {
	cfg := defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return defaults(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = defaults()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = defaults()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyColorMatchPreset tunes tolerance and scoring for a difficulty preset.
// A wider tolerance removes more cells per attempt.
func ApplyColorMatchPreset(cfg *ColorMatchConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Tolerance = 0.3
		cfg.Scoring.PenaltyPerAttempt = 1
	case DifficultyHard:
		cfg.Tolerance = 0.1
		cfg.Scoring.PenaltyPerAttempt = 2
	}
}

// ApplyIsoMapPreset tunes lives and coin target for a difficulty preset.
func ApplyIsoMapPreset(cfg *IsoMapConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.Lives = 5
	case DifficultyHard:
		cfg.Rules.Lives = 1
		cfg.Rules.TargetCoins = max(cfg.Rules.TargetCoins, 3)
	}
}

// ApplySpriteWalkPreset tunes movement speed for a difficulty preset.
func ApplySpriteWalkPreset(cfg *SpriteWalkConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Motion.Speed = 1
	case DifficultyHard:
		cfg.Motion.Speed = 2
	}
}
