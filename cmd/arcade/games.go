package main

import (
	"fmt"
	"os"
	"os/user"

	"golang.org/x/term"

	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/games/colormatch"
	"github.com/vovakirdan/tile-arcade/internal/games/isomap"
	"github.com/vovakirdan/tile-arcade/internal/games/spritewalk"
)

// gameSetup holds the package-level knobs a game reads on Reset.
type gameSetup struct {
	setConfigPath func(string)
	setDifficulty func(string)
}

// Importing the game packages also registers them.
var games = map[string]gameSetup{
	colormatch.GameID: {colormatch.SetConfigPath, colormatch.SetDifficultyPreset},
	isomap.GameID:     {isomap.SetConfigPath, isomap.SetDifficultyPreset},
	spritewalk.GameID: {spritewalk.SetConfigPath, spritewalk.SetDifficultyPreset},
}

// configureGame applies the config path and difficulty before a game is created.
func configureGame(gameID, configPath string, preset config.DifficultyPreset) {
	setup, ok := games[gameID]
	if !ok {
		return
	}
	setup.setConfigPath(configPath)
	setup.setDifficulty(string(preset))
}

// parseDifficulty validates the --difficulty flag. An empty flag gives a nil
// preset and the player is asked interactively.
func parseDifficulty(name string) (*config.DifficultyPreset, error) {
	if name == "" {
		return nil, nil
	}
	preset, ok := config.ParsePreset(name)
	if !ok {
		return nil, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", name)
	}
	return &preset, nil
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// defaultPlayer names local results after the OS user.
func defaultPlayer() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "local"
}
