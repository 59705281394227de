// Package colormatch implements the color-matching puzzle: pick a cell and
// every remaining cell of a similar color disappears with it. Each attempt
// lowers the value of a removed cell, so early accurate picks score best.
package colormatch

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tile-arcade/internal/applog"
	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/grid"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

// GameID is the registry identifier of the color-matching game.
const GameID = "colormatch"

// Package-level variables for config
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset (easy, normal, hard).
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
	registry.RegisterSession(GameID, NewHeadless)
}

// Game adapts a Session to the arcade tick loop: it maps clicks and the
// keyboard cursor to selections and draws the board.
type Game struct {
	session *Session
	layout  layout
	cursor  grid.Coord
	message string
	tick    uint64

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a new color-matching game. Reset must be called before use.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Color Match" }

// Reset starts a new game with a fresh board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg := loadConfig()
	opts := optionsFromConfig(gameCfg)
	rng := rand.New(rand.NewSource(cfg.Seed))

	session, err := NewSession(opts, rng)
	if err != nil {
		applog.For(GameID).Error("invalid configuration, using defaults", "err", err)
		gameCfg = config.DefaultColorMatchConfig()
		session, _ = NewSession(DefaultOptions(), rng)
	}

	g.session = session
	g.cursor = grid.Coord{}
	g.message = "Click a color (or move with arrows, Enter to pick)"
	g.tick = 0
	g.paused = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.layout = newLayout(session.Board().Rows(), session.Board().Cols(),
		gameCfg.Board.CellWidth, gameCfg.Board.CellHeight, cfg.ScreenW)
	g.tooSmall = cfg.ScreenW < g.layout.minWidth() || cfg.ScreenH < g.layout.minHeight()
}

// Step resolves at most one selection per tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.session.Reset()
		g.cursor = grid.Coord{}
		g.message = "New board"
		return core.StepResult{State: g.State()}
	}

	if dx, dy, ok := in.Direction(); ok {
		g.cursor = grid.At(
			core.Clamp(g.cursor.Row+dy, 0, g.session.Board().Rows()-1),
			core.Clamp(g.cursor.Col+dx, 0, g.session.Board().Cols()-1),
		)
	}

	switch {
	case in.Has(core.ActionClick):
		if c, ok := g.layout.cellAt(in.Pointer.X, in.Pointer.Y); ok {
			g.cursor = c
			g.pick(c)
		}
	case in.Has(core.ActionConfirm):
		g.pick(g.cursor)
	}

	return core.StepResult{State: g.State()}
}

// pick selects c and resolves it within the same tick.
func (g *Game) pick(c grid.Coord) {
	if err := g.session.Select(c); err != nil {
		if errors.Is(err, core.ErrInvalidSelection) {
			g.message = "That color is already gone"
		}
		return
	}

	out, ok := g.session.Resolve()
	if !ok {
		return
	}
	if out.Cleared {
		g.message = fmt.Sprintf("GAME OVER! Final score: %d | press R to restart", out.Total)
		return
	}
	g.message = fmt.Sprintf("Attempt %d: removed %d, +%d points", out.Attempt, out.Removed, out.Points)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{}
	}
	status := g.session.Status()
	return core.GameState{
		Score:    g.session.Score(),
		GameOver: status.Terminal(),
		Paused:   g.paused || g.tooSmall,
		Status:   status,
	}
}

// Session exposes the underlying controller.
func (g *Game) Session() *Session { return g.session }

// Cursor returns the keyboard cursor position.
func (g *Game) Cursor() grid.Coord { return g.cursor }

// loadConfig loads the configured file and applies the difficulty preset.
func loadConfig() config.ColorMatchConfig {
	cfg, err := config.LoadColorMatch(configPath)
	if err != nil {
		applog.For(GameID).Warn("config not loaded, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultColorMatchConfig()
	}
	if preset, ok := config.ParsePreset(difficultyPreset); ok {
		config.ApplyColorMatchPreset(&cfg, preset)
	}
	return cfg
}

func optionsFromConfig(cfg config.ColorMatchConfig) Options {
	return Options{
		Rows:      cfg.Board.Rows,
		Cols:      cfg.Board.Cols,
		Tolerance: cfg.Tolerance,
		Scoring: Scoring{
			BasePoints:        cfg.Scoring.BasePoints,
			PenaltyPerAttempt: cfg.Scoring.PenaltyPerAttempt,
		},
	}
}
