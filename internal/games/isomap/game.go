// Package isomap implements the isometric exploration game: walk a tile map
// one cell per key press, pick up coins and the key, avoid traps and reach
// the exit.
//
// Terminals report key presses but not releases, so a held arrow key
// auto-repeats and each repeat is a separate move. Step still applies at
// most one move per tick.
package isomap

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tile-arcade/internal/applog"
	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/grid"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

// GameID is the registry identifier of the isometric game.
const GameID = "isomap"

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

// Game adapts a Session to the arcade tick loop.
type Game struct {
	session *Session
	camera  *camera
	proj    projection
	message string
	dt      float32
	cfg     core.RuntimeConfig

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a new isometric game. Reset must be called before use.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Iso Quest" }

// Reset starts a new run. The session itself cannot be reset, so this
// always builds a fresh one.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg := loadConfig()

	session, err := NewSession(layoutFromConfig(gameCfg))
	if err != nil {
		applog.For(GameID).Error("invalid layout, using built-in map", "err", err)
		gameCfg = config.DefaultIsoMapConfig()
		session, err = NewSession(layoutFromConfig(gameCfg))
		if err != nil {
			panic(fmt.Sprintf("isomap: built-in layout: %v", err))
		}
	}

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	g.cfg = cfg
	g.session = session
	g.proj = projection{tileW: max(gameCfg.Tile.Width, 2), tileH: max(gameCfg.Tile.Height, 4)}
	g.camera = newCamera(float32(gameCfg.Camera.EaseSeconds))
	g.camera.snap(g.proj.project(session.Actor().Pos))
	g.dt = 1 / float32(tickRate)
	g.message = fmt.Sprintf("Collect %d coin(s) and the key, then find the exit", session.TargetCoins())
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.tooSmall = cfg.ScreenW < minWidth || cfg.ScreenH < minHeight
}

// Step applies at most one move per tick. Restart begins a new run, since a
// run has no way back to its start.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.Status().Terminal() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.Reset(g.cfg)
		return core.StepResult{State: g.State()}
	}

	g.camera.update(g.dt)

	if dx, dy, ok := in.Direction(); ok {
		g.move(dx, dy)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) move(dx, dy int) {
	out, err := g.session.Move(dx, dy)
	switch {
	case errors.Is(err, core.ErrBlocked):
		g.message = "You can't walk there"
		return
	case errors.Is(err, core.ErrOutOfBounds):
		g.message = "The edge of the world"
		return
	case err != nil:
		return
	}

	g.camera.follow(g.proj.project(out.To))

	actor := g.session.Actor()
	switch {
	case out.Status == core.StatusWin:
		g.message = fmt.Sprintf("VICTORY! Escaped in %d moves | press R to play again", g.session.Moves())
	case out.Status == core.StatusLoss:
		g.message = "GAME OVER! Out of lives | press R to try again"
	case out.ExitLocked:
		g.message = fmt.Sprintf("The door is locked: need %d coin(s) and the key", g.session.TargetCoins())
	case out.Occupant == OccupantCoin:
		g.message = fmt.Sprintf("Coin! %d/%d", actor.Inventory.Coins, g.session.TargetCoins())
	case out.Occupant == OccupantKey:
		g.message = "You found the key"
	case out.Occupant == OccupantTrap:
		g.message = fmt.Sprintf("A trap! Lives left: %d", actor.Lives)
	}
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

// Session exposes the current run.
func (g *Game) Session() *Session { return g.session }

// loadConfig loads the configured file and applies the difficulty preset.
func loadConfig() config.IsoMapConfig {
	cfg, err := config.LoadIsoMap(configPath)
	if err != nil {
		applog.For(GameID).Warn("config not loaded, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultIsoMapConfig()
	}
	if preset, ok := config.ParsePreset(difficultyPreset); ok {
		config.ApplyIsoMapPreset(&cfg, preset)
	}
	return cfg
}

func rulesFromConfig(cfg config.IsoMapConfig) Rules {
	return Rules{
		Start:       grid.At(cfg.Rules.StartY, cfg.Rules.StartX),
		Exit:        grid.At(cfg.Rules.ExitY, cfg.Rules.ExitX),
		TargetCoins: cfg.Rules.TargetCoins,
		Lives:       cfg.Rules.Lives,
	}
}

// layoutFromConfig reads the configured map files. Errors are returned as an
// empty layout so NewSession reports them.
func layoutFromConfig(cfg config.IsoMapConfig) Layout {
	layout, err := LoadLayout(cfg.Files.Tileset, cfg.Files.Terrain, cfg.Files.Objects, rulesFromConfig(cfg))
	if err != nil {
		applog.For(GameID).Error("layout not loaded", "err", err)
		return Layout{}
	}
	return layout
}
