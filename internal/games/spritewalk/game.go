// Package spritewalk is a small sprite-sheet demo: move a character around
// a field and watch its walk cycle advance while it moves.
package spritewalk

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/tile-arcade/internal/anim"
	"github.com/vovakirdan/tile-arcade/internal/applog"
	"github.com/vovakirdan/tile-arcade/internal/config"
	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

// GameID is the registry identifier of the sprite demo.
const GameID = "spritewalk"

const (
	spriteW   = 3
	spriteH   = 2
	hudHeight = 3
	fieldTop  = 1
)

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
}

// Game moves a sprite around a bounded field.
type Game struct {
	sprite *anim.Sprite
	field  core.Rect // interior positions the sprite's top-left may occupy

	x, y       int // logical position
	glideX     *gween.Tween
	glideY     *gween.Tween
	drawX      float32
	drawY      float32
	glide      float32
	speed      int
	distance   int
	elapsed    time.Duration
	tickPeriod time.Duration
	cfg        core.RuntimeConfig

	screenW  int
	screenH  int
	paused   bool
	tooSmall bool
}

// New creates a new sprite demo. Reset must be called before use.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return "Sprite Walk" }

// Reset centers the sprite on a field the size of the screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg := loadConfig()

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	g.cfg = cfg
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = cfg.ScreenW < 20 || cfg.ScreenH < 10

	// The box border takes one cell on each side.
	boxH := cfg.ScreenH - fieldTop - hudHeight
	g.field = core.NewRect(1, fieldTop+1, max(cfg.ScreenW-2-spriteW+1, 1), max(boxH-2-spriteH+1, 1))

	g.sprite = anim.NewSprite(gameCfg.Sprite.Animations, gameCfg.Sprite.Frames, gameCfg.Sprite.FrameRate)
	g.sprite.Reset()
	g.speed = max(gameCfg.Motion.Speed, 1)
	g.glide = float32(gameCfg.Motion.GlideSeconds)
	g.x, g.y = g.field.Center()
	g.drawX, g.drawY = float32(g.x), float32(g.y)
	g.glideX, g.glideY = nil, nil
	g.distance = 0
	g.elapsed = 0
	g.tickPeriod = time.Second / time.Duration(tickRate)
	g.paused = false

	applog.For(GameID).Debug("reset",
		"field", g.field,
		"frames", g.sprite.Frames(),
		"animations", g.sprite.Animations(),
	)
}

// Step handles one move per tick and advances the animation clock.
func (g *Game) Step(in core.InputFrame) core.StepResult {
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
		g.Reset(g.cfg)
		return core.StepResult{State: g.State()}
	}

	g.elapsed += g.tickPeriod

	if in.Has(core.ActionConfirm) {
		g.sprite.SetAnimation((g.sprite.Animation() + 1) % g.sprite.Animations())
	}

	if dx, dy, ok := in.Direction(); ok {
		g.move(dx, dy)
	}

	g.updateGlide()
	g.sprite.Update(g.elapsed)

	return core.StepResult{State: g.State()}
}

func (g *Game) move(dx, dy int) {
	dir, _ := anim.DirectionOf(dx, dy)
	g.sprite.Face(dir)
	g.sprite.MarkMoving()

	nx := core.Clamp(g.x+dx*g.speed, g.field.X, g.field.Right()-1)
	ny := core.Clamp(g.y+dy*g.speed, g.field.Y, g.field.Bottom()-1)
	g.distance += core.Abs(nx-g.x) + core.Abs(ny-g.y)
	g.x, g.y = nx, ny

	if g.glide <= 0 {
		g.drawX, g.drawY = float32(nx), float32(ny)
		return
	}
	g.glideX = gween.New(g.drawX, float32(nx), g.glide, ease.OutCubic)
	g.glideY = gween.New(g.drawY, float32(ny), g.glide, ease.OutCubic)
}

// updateGlide eases the drawn position toward the logical one. The sprite
// keeps walking while the glide is in progress.
func (g *Game) updateGlide() {
	dt := float32(g.tickPeriod.Seconds())
	if g.glideX != nil {
		var done bool
		if g.drawX, done = g.glideX.Update(dt); done {
			g.glideX = nil
		}
	}
	if g.glideY != nil {
		var done bool
		if g.drawY, done = g.glideY.Update(dt); done {
			g.glideY = nil
		}
	}
	if g.gliding() {
		g.sprite.MarkMoving()
	}
}

func (g *Game) gliding() bool {
	return g.glideX != nil || g.glideY != nil
}

// State returns the current game state. The demo never ends; the score is
// the distance walked.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.distance,
		Paused: g.paused || g.tooSmall,
		Status: core.StatusPlaying,
	}
}

// Position returns the logical top-left cell of the sprite.
func (g *Game) Position() (int, int) { return g.x, g.y }

// Sprite exposes the animation state.
func (g *Game) Sprite() *anim.Sprite { return g.sprite }

// loadConfig loads the configured file and applies the difficulty preset.
func loadConfig() config.SpriteWalkConfig {
	cfg, err := config.LoadSpriteWalk(configPath)
	if err != nil {
		applog.For(GameID).Warn("config not loaded, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultSpriteWalkConfig()
	}
	if preset, ok := config.ParsePreset(difficultyPreset); ok {
		config.ApplySpriteWalkPreset(&cfg, preset)
	}
	return cfg
}
