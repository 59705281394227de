package isomap

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tile-arcade/internal/core"
	"github.com/vovakirdan/tile-arcade/internal/grid"
	"github.com/vovakirdan/tile-arcade/internal/registry"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	return g
}

func press(g *Game, a core.Action) core.StepResult {
	in := core.NewInputFrame()
	in.Set(a)
	return g.Step(in)
}

func idle(g *Game, ticks int) {
	for range ticks {
		g.Step(core.NewInputFrame())
	}
}

func TestGameResetUsesBuiltInMap(t *testing.T) {
	g := newTestGame(t)

	actor := g.Session().Actor()
	if actor.Pos != grid.At(1, 1) || actor.Lives != 3 {
		t.Errorf("actor = %+v", actor)
	}
	if g.Session().World().Rows() != 15 {
		t.Errorf("rows = %d, expected 15", g.Session().World().Rows())
	}
	if g.State().GameOver {
		t.Error("new run should not be over")
	}
}

func TestGameOneMovePerPress(t *testing.T) {
	g := newTestGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	in.Set(core.ActionDown)
	g.Step(in)

	if g.Session().Moves() != 1 {
		t.Fatalf("moves = %d, expected exactly one", g.Session().Moves())
	}
	if g.Session().Actor().Pos != grid.At(2, 1) {
		t.Errorf("position = %v, vertical should win", g.Session().Actor().Pos)
	}

	idle(g, 5)
	if g.Session().Moves() != 1 {
		t.Error("idle ticks must not move the actor")
	}
}

func TestGameCameraEasesToActor(t *testing.T) {
	g := newTestGame(t)

	press(g, core.ActionRight)
	if !g.camera.moving() {
		t.Fatal("camera should start easing after a move")
	}

	idle(g, 60)
	if g.camera.moving() {
		t.Fatal("camera should settle within a second")
	}
	wantX, wantY := g.proj.project(g.Session().Actor().Pos)
	if x, y := g.camera.position(); x != int(wantX) || y != int(wantY) {
		t.Errorf("camera = (%d,%d), expected (%v,%v)", x, y, wantX, wantY)
	}
}

func TestGameRenderCentersActor(t *testing.T) {
	g := newTestGame(t)
	press(g, core.ActionRight)
	idle(g, 60)

	s := core.NewScreen(80, 24)
	g.Render(s)

	if r := s.Get(39, 11); r != '@' {
		t.Errorf("expected actor at screen center, found %q", r)
	}
	if !strings.Contains(s.Row(21), "Coins: 0/1") {
		t.Errorf("HUD row = %q", s.Row(21))
	}
}

func TestGameBlockedMoveShowsMessage(t *testing.T) {
	dir := t.TempDir()
	tileset := filepath.Join(dir, "tileset.cfg")
	cfgPath := filepath.Join(dir, "isomap.yaml")
	writeFile(t, tileset, "tileCount=7\nwalkable=0,2,5\n")
	writeFile(t, cfgPath, "files:\n  tileset: "+tileset+"\n")

	g := newTestGame(t)
	SetConfigPath(cfgPath)
	t.Cleanup(func() { SetConfigPath("") })
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})

	press(g, core.ActionUp) // wall at (0,1)
	if g.Session().Moves() != 0 {
		t.Error("moving into the wall should be rejected")
	}
	if g.message != "You can't walk there" {
		t.Errorf("message = %q", g.message)
	}
}

func TestGamePauseAndRestart(t *testing.T) {
	g := newTestGame(t)

	press(g, core.ActionPause)
	press(g, core.ActionRight)
	if g.Session().Moves() != 0 {
		t.Error("paused game must ignore moves")
	}
	press(g, core.ActionPause)

	press(g, core.ActionRight)
	if g.Session().Moves() != 1 {
		t.Fatalf("Moves() = %d, want 1", g.Session().Moves())
	}
	press(g, core.ActionRestart)
	if g.Session().Moves() != 0 || g.Session().Actor().Pos != grid.At(1, 1) {
		t.Error("restart should begin a new run at the start")
	}
}

func TestHeadlessSessionRegistered(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	s, err := registry.NewSession(GameID, 1)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if err := s.Apply(core.Move(1, 0)); err != nil {
		t.Fatalf("Apply() failed: %v", err)
	}
	snap, ok := s.Snapshot().(Snapshot)
	if !ok {
		t.Fatalf("snapshot type %T", s.Snapshot())
	}
	if snap.Actor.Pos != grid.At(1, 2) {
		t.Errorf("actor = %v", snap.Actor.Pos)
	}
}
