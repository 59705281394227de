package registry

import (
	"testing"

	"github.com/vovakirdan/tile-arcade/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

type stubSession struct{ seed int64 }

func (s *stubSession) Apply(core.Event) error { return nil }
func (s *stubSession) Snapshot() any          { return s.seed }
func (s *stubSession) State() core.GameState  { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return &stubGame{id: "zz_stub"} })

	if !Exists("zz_stub") {
		t.Fatal("registered game should exist")
	}

	g, err := Create("zz_stub")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if g.ID() != "zz_stub" {
		t.Errorf("ID() = %q", g.ID())
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create() should fail for unknown IDs")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}

func TestSessions(t *testing.T) {
	Register("zz_headless", func() Game { return &stubGame{id: "zz_headless"} })
	RegisterSession("zz_headless", func(seed int64) (Session, error) {
		return &stubSession{seed: seed}, nil
	})

	s, err := NewSession("zz_headless", 42)
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	if s.Snapshot() != int64(42) {
		t.Errorf("seed not passed through: %v", s.Snapshot())
	}

	if _, err := NewSession("zz_stub_none", 1); err == nil {
		t.Error("NewSession() should fail without a session factory")
	}

	var found bool
	for _, info := range List() {
		if info.ID == "zz_headless" {
			found = info.Headless && info.Title == "Stub zz_headless"
		}
	}
	if !found {
		t.Error("List() should report the headless game with its title")
	}
}
