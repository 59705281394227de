package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cm, err := LoadColorMatch("")
	if err != nil {
		t.Fatalf("LoadColorMatch() failed: %v", err)
	}
	if cm != DefaultColorMatchConfig() {
		t.Errorf("embedded colormatch config = %+v, expected %+v", cm, DefaultColorMatchConfig())
	}

	iso, err := LoadIsoMap("")
	if err != nil {
		t.Fatalf("LoadIsoMap() failed: %v", err)
	}
	if iso != DefaultIsoMapConfig() {
		t.Errorf("embedded isomap config = %+v, expected %+v", iso, DefaultIsoMapConfig())
	}

	sw, err := LoadSpriteWalk("")
	if err != nil {
		t.Fatalf("LoadSpriteWalk() failed: %v", err)
	}
	if sw != DefaultSpriteWalkConfig() {
		t.Errorf("embedded spritewalk config = %+v, expected %+v", sw, DefaultSpriteWalkConfig())
	}
}

func TestLoadCustomPathKeepsUnsetDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cm.yaml")
	if err := os.WriteFile(path, []byte("tolerance: 0.5\nboard:\n  rows: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadColorMatch(path)
	if err != nil {
		t.Fatalf("LoadColorMatch() failed: %v", err)
	}
	if cfg.Tolerance != 0.5 || cfg.Board.Rows != 4 {
		t.Errorf("custom values not applied: %+v", cfg)
	}
	if cfg.Board.Cols != 8 || cfg.Scoring.BasePoints != 10 {
		t.Errorf("unset fields should keep defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadIsoMap(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rules: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadIsoMap(path); err == nil {
		t.Error("malformed custom config should fail")
	}
}

func TestUserConfigDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".arcade", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "isomap.yaml"), []byte("rules:\n  lives: 9\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadIsoMap("")
	if err != nil {
		t.Fatalf("LoadIsoMap() failed: %v", err)
	}
	if cfg.Rules.Lives != 9 {
		t.Errorf("user config ignored: lives = %d", cfg.Rules.Lives)
	}
}

func TestPresets(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("empty preset = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should be rejected")
	}

	cm := DefaultColorMatchConfig()
	ApplyColorMatchPreset(&cm, DifficultyHard)
	if cm.Tolerance >= DefaultColorMatchConfig().Tolerance {
		t.Errorf("hard should narrow tolerance, got %v", cm.Tolerance)
	}

	iso := DefaultIsoMapConfig()
	ApplyIsoMapPreset(&iso, DifficultyEasy)
	if iso.Rules.Lives != 5 {
		t.Errorf("easy lives = %d, expected 5", iso.Rules.Lives)
	}

	normal := DefaultIsoMapConfig()
	ApplyIsoMapPreset(&normal, DifficultyNormal)
	if normal != DefaultIsoMapConfig() {
		t.Error("normal preset should not change the config")
	}
}
