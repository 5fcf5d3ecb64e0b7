package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := ParseTetris(GetDefaultYAML("tetris"))
	if err != nil {
		t.Fatalf("ParseTetris(embedded) failed: %v", err)
	}
	if cfg != DefaultTetrisConfig() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, DefaultTetrisConfig())
	}
}

func TestGetDefaultYAMLUnknownGame(t *testing.T) {
	if GetDefaultYAML("flappy") != nil {
		t.Error("unknown game should have no default YAML")
	}
	if GetDefaultYAML("tetris_endless") == nil {
		t.Error("endless mode should share the default YAML")
	}
}

func TestLoadTetrisCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte(`
timing:
  initial_drop_ms: 800
rotation:
  max_kicks: 2
game_over:
  policy: reset
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTetris(path)
	if err != nil {
		t.Fatalf("LoadTetris() failed: %v", err)
	}
	if cfg.Timing.InitialDropMS != 800 {
		t.Errorf("InitialDropMS = %d, expected 800", cfg.Timing.InitialDropMS)
	}
	if cfg.Rotation.MaxKicks != 2 {
		t.Errorf("MaxKicks = %d, expected 2", cfg.Rotation.MaxKicks)
	}
	if cfg.GameOver.Policy != PolicyReset {
		t.Errorf("Policy = %q, expected %q", cfg.GameOver.Policy, PolicyReset)
	}

	// Keys not present in the file keep their defaults
	if cfg.Timing.SpeedUp != 0.9 {
		t.Errorf("SpeedUp = %v, expected default 0.9", cfg.Timing.SpeedUp)
	}
	if !cfg.Difficulty.Enabled {
		t.Error("Difficulty.Enabled should default to true")
	}
}

func TestLoadTetrisMissingCustomPath(t *testing.T) {
	_, err := LoadTetris(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadTetrisInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("timing: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadTetris(path)
	if err == nil {
		t.Error("expected parse error")
	}
	if cfg != DefaultTetrisConfig() {
		t.Error("failed load should return defaults")
	}
}

func TestNormalize(t *testing.T) {
	cfg := TetrisConfig{
		Timing: TetrisTiming{
			InitialDropMS: 200,
			MinDropMS:     500,
			SpeedUp:       1.5,
		},
		Rotation: TetrisRotation{MaxKicks: -3},
		GameOver: TetrisGameOver{Policy: "explode"},
	}
	cfg.Normalize()

	if cfg.Timing.MinDropMS != 200 {
		t.Errorf("MinDropMS = %d, expected clamp to 200", cfg.Timing.MinDropMS)
	}
	if cfg.Timing.SpeedUp != 0.9 {
		t.Errorf("SpeedUp = %v, expected 0.9", cfg.Timing.SpeedUp)
	}
	if cfg.Timing.LinesPerLevel != 10 {
		t.Errorf("LinesPerLevel = %d, expected 10", cfg.Timing.LinesPerLevel)
	}
	if cfg.Rotation.MaxKicks != 0 {
		t.Errorf("MaxKicks = %d, expected 0", cfg.Rotation.MaxKicks)
	}
	if cfg.GameOver.Policy != PolicyStop {
		t.Errorf("Policy = %q, expected stop", cfg.GameOver.Policy)
	}
	if cfg.Difficulty.StartLevel != 1 {
		t.Errorf("StartLevel = %d, expected 1", cfg.Difficulty.StartLevel)
	}
	if cfg.Display.CellSize != 30 || cfg.Display.PreviewCellSize != 20 {
		t.Errorf("Display = %+v, expected defaults", cfg.Display)
	}
}

func TestApplyTetrisPreset(t *testing.T) {
	tests := []struct {
		preset     DifficultyPreset
		startLevel int
		enabled    bool
	}{
		{DifficultyEasy, 1, true},
		{DifficultyNormal, 3, true},
		{DifficultyHard, 6, true},
		{DifficultyFixed, 1, false},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultTetrisConfig()
			ApplyTetrisPreset(&cfg, tc.preset)
			if cfg.Difficulty.StartLevel != tc.startLevel {
				t.Errorf("StartLevel = %d, expected %d", cfg.Difficulty.StartLevel, tc.startLevel)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
		})
	}

	cfg := DefaultTetrisConfig()
	cfg.Difficulty.StartLevel = 4
	ApplyTetrisPreset(&cfg, "")
	if cfg.Difficulty.StartLevel != 4 {
		t.Error("empty preset should leave config untouched")
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard", "fixed"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset should reject unknown presets")
	}
}

func TestLoadTetrisWithSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte("rotation:\n  max_kicks: 1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := LoadTetrisWithSource(path)
	if err != nil {
		t.Fatalf("LoadTetrisWithSource() failed: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Rotation.MaxKicks != 1 {
		t.Errorf("MaxKicks = %d, expected 1", cfg.Rotation.MaxKicks)
	}

	_, source, err = LoadTetrisWithSource(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || source != SourceDefault {
		t.Errorf("missing file: source = %q, err = %v", source, err)
	}
}
