package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("cannot write config: %v", err)
	}
	return path
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseSnake(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("embedded defaults differ from DefaultSnakeConfig():\n%+v\n%+v", cfg, DefaultSnakeConfig())
	}
}

func TestLoadSnakePartialOverride(t *testing.T) {
	path := writeConfig(t, `
grid:
  width: 20
timing:
  boost_window: 750ms
food:
  bonus_duration: 3s
`)

	cfg, err := LoadSnake(path)
	if err != nil {
		t.Fatalf("LoadSnake() failed: %v", err)
	}
	if cfg.Grid.Width != 20 || cfg.Grid.Height != 30 {
		t.Errorf("grid = %dx%d, expected 20x30", cfg.Grid.Width, cfg.Grid.Height)
	}
	if cfg.Timing.BoostWindow != 750*time.Millisecond {
		t.Errorf("boost window = %v, expected 750ms", cfg.Timing.BoostWindow)
	}
	if cfg.Food.BonusDuration != 3*time.Second {
		t.Errorf("bonus duration = %v, expected 3s", cfg.Food.BonusDuration)
	}
	if cfg.Timing.TierCount() != 5 {
		t.Errorf("tier count = %d, expected 5", cfg.Timing.TierCount())
	}
}

func TestLoadSnakeMissingFile(t *testing.T) {
	if _, err := LoadSnake(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for a missing custom config")
	}
}

func TestLoadSnakeInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    string
	}{
		{"tiny grid", "grid: {width: 2, height: 30}", "INVALID_GRID"},
		{"start tier out of range", "timing: {start_tier: 7}", "INVALID_START_TIER"},
		{"no tiers", "timing: {speed_multipliers: []}", "NO_TIERS"},
		{"zero multiplier", "timing: {speed_multipliers: [1, 0]}", "INVALID_TIER"},
		{"slow boost", "timing: {boost_factor: 0.5}", "INVALID_BOOST"},
		{"no phrases", "feedback: {phrases: []}", "NO_PHRASES"},
		{"zero bonus band", "food: {bonus_band: 0}", "INVALID_BONUS"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadSnake(writeConfig(t, tt.content))
			var verr ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("error = %v, expected ValidationError", err)
			}
			if verr.Code != tt.code {
				t.Errorf("code = %s, expected %s", verr.Code, tt.code)
			}
		})
	}
}

func TestLoadSnakeMalformed(t *testing.T) {
	if _, err := LoadSnake(writeConfig(t, "grid: [oops")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestMarshalIsLoadable(t *testing.T) {
	data, err := Marshal(DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := LoadSnake(writeConfig(t, string(data)))
	if err != nil {
		t.Fatalf("LoadSnake() of marshalled config failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSnakeConfig()) {
		t.Errorf("marshalled config changed on load:\n%s", data)
	}
}

func TestApplySnakePreset(t *testing.T) {
	tests := []struct {
		preset SpeedPreset
		want   int
	}{
		{SpeedSlow, 1},
		{SpeedNormal, 2},
		{SpeedFast, 3},
		{"", 2},
	}

	for _, tt := range tests {
		cfg := DefaultSnakeConfig()
		ApplySnakePreset(&cfg, tt.preset)
		if cfg.Timing.StartTier != tt.want {
			t.Errorf("ApplySnakePreset(%q): start tier = %d, expected %d", tt.preset, cfg.Timing.StartTier, tt.want)
		}
	}

	// Clamped to a short speed table
	cfg := DefaultSnakeConfig()
	cfg.Timing.SpeedMultipliers = []float64{1, 2}
	cfg.Timing.StartTier = 0
	ApplySnakePreset(&cfg, SpeedFast)
	if cfg.Timing.StartTier != 1 {
		t.Errorf("start tier = %d, expected clamp to 1", cfg.Timing.StartTier)
	}
}

func TestParseSpeedPreset(t *testing.T) {
	for _, name := range []string{"", "slow", "normal", "fast"} {
		if _, err := ParseSpeedPreset(name); err != nil {
			t.Errorf("ParseSpeedPreset(%q) failed: %v", name, err)
		}
	}
	if _, err := ParseSpeedPreset("ludicrous"); err == nil {
		t.Error("expected error for unknown preset")
	}
}
