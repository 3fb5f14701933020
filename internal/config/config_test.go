package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}
	if cfg != DefaultAntarcticConfig() {
		t.Errorf("embedded YAML differs from DefaultAntarcticConfig():\n%+v\n%+v", cfg, DefaultAntarcticConfig())
	}
}

func TestLoadCustomPathOverridesOnlyGivenKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("session:\n  scroll_speed: 0.5\n  fish_reward: 25\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadAntarctic(path)
	if err != nil {
		t.Fatalf("LoadAntarctic() failed: %v", err)
	}

	if cfg.Session.ScrollSpeed != 0.5 {
		t.Errorf("ScrollSpeed = %f, expected 0.5", cfg.Session.ScrollSpeed)
	}
	if cfg.Session.FishReward != 25 {
		t.Errorf("FishReward = %d, expected 25", cfg.Session.FishReward)
	}
	if cfg.Objects.SpawnDepth != 100 {
		t.Errorf("untouched SpawnDepth = %f, expected default 100", cfg.Objects.SpawnDepth)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := LoadAntarctic(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing custom config")
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := []byte("objects:\n  remove_depth: 200\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	_, err := LoadAntarctic(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AntarcticConfig)
		valid  bool
	}{
		{"defaults", func(*AntarcticConfig) {}, true},
		{"zero width", func(c *AntarcticConfig) { c.Screen.Width = 0 }, false},
		{"horizon below screen", func(c *AntarcticConfig) { c.Screen.HorizonY = 600 }, false},
		{"zero projection scale", func(c *AntarcticConfig) { c.Projection.Scale = 0 }, false},
		{"zero min depth", func(c *AntarcticConfig) { c.Projection.MinDepth = 0 }, false},
		{"empty collision band", func(c *AntarcticConfig) { c.Session.CollisionNear = 2 }, false},
		{"negative speed", func(c *AntarcticConfig) { c.Session.ScrollSpeed = -1 }, false},
		{"zero speed", func(c *AntarcticConfig) { c.Session.ScrollSpeed = 0 }, true},
		{"fish chance above one", func(c *AntarcticConfig) { c.Objects.FishChance = 1.5 }, false},
		{"zero gravity", func(c *AntarcticConfig) { c.Player.Gravity = 0 }, false},
		{"negative player height", func(c *AntarcticConfig) { c.Player.Height = -5 }, false},
		{"zero player width", func(c *AntarcticConfig) { c.Player.Width = 0 }, false},
		{"zero obstacle width", func(c *AntarcticConfig) { c.Objects.ObstacleWidth = 0 }, false},
		{"negative obstacle height", func(c *AntarcticConfig) { c.Objects.ObstacleHeight = -1 }, false},
		{"zero fish height", func(c *AntarcticConfig) { c.Objects.FishHeight = 0 }, false},
		{"zero hold ticks", func(c *AntarcticConfig) { c.Input.HoldTicks = 0 }, false},
		{"single hold tick", func(c *AntarcticConfig) { c.Input.HoldTicks = 1 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultAntarcticConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.valid && err != nil {
				t.Errorf("Validate() = %v, expected nil", err)
			}
			if !tc.valid && !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestParseRejectsNegativeSpriteSize(t *testing.T) {
	_, err := Parse([]byte("player:\n  height: -5\n"))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Parse() = %v, expected ErrInvalidConfig", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultAntarcticConfig()
	cfg.Session.ScrollSpeed = 0.45

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip changed config:\n%+v\n%+v", back, cfg)
	}
}

func TestSpeedRamp(t *testing.T) {
	off := NewSpeedRamp(0.3, DifficultyConfig{})
	if off.IsEnabled() {
		t.Error("zero ramp should be disabled")
	}
	for _, ticks := range []int{0, 1, 1000, 1_000_000} {
		if got := off.Speed(ticks); got != 0.3 {
			t.Errorf("disabled ramp Speed(%d) = %f, expected 0.3", ticks, got)
		}
	}

	on := NewSpeedRamp(0.3, DifficultyConfig{SpeedRamp: 0.001, MaxSpeed: 0.5})
	if !on.IsEnabled() {
		t.Error("positive ramp should be enabled")
	}
	if got := on.Speed(100); got < 0.399 || got > 0.401 {
		t.Errorf("Speed(100) = %f, expected ~0.4", got)
	}
	if got := on.Speed(10_000); got != 0.5 {
		t.Errorf("Speed(10000) = %f, expected cap 0.5", got)
	}
}
