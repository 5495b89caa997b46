package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultHelixConfig().Validate(); err != nil {
		t.Fatalf("DefaultHelixConfig() should be valid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	def := DefaultHelixConfig()
	if cfg.Tower != def.Tower {
		t.Errorf("Tower section differs: yaml=%+v default=%+v", cfg.Tower, def.Tower)
	}
	if cfg.Bounce != def.Bounce {
		t.Errorf("Bounce section differs: yaml=%+v default=%+v", cfg.Bounce, def.Bounce)
	}
	if cfg.Scoring != def.Scoring {
		t.Errorf("Scoring section differs: yaml=%+v default=%+v", cfg.Scoring, def.Scoring)
	}
	if cfg.Input != def.Input {
		t.Errorf("Input section differs: yaml=%+v default=%+v", cfg.Input, def.Input)
	}
	if len(cfg.Themes) != len(def.Themes) {
		t.Errorf("Expected %d themes, got %d", len(def.Themes), len(cfg.Themes))
	}
}

func TestParsePartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("tower:\n  segment_count: 16\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Tower.SegmentCount != 16 {
		t.Errorf("SegmentCount = %d, expected 16", cfg.Tower.SegmentCount)
	}
	if cfg.Tower.PlatformSpacing != DefaultHelixConfig().Tower.PlatformSpacing {
		t.Errorf("Unset keys should keep defaults, got spacing %g", cfg.Tower.PlatformSpacing)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *HelixConfig)
	}{
		{"zero segments", func(c *HelixConfig) { c.Tower.SegmentCount = 0 }},
		{"negative segments", func(c *HelixConfig) { c.Tower.SegmentCount = -3 }},
		{"too few segments", func(c *HelixConfig) { c.Tower.SegmentCount = 3 }},
		{"zero step", func(c *HelixConfig) { c.Physics.FixedStep = 0 }},
		{"negative step", func(c *HelixConfig) { c.Physics.FixedStep = -0.01 }},
		{"frame delta below step", func(c *HelixConfig) { c.Physics.MaxFrameDelta = c.Physics.FixedStep / 2 }},
		{"upward gravity", func(c *HelixConfig) { c.Physics.Gravity = 9.8 }},
		{"fall step tunnels", func(c *HelixConfig) { c.Physics.MaxFallSpeed = 200 }},
		{"coarse step tunnels", func(c *HelixConfig) {
			c.Physics.FixedStep = 0.1
			c.Physics.MaxFallSpeed = 15
		}},
		{"zero smash damping", func(c *HelixConfig) { c.Bounce.SmashDamping = 0 }},
		{"smash damping above one", func(c *HelixConfig) { c.Bounce.SmashDamping = 1.5 }},
		{"bounce min above max", func(c *HelixConfig) { c.Bounce.Min = 20 }},
		{"ball outside ring", func(c *HelixConfig) { c.Ball.OrbitRadius = 10 }},
		{"damping of one", func(c *HelixConfig) { c.Input.DampingFactor = 1 }},
		{"no themes", func(c *HelixConfig) { c.Themes = nil }},
		{"bad color", func(c *HelixConfig) { c.Themes[0].Safe = "blue" }},
		{"start level zero", func(c *HelixConfig) { c.Difficulty.StartLevel = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultHelixConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should wrap ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadHelixCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "helix.yaml")
	if err := os.WriteFile(path, []byte("bounce:\n  min: 7\n  max: 12\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadHelix(path)
	if err != nil {
		t.Fatalf("LoadHelix() failed: %v", err)
	}
	if cfg.Bounce.Min != 7 || cfg.Bounce.Max != 12 {
		t.Errorf("Bounce = %+v, expected min 7 max 12", cfg.Bounce)
	}
}

func TestLoadHelixInvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "helix.yaml")
	if err := os.WriteFile(path, []byte("tower:\n  segment_count: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadHelix(path); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("LoadHelix() should fail validation, got %v", err)
	}

	if _, err := LoadHelix(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadHelix() with a missing custom path should fail")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultHelixConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Round-tripped config should be valid: %v", err)
	}
}

func TestDifficultyRamp(t *testing.T) {
	ramp := NewDifficultyRamp(DefaultHelixConfig().Difficulty)

	tests := []struct {
		level     int
		platforms int
		hazards   int
	}{
		{1, 25, 1},
		{2, 30, 2},
		{3, 35, 2},
		{4, 40, 3},
		{8, 60, 5},
		{20, 120, 5},
	}

	for _, tc := range tests {
		if got := ramp.PlatformCount(tc.level); got != tc.platforms {
			t.Errorf("PlatformCount(%d) = %d, expected %d", tc.level, got, tc.platforms)
		}
		if got := ramp.HazardCount(tc.level); got != tc.hazards {
			t.Errorf("HazardCount(%d) = %d, expected %d", tc.level, got, tc.hazards)
		}
	}
}

func TestApplyHelixPreset(t *testing.T) {
	cfg := DefaultHelixConfig()
	ApplyHelixPreset(&cfg, DifficultyHard)
	if cfg.Difficulty.StartLevel != 5 {
		t.Errorf("Hard preset StartLevel = %d, expected 5", cfg.Difficulty.StartLevel)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Hard preset should stay valid: %v", err)
	}

	if ParsePreset("bogus") != "" {
		t.Error("Unknown preset should parse to empty")
	}
	if ParsePreset("easy") != DifficultyEasy {
		t.Error("easy should parse to DifficultyEasy")
	}
}
