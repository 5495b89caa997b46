package config

import (
	_ "embed"
)

//go:embed defaults/helix.yaml
var defaultHelixYAML []byte

// DefaultHelixConfig returns the built-in configuration. It mirrors
// defaults/helix.yaml and is the fallback if the embedded file is unusable.
func DefaultHelixConfig() HelixConfig {
	return HelixConfig{
		Physics: PhysicsConfig{
			Gravity:       -30,
			FixedStep:     1.0 / 120.0,
			MaxFrameDelta: 0.1,
			MaxFallSpeed:  18,
		},
		Tower: TowerConfig{
			SegmentCount:    12,
			PlatformSpacing: 3,
			StartY:          0,
			InnerRadius:     1,
			OuterRadius:     3,
			Thickness:       0.4,
		},
		Ball: BallConfig{
			Radius:      0.3,
			OrbitRadius: 2,
			SpawnAngle:  1.5707963267948966, // π/2
			SpawnHeight: 2,
			SquashDecay: 4,
		},
		Bounce: BounceConfig{
			Min:               9,
			Max:               14,
			Increment:         2,
			ContactNormalMinY: 0.5,
			SmashDamping:      0.5,
		},
		Scoring: ScoringConfig{
			PassPoints:             10,
			ComboBonus:             5,
			ChainBonus:             10,
			SmashPointsPerPass:     50,
			SmashThreshold:         3,
			ShieldAbsorbPoints:     10,
			FireballPoints:         25,
			LevelMultiplier:        100,
			ComboWindow:            1.5,
			ShieldComboMilestone:   5,
			FireballComboMilestone: 8,
		},
		Timing: TimingConfig{
			LevelCompleteDelay: 1.0,
			GameOverDelay:      1.2,
		},
		Input: InputConfig{
			RotationGain:     0.6,
			MaxRotationSpeed: 8,
			DampingFactor:    0.88,
			KeyDrag:          1.5,
		},
		Difficulty: DifficultyConfig{
			StartLevel:        1,
			BasePlatforms:     20,
			PlatformsPerLevel: 5,
			HazardLevelStep:   2,
			MaxHazards:        5,
		},
		Themes: DefaultThemes(),
	}
}

// DefaultThemes returns the built-in theme rotation.
func DefaultThemes() []Theme {
	return []Theme{
		{Name: "neon", Background: "#10101a", Pole: "#e0e0ff", Safe: "#3fa7ff", Danger: "#ff3860", Particle: "#ffe066"},
		{Name: "ember", Background: "#1a0f0a", Pole: "#ffd6a5", Safe: "#ff9f1c", Danger: "#8b00ff", Particle: "#ff595e"},
		{Name: "mint", Background: "#0b1a14", Pole: "#d8f3dc", Safe: "#52b788", Danger: "#ef476f", Particle: "#b7e4c7"},
		{Name: "dusk", Background: "#14101f", Pole: "#f1e9ff", Safe: "#9d4edd", Danger: "#ffbe0b", Particle: "#c77dff"},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultHelixYAML
}
