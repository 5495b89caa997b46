// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for Helix Drop.
package config

// HelixConfig contains all tunable parameters of the simulation.
type HelixConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Tower      TowerConfig      `yaml:"tower"`
	Ball       BallConfig       `yaml:"ball"`
	Bounce     BounceConfig     `yaml:"bounce"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Timing     TimingConfig     `yaml:"timing"`
	Input      InputConfig      `yaml:"input"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Themes     []Theme          `yaml:"themes"`
}

// PhysicsConfig defines the integrator parameters.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`         // Vertical acceleration (negative is down)
	FixedStep     float64 `yaml:"fixed_step"`      // Physics step size in seconds
	MaxFrameDelta float64 `yaml:"max_frame_delta"` // Upper bound for one render frame delta
	MaxFallSpeed  float64 `yaml:"max_fall_speed"`  // Terminal velocity, keeps the ball from tunnelling
}

// TowerConfig defines ring geometry and spacing.
type TowerConfig struct {
	SegmentCount    int     `yaml:"segment_count"`
	PlatformSpacing float64 `yaml:"platform_spacing"`
	StartY          float64 `yaml:"start_y"`
	InnerRadius     float64 `yaml:"inner_radius"`
	OuterRadius     float64 `yaml:"outer_radius"`
	Thickness       float64 `yaml:"thickness"`
}

// BallConfig defines the ball body and its spawn point.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	OrbitRadius float64 `yaml:"orbit_radius"` // Distance from the pole axis
	SpawnAngle  float64 `yaml:"spawn_angle"`  // World angle around the pole, radians
	SpawnHeight float64 `yaml:"spawn_height"` // Height above the start platform
	SquashDecay float64 `yaml:"squash_decay"` // Squash units lost per second
}

// BounceConfig defines contact response parameters.
type BounceConfig struct {
	Min               float64 `yaml:"min"`
	Max               float64 `yaml:"max"`
	Increment         float64 `yaml:"increment"`
	ContactNormalMinY float64 `yaml:"contact_normal_min_y"`
	SmashDamping      float64 `yaml:"smash_damping"`
}

// ScoringConfig defines point awards and combo timing.
type ScoringConfig struct {
	PassPoints             int     `yaml:"pass_points"`
	ComboBonus             int     `yaml:"combo_bonus"`
	ChainBonus             int     `yaml:"chain_bonus"`
	SmashPointsPerPass     int     `yaml:"smash_points_per_pass"`
	SmashThreshold         int     `yaml:"smash_threshold"`
	ShieldAbsorbPoints     int     `yaml:"shield_absorb_points"`
	FireballPoints         int     `yaml:"fireball_points"`
	LevelMultiplier        int     `yaml:"level_multiplier"`
	ComboWindow            float64 `yaml:"combo_window"`
	ShieldComboMilestone   int     `yaml:"shield_combo_milestone"`   // 0 disables
	FireballComboMilestone int     `yaml:"fireball_combo_milestone"` // 0 disables
}

// TimingConfig defines delays of deferred effects, in simulation seconds.
type TimingConfig struct {
	LevelCompleteDelay float64 `yaml:"level_complete_delay"`
	GameOverDelay      float64 `yaml:"game_over_delay"`
}

// InputConfig is the rotation sensitivity tuning. The three named fields are
// the values persisted by the settings store.
type InputConfig struct {
	RotationGain     float64 `yaml:"rotation_gain"`      // Angular acceleration per unit of drag
	MaxRotationSpeed float64 `yaml:"max_rotation_speed"` // Radians per second
	DampingFactor    float64 `yaml:"damping_factor"`     // Velocity kept per 1/60 s
	KeyDrag          float64 `yaml:"key_drag"`           // Drag injected per key press
}

// DifficultyConfig defines the level ramp.
type DifficultyConfig struct {
	StartLevel        int `yaml:"start_level"`
	BasePlatforms     int `yaml:"base_platforms"`
	PlatformsPerLevel int `yaml:"platforms_per_level"`
	HazardLevelStep   int `yaml:"hazard_level_step"` // Levels per extra hazard
	MaxHazards        int `yaml:"max_hazards"`
}

// Theme is a fixed-shape color record. Colors are "#RRGGBB" strings.
type Theme struct {
	Name       string `yaml:"name"`
	Background string `yaml:"background"`
	Pole       string `yaml:"pole"`
	Safe       string `yaml:"safe"`
	Danger     string `yaml:"danger"`
	Particle   string `yaml:"particle"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI string to a preset. Unknown strings map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s)
	default:
		return ""
	}
}
