package config

// DifficultyRamp derives per-level generation parameters. Hazard density is
// the only thing that gets harder; ring width never changes.
type DifficultyRamp struct {
	cfg DifficultyConfig
}

// NewDifficultyRamp creates a ramp from the difficulty section.
func NewDifficultyRamp(cfg DifficultyConfig) *DifficultyRamp {
	return &DifficultyRamp{cfg: cfg}
}

// PlatformCount returns the number of intervening platforms for a level.
func (d *DifficultyRamp) PlatformCount(level int) int {
	if level < 1 {
		level = 1
	}
	return d.cfg.BasePlatforms + d.cfg.PlatformsPerLevel*level
}

// HazardCount returns how many hazard draws each platform receives.
func (d *DifficultyRamp) HazardCount(level int) int {
	if level < 1 {
		level = 1
	}
	step := d.cfg.HazardLevelStep
	if step < 1 {
		step = 1 // Prevent division by zero
	}
	n := level/step + 1
	if n > d.cfg.MaxHazards {
		n = d.cfg.MaxHazards
	}
	return n
}

// StartLevel returns the configured first level.
func (d *DifficultyRamp) StartLevel() int {
	if d.cfg.StartLevel < 1 {
		return 1
	}
	return d.cfg.StartLevel
}
