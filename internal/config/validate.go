package config

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// MinSegmentCount is the smallest ring that can keep the start gap away
// from the ball's spawn segment and both of its neighbours.
const MinSegmentCount = 4

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Validate reports the first invalid field. Invalid configuration is a
// programmer error and the game refuses to start with it.
func (c HelixConfig) Validate() error {
	p := c.Physics
	if p.FixedStep <= 0 {
		return invalid("physics.fixed_step must be > 0, got %g", p.FixedStep)
	}
	if p.MaxFrameDelta < p.FixedStep {
		return invalid("physics.max_frame_delta (%g) must be >= fixed_step (%g)", p.MaxFrameDelta, p.FixedStep)
	}
	if p.Gravity >= 0 {
		return invalid("physics.gravity must be negative, got %g", p.Gravity)
	}
	if p.MaxFallSpeed <= 0 {
		return invalid("physics.max_fall_speed must be > 0, got %g", p.MaxFallSpeed)
	}

	t := c.Tower
	if t.SegmentCount < MinSegmentCount {
		return invalid("tower.segment_count must be >= %d, got %d", MinSegmentCount, t.SegmentCount)
	}
	if t.PlatformSpacing <= 0 {
		return invalid("tower.platform_spacing must be > 0, got %g", t.PlatformSpacing)
	}
	if t.InnerRadius < 0 || t.OuterRadius <= t.InnerRadius {
		return invalid("tower radii must satisfy 0 <= inner < outer, got %g/%g", t.InnerRadius, t.OuterRadius)
	}
	if t.Thickness <= 0 {
		return invalid("tower.thickness must be > 0, got %g", t.Thickness)
	}

	b := c.Ball
	if b.Radius <= 0 {
		return invalid("ball.radius must be > 0, got %g", b.Radius)
	}
	if b.OrbitRadius <= t.InnerRadius || b.OrbitRadius >= t.OuterRadius {
		return invalid("ball.orbit_radius (%g) must lie inside the ring (%g, %g)", b.OrbitRadius, t.InnerRadius, t.OuterRadius)
	}
	if b.SpawnHeight <= b.Radius+t.Thickness/2 {
		return invalid("ball.spawn_height (%g) must clear the start platform", b.SpawnHeight)
	}
	if reach := t.Thickness + 2*b.Radius; p.MaxFallSpeed*p.FixedStep >= reach {
		return invalid("physics.max_fall_speed * fixed_step (%g) must be < tower.thickness + 2*ball.radius (%g)",
			p.MaxFallSpeed*p.FixedStep, reach)
	}

	bo := c.Bounce
	if bo.Min <= 0 || bo.Max < bo.Min {
		return invalid("bounce must satisfy 0 < min <= max, got %g/%g", bo.Min, bo.Max)
	}
	if bo.Increment < 0 {
		return invalid("bounce.increment must be >= 0, got %g", bo.Increment)
	}
	if bo.SmashDamping <= 0 || bo.SmashDamping > 1 {
		return invalid("bounce.smash_damping must be in (0, 1], got %g", bo.SmashDamping)
	}

	s := c.Scoring
	if s.ComboWindow <= 0 {
		return invalid("scoring.combo_window must be > 0, got %g", s.ComboWindow)
	}
	if s.SmashThreshold < 1 {
		return invalid("scoring.smash_threshold must be >= 1, got %d", s.SmashThreshold)
	}

	if c.Timing.LevelCompleteDelay < 0 || c.Timing.GameOverDelay < 0 {
		return invalid("timing delays must be >= 0")
	}

	in := c.Input
	if in.RotationGain <= 0 || in.MaxRotationSpeed <= 0 {
		return invalid("input.rotation_gain and input.max_rotation_speed must be > 0")
	}
	if in.DampingFactor < 0 || in.DampingFactor >= 1 {
		return invalid("input.damping_factor must be in [0, 1), got %g", in.DampingFactor)
	}

	d := c.Difficulty
	if d.StartLevel < 1 {
		return invalid("difficulty.start_level must be >= 1, got %d", d.StartLevel)
	}
	if d.BasePlatforms < 0 || d.PlatformsPerLevel < 0 {
		return invalid("difficulty platform counts must be >= 0")
	}
	if d.HazardLevelStep < 1 || d.MaxHazards < 0 {
		return invalid("difficulty.hazard_level_step must be >= 1 and max_hazards >= 0")
	}

	if len(c.Themes) == 0 {
		return invalid("at least one theme is required")
	}
	for i, th := range c.Themes {
		if err := th.Validate(); err != nil {
			return fmt.Errorf("themes[%d]: %w", i, err)
		}
	}

	return nil
}

// Validate checks that every color of the theme is a "#RRGGBB" string.
func (t Theme) Validate() error {
	fields := []struct {
		name, value string
	}{
		{"background", t.Background},
		{"pole", t.Pole},
		{"safe", t.Safe},
		{"danger", t.Danger},
		{"particle", t.Particle},
	}
	for _, f := range fields {
		if !hexColor.MatchString(f.value) {
			return invalid("theme %q: %s color %q is not #RRGGBB", t.Name, f.name, f.value)
		}
	}
	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}
