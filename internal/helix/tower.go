package helix

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/helix-drop/internal/config"
	"github.com/vovakirdan/helix-drop/internal/core"
	"github.com/vovakirdan/helix-drop/internal/physics"
)

// ErrInvalidTower is wrapped by NewTower for unusable geometry.
var ErrInvalidTower = errors.New("helix: invalid tower configuration")

// Tower owns the platforms of the current level and their shared rotation.
// Platforms are ordered top to bottom; the last one is the finish.
type Tower struct {
	world  *physics.World
	cfg    config.TowerConfig
	ramp   *config.DifficultyRamp
	themes []config.Theme
	rng    *core.SimpleRNG

	spawnSegment int

	platforms []*Platform
	rotation  float64
	level     int
	theme     config.Theme
}

// NewTower validates the ring geometry and creates an empty tower. Call
// GenerateLevel before use.
func NewTower(world *physics.World, cfg config.HelixConfig, rng *core.SimpleRNG) (*Tower, error) {
	if world == nil {
		return nil, fmt.Errorf("%w: nil physics world", ErrInvalidTower)
	}
	tc := cfg.Tower
	if tc.SegmentCount < config.MinSegmentCount {
		return nil, fmt.Errorf("%w: segment count %d < %d", ErrInvalidTower, tc.SegmentCount, config.MinSegmentCount)
	}
	if tc.PlatformSpacing <= 0 {
		return nil, fmt.Errorf("%w: platform spacing %g", ErrInvalidTower, tc.PlatformSpacing)
	}
	if tc.InnerRadius < 0 || tc.OuterRadius <= tc.InnerRadius || tc.Thickness <= 0 {
		return nil, fmt.Errorf("%w: ring %g..%g thickness %g", ErrInvalidTower, tc.InnerRadius, tc.OuterRadius, tc.Thickness)
	}
	if len(cfg.Themes) == 0 {
		return nil, fmt.Errorf("%w: no themes", ErrInvalidTower)
	}
	if rng == nil {
		rng = core.NewRNG(0)
	}

	return &Tower{
		world:        world,
		cfg:          tc,
		ramp:         config.NewDifficultyRamp(cfg.Difficulty),
		themes:       cfg.Themes,
		rng:          rng,
		spawnSegment: core.RingIndex(cfg.Ball.SpawnAngle, tc.SegmentCount),
		theme:        cfg.Themes[0],
	}, nil
}

// GenerateLevel discards every platform and builds a fresh level: a start
// platform with one gap opposite the spawn segment, the ramped number of
// random platforms, and a finish platform. Rotation resets to zero.
func (t *Tower) GenerateLevel(level int) {
	if level < 1 {
		level = 1
	}
	n := t.cfg.SegmentCount

	t.level = level
	t.theme = t.themes[level%len(t.themes)]

	for _, p := range t.platforms {
		p.detach(t.world)
	}
	t.platforms = nil
	t.rotation = 0

	start := filledPattern(n, SegmentSafe)
	start[(t.spawnSegment+n/2)%n] = SegmentEmpty
	t.add(t.cfg.StartY, start)

	count := t.ramp.PlatformCount(level)
	hazards := t.ramp.HazardCount(level)
	for i := 1; i <= count; i++ {
		t.add(t.cfg.StartY-float64(i)*t.cfg.PlatformSpacing, t.randomPattern(hazards))
	}

	finish := t.add(t.cfg.StartY-float64(count+1)*t.cfg.PlatformSpacing, filledPattern(n, SegmentSafe))
	finish.IsFinish = true
}

// randomPattern builds one intervening ring: a 1-2 segment gap at a random
// offset, then hazard draws that are skipped when they land on the gap.
func (t *Tower) randomPattern(hazards int) []SegmentType {
	n := t.cfg.SegmentCount
	pattern := filledPattern(n, SegmentSafe)

	gapStart := t.rng.Intn(n)
	gapWidth := 1 + t.rng.Intn(2)
	for k := 0; k < gapWidth; k++ {
		pattern[(gapStart+k)%n] = SegmentEmpty
	}

	for k := 0; k < hazards; k++ {
		idx := t.rng.Intn(n)
		if pattern[idx] == SegmentEmpty {
			continue
		}
		pattern[idx] = SegmentHazard
	}
	return pattern
}

func (t *Tower) add(y float64, pattern []SegmentType) *Platform {
	p := newPlatform(len(t.platforms), y, pattern)
	p.attach(t.world, t.cfg, physics.YawQuat(t.rotation))
	t.platforms = append(t.platforms, p)
	return p
}

func filledPattern(n int, s SegmentType) []SegmentType {
	pattern := make([]SegmentType, n)
	for i := range pattern {
		pattern[i] = s
	}
	return pattern
}

// Rotate adds delta radians to the shared rotation. Bodies follow on Sync.
func (t *Tower) Rotate(delta float64) {
	t.rotation += delta
}

// Sync writes the current rotation into every live segment body.
func (t *Tower) Sync() {
	q := physics.YawQuat(t.rotation)
	for _, p := range t.platforms {
		p.sync(t.world, q)
	}
}

// Destroy removes a platform's geometry and marks it destroyed and passed.
func (t *Tower) Destroy(p *Platform) {
	p.detach(t.world)
	p.Destroyed = true
	p.Passed = true
}

// SegmentAt returns the local segment index under a world angle.
func (t *Tower) SegmentAt(worldAngle float64) int {
	return core.RingIndex(worldAngle-t.rotation, t.cfg.SegmentCount)
}

// Rotation returns the shared rotation in radians (unbounded).
func (t *Tower) Rotation() float64 {
	return t.rotation
}

// Level returns the generated level number.
func (t *Tower) Level() int {
	return t.level
}

// Theme returns the active theme.
func (t *Tower) Theme() config.Theme {
	return t.theme
}

// Platforms returns the platforms top to bottom. Callers must not modify
// the slice.
func (t *Tower) Platforms() []*Platform {
	return t.platforms
}

// SpawnSegment returns the segment index under the ball at rotation zero.
func (t *Tower) SpawnSegment() int {
	return t.spawnSegment
}

// SegmentCount returns the ring size.
func (t *Tower) SegmentCount() int {
	return t.cfg.SegmentCount
}

// StartY returns the height of the start platform.
func (t *Tower) StartY() float64 {
	return t.cfg.StartY
}

// FinishY returns the height of the finish platform.
func (t *Tower) FinishY() float64 {
	if len(t.platforms) == 0 {
		return t.cfg.StartY
	}
	return t.platforms[len(t.platforms)-1].Y
}
