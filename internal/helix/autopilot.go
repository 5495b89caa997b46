package helix

import (
	"math"

	"github.com/vovakirdan/helix-drop/internal/core"
)

// Autopilot steers the tower so that the nearest reachable gap of the next
// platform lines up under the ball. It is used by the headless sim command
// and by tests; it never cheats past the Drag interface.
type Autopilot struct {
	Gain float64 // Drag per radian of misalignment
}

// NewAutopilot creates an autopilot with the given drag gain.
func NewAutopilot(gain float64) *Autopilot {
	return &Autopilot{Gain: gain}
}

// Drag returns the drag delta to feed for this frame.
func (a *Autopilot) Drag(s Snapshot) float64 {
	if s.Dying || s.Completing || s.GameOver || s.SegmentCount == 0 {
		return 0
	}
	// Hold steady while threading a gap.
	for _, p := range s.Platforms {
		if p.Destroyed || math.Abs(p.Y-s.BallY) > 2*s.BallRadius {
			continue
		}
		if s.BallSegment < len(p.Pattern) && p.Pattern[s.BallSegment] == SegmentEmpty {
			return 0
		}
	}

	next := s.NextPlatform()
	if next < 0 {
		return 0
	}
	pattern := s.Platforms[next].Pattern

	slot := core.TwoPi / float64(s.SegmentCount)
	local := core.WrapAngle(s.SpawnAngle - s.Rotation)

	target, best := -1, math.Inf(1)
	for i, seg := range pattern {
		if seg != SegmentEmpty {
			continue
		}
		if d := math.Abs(shortestAngle(local, (float64(i)+0.5)*slot)); d < best {
			target, best = i, d
		}
	}
	if target < 0 {
		return 0 // Finish platform: nothing to aim at
	}

	// Rotating by +δ moves the ball's local angle by -δ.
	return shortestAngle(local, (float64(target)+0.5)*slot) * a.Gain
}

// shortestAngle returns from-to wrapped into [-π, π).
func shortestAngle(from, to float64) float64 {
	return core.WrapAngle(from-to+math.Pi) - math.Pi
}
