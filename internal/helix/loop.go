package helix

import (
	"fmt"
	"math"
)

// Loop is a fixed-timestep accumulator. Render frames feed it variable
// deltas; it runs the fixed tick zero or more times per frame.
type Loop struct {
	step     float64
	maxFrame float64

	accumulator float64
	steps       uint64
	realTime    float64 // Sum of clamped frame deltas
}

// NewLoop creates a loop with the given fixed step and frame delta cap.
func NewLoop(step, maxFrame float64) (*Loop, error) {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return nil, fmt.Errorf("helix: fixed step must be positive, got %g", step)
	}
	if maxFrame < step {
		return nil, fmt.Errorf("helix: max frame delta (%g) must be >= fixed step (%g)", maxFrame, step)
	}
	return &Loop{step: step, maxFrame: maxFrame}, nil
}

// ClampFrame bounds a raw frame delta to [0, maxFrame]. NaN counts as zero.
func (l *Loop) ClampFrame(frameDelta float64) float64 {
	if !(frameDelta > 0) {
		return 0
	}
	return math.Min(frameDelta, l.maxFrame)
}

// Advance accumulates one frame delta and runs tick once per whole fixed
// step available. It returns the number of ticks run.
func (l *Loop) Advance(frameDelta float64, tick func(dt float64)) int {
	frame := l.ClampFrame(frameDelta)
	l.realTime += frame
	l.accumulator += frame

	n := 0
	for l.accumulator >= l.step {
		tick(l.step)
		l.accumulator -= l.step
		l.steps++
		n++
	}
	return n
}

// Step returns the fixed step size.
func (l *Loop) Step() float64 {
	return l.step
}

// Steps returns the number of fixed ticks run since the last reset.
func (l *Loop) Steps() uint64 {
	return l.steps
}

// SimTime returns the simulated time in seconds.
func (l *Loop) SimTime() float64 {
	return float64(l.steps) * l.step
}

// RealTime returns the sum of clamped frame deltas fed to Advance.
func (l *Loop) RealTime() float64 {
	return l.realTime
}

// Accumulator returns the unsimulated remainder.
func (l *Loop) Accumulator() float64 {
	return l.accumulator
}

// Reset clears all clocks.
func (l *Loop) Reset() {
	l.accumulator = 0
	l.steps = 0
	l.realTime = 0
}
