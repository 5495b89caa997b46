package helix

import (
	"math"

	"github.com/vovakirdan/helix-drop/internal/config"
	"github.com/vovakirdan/helix-drop/internal/core"
)

// referenceRate is the frame rate the damping factor is tuned for.
const referenceRate = 60.0

// RotationInput turns raw horizontal drag into a smoothed angular velocity.
// Drag accumulates between fixed steps and is consumed by Integrate.
type RotationInput struct {
	gain     float64
	maxSpeed float64
	damping  float64

	pending  float64
	velocity float64
}

// NewRotationInput creates a rotation integrator with the given sensitivity.
func NewRotationInput(cfg config.InputConfig) *RotationInput {
	r := &RotationInput{}
	r.SetSensitivity(cfg)
	return r
}

// SetSensitivity replaces the tuning values. Current velocity is kept.
func (r *RotationInput) SetSensitivity(cfg config.InputConfig) {
	r.gain = cfg.RotationGain
	r.maxSpeed = cfg.MaxRotationSpeed
	r.damping = cfg.DampingFactor
}

// Feed adds a drag delta. Positive values spin the tower toward increasing
// angles.
func (r *RotationInput) Feed(dx float64) {
	r.pending += dx
}

// Integrate consumes pending drag, applies damping and the speed clamp, and
// returns the rotation delta for a step of dt seconds.
func (r *RotationInput) Integrate(dt float64) float64 {
	r.velocity += r.pending * r.gain
	r.pending = 0

	r.velocity *= math.Pow(r.damping, dt*referenceRate)
	r.velocity = core.ClampF(r.velocity, -r.maxSpeed, r.maxSpeed)

	return r.velocity * dt
}

// Velocity returns the current angular velocity in radians per second.
func (r *RotationInput) Velocity() float64 {
	return r.velocity
}

// Pending returns drag fed since the last Integrate call.
func (r *RotationInput) Pending() float64 {
	return r.pending
}

// Reset stops any rotation and drops pending drag.
func (r *RotationInput) Reset() {
	r.pending = 0
	r.velocity = 0
}
