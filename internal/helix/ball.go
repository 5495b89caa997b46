package helix

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/helix-drop/internal/config"
	"github.com/vovakirdan/helix-drop/internal/physics"
)

// Ball is the single dynamic body plus its gameplay state. It is created
// once per Game and repositioned on restart and level changes.
type Ball struct {
	body   *physics.Body
	id     physics.BodyID
	anchor mgl64.Vec3 // X/Z the ball is pinned to
	radius float64

	ConsecutivePasses int     // Gap pass-throughs since the last bounce
	HasShield         bool    // Absorbs one hazard hit
	IsFireball        bool    // Absorbs one hazard hit, bigger award
	Squash            float64 // Impact animation, 1 right after a bounce
	Visible           bool
	Frozen            bool // Excluded from integration and contacts
}

func newBall(world *physics.World, cfg config.BallConfig, y float64) *Ball {
	anchor := physics.PlanarPoint(cfg.OrbitRadius, cfg.SpawnAngle, 0)
	body := physics.NewDynamicSphere(mgl64.Vec3{anchor.X(), y, anchor.Z()}, cfg.Radius)
	body.LinearFactor = mgl64.Vec3{0, 1, 0}

	b := &Ball{
		body:    body,
		anchor:  anchor,
		radius:  cfg.Radius,
		Visible: true,
	}
	b.id = world.AddBody(body)
	return b
}

// ID returns the physics body ID.
func (b *Ball) ID() physics.BodyID {
	return b.id
}

// Radius returns the collision radius.
func (b *Ball) Radius() float64 {
	return b.radius
}

// Position returns the world position.
func (b *Ball) Position() mgl64.Vec3 {
	return b.body.Position
}

// Velocity returns the world velocity.
func (b *Ball) Velocity() mgl64.Vec3 {
	return b.body.Velocity
}

// SetVerticalVelocity overwrites the Y velocity.
func (b *Ball) SetVerticalVelocity(vy float64) {
	b.body.Velocity = mgl64.Vec3{0, vy, 0}
}

// Place moves the ball to height y at rest and clears per-life state.
// Power-ups survive level changes; Reset clears them too.
func (b *Ball) Place(y float64) {
	b.body.Position = mgl64.Vec3{b.anchor.X(), y, b.anchor.Z()}
	b.body.Velocity = mgl64.Vec3{}
	b.body.Sleeping = false
	b.ConsecutivePasses = 0
	b.Squash = 0
	b.Visible = true
	b.Frozen = false
}

// Reset places the ball and drops every power-up.
func (b *Ball) Reset(y float64) {
	b.Place(y)
	b.HasShield = false
	b.IsFireball = false
}

// Freeze stops the ball where it is.
func (b *Ball) Freeze() {
	b.body.Velocity = mgl64.Vec3{}
	b.body.Sleeping = true
	b.Frozen = true
}

// GrantShield activates a shield, replacing a fireball.
func (b *Ball) GrantShield() {
	b.HasShield = true
	b.IsFireball = false
}

// GrantFireball activates a fireball, replacing a shield.
func (b *Ball) GrantFireball() {
	b.IsFireball = true
	b.HasShield = false
}

// PowerUp returns the active power-up.
func (b *Ball) PowerUp() PowerUp {
	switch {
	case b.IsFireball:
		return PowerUpFireball
	case b.HasShield:
		return PowerUpShield
	default:
		return PowerUpNone
	}
}

// pin restores the anchored X/Z after a physics step.
func (b *Ball) pin() {
	p := b.body.Position
	b.body.Position = mgl64.Vec3{b.anchor.X(), p.Y(), b.anchor.Z()}
}

func (b *Ball) decaySquash(dt, rate float64) {
	if b.Squash <= 0 {
		return
	}
	b.Squash -= dt * rate
	if b.Squash < 0 {
		b.Squash = 0
	}
}
