// Package physics is a small fixed-timestep rigid-body integrator for the
// tower: gravity, axis-locked dynamic spheres, and kinematic ring segments
// whose orientation is driven from outside. Contacts are not delivered via
// callbacks; they are queued during Step and drained by the caller.
package physics

import "github.com/go-gl/mathgl/mgl64"

// BodyType selects how the world treats a body.
type BodyType int

const (
	// BodyDynamic bodies are integrated under gravity and pushed out of contacts.
	BodyDynamic BodyType = iota
	// BodyKinematic bodies never move on their own; their pose is written by
	// the owner every step and they are immovable in contacts.
	BodyKinematic
)

// String returns a human-readable name for the body type.
func (t BodyType) String() string {
	switch t {
	case BodyDynamic:
		return "Dynamic"
	case BodyKinematic:
		return "Kinematic"
	default:
		return "Unknown"
	}
}

// BodyID identifies a body inside one World. Zero is never assigned.
type BodyID uint32

// Body is a rigid body. Fields are public so the owner can reposition it;
// the world only reads Orientation for kinematic bodies.
type Body struct {
	Type        BodyType
	Position    mgl64.Vec3
	Velocity    mgl64.Vec3
	Orientation mgl64.Quat

	// LinearFactor scales integration and contact response per axis.
	// (0, 1, 0) restricts motion to the vertical axis.
	LinearFactor mgl64.Vec3

	Shape Shape

	// UserData is an opaque owner reference (the helix game stores the
	// segment a body belongs to).
	UserData any

	// Sleeping dynamic bodies are neither integrated nor tested for contacts.
	Sleeping bool

	id      BodyID
	removed bool
}

// NewDynamicSphere creates a dynamic sphere at pos.
func NewDynamicSphere(pos mgl64.Vec3, radius float64) *Body {
	return &Body{
		Type:         BodyDynamic,
		Position:     pos,
		Orientation:  mgl64.QuatIdent(),
		LinearFactor: mgl64.Vec3{1, 1, 1},
		Shape:        Sphere{Radius: radius},
	}
}

// NewKinematicSector creates a kinematic annular sector centred on the Y
// axis at height y.
func NewKinematicSector(y float64, sector AnnularSector) *Body {
	return &Body{
		Type:         BodyKinematic,
		Position:     mgl64.Vec3{0, y, 0},
		Orientation:  mgl64.QuatIdent(),
		LinearFactor: mgl64.Vec3{},
		Shape:        sector,
	}
}

// ID returns the identifier assigned by the world.
func (b *Body) ID() BodyID {
	return b.id
}

// Removed reports whether the body has been removed from its world.
func (b *Body) Removed() bool {
	return b.removed
}

// mask applies the linear factor to v.
func (b *Body) mask(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		v.X() * b.LinearFactor.X(),
		v.Y() * b.LinearFactor.Y(),
		v.Z() * b.LinearFactor.Z(),
	}
}
