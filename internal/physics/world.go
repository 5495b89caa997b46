package physics

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrInvalidStep is returned by NewWorld for a non-positive step size.
var ErrInvalidStep = errors.New("physics: fixed step must be positive")

// Config defines the world's global parameters.
type Config struct {
	Gravity   mgl64.Vec3 // Acceleration applied to dynamic bodies
	FixedStep float64    // Seconds advanced by every Step call
	MaxSpeed  float64    // Speed clamp for dynamic bodies; 0 disables
}

// Contact is one dynamic-vs-kinematic touch found during a step.
type Contact struct {
	Body   BodyID     // The dynamic body
	Other  BodyID     // The kinematic body it touched
	Normal mgl64.Vec3 // World-space, from Other toward Body
	Depth  float64    // Penetration before correction

	// ImpactVelocity is the dynamic body's velocity before the contact
	// response zeroed its approaching component.
	ImpactVelocity mgl64.Vec3

	Step uint64 // World step that produced the contact
}

// World owns bodies and advances them in fixed steps. It is not safe for
// concurrent use; one goroutine owns a world.
type World struct {
	cfg      Config
	bodies   []*Body
	byID     map[BodyID]*Body
	nextID   BodyID
	contacts []Contact
	steps    uint64
	dirty    bool // bodies slice holds removed entries
}

// NewWorld creates an empty world.
func NewWorld(cfg Config) (*World, error) {
	if cfg.FixedStep <= 0 || math.IsNaN(cfg.FixedStep) || math.IsInf(cfg.FixedStep, 0) {
		return nil, fmt.Errorf("%w: got %g", ErrInvalidStep, cfg.FixedStep)
	}
	if cfg.MaxSpeed < 0 {
		return nil, fmt.Errorf("physics: max speed must be >= 0, got %g", cfg.MaxSpeed)
	}
	return &World{
		cfg:    cfg,
		byID:   make(map[BodyID]*Body),
		nextID: 1,
	}, nil
}

// FixedStep returns the step size in seconds.
func (w *World) FixedStep() float64 {
	return w.cfg.FixedStep
}

// Time returns the simulated time in seconds.
func (w *World) Time() float64 {
	return float64(w.steps) * w.cfg.FixedStep
}

// Steps returns the number of completed steps.
func (w *World) Steps() uint64 {
	return w.steps
}

// AddBody registers a body and returns its ID. A zero orientation is
// replaced by the identity.
func (w *World) AddBody(b *Body) BodyID {
	if b.Orientation == (mgl64.Quat{}) {
		b.Orientation = mgl64.QuatIdent()
	}
	b.id = w.nextID
	b.removed = false
	w.nextID++
	w.bodies = append(w.bodies, b)
	w.byID[b.id] = b
	return b.id
}

// RemoveBody removes a body. Removing an unknown or already removed body
// returns false and does nothing.
func (w *World) RemoveBody(id BodyID) bool {
	b, ok := w.byID[id]
	if !ok {
		return false
	}
	b.removed = true
	delete(w.byID, id)
	w.dirty = true
	return true
}

// Body returns the live body with the given ID, or nil.
func (w *World) Body(id BodyID) *Body {
	return w.byID[id]
}

// BodyCount returns the number of live bodies of the given type.
func (w *World) BodyCount(t BodyType) int {
	n := 0
	for _, b := range w.byID {
		if b.Type == t {
			n++
		}
	}
	return n
}

// SetOrientation overwrites a kinematic body's orientation.
func (w *World) SetOrientation(id BodyID, q mgl64.Quat) bool {
	b, ok := w.byID[id]
	if !ok {
		return false
	}
	b.Orientation = q
	return true
}

// Step advances the world by exactly one fixed step: integrate dynamic
// bodies, then push them out of kinematic bodies and queue a Contact per
// touching pair.
func (w *World) Step() {
	w.compact()
	dt := w.cfg.FixedStep

	for _, b := range w.bodies {
		if b.Type != BodyDynamic || b.Sleeping {
			continue
		}
		b.Velocity = b.mask(b.Velocity.Add(w.cfg.Gravity.Mul(dt)))
		if w.cfg.MaxSpeed > 0 {
			if speed := b.Velocity.Len(); speed > w.cfg.MaxSpeed {
				b.Velocity = b.Velocity.Mul(w.cfg.MaxSpeed / speed)
			}
		}
		b.Position = b.Position.Add(b.mask(b.Velocity.Mul(dt)))
	}

	for _, dyn := range w.bodies {
		if dyn.Type != BodyDynamic || dyn.Sleeping {
			continue
		}
		sphere, ok := dyn.Shape.(Sphere)
		if !ok {
			continue
		}
		for _, kin := range w.bodies {
			if kin.Type != BodyKinematic {
				continue
			}
			w.collide(dyn, sphere.Radius, kin)
		}
	}

	w.steps++
}

// collide runs the narrow phase for one pair and applies the response.
func (w *World) collide(dyn *Body, radius float64, kin *Body) {
	sector, ok := kin.Shape.(AnnularSector)
	if !ok {
		return
	}
	if math.Abs(dyn.Position.Y()-kin.Position.Y()) > radius+sector.HalfHeight() {
		return
	}

	normal, depth, hit := sphereVsSector(dyn, radius, kin, sector)
	if !hit {
		return
	}

	impact := dyn.Velocity
	dyn.Position = dyn.Position.Add(dyn.mask(normal.Mul(depth)))
	if vn := dyn.Velocity.Dot(normal); vn < 0 {
		dyn.Velocity = dyn.mask(dyn.Velocity.Sub(normal.Mul(vn)))
	}

	w.contacts = append(w.contacts, Contact{
		Body:           dyn.id,
		Other:          kin.id,
		Normal:         normal,
		Depth:          depth,
		ImpactVelocity: impact,
		Step:           w.steps,
	})
}

// DrainContacts returns the contacts queued since the previous drain, in
// detection order, and clears the queue.
func (w *World) DrainContacts() []Contact {
	out := w.contacts
	w.contacts = nil
	return out
}

// compact drops removed bodies from the iteration slice.
func (w *World) compact() {
	if !w.dirty {
		return
	}
	live := w.bodies[:0]
	for _, b := range w.bodies {
		if !b.removed {
			live = append(live, b)
		}
	}
	for i := len(live); i < len(w.bodies); i++ {
		w.bodies[i] = nil
	}
	w.bodies = live
	w.dirty = false
}
