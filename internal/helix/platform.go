package helix

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/helix-drop/internal/config"
	"github.com/vovakirdan/helix-drop/internal/core"
	"github.com/vovakirdan/helix-drop/internal/physics"
)

// SegmentType is the content of one ring slot.
type SegmentType uint8

const (
	SegmentEmpty  SegmentType = iota // Gap, no geometry
	SegmentSafe                      // Bounces the ball
	SegmentHazard                    // Kills the ball unless protected
)

func (s SegmentType) String() string {
	switch s {
	case SegmentEmpty:
		return "empty"
	case SegmentSafe:
		return "safe"
	case SegmentHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// Wedge is the visual geometry of one non-empty segment, in the ring's
// local frame.
type Wedge struct {
	Segment    int
	StartAngle float64
	EndAngle   float64
	Type       SegmentType
}

// SegmentRef is stored as UserData on every segment body.
type SegmentRef struct {
	Platform *Platform
	Segment  int
}

// Platform is one ring of the tower.
type Platform struct {
	Index    int
	Y        float64
	Pattern  []SegmentType
	IsFinish bool

	Passed    bool // Ball dropped below it; never reset
	Destroyed bool // Geometry removed by smash or finish

	bodies []physics.BodyID // Per segment; 0 for empty slots and after removal
}

func newPlatform(index int, y float64, pattern []SegmentType) *Platform {
	return &Platform{
		Index:   index,
		Y:       y,
		Pattern: pattern,
		bodies:  make([]physics.BodyID, len(pattern)),
	}
}

// slotAngle returns the angular width of one segment.
func slotAngle(n int) float64 {
	return core.TwoPi / float64(n)
}

// Wedges returns the geometry of every non-empty segment.
func (p *Platform) Wedges() []Wedge {
	slot := slotAngle(len(p.Pattern))
	wedges := make([]Wedge, 0, len(p.Pattern))
	for i, t := range p.Pattern {
		if t == SegmentEmpty {
			continue
		}
		wedges = append(wedges, Wedge{
			Segment:    i,
			StartAngle: float64(i) * slot,
			EndAngle:   float64(i+1) * slot,
			Type:       t,
		})
	}
	return wedges
}

// Bodies returns the IDs of the live collision bodies.
func (p *Platform) Bodies() []physics.BodyID {
	ids := make([]physics.BodyID, 0, len(p.bodies))
	for _, id := range p.bodies {
		if id != 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// CountType returns how many segments have the given type.
func (p *Platform) CountType(t SegmentType) int {
	n := 0
	for _, s := range p.Pattern {
		if s == t {
			n++
		}
	}
	return n
}

// attach creates one kinematic sector per non-empty segment.
func (p *Platform) attach(world *physics.World, cfg config.TowerConfig, orientation mgl64.Quat) {
	slot := slotAngle(len(p.Pattern))
	for i, t := range p.Pattern {
		if t == SegmentEmpty {
			continue
		}
		body := physics.NewKinematicSector(p.Y, physics.AnnularSector{
			InnerRadius: cfg.InnerRadius,
			OuterRadius: cfg.OuterRadius,
			Thickness:   cfg.Thickness,
			StartAngle:  float64(i) * slot,
			Span:        slot,
		})
		body.Orientation = orientation
		body.UserData = SegmentRef{Platform: p, Segment: i}
		p.bodies[i] = world.AddBody(body)
	}
}

// detach removes all collision bodies. Safe to call twice.
func (p *Platform) detach(world *physics.World) {
	for i, id := range p.bodies {
		if id != 0 {
			world.RemoveBody(id)
			p.bodies[i] = 0
		}
	}
}

func (p *Platform) sync(world *physics.World, q mgl64.Quat) {
	for _, id := range p.bodies {
		if id != 0 {
			world.SetOrientation(id, q)
		}
	}
}
