package physics

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/helix-drop/internal/core"
)

// Shape is a collision shape in body-local coordinates.
type Shape interface {
	// HalfHeight is the vertical half extent, used to reject distant pairs.
	HalfHeight() float64
}

// Sphere is a ball of the given radius centred on the body position.
type Sphere struct {
	Radius float64
}

// HalfHeight implements Shape.
func (s Sphere) HalfHeight() float64 {
	return s.Radius
}

// AnnularSector is a wedge of a flat ring around the local Y axis.
// Angles follow PlanarAngle: rotating the body by θ about +Y adds θ to the
// world angle of every point.
type AnnularSector struct {
	InnerRadius float64
	OuterRadius float64
	Thickness   float64
	StartAngle  float64
	Span        float64
}

// HalfHeight implements Shape.
func (s AnnularSector) HalfHeight() float64 {
	return s.Thickness / 2
}

// PlanarAngle returns the angle of v around the Y axis, in [0, 2π).
func PlanarAngle(v mgl64.Vec3) float64 {
	return core.WrapAngle(math.Atan2(-v.Z(), v.X()))
}

// PlanarPoint returns the point at radius r, angle a and height y.
func PlanarPoint(r, a, y float64) mgl64.Vec3 {
	return mgl64.Vec3{r * math.Cos(a), y, -r * math.Sin(a)}
}

// YawQuat returns the orientation of a ring rotated by angle about +Y.
func YawQuat(angle float64) mgl64.Quat {
	return mgl64.QuatRotate(angle, mgl64.Vec3{0, 1, 0})
}

// Contains reports whether the angle (local frame) lies inside the sector span.
func (s AnnularSector) Contains(angle float64) bool {
	return core.WrapAngle(angle-s.StartAngle) <= s.Span
}

// ClosestPoint returns the point of the sector nearest to p (both local).
func (s AnnularSector) ClosestPoint(p mgl64.Vec3) mgl64.Vec3 {
	h := s.HalfHeight()
	y := core.ClampF(p.Y(), -h, h)
	rho := math.Hypot(p.X(), p.Z())
	ang := PlanarAngle(p)

	if s.Contains(ang) {
		return PlanarPoint(core.ClampF(rho, s.InnerRadius, s.OuterRadius), ang, y)
	}

	// Outside the span: project onto both radial edges and keep the nearer.
	best := mgl64.Vec3{}
	bestDist := math.Inf(1)
	for _, edge := range [2]float64{s.StartAngle, s.StartAngle + s.Span} {
		dir := PlanarPoint(1, edge, 0)
		t := core.ClampF(p.X()*dir.X()+p.Z()*dir.Z(), s.InnerRadius, s.OuterRadius)
		cand := PlanarPoint(t, edge, y)
		if d := cand.Sub(p).LenSqr(); d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best
}

// sphereVsSector tests a sphere body against a sector body. The returned
// normal points from the sector toward the sphere in world space.
func sphereVsSector(sphere *Body, radius float64, sector *Body, shape AnnularSector) (normal mgl64.Vec3, depth float64, ok bool) {
	inv := sector.Orientation.Conjugate()
	local := inv.Rotate(sphere.Position.Sub(sector.Position))

	closest := shape.ClosestPoint(local)
	d := local.Sub(closest)
	dist := d.Len()
	if dist >= radius {
		return mgl64.Vec3{}, 0, false
	}

	var nLocal mgl64.Vec3
	if dist < 1e-9 {
		// Centre inside the solid: leave through the nearer face.
		h := shape.HalfHeight()
		if local.Y() >= 0 {
			nLocal = mgl64.Vec3{0, 1, 0}
			depth = h - local.Y() + radius
		} else {
			nLocal = mgl64.Vec3{0, -1, 0}
			depth = h + local.Y() + radius
		}
	} else {
		nLocal = d.Mul(1 / dist)
		depth = radius - dist
	}

	return sector.Orientation.Rotate(nLocal), depth, true
}
