package geometry

import (
	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/material"
)

// Quad is a planar parallelogram: corner plus two edge vectors
type Quad struct {
	Corner core.Vec3
	EdgeU  core.Vec3
	EdgeV  core.Vec3

	normal core.Vec3 // unit, EdgeU x EdgeV orientation
	area   float64
	mat    material.BSDF
	mask   uint32
}

// NewQuad creates a parallelogram visible to all ray kinds
func NewQuad(corner, edgeU, edgeV core.Vec3, mat material.BSDF) *Quad {
	cross := edgeU.Cross(edgeV)
	return &Quad{
		Corner: corner,
		EdgeU:  edgeU,
		EdgeV:  edgeV,
		normal: cross.Normalize(),
		area:   cross.Length(),
		mat:    mat,
		mask:   VisAll,
	}
}

// SetMask restricts the ray kinds the quad responds to
func (q *Quad) SetMask(mask uint32) *Quad {
	q.mask = mask
	return q
}

// Mask returns the visibility flags
func (q *Quad) Mask() uint32 { return q.mask }

// BSDF returns the surface scattering capability
func (q *Quad) BSDF() material.BSDF { return q.mat }

// Normal returns the unit geometric normal
func (q *Quad) Normal() core.Vec3 { return q.normal }

// Area returns the surface area
func (q *Quad) Area() float64 { return q.area }

// Bounds returns the bounding box with a little padding on the thin axis
func (q *Quad) Bounds() AABB {
	b := EmptyAABB()
	for _, p := range [4]core.Vec3{
		q.Corner,
		q.Corner.Add(q.EdgeU),
		q.Corner.Add(q.EdgeV),
		q.Corner.Add(q.EdgeU).Add(q.EdgeV),
	} {
		b = b.Union(AABB{Min: p, Max: p})
	}
	pad := core.NewVec3(1e-4, 1e-4, 1e-4)
	return AABB{Min: b.Min.Subtract(pad), Max: b.Max.Add(pad)}
}

// SamplePoint maps a uniform 2D sample onto the surface.
// Returns the point, the geometric normal and the area density (1/area).
func (q *Quad) SamplePoint(s core.Vec2) (core.Vec3, core.Vec3, float64) {
	point := q.Corner.Add(q.EdgeU.Multiply(s.X)).Add(q.EdgeV.Multiply(s.Y))
	return point, q.normal, 1.0 / q.area
}

// Intersect returns the intersection with the parallelogram, both sides
func (q *Quad) Intersect(ray core.Ray, tMin, tMax float64) (ShadingPoint, bool) {
	denom := q.normal.Dot(ray.Direction)
	if denom > -1e-12 && denom < 1e-12 {
		return ShadingPoint{}, false // parallel
	}

	t := q.normal.Dot(q.Corner.Subtract(ray.Origin)) / denom
	if t <= tMin || t >= tMax {
		return ShadingPoint{}, false
	}

	point := ray.At(t)
	local := point.Subtract(q.Corner)

	// Project onto the edge frame to get parallelogram coordinates
	uu := q.EdgeU.Dot(q.EdgeU)
	uv := q.EdgeU.Dot(q.EdgeV)
	vv := q.EdgeV.Dot(q.EdgeV)
	lu := local.Dot(q.EdgeU)
	lv := local.Dot(q.EdgeV)
	det := uu*vv - uv*uv
	if det == 0 {
		return ShadingPoint{}, false // degenerate edges
	}
	alpha := (lu*vv - lv*uv) / det
	beta := (lv*uu - lu*uv) / det
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return ShadingPoint{}, false
	}

	shading := q.normal
	if denom > 0 {
		shading = q.normal.Negate()
	}

	return ShadingPoint{
		Point:           point,
		GeometricNormal: q.normal,
		ShadingNormal:   shading,
		Basis:           core.NewBasis(shading),
		Distance:        t,
		Shape:           q,
	}, true
}
