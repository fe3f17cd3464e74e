package geometry

import (
	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/material"
)

// TriangleMesh is an indexed triangle mesh with optional per-vertex normals
type TriangleMesh struct {
	Vertices []core.Vec3
	Normals  []core.Vec3 // empty means flat shading from face normals
	Indices  []uint32    // triples of vertex indices

	bounds AABB
	mat    material.BSDF
	mask   uint32
}

// NewTriangleMesh creates a mesh visible to all ray kinds
func NewTriangleMesh(vertices []core.Vec3, normals []core.Vec3, indices []uint32, mat material.BSDF) *TriangleMesh {
	bounds := EmptyAABB()
	for _, v := range vertices {
		bounds = bounds.Union(AABB{Min: v, Max: v})
	}
	return &TriangleMesh{
		Vertices: vertices,
		Normals:  normals,
		Indices:  indices,
		bounds:   bounds,
		mat:      mat,
		mask:     VisAll,
	}
}

// SetMask restricts the ray kinds the mesh responds to
func (m *TriangleMesh) SetMask(mask uint32) *TriangleMesh {
	m.mask = mask
	return m
}

// Mask returns the visibility flags
func (m *TriangleMesh) Mask() uint32 { return m.mask }

// BSDF returns the surface scattering capability
func (m *TriangleMesh) BSDF() material.BSDF { return m.mat }

// Bounds returns the bounding box
func (m *TriangleMesh) Bounds() AABB { return m.bounds }

// TriangleCount returns the number of triangles
func (m *TriangleMesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Intersect returns the nearest triangle intersection in (tMin, tMax)
func (m *TriangleMesh) Intersect(ray core.Ray, tMin, tMax float64) (ShadingPoint, bool) {
	var best ShadingPoint
	found := false
	closest := tMax

	for tri := 0; tri < len(m.Indices); tri += 3 {
		i0, i1, i2 := m.Indices[tri], m.Indices[tri+1], m.Indices[tri+2]
		t, u, v, ok := intersectTriangle(ray, m.Vertices[i0], m.Vertices[i1], m.Vertices[i2], tMin, closest)
		if !ok {
			continue
		}

		p0, p1, p2 := m.Vertices[i0], m.Vertices[i1], m.Vertices[i2]
		geoNormal := p1.Subtract(p0).Cross(p2.Subtract(p0)).Normalize()

		shading := geoNormal
		if len(m.Normals) == len(m.Vertices) {
			// Barycentric normal interpolation
			w := 1 - u - v
			shading = m.Normals[i0].Multiply(w).
				Add(m.Normals[i1].Multiply(u)).
				Add(m.Normals[i2].Multiply(v)).
				Normalize()
		}
		if ray.Direction.Dot(shading) > 0 {
			shading = shading.Negate()
		}

		best = ShadingPoint{
			Point:           ray.At(t),
			GeometricNormal: geoNormal,
			ShadingNormal:   shading,
			Basis:           core.NewBasis(shading),
			Distance:        t,
			Shape:           m,
		}
		closest = t
		found = true
	}

	return best, found
}

// intersectTriangle runs the Moller-Trumbore test, returning the ray
// parameter and barycentric coordinates of the hit
func intersectTriangle(ray core.Ray, p0, p1, p2 core.Vec3, tMin, tMax float64) (t, u, v float64, ok bool) {
	e1 := p1.Subtract(p0)
	e2 := p2.Subtract(p0)

	pvec := ray.Direction.Cross(e2)
	det := e1.Dot(pvec)
	if det > -1e-12 && det < 1e-12 {
		return 0, 0, 0, false
	}
	invDet := 1.0 / det

	tvec := ray.Origin.Subtract(p0)
	u = tvec.Dot(pvec) * invDet
	if u < 0 || u > 1 {
		return 0, 0, 0, false
	}

	qvec := tvec.Cross(e1)
	v = ray.Direction.Dot(qvec) * invDet
	if v < 0 || u+v > 1 {
		return 0, 0, 0, false
	}

	t = e2.Dot(qvec) * invDet
	if t <= tMin || t >= tMax {
		return 0, 0, 0, false
	}
	return t, u, v, true
}
