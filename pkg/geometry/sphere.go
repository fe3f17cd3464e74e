package geometry

import (
	"math"

	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/material"
)

// Sphere is a spherical primitive
type Sphere struct {
	Center core.Vec3
	Radius float64
	mat    material.BSDF
	mask   uint32
}

// NewSphere creates a sphere visible to all ray kinds
func NewSphere(center core.Vec3, radius float64, mat material.BSDF) *Sphere {
	return &Sphere{Center: center, Radius: radius, mat: mat, mask: VisAll}
}

// SetMask restricts the ray kinds the sphere responds to
func (s *Sphere) SetMask(mask uint32) *Sphere {
	s.mask = mask
	return s
}

// Mask returns the visibility flags
func (s *Sphere) Mask() uint32 { return s.mask }

// BSDF returns the surface scattering capability
func (s *Sphere) BSDF() material.BSDF { return s.mat }

// Bounds returns the bounding box
func (s *Sphere) Bounds() AABB {
	r := core.NewVec3(s.Radius, s.Radius, s.Radius)
	return AABB{Min: s.Center.Subtract(r), Max: s.Center.Add(r)}
}

// Intersect returns the nearest intersection in (tMin, tMax)
func (s *Sphere) Intersect(ray core.Ray, tMin, tMax float64) (ShadingPoint, bool) {
	oc := ray.Origin.Subtract(s.Center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return ShadingPoint{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return ShadingPoint{}, false
		}
	}

	point := ray.At(root)
	outward := point.Subtract(s.Center).Multiply(1.0 / s.Radius)
	shading := outward
	if ray.Direction.Dot(outward) > 0 {
		shading = outward.Negate()
	}

	return ShadingPoint{
		Point:           point,
		GeometricNormal: outward,
		ShadingNormal:   shading,
		Basis:           core.NewBasis(shading),
		Distance:        root,
		Shape:           s,
	}, true
}
