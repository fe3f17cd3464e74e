package geometry

import (
	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/material"
)

// Visibility flags classify rays so that shapes can opt out of specific
// ray kinds (a light-only blocker, a camera-invisible emitter, ...)
const (
	VisCameraRay uint32 = 1 << iota
	VisLightRay
	VisShadowRay

	VisAll = VisCameraRay | VisLightRay | VisShadowRay
)

// ShadingPoint describes a point on a surface produced by an intersection
// query: world position, the two normals, a shading frame, the ray parameter
// and the shape that was hit. The shading normal is oriented toward the side
// the ray arrived from; the geometric normal keeps the surface orientation.
type ShadingPoint struct {
	Point           core.Vec3
	GeometricNormal core.Vec3
	ShadingNormal   core.Vec3
	Basis           core.Basis
	Distance        float64
	Shape           Shape
}

// Shape is a geometric primitive that can be intersected by rays
type Shape interface {
	// Intersect returns the nearest hit in (tMin, tMax), if any
	Intersect(ray core.Ray, tMin, tMax float64) (ShadingPoint, bool)

	// Bounds returns the world-space bounding box
	Bounds() AABB

	// Mask returns the visibility flags this shape responds to
	Mask() uint32

	// BSDF returns the scattering capability at the surface, nil for
	// pure emitters or blockers
	BSDF() material.BSDF
}
