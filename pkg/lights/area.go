package lights

import (
	"math"

	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/geometry"
)

// AreaLight couples an emitting quad with its EDF. Particle emission samples
// a point uniformly over the surface, then a direction from the EDF.
type AreaLight struct {
	quad       *geometry.Quad
	edf        EDF
	importance float64
}

// NewQuadAreaLight creates an area light over the given quad. The importance
// weight is the approximate emitted flux of a diffuse emitter of that size.
func NewQuadAreaLight(quad *geometry.Quad, edf EDF) *AreaLight {
	importance := quad.Area() * math.Pi
	if diffuse, ok := edf.(*DiffuseEDF); ok {
		importance *= diffuse.Radiance().Luminance()
	}
	if importance <= 0 {
		importance = 1
	}
	return &AreaLight{quad: quad, edf: edf, importance: importance}
}

// SamplePoint draws a position uniformly over the emitting surface.
// Returns the point, the surface normal and the per-area density.
func (a *AreaLight) SamplePoint(s core.Vec2) (core.Vec3, core.Vec3, float64) {
	return a.quad.SamplePoint(s)
}

// EDF returns the emission distribution function
func (a *AreaLight) EDF() EDF {
	return a.edf
}

// Shape returns the underlying geometry, used for self-intersection exclusion
func (a *AreaLight) Shape() geometry.Shape {
	return a.quad
}

// Importance is the selection weight, proportional to emitted flux
func (a *AreaLight) Importance() float64 {
	return a.importance
}
