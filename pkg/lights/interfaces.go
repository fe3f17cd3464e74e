package lights

import (
	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/geometry"
	"github.com/nasehim7/appleseed/pkg/sampling"
)

// EDF is an emission distribution function attached to an emitting surface.
// Input values (the radiant exitance parameters) are resolved into scratch
// storage first, then passed to Sample, so procedural emission can reuse the
// per-work-unit arena.
type EDF interface {
	// EvaluateInputs resolves the emission parameters into arena scratch:
	// three floats, linear RGB radiance
	EvaluateInputs(arena *sampling.Arena) []float64

	// Sample draws an emission direction in the hemisphere around the
	// shading basis. Returns the direction, the emitted radiance and the
	// solid-angle density.
	Sample(sctx *sampling.Context, inputs []float64, geometricNormal core.Vec3, basis core.Basis) (core.Vec3, core.Vec3, float64)

	// NearStart is the distance below which points should not be lit by
	// this emitter, to mask precision artifacts right at the source
	NearStart() float64
}

// Light is a non-physical, point-like emitter
type Light interface {
	// SampleEmission draws an emission position and direction with the
	// emitted value and the solid-angle density
	SampleEmission(sctx *sampling.Context) (position, direction core.Vec3, value core.Vec3, prob float64)

	// Importance is the selection weight, proportional to emitted flux
	Importance() float64
}

// Environment is an image-based or procedural environment emission model
type Environment interface {
	// SampleDirection draws a world-space direction pointing toward the
	// environment with the emitted value and the solid-angle density
	SampleDirection(sctx *sampling.Context) (outgoing core.Vec3, value core.Vec3, prob float64)
}

// LightSample is the result of drawing one emitter from the scene: a world
// point with its normals, a reference to either an emitting surface or a
// non-physical light, and the combined selection density. Read-only after
// creation.
type LightSample struct {
	Point           core.Vec3
	GeometricNormal core.Vec3
	ShadingNormal   core.Vec3

	// Exactly one of the two is set
	Area  *AreaLight
	Light Light

	// Selection density: area measure for surfaces (selection probability
	// times the per-area density), discrete probability for point lights
	Probability float64
}

// MakeShadingPoint builds a shading point on the emitting surface, usable as
// a self-intersection exclusion hint for rays leaving the light
func (ls *LightSample) MakeShadingPoint() geometry.ShadingPoint {
	return geometry.ShadingPoint{
		Point:           ls.Point,
		GeometricNormal: ls.GeometricNormal,
		ShadingNormal:   ls.ShadingNormal,
		Basis:           core.NewBasis(ls.ShadingNormal),
		Shape:           ls.Area.Shape(),
	}
}
