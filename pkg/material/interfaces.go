package material

import (
	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/sampling"
)

// ScatteringMode is a bitset of scattering event kinds
type ScatteringMode int

const (
	// ScatteringNone marks absorption: the particle ends at the surface
	ScatteringNone ScatteringMode = 0

	ScatteringDiffuse  ScatteringMode = 1 << 0
	ScatteringGlossy   ScatteringMode = 1 << 1
	ScatteringSpecular ScatteringMode = 1 << 2

	// ScatteringAll enables every scattering mode
	ScatteringAll = ScatteringDiffuse | ScatteringGlossy | ScatteringSpecular
)

// HasGlossyOrSpecular reports whether the mode set contains a glossy or
// specular component
func (m ScatteringMode) HasGlossyOrSpecular() bool {
	return m&(ScatteringGlossy|ScatteringSpecular) != 0
}

// DiracDelta is the probability value reported for delta distributions
// (perfect mirrors). Delta samples carry their full weight in Value and must
// not be divided by a density.
const DiracDelta = -1.0

// BSDFSample is the result of sampling a BSDF for a continuation direction
type BSDFSample struct {
	Incoming    core.Vec3      // sampled world-space direction, away from the surface
	Value       core.Vec3      // BSDF value, cosine factor not included
	Probability float64        // solid-angle density, or DiracDelta
	Mode        ScatteringMode // the scattering component that was sampled
}

// IsDelta reports whether the sample comes from a delta distribution
func (s BSDFSample) IsDelta() bool {
	return s.Probability == DiracDelta
}

// BSDF models how a surface scatters light. Directions follow the convention
// that both outgoing and incoming point away from the surface; outgoing is
// the direction back toward the previous path segment. The adjoint flag
// selects importance transport (particles traveling from a light toward the
// camera) instead of radiance transport.
type BSDF interface {
	// Sample draws a continuation direction for the given outgoing direction.
	// A returned mode of ScatteringNone means the particle is absorbed.
	Sample(sctx *sampling.Context, adjoint bool, geometricNormal core.Vec3, basis core.Basis, outgoing core.Vec3) BSDFSample

	// Evaluate returns the BSDF value and solid-angle density for a concrete
	// (outgoing, incoming) pair, restricted to the given mode set. When
	// cosineMult is set, the |cos(incoming, shading normal)| factor is folded
	// into the returned value. A zero density means no contribution.
	Evaluate(adjoint, cosineMult bool, geometricNormal core.Vec3, basis core.Basis, outgoing, incoming core.Vec3, modes ScatteringMode) (core.Vec3, float64)

	// Modes returns the scattering components this BSDF can produce
	Modes() ScatteringMode
}
