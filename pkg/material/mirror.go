package material

import (
	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/sampling"
)

// Mirror is a perfect specular reflector
type Mirror struct {
	reflectance core.Vec3
}

// NewMirror creates a specular BSDF with the given reflectance
func NewMirror(reflectance core.Vec3) *Mirror {
	return &Mirror{reflectance: reflectance}
}

// Modes returns the specular scattering component
func (m *Mirror) Modes() ScatteringMode {
	return ScatteringSpecular
}

// Sample returns the deterministic mirror direction. The sample is a delta
// distribution: Value carries the full throughput weight.
func (m *Mirror) Sample(sctx *sampling.Context, adjoint bool, geometricNormal core.Vec3, basis core.Basis, outgoing core.Vec3) BSDFSample {
	incoming := reflect(outgoing, basis.Normal)
	if incoming.Dot(basis.Normal) <= 0 {
		return BSDFSample{Mode: ScatteringNone}
	}

	return BSDFSample{
		Incoming:    incoming,
		Value:       m.reflectance,
		Probability: DiracDelta,
		Mode:        ScatteringSpecular,
	}
}

// Evaluate returns zero: a delta distribution cannot be evaluated for an
// arbitrary direction pair
func (m *Mirror) Evaluate(adjoint, cosineMult bool, geometricNormal core.Vec3, basis core.Basis, outgoing, incoming core.Vec3, modes ScatteringMode) (core.Vec3, float64) {
	return core.Vec3{}, 0
}
