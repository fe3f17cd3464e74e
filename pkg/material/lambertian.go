package material

import (
	"math"

	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/sampling"
)

// Lambertian is an ideal diffuse reflector with a constant reflectance
type Lambertian struct {
	reflectance core.Vec3
}

// NewLambertian creates a diffuse BSDF with the given reflectance (albedo)
func NewLambertian(reflectance core.Vec3) *Lambertian {
	return &Lambertian{reflectance: reflectance}
}

// Modes returns the diffuse scattering component
func (l *Lambertian) Modes() ScatteringMode {
	return ScatteringDiffuse
}

// Sample draws a cosine-weighted continuation direction
func (l *Lambertian) Sample(sctx *sampling.Context, adjoint bool, geometricNormal core.Vec3, basis core.Basis, outgoing core.Vec3) BSDFSample {
	sctx.SplitInPlace(2, 1)
	incoming := sampling.SampleCosineHemisphere(basis, sctx.Next2())

	cos := incoming.Dot(basis.Normal)
	if cos <= 0 {
		return BSDFSample{Mode: ScatteringNone}
	}

	return BSDFSample{
		Incoming:    incoming,
		Value:       l.reflectance.Multiply(1.0 / math.Pi),
		Probability: cos / math.Pi,
		Mode:        ScatteringDiffuse,
	}
}

// Evaluate returns reflectance/pi for direction pairs in the upper hemisphere
func (l *Lambertian) Evaluate(adjoint, cosineMult bool, geometricNormal core.Vec3, basis core.Basis, outgoing, incoming core.Vec3, modes ScatteringMode) (core.Vec3, float64) {
	if modes&ScatteringDiffuse == 0 {
		return core.Vec3{}, 0
	}

	cosIn := incoming.Dot(basis.Normal)
	cosOut := outgoing.Dot(basis.Normal)
	if cosIn <= 0 || cosOut <= 0 {
		return core.Vec3{}, 0
	}

	value := l.reflectance.Multiply(1.0 / math.Pi)
	if cosineMult {
		value = value.Multiply(cosIn)
	}
	return value, cosIn / math.Pi
}
