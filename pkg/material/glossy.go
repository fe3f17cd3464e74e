package material

import (
	"math"

	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/sampling"
)

// Glossy is a Phong-style glossy reflector: lobes of cos^n around the mirror
// direction, normalized to conserve energy
type Glossy struct {
	reflectance core.Vec3
	exponent    float64
}

// NewGlossy creates a glossy BSDF. Higher exponents give tighter highlights.
func NewGlossy(reflectance core.Vec3, exponent float64) *Glossy {
	return &Glossy{reflectance: reflectance, exponent: exponent}
}

// Modes returns the glossy scattering component
func (g *Glossy) Modes() ScatteringMode {
	return ScatteringGlossy
}

// reflect mirrors v about the normal
func reflect(v, normal core.Vec3) core.Vec3 {
	return normal.Multiply(2 * v.Dot(normal)).Subtract(v)
}

// Sample draws a direction from the cos^n lobe around the mirror direction
func (g *Glossy) Sample(sctx *sampling.Context, adjoint bool, geometricNormal core.Vec3, basis core.Basis, outgoing core.Vec3) BSDFSample {
	sctx.SplitInPlace(2, 1)
	s := sctx.Next2()

	mirror := reflect(outgoing, basis.Normal)
	lobe := core.NewBasis(mirror.Normalize())

	cosAlpha := math.Pow(s.X, 1.0/(g.exponent+1))
	sinAlpha := math.Sqrt(math.Max(0, 1-cosAlpha*cosAlpha))
	phi := 2 * math.Pi * s.Y

	incoming := lobe.ToWorld(sinAlpha*math.Cos(phi), sinAlpha*math.Sin(phi), cosAlpha)
	if incoming.Dot(basis.Normal) <= 0 {
		return BSDFSample{Mode: ScatteringNone}
	}

	prob := (g.exponent + 1) / (2 * math.Pi) * math.Pow(cosAlpha, g.exponent)
	value := g.reflectance.Multiply((g.exponent + 2) / (2 * math.Pi) * math.Pow(cosAlpha, g.exponent))

	return BSDFSample{
		Incoming:    incoming,
		Value:       value,
		Probability: prob,
		Mode:        ScatteringGlossy,
	}
}

// Evaluate returns the lobe value and density for a concrete direction pair
func (g *Glossy) Evaluate(adjoint, cosineMult bool, geometricNormal core.Vec3, basis core.Basis, outgoing, incoming core.Vec3, modes ScatteringMode) (core.Vec3, float64) {
	if modes&ScatteringGlossy == 0 {
		return core.Vec3{}, 0
	}

	cosIn := incoming.Dot(basis.Normal)
	cosOut := outgoing.Dot(basis.Normal)
	if cosIn <= 0 || cosOut <= 0 {
		return core.Vec3{}, 0
	}

	mirror := reflect(outgoing, basis.Normal).Normalize()
	cosAlpha := incoming.Dot(mirror)
	if cosAlpha <= 0 {
		return core.Vec3{}, 0
	}

	prob := (g.exponent + 1) / (2 * math.Pi) * math.Pow(cosAlpha, g.exponent)
	value := g.reflectance.Multiply((g.exponent + 2) / (2 * math.Pi) * math.Pow(cosAlpha, g.exponent))
	if cosineMult {
		value = value.Multiply(cosIn)
	}
	return value, prob
}
