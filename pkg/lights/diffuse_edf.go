package lights

import (
	"math"

	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/sampling"
)

// DiffuseEDF emits a constant radiance cosine-weighted over the hemisphere
// around the shading normal.
type DiffuseEDF struct {
	radiance  core.Vec3
	nearStart float64
}

// NewDiffuseEDF creates a diffuse emitter with the given linear RGB radiance
func NewDiffuseEDF(radiance core.Vec3) *DiffuseEDF {
	return &DiffuseEDF{radiance: radiance}
}

// SetNearStart sets the light-near-start distance and returns the EDF for chaining
func (e *DiffuseEDF) SetNearStart(d float64) *DiffuseEDF {
	e.nearStart = d
	return e
}

// EvaluateInputs resolves the radiance into arena scratch storage
func (e *DiffuseEDF) EvaluateInputs(arena *sampling.Arena) []float64 {
	inputs := arena.AllocFloats(3)
	inputs[0] = e.radiance.X
	inputs[1] = e.radiance.Y
	inputs[2] = e.radiance.Z
	return inputs
}

// Sample draws a cosine-weighted direction in the shading hemisphere
func (e *DiffuseEDF) Sample(sctx *sampling.Context, inputs []float64, geometricNormal core.Vec3, basis core.Basis) (core.Vec3, core.Vec3, float64) {
	sctx.SplitInPlace(2, 1)
	s := sctx.Next2()

	direction := sampling.SampleCosineHemisphere(basis, s)
	value := core.Vec3{X: inputs[0], Y: inputs[1], Z: inputs[2]}
	prob := direction.Dot(basis.Normal) / math.Pi
	return direction, value, prob
}

// NearStart returns the minimum lit distance
func (e *DiffuseEDF) NearStart() float64 {
	return e.nearStart
}

// Radiance returns the constant emitted radiance
func (e *DiffuseEDF) Radiance() core.Vec3 {
	return e.radiance
}
