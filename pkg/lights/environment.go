package lights

import (
	"math"

	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/sampling"
)

// UniformEnvironment emits a constant radiance from every direction of the sky
type UniformEnvironment struct {
	radiance core.Vec3
}

// NewUniformEnvironment creates a constant environment emitter
func NewUniformEnvironment(radiance core.Vec3) *UniformEnvironment {
	return &UniformEnvironment{radiance: radiance}
}

// SampleDirection draws a uniform direction over the sphere, pointing toward
// the environment
func (e *UniformEnvironment) SampleDirection(sctx *sampling.Context) (core.Vec3, core.Vec3, float64) {
	sctx.SplitInPlace(2, 1)
	s := sctx.Next2()

	outgoing := sampling.SampleUniformSphere(s)
	return outgoing, e.radiance, 1.0 / (4.0 * math.Pi)
}

// Radiance returns the constant environment radiance
func (e *UniformEnvironment) Radiance() core.Vec3 {
	return e.radiance
}
