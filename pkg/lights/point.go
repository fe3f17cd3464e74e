package lights

import (
	"math"

	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/sampling"
)

// PointLight is an omnidirectional non-physical emitter
type PointLight struct {
	position  core.Vec3
	intensity core.Vec3
}

// NewPointLight creates a point light with the given radiant intensity
func NewPointLight(position, intensity core.Vec3) *PointLight {
	return &PointLight{position: position, intensity: intensity}
}

// SampleEmission draws a uniform direction over the sphere
func (l *PointLight) SampleEmission(sctx *sampling.Context) (core.Vec3, core.Vec3, core.Vec3, float64) {
	sctx.SplitInPlace(2, 1)
	s := sctx.Next2()

	direction := sampling.SampleUniformSphere(s)
	return l.position, direction, l.intensity, 1.0 / (4.0 * math.Pi)
}

// Position returns the light position
func (l *PointLight) Position() core.Vec3 {
	return l.position
}

// Importance is the selection weight, proportional to emitted flux
func (l *PointLight) Importance() float64 {
	importance := l.intensity.Luminance() * 4.0 * math.Pi
	if importance <= 0 {
		importance = 1
	}
	return importance
}
