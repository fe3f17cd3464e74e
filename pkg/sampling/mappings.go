package sampling

import (
	"math"

	"github.com/nasehim7/appleseed/pkg/core"
)

// SampleCosineHemisphere generates a cosine-weighted direction in the
// hemisphere around the given basis normal. The probability density of the
// returned direction is cos(theta)/pi with respect to solid angle.
func SampleCosineHemisphere(basis core.Basis, sample core.Vec2) core.Vec3 {
	a := 2.0 * math.Pi * sample.X
	z := sample.Y
	r := math.Sqrt(z)

	x := r * math.Cos(a)
	y := r * math.Sin(a)
	n := math.Sqrt(math.Max(0, 1.0-z))

	return basis.ToWorld(x, y, n)
}

// SampleUniformDisk maps a 2D sample uniformly onto the unit disk using
// concentric mapping, avoiding rejection sampling
func SampleUniformDisk(sample core.Vec2) core.Vec2 {
	offset := core.NewVec2(2*sample.X-1, 2*sample.Y-1)
	if offset.X == 0 && offset.Y == 0 {
		return core.Vec2{}
	}

	var theta, r float64
	if math.Abs(offset.X) > math.Abs(offset.Y) {
		r = offset.X
		theta = math.Pi / 4 * (offset.Y / offset.X)
	} else {
		r = offset.Y
		theta = math.Pi/2 - math.Pi/4*(offset.X/offset.Y)
	}

	return core.NewVec2(r*math.Cos(theta), r*math.Sin(theta))
}

// SampleUniformSphere generates a uniform direction on the unit sphere
func SampleUniformSphere(sample core.Vec2) core.Vec3 {
	z := 1.0 - 2.0*sample.X
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return core.NewVec3(r*math.Cos(phi), r*math.Sin(phi), z)
}
