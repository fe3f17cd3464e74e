package lighttracing

import (
	"math"

	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/geometry"
	"github.com/nasehim7/appleseed/pkg/material"
	"github.com/nasehim7/appleseed/pkg/sampling"
)

// Russian roulette survival probabilities are clamped to this range so low
// throughput paths still terminate in bounded expected time
const (
	minSurvivalProbability = 0.05
	maxSurvivalProbability = 1.0
)

// PathVisitor observes the vertices of a light path as it is traced.
// AcceptScattering can veto a continuation before the path is extended.
type PathVisitor interface {
	AcceptScattering(prevMode, nextMode material.ScatteringMode) bool
	VisitVertex(v *PathVertex)
	VisitEnvironment(v *PathVertex)
}

// PathTracer random-walks a particle through the scene, handing every
// vertex to the visitor. Path length limits of zero mean unbounded.
type PathTracer struct {
	visitor         PathVisitor
	rrMinPathLength int
	maxPathLength   int
	maxIterations   int
}

// NewPathTracer creates a path tracer with the given termination controls
func NewPathTracer(visitor PathVisitor, rrMinPathLength, maxPathLength, maxIterations int) *PathTracer {
	if rrMinPathLength == 0 {
		rrMinPathLength = math.MaxInt
	}
	if maxPathLength == 0 {
		maxPathLength = math.MaxInt
	}
	return &PathTracer{
		visitor:         visitor,
		rrMinPathLength: rrMinPathLength,
		maxPathLength:   maxPathLength,
		maxIterations:   maxIterations,
	}
}

// Trace follows a particle from the given ray until absorption, escape or a
// path length limit. nearStart is a minimum hit distance applied to the
// first segment only, keeping an emitter from lighting its own immediate
// neighborhood. parent, when non-nil, is the emitting surface the ray
// leaves from. Returns the number of completed scattering events, zero when
// the particle escaped or was absorbed at the first surface.
func (t *PathTracer) Trace(sctx *sampling.Context, intersector Intersector, ray core.Ray, nearStart float64, parent *geometry.ShadingPoint, initialThroughput core.Vec3) int {
	throughput := initialThroughput
	pathLength := 1
	prevMode := material.ScatteringSpecular

	for iterations := 0; ; iterations++ {
		if iterations >= t.maxIterations {
			break
		}

		sp, hit := intersector.Trace(ray, nearStart, geometry.VisLightRay, parent)
		nearStart = 0
		outgoing := ray.Direction.Normalize().Negate()

		if !hit {
			t.visitor.VisitEnvironment(&PathVertex{
				Outgoing:   outgoing,
				Throughput: throughput,
				PathLength: pathLength,
				Time:       ray.Time,
			})
			break
		}

		vertex := PathVertex{
			Surface:    sp,
			Outgoing:   outgoing,
			BSDF:       sp.Shape.BSDF(),
			Throughput: throughput,
			PathLength: pathLength,
			Time:       ray.Time,
		}
		t.visitor.VisitVertex(&vertex)

		if vertex.BSDF == nil {
			break
		}

		sample := vertex.BSDF.Sample(sctx, true, sp.GeometricNormal, sp.Basis, outgoing)
		if sample.Mode == material.ScatteringNone {
			break
		}
		if !t.visitor.AcceptScattering(prevMode, sample.Mode) {
			break
		}

		var weight core.Vec3
		if sample.IsDelta() {
			weight = sample.Value
		} else {
			if sample.Probability <= 0 {
				break
			}
			cosIn := sample.Incoming.AbsDot(sp.ShadingNormal)
			weight = sample.Value.Multiply(cosIn / sample.Probability)
		}

		if pathLength >= t.rrMinPathLength {
			survival := clamp(weight.Luminance(), minSurvivalProbability, maxSurvivalProbability)
			sctx.SplitInPlace(1, 1)
			if sctx.Next() >= survival {
				break
			}
			weight = weight.Multiply(1.0 / survival)
		}

		pathLength++
		if pathLength > t.maxPathLength {
			break
		}

		throughput = throughput.MultiplyVec(weight)
		prevMode = sample.Mode
		parent = &vertex.Surface
		ray = core.NewRayAt(sp.Point, sample.Incoming, ray.Time)
	}

	return pathLength - 1
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
