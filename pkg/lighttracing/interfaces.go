package lighttracing

import (
	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/geometry"
	"github.com/nasehim7/appleseed/pkg/lights"
	"github.com/nasehim7/appleseed/pkg/sampling"
)

// Intersector answers nearest-hit queries. tMin is a minimum hit distance,
// zero for none; parent, when non-nil, is the surface point the ray leaves
// from and must not be reported as a hit.
type Intersector interface {
	Trace(ray core.Ray, tMin float64, mask uint32, parent *geometry.ShadingPoint) (geometry.ShadingPoint, bool)
}

// TransmittanceTracer answers visibility queries between two points,
// returning a transmittance in [0, 1]. target, when non-nil, excludes the
// destination surface from the query.
type TransmittanceTracer interface {
	TraceBetween(origin, targetPoint core.Vec3, time float64, mask uint32, target *geometry.ShadingPoint) float64
}

// CameraConnector projects world points onto a film plane. ConnectVertex
// returns the film position, the unnormalized camera-to-point direction and
// the importance factor; ok is false when the point does not see the film.
type CameraConnector interface {
	ConnectVertex(sctx *sampling.Context, time float64, point core.Vec3) (core.Vec2, core.Vec3, float64, bool)
	Position() core.Vec3
	ShutterOpen() float64
	ShutterClose() float64
}

// LightSampler draws emitters from the scene
type LightSampler interface {
	Sample(time float64, u core.Vec3) (lights.LightSample, bool)
	HasLights() bool
}

// AccumulationBuffer receives the samples produced by the generators.
// Implementations must be safe for concurrent use.
type AccumulationBuffer interface {
	Merge(samples []Sample)
	IncrementSampleCount(n uint64)
}
