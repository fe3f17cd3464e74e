package scene

import (
	"math"

	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/geometry"
)

const (
	// rayOriginOffset is the minimum ray parameter for all queries,
	// stepping over the surface the ray originates on
	rayOriginOffset = 1e-4

	// selfHitDistance bounds how close a repeat hit on the originating
	// shape must be to count as a self-intersection. Larger than the
	// origin offset so grazing rays are still caught.
	selfHitDistance = 1e-3

	// shadowRayShortening keeps occlusion rays from hitting the surface
	// at their far endpoint
	shadowRayShortening = 1e-4
)

// Intersector answers nearest-hit queries against the scene, excluding the
// surface a ray originates on. With reporting enabled, excluded hits are
// counted instead of silently skipped.
type Intersector struct {
	scene                   *Scene
	reportSelfIntersections bool
	selfIntersectionCount   uint64
}

// NewIntersector creates an intersector over a preprocessed scene
func NewIntersector(s *Scene, reportSelfIntersections bool) *Intersector {
	return &Intersector{scene: s, reportSelfIntersections: reportSelfIntersections}
}

// Trace returns the nearest hit along the ray matching the visibility mask.
// tMin is a minimum hit distance, raised to the origin offset when smaller.
// parent, when non-nil, identifies the surface point the ray leaves from;
// hits on that surface at that point are treated as self-intersections.
func (i *Intersector) Trace(ray core.Ray, tMin float64, mask uint32, parent *geometry.ShadingPoint) (geometry.ShadingPoint, bool) {
	var skip func(geometry.ShadingPoint) bool
	if parent != nil {
		skip = func(sp geometry.ShadingPoint) bool {
			if sp.Shape != parent.Shape {
				return false
			}
			if sp.Point.Subtract(parent.Point).Length() > selfHitDistance {
				return false
			}
			if i.reportSelfIntersections {
				i.selfIntersectionCount++
			}
			return true
		}
	}
	return i.scene.bvh.Intersect(ray, math.Max(tMin, rayOriginOffset), math.Inf(1), mask, skip)
}

// SelfIntersectionCount returns the number of excluded self-hits observed so
// far. Only meaningful when reporting is enabled.
func (i *Intersector) SelfIntersectionCount() uint64 {
	return i.selfIntersectionCount
}

// Tracer answers binary visibility queries between two points
type Tracer struct {
	intersector *Intersector
}

// NewTracer creates a visibility tracer sharing the given intersector
func NewTracer(intersector *Intersector) *Tracer {
	return &Tracer{intersector: intersector}
}

// TraceBetween returns 1 when the segment from origin to target is free of
// occluders matching the mask, 0 otherwise. target, when non-nil, excludes
// the destination surface from the query.
func (t *Tracer) TraceBetween(origin core.Vec3, targetPoint core.Vec3, time float64, mask uint32, target *geometry.ShadingPoint) float64 {
	toTarget := targetPoint.Subtract(origin)
	distance := toTarget.Length()
	if distance == 0 {
		return 1
	}

	ray := core.NewRayAt(origin, toTarget.Multiply(1.0/distance), time)
	maxT := distance * (1 - shadowRayShortening)

	var skip func(geometry.ShadingPoint) bool
	if target != nil {
		skip = func(sp geometry.ShadingPoint) bool {
			return sp.Shape == target.Shape &&
				sp.Point.Subtract(target.Point).Length() <= selfHitDistance
		}
	}

	if _, hit := t.intersector.scene.bvh.Intersect(ray, rayOriginOffset, maxT, mask, skip); hit {
		return 0
	}
	return 1
}
