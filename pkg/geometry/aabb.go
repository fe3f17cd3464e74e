package geometry

import (
	"math"

	"github.com/nasehim7/appleseed/pkg/core"
)

// AABB is an axis-aligned bounding box
type AABB struct {
	Min, Max core.Vec3
}

// EmptyAABB returns an inverted box that unions correctly with any other
func EmptyAABB() AABB {
	inf := math.Inf(1)
	return AABB{
		Min: core.NewVec3(inf, inf, inf),
		Max: core.NewVec3(-inf, -inf, -inf),
	}
}

// Union returns the smallest box containing both boxes
func (b AABB) Union(other AABB) AABB {
	return AABB{
		Min: core.NewVec3(
			math.Min(b.Min.X, other.Min.X),
			math.Min(b.Min.Y, other.Min.Y),
			math.Min(b.Min.Z, other.Min.Z)),
		Max: core.NewVec3(
			math.Max(b.Max.X, other.Max.X),
			math.Max(b.Max.Y, other.Max.Y),
			math.Max(b.Max.Z, other.Max.Z)),
	}
}

// Center returns the box centroid
func (b AABB) Center() core.Vec3 {
	return b.Min.Add(b.Max).Multiply(0.5)
}

// LongestAxis returns 0, 1 or 2 for the widest extent
func (b AABB) LongestAxis() int {
	d := b.Max.Subtract(b.Min)
	if d.X >= d.Y && d.X >= d.Z {
		return 0
	}
	if d.Y >= d.Z {
		return 1
	}
	return 2
}

// Hit performs a slab test against the ray over (tMin, tMax)
func (b AABB) Hit(ray core.Ray, tMin, tMax float64) bool {
	origins := [3]float64{ray.Origin.X, ray.Origin.Y, ray.Origin.Z}
	dirs := [3]float64{ray.Direction.X, ray.Direction.Y, ray.Direction.Z}
	mins := [3]float64{b.Min.X, b.Min.Y, b.Min.Z}
	maxs := [3]float64{b.Max.X, b.Max.Y, b.Max.Z}

	for a := 0; a < 3; a++ {
		invD := 1.0 / dirs[a]
		t0 := (mins[a] - origins[a]) * invD
		t1 := (maxs[a] - origins[a]) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// BoundingSphere returns the center and radius of the sphere enclosing the box
func (b AABB) BoundingSphere() (core.Vec3, float64) {
	center := b.Center()
	return center, b.Max.Subtract(center).Length()
}
