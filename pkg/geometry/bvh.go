package geometry

import (
	"sort"

	"github.com/nasehim7/appleseed/pkg/core"
)

// BVH is a bounding volume hierarchy over shapes, built by median split on
// the longest axis of the centroid bounds
type BVH struct {
	root   *bvhNode
	bounds AABB
}

type bvhNode struct {
	bounds      AABB
	left, right *bvhNode
	shapes      []Shape // leaf payload
}

const bvhLeafSize = 4

// NewBVH builds a hierarchy over the given shapes
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{bounds: EmptyAABB()}
	}
	owned := make([]Shape, len(shapes))
	copy(owned, shapes)
	root := buildBVHNode(owned)
	return &BVH{root: root, bounds: root.bounds}
}

// Bounds returns the bounds of the whole hierarchy
func (b *BVH) Bounds() AABB { return b.bounds }

func buildBVHNode(shapes []Shape) *bvhNode {
	bounds := EmptyAABB()
	for _, s := range shapes {
		bounds = bounds.Union(s.Bounds())
	}

	if len(shapes) <= bvhLeafSize {
		return &bvhNode{bounds: bounds, shapes: shapes}
	}

	axis := bounds.LongestAxis()
	sort.Slice(shapes, func(i, j int) bool {
		ci, cj := shapes[i].Bounds().Center(), shapes[j].Bounds().Center()
		switch axis {
		case 0:
			return ci.X < cj.X
		case 1:
			return ci.Y < cj.Y
		default:
			return ci.Z < cj.Z
		}
	})

	mid := len(shapes) / 2
	return &bvhNode{
		bounds: bounds,
		left:   buildBVHNode(shapes[:mid]),
		right:  buildBVHNode(shapes[mid:]),
	}
}

// Intersect returns the nearest hit in (tMin, tMax) among shapes matching
// the visibility mask. Hits for which skip returns true are ignored; skip
// may be nil.
func (b *BVH) Intersect(ray core.Ray, tMin, tMax float64, mask uint32, skip func(ShadingPoint) bool) (ShadingPoint, bool) {
	if b.root == nil {
		return ShadingPoint{}, false
	}

	var best ShadingPoint
	found := false
	closest := tMax

	var walk func(node *bvhNode)
	walk = func(node *bvhNode) {
		if !node.bounds.Hit(ray, tMin, closest) {
			return
		}
		if node.shapes != nil {
			for _, s := range node.shapes {
				if s.Mask()&mask == 0 {
					continue
				}
				hit, ok := s.Intersect(ray, tMin, closest)
				if !ok || (skip != nil && skip(hit)) {
					continue
				}
				best = hit
				closest = hit.Distance
				found = true
			}
			return
		}
		walk(node.left)
		walk(node.right)
	}
	walk(b.root)

	return best, found
}
