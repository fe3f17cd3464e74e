package lighttracing

import (
	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/geometry"
	"github.com/nasehim7/appleseed/pkg/material"
)

// PathVertex is one scattering event along a light path: the surface point,
// the direction back toward the previous vertex, the accumulated throughput
// up to this vertex, and the one-based position along the path.
type PathVertex struct {
	Surface    geometry.ShadingPoint
	Outgoing   core.Vec3 // unit direction toward the previous vertex
	BSDF       material.BSDF
	Throughput core.Vec3
	PathLength int
	Time       float64
}
