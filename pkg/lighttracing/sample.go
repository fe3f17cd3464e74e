package lighttracing

import (
	"github.com/nasehim7/appleseed/pkg/core"
)

// Sample is one film plane contribution produced by connecting a light path
// vertex to the camera. Position is in normalized film coordinates, with
// (0, 0) the top left corner; Radiance is linear RGB, already weighted by
// the camera importance. Distance is the camera-to-vertex distance, used by
// the depth channel.
type Sample struct {
	Position core.Vec2
	Radiance core.Vec3
	Alpha    float64
	Distance float64
}
