package camera

import (
	"math"

	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/sampling"
)

// Pinhole is an ideal pinhole camera that light particles connect to. The
// film plane sits at unit focal distance in front of the aperture; film
// extents are derived from the vertical field of view and the aspect ratio.
type Pinhole struct {
	origin  core.Vec3
	right   core.Vec3
	up      core.Vec3
	forward core.Vec3

	filmWidth  float64
	filmHeight float64

	shutterOpen  float64
	shutterClose float64
}

// NewPinhole creates a camera at the given position looking at a target.
// vfov is the vertical field of view in degrees, aspect is width over height.
func NewPinhole(position, lookAt, worldUp core.Vec3, vfov, aspect float64) *Pinhole {
	forward := lookAt.Subtract(position).Normalize()
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward)

	halfHeight := math.Tan(vfov * math.Pi / 360.0)
	return &Pinhole{
		origin:     position,
		right:      right,
		up:         up,
		forward:    forward,
		filmWidth:  2 * halfHeight * aspect,
		filmHeight: 2 * halfHeight,
	}
}

// SetShutter sets the shutter open and close times and returns the camera
// for chaining
func (c *Pinhole) SetShutter(open, close float64) *Pinhole {
	c.shutterOpen = open
	c.shutterClose = close
	return c
}

// ShutterOpen returns the shutter open time
func (c *Pinhole) ShutterOpen() float64 { return c.shutterOpen }

// ShutterClose returns the shutter close time
func (c *Pinhole) ShutterClose() float64 { return c.shutterClose }

// Position returns the aperture position
func (c *Pinhole) Position() core.Vec3 { return c.origin }

// SampleTime maps a canonical sample to a time within the shutter interval
func (c *Pinhole) SampleTime(sctx *sampling.Context) float64 {
	sctx.SplitInPlace(1, 1)
	s := sctx.Next()
	return c.shutterOpen + s*(c.shutterClose-c.shutterOpen)
}

// ConnectVertex projects a world point onto the film. Returns the film
// position in [0,1) x [0,1), the unnormalized direction from the camera to
// the point, and the importance factor that turns radiance transported along
// the connection into a film plane estimate. ok is false when the point lies
// behind the camera or projects outside the film.
func (c *Pinhole) ConnectVertex(sctx *sampling.Context, time float64, point core.Vec3) (core.Vec2, core.Vec3, float64, bool) {
	outgoing := point.Subtract(c.origin)

	z := outgoing.Dot(c.forward)
	if z <= 0 {
		return core.Vec2{}, core.Vec3{}, 0, false
	}

	x := outgoing.Dot(c.right) / z
	y := outgoing.Dot(c.up) / z

	ndc := core.NewVec2(0.5+x/c.filmWidth, 0.5-y/c.filmHeight)
	if ndc.X < 0 || ndc.X >= 1 || ndc.Y < 0 || ndc.Y >= 1 {
		return core.Vec2{}, core.Vec3{}, 0, false
	}

	distanceSquared := outgoing.LengthSquared()
	cosTheta := z / math.Sqrt(distanceSquared)

	// Importance of a pinhole with unit focal length: concentrates the
	// film response so that a surface seen directly develops to its
	// radiance once the frame is normalized by the particle count.
	importance := 1.0 / (c.filmWidth * c.filmHeight * cosTheta * cosTheta * cosTheta * distanceSquared)

	return ndc, outgoing, importance, true
}
