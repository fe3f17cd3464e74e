package scene

import (
	"github.com/nasehim7/appleseed/pkg/camera"
	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/geometry"
	"github.com/nasehim7/appleseed/pkg/lights"
	"github.com/nasehim7/appleseed/pkg/material"
)

// CornellBox builds the classic five-walled box with a ceiling emitter, a
// mirror sphere and a glossy sphere. aspect is the output width over height.
func CornellBox(aspect float64) *Scene {
	cam := camera.NewPinhole(
		core.NewVec3(0, 1, 3.9),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 1, 0),
		40, aspect,
	)

	s := New(cam)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	// Floor, ceiling, back wall, left and right walls
	s.AddShape(geometry.NewQuad(
		core.NewVec3(-1, 0, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), white))
	s.AddShape(geometry.NewQuad(
		core.NewVec3(-1, 2, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), white))
	s.AddShape(geometry.NewQuad(
		core.NewVec3(-1, 0, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), white))
	s.AddShape(geometry.NewQuad(
		core.NewVec3(-1, 0, -1), core.NewVec3(0, 0, 2), core.NewVec3(0, 2, 0), red))
	s.AddShape(geometry.NewQuad(
		core.NewVec3(1, 0, -1), core.NewVec3(0, 0, 2), core.NewVec3(0, 2, 0), green))

	s.AddShape(geometry.NewSphere(core.NewVec3(-0.4, 0.35, -0.3), 0.35,
		material.NewMirror(core.NewVec3(0.9, 0.9, 0.9))))
	s.AddShape(geometry.NewSphere(core.NewVec3(0.45, 0.3, 0.3), 0.3,
		material.NewGlossy(core.NewVec3(0.8, 0.6, 0.2), 50)))

	emitter := geometry.NewQuad(
		core.NewVec3(-0.35, 1.999, -0.35),
		core.NewVec3(0.7, 0, 0),
		core.NewVec3(0, 0, 0.7),
		material.NewLambertian(core.NewVec3(0, 0, 0)))
	s.AddAreaLight(lights.NewQuadAreaLight(emitter,
		lights.NewDiffuseEDF(core.NewVec3(12, 12, 12))))

	s.Preprocess()
	return s
}
