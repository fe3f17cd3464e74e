package scene

import (
	"github.com/nasehim7/appleseed/pkg/camera"
	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/geometry"
	"github.com/nasehim7/appleseed/pkg/lights"
)

// Scene gathers geometry, emitters, environment and camera, and owns the
// acceleration structures derived from them. Build it up with the Add
// methods, call Preprocess once, then treat it as read-only.
type Scene struct {
	shapes      []geometry.Shape
	areaLights  []*lights.AreaLight
	pointLights []lights.Light
	environment lights.Environment
	camera      *camera.Pinhole

	bvh          *geometry.BVH
	lightSampler *lights.ImportanceSampler
	center       core.Vec3
	radius       float64
	safeDiameter float64
}

// New creates an empty scene viewed through the given camera
func New(cam *camera.Pinhole) *Scene {
	return &Scene{camera: cam}
}

// AddShape registers a non-emitting shape
func (s *Scene) AddShape(shape geometry.Shape) {
	s.shapes = append(s.shapes, shape)
}

// AddAreaLight registers an emitting surface. Its shape participates in
// intersection queries like any other geometry.
func (s *Scene) AddAreaLight(light *lights.AreaLight) {
	s.areaLights = append(s.areaLights, light)
	s.shapes = append(s.shapes, light.Shape())
}

// AddPointLight registers a non-physical emitter
func (s *Scene) AddPointLight(light lights.Light) {
	s.pointLights = append(s.pointLights, light)
}

// SetEnvironment sets the environment emission model, nil for a black sky
func (s *Scene) SetEnvironment(env lights.Environment) {
	s.environment = env
}

// Preprocess builds the BVH, the bounding sphere and the light selection
// tables. Must run once before rendering; the scene must not change after.
func (s *Scene) Preprocess() {
	s.bvh = geometry.NewBVH(s.shapes)
	s.center, s.radius = s.bvh.Bounds().BoundingSphere()
	if s.radius <= 0 {
		s.radius = 1
	}
	// Margin keeps environment particle origins strictly outside the scene
	s.safeDiameter = 2 * s.radius * 1.01
	s.lightSampler = lights.NewImportanceSampler(s.areaLights, s.pointLights)
}

// Camera returns the scene camera
func (s *Scene) Camera() *camera.Pinhole { return s.camera }

// Environment returns the environment emitter, nil when the sky is black
func (s *Scene) Environment() lights.Environment { return s.environment }

// LightSampler returns the emitter selection tables built by Preprocess
func (s *Scene) LightSampler() *lights.ImportanceSampler { return s.lightSampler }

// Center returns the bounding sphere center
func (s *Scene) Center() core.Vec3 { return s.center }

// Radius returns the bounding sphere radius
func (s *Scene) Radius() float64 { return s.radius }

// SafeDiameter returns the enlarged scene diameter used to place
// environment particle origins outside all geometry
func (s *Scene) SafeDiameter() float64 { return s.safeDiameter }
