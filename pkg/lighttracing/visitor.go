package lighttracing

import (
	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/geometry"
	"github.com/nasehim7/appleseed/pkg/lights"
	"github.com/nasehim7/appleseed/pkg/material"
	"github.com/nasehim7/appleseed/pkg/sampling"
)

// lightPathVisitor connects every path vertex to the camera and turns the
// surviving connections into film samples. A single visitor instance is
// reused across particles; begin resets its per-particle state.
type lightPathVisitor struct {
	params Parameters
	camera CameraConnector
	tracer TransmittanceTracer

	sctx    *sampling.Context
	samples *[]Sample
	stored  int
}

func newLightPathVisitor(params Parameters, camera CameraConnector, tracer TransmittanceTracer) *lightPathVisitor {
	return &lightPathVisitor{params: params, camera: camera, tracer: tracer}
}

func (v *lightPathVisitor) begin(sctx *sampling.Context, samples *[]Sample) {
	v.sctx = sctx
	v.samples = samples
	v.stored = 0
}

// AcceptScattering vetoes glossy and specular continuations when caustics
// are disabled; every caustic path contains at least one such event.
func (v *lightPathVisitor) AcceptScattering(prevMode, nextMode material.ScatteringMode) bool {
	if !v.params.EnableCaustics && nextMode.HasGlossyOrSpecular() {
		return false
	}
	return true
}

// visitAreaLightVertex connects a point on an emitting surface straight to
// the camera. flux is the emitted radiance divided by the selection density.
func (v *lightPathVisitor) visitAreaLightVertex(ls *lights.LightSample, flux core.Vec3, time float64) {
	ndc, toLight, importance, ok := v.camera.ConnectVertex(v.sctx, time, ls.Point)
	if !ok {
		return
	}

	distance := toLight.Length()
	if distance == 0 {
		return
	}
	toCamera := toLight.Multiply(-1.0 / distance)

	// The emitting side must face the camera
	cosAlpha := toCamera.Dot(ls.ShadingNormal)
	if cosAlpha <= 0 {
		return
	}

	target := ls.MakeShadingPoint()
	transmittance := v.tracer.TraceBetween(v.camera.Position(), ls.Point, time, geometry.VisShadowRay, &target)
	if transmittance == 0 {
		return
	}

	radiance := flux.Multiply(cosAlpha * transmittance * importance)
	v.emitSample(ndc, radiance, distance)
}

// visitNonPhysicalLightVertex connects a point light straight to the camera.
// flux is the emitted intensity divided by the selection density.
func (v *lightPathVisitor) visitNonPhysicalLightVertex(position core.Vec3, flux core.Vec3, time float64) {
	ndc, toLight, importance, ok := v.camera.ConnectVertex(v.sctx, time, position)
	if !ok {
		return
	}

	transmittance := v.tracer.TraceBetween(v.camera.Position(), position, time, geometry.VisShadowRay, nil)
	if transmittance == 0 {
		return
	}

	radiance := flux.Multiply(transmittance * importance)
	v.emitSample(ndc, radiance, toLight.Length())
}

// VisitVertex connects a scattering vertex to the camera
func (v *lightPathVisitor) VisitVertex(pv *PathVertex) {
	if pv.BSDF == nil {
		return
	}

	ndc, toVertex, importance, ok := v.camera.ConnectVertex(v.sctx, pv.Time, pv.Surface.Point)
	if !ok {
		return
	}

	distance := toVertex.Length()
	if distance == 0 {
		return
	}
	dirToVertex := toVertex.Multiply(1.0 / distance)

	// The surface must face the camera
	if dirToVertex.Dot(pv.Surface.ShadingNormal) >= 0 {
		return
	}

	transmittance := v.tracer.TraceBetween(v.camera.Position(), pv.Surface.Point, pv.Time, geometry.VisShadowRay, &pv.Surface)
	if transmittance == 0 {
		return
	}

	geometricNormal := pv.Surface.GeometricNormal.FlipToSameHemisphere(pv.Surface.ShadingNormal)

	// todo: restricting the evaluation to the sampled scattering modes
	// may be more correct than evaluating all of them.
	value, prob := pv.BSDF.Evaluate(
		true, true,
		geometricNormal, pv.Surface.Basis,
		pv.Outgoing, dirToVertex.Negate(),
		material.ScatteringAll)
	if prob == 0 {
		return
	}

	radiance := pv.Throughput.MultiplyVec(value).Multiply(transmittance * importance)
	v.emitSample(ndc, radiance, distance)
}

// VisitEnvironment is a no-op: a particle escaping the scene cannot be
// connected to the camera.
func (v *lightPathVisitor) VisitEnvironment(pv *PathVertex) {
}

func (v *lightPathVisitor) emitSample(ndc core.Vec2, radiance core.Vec3, distance float64) {
	assertNonNegativeRadiance(radiance)

	if !radiance.IsFinite() {
		return
	}

	*v.samples = append(*v.samples, Sample{
		Position: ndc,
		Radiance: radiance,
		Alpha:    1,
		Distance: distance,
	})
	v.stored++
}

// lerp interpolates between a and b by t in [0, 1]
func lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
