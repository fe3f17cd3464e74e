package lighttracing

import (
	"testing"

	"github.com/nasehim7/appleseed/pkg/camera"
	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/geometry"
	"github.com/nasehim7/appleseed/pkg/material"
	"github.com/nasehim7/appleseed/pkg/sampling"
)

// clearTracer reports every segment as unoccluded
type clearTracer struct{}

func (clearTracer) TraceBetween(origin, targetPoint core.Vec3, time float64, mask uint32, target *geometry.ShadingPoint) float64 {
	return 1
}

// blockedTracer reports every segment as occluded
type blockedTracer struct{}

func (blockedTracer) TraceBetween(origin, targetPoint core.Vec3, time float64, mask uint32, target *geometry.ShadingPoint) float64 {
	return 0
}

// recordingBSDF captures the arguments of the last Evaluate call
type recordingBSDF struct {
	evaluated  bool
	modes      material.ScatteringMode
	adjoint    bool
	cosineMult bool
}

func (b *recordingBSDF) Sample(sctx *sampling.Context, adjoint bool, geometricNormal core.Vec3, basis core.Basis, outgoing core.Vec3) material.BSDFSample {
	return material.BSDFSample{Mode: material.ScatteringNone}
}

func (b *recordingBSDF) Evaluate(adjoint, cosineMult bool, geometricNormal core.Vec3, basis core.Basis, outgoing, incoming core.Vec3, modes material.ScatteringMode) (core.Vec3, float64) {
	b.evaluated = true
	b.modes = modes
	b.adjoint = adjoint
	b.cosineMult = cosineMult
	return core.NewVec3(0.1, 0.1, 0.1), 1
}

func (b *recordingBSDF) Modes() material.ScatteringMode { return material.ScatteringDiffuse }

func newVisitorCamera() *camera.Pinhole {
	return camera.NewPinhole(
		core.NewVec3(0, 0, 4), core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0),
		60, 1)
}

func frontFacingVertex(bsdf material.BSDF) *PathVertex {
	normal := core.NewVec3(0, 0, 1) // toward the camera
	return &PathVertex{
		Surface: geometry.ShadingPoint{
			Point:           core.NewVec3(0, 0, 0),
			GeometricNormal: normal,
			ShadingNormal:   normal,
			Basis:           core.NewBasis(normal),
		},
		Outgoing:   core.NewVec3(0, 1, 0),
		BSDF:       bsdf,
		Throughput: core.NewVec3(1, 1, 1),
		PathLength: 1,
	}
}

func newVisitor(tracer TransmittanceTracer) (*lightPathVisitor, *[]Sample) {
	params := DefaultParameters()
	params.Mode = sampling.RNGMode
	v := newLightPathVisitor(params, newVisitorCamera(), tracer)
	samples := &[]Sample{}
	v.begin(sampling.NewContext(sampling.RNGMode, 1, 0), samples)
	return v, samples
}

func TestConnectionEvaluatesAllModes(t *testing.T) {
	bsdf := &recordingBSDF{}
	v, samples := newVisitor(clearTracer{})

	v.VisitVertex(frontFacingVertex(bsdf))

	if !bsdf.evaluated {
		t.Fatal("camera connection did not evaluate the surface")
	}
	if bsdf.modes != material.ScatteringAll {
		t.Errorf("connection evaluated mode set %b, want all modes", bsdf.modes)
	}
	if !bsdf.adjoint {
		t.Error("connection evaluated without adjoint transport")
	}
	if !bsdf.cosineMult {
		t.Error("connection evaluated without the cosine factor")
	}
	if len(*samples) != 1 {
		t.Fatalf("stored %d samples, want 1", len(*samples))
	}
}

func TestVisitVertexRejectsBackFacing(t *testing.T) {
	bsdf := &recordingBSDF{}
	v, samples := newVisitor(clearTracer{})

	vertex := frontFacingVertex(bsdf)
	vertex.Surface.ShadingNormal = core.NewVec3(0, 0, -1) // away from the camera
	v.VisitVertex(vertex)

	if bsdf.evaluated {
		t.Error("back-facing vertex was evaluated")
	}
	if len(*samples) != 0 {
		t.Errorf("back-facing vertex stored %d samples", len(*samples))
	}
}

func TestVisitVertexOccluded(t *testing.T) {
	bsdf := &recordingBSDF{}
	v, samples := newVisitor(blockedTracer{})

	v.VisitVertex(frontFacingVertex(bsdf))

	if len(*samples) != 0 {
		t.Errorf("occluded vertex stored %d samples", len(*samples))
	}
}

func TestVisitVertexSkipsPureEmitters(t *testing.T) {
	v, samples := newVisitor(clearTracer{})

	vertex := frontFacingVertex(nil)
	v.VisitVertex(vertex)

	if len(*samples) != 0 {
		t.Errorf("vertex without a surface stored %d samples", len(*samples))
	}
}

func TestAcceptScatteringCausticModes(t *testing.T) {
	params := DefaultParameters()
	params.EnableCaustics = false
	v := newLightPathVisitor(params, newVisitorCamera(), clearTracer{})

	if v.AcceptScattering(material.ScatteringDiffuse, material.ScatteringSpecular) {
		t.Error("specular continuation accepted with caustics disabled")
	}
	if v.AcceptScattering(material.ScatteringDiffuse, material.ScatteringGlossy) {
		t.Error("glossy continuation accepted with caustics disabled")
	}
	if !v.AcceptScattering(material.ScatteringSpecular, material.ScatteringDiffuse) {
		t.Error("diffuse continuation rejected with caustics disabled")
	}

	params.EnableCaustics = true
	v = newLightPathVisitor(params, newVisitorCamera(), clearTracer{})
	if !v.AcceptScattering(material.ScatteringDiffuse, material.ScatteringSpecular) {
		t.Error("specular continuation rejected with caustics enabled")
	}
}
