package lights

import (
	"math"
	"testing"

	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/geometry"
	"github.com/nasehim7/appleseed/pkg/material"
	"github.com/nasehim7/appleseed/pkg/sampling"
)

func newTestQuad() *geometry.Quad {
	return geometry.NewQuad(
		core.NewVec3(-1, 2, -1),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 0, 2),
		material.NewLambertian(core.NewVec3(0, 0, 0)),
	)
}

func TestDiffuseEDFSample(t *testing.T) {
	arena := sampling.NewArena(16)
	edf := NewDiffuseEDF(core.NewVec3(4, 2, 1))
	inputs := edf.EvaluateInputs(arena)

	if len(inputs) != 3 || inputs[0] != 4 || inputs[1] != 2 || inputs[2] != 1 {
		t.Fatalf("unexpected resolved inputs: %v", inputs)
	}

	normal := core.NewVec3(0, 1, 0)
	basis := core.NewBasis(normal)

	for i := 0; i < 100; i++ {
		sctx := sampling.NewContext(sampling.RNGMode, 7, uint64(i))
		direction, value, prob := edf.Sample(sctx, inputs, normal, basis)

		cosTheta := direction.Dot(normal)
		if cosTheta <= 0 {
			t.Fatalf("sampled direction below the surface: %v", direction)
		}
		if value != edf.Radiance() {
			t.Errorf("emitted value %v, want %v", value, edf.Radiance())
		}
		wantProb := cosTheta / math.Pi
		if math.Abs(prob-wantProb) > 1e-12 {
			t.Errorf("density %v, want %v", prob, wantProb)
		}
	}
}

func TestAreaLightImportanceScalesWithPower(t *testing.T) {
	quad := newTestQuad()
	dim := NewQuadAreaLight(quad, NewDiffuseEDF(core.NewVec3(1, 1, 1)))
	bright := NewQuadAreaLight(quad, NewDiffuseEDF(core.NewVec3(10, 10, 10)))

	if bright.Importance() <= dim.Importance() {
		t.Errorf("brighter emitter has importance %v, dimmer has %v",
			bright.Importance(), dim.Importance())
	}
}

func TestPointLightEmission(t *testing.T) {
	light := NewPointLight(core.NewVec3(1, 2, 3), core.NewVec3(5, 5, 5))

	sctx := sampling.NewContext(sampling.RNGMode, 11, 0)
	position, direction, value, prob := light.SampleEmission(sctx)

	if position != core.NewVec3(1, 2, 3) {
		t.Errorf("emission position %v, want light position", position)
	}
	if math.Abs(direction.Length()-1) > 1e-9 {
		t.Errorf("emission direction not normalized: %v", direction)
	}
	if value != core.NewVec3(5, 5, 5) {
		t.Errorf("emitted value %v, want intensity", value)
	}
	if math.Abs(prob-1.0/(4.0*math.Pi)) > 1e-12 {
		t.Errorf("density %v, want uniform sphere density", prob)
	}
}

func TestUniformEnvironmentSample(t *testing.T) {
	env := NewUniformEnvironment(core.NewVec3(0.5, 0.6, 0.7))

	sctx := sampling.NewContext(sampling.RNGMode, 13, 0)
	outgoing, value, prob := env.SampleDirection(sctx)

	if math.Abs(outgoing.Length()-1) > 1e-9 {
		t.Errorf("direction not normalized: %v", outgoing)
	}
	if value != env.Radiance() {
		t.Errorf("value %v, want %v", value, env.Radiance())
	}
	if math.Abs(prob-1.0/(4.0*math.Pi)) > 1e-12 {
		t.Errorf("density %v, want uniform sphere density", prob)
	}
}

func TestImportanceSamplerEmpty(t *testing.T) {
	sampler := NewImportanceSampler(nil, nil)
	if sampler.HasLights() {
		t.Fatal("empty sampler reports lights")
	}
	if _, ok := sampler.Sample(0, core.NewVec3(0.5, 0.5, 0.5)); ok {
		t.Fatal("empty sampler produced a sample")
	}
}

func TestImportanceSamplerSelectionFrequency(t *testing.T) {
	quad := newTestQuad()
	dim := NewQuadAreaLight(quad, NewDiffuseEDF(core.NewVec3(1, 1, 1)))
	bright := NewQuadAreaLight(quad, NewDiffuseEDF(core.NewVec3(9, 9, 9)))
	sampler := NewImportanceSampler([]*AreaLight{dim, bright}, nil)

	const n = 10000
	brightCount := 0
	sctx := sampling.NewContext(sampling.RNGMode, 17, 0)
	for i := 0; i < n; i++ {
		sctx.SplitInPlace(3, 1)
		u := sctx.Next3()
		ls, ok := sampler.Sample(0, u)
		if !ok {
			t.Fatal("sampler with lights produced no sample")
		}
		if ls.Area == bright {
			brightCount++
		}
	}

	ratio := float64(brightCount) / n
	if math.Abs(ratio-0.9) > 0.02 {
		t.Errorf("bright emitter selected with frequency %v, want about 0.9", ratio)
	}
}

func TestImportanceSamplerAreaProbability(t *testing.T) {
	quad := newTestQuad()
	area := NewQuadAreaLight(quad, NewDiffuseEDF(core.NewVec3(1, 1, 1)))
	sampler := NewImportanceSampler([]*AreaLight{area}, nil)

	ls, ok := sampler.Sample(0, core.NewVec3(0.3, 0.4, 0.5))
	if !ok {
		t.Fatal("no sample")
	}
	wantProb := 1.0 / quad.Area()
	if math.Abs(ls.Probability-wantProb) > 1e-12 {
		t.Errorf("sample probability %v, want %v (single emitter, area measure)",
			ls.Probability, wantProb)
	}
	if ls.Area != area || ls.Light != nil {
		t.Error("sample does not reference the area light")
	}

	sp := ls.MakeShadingPoint()
	if sp.Shape != area.Shape() {
		t.Error("shading point does not carry the emitting shape")
	}
	if sp.Point != ls.Point {
		t.Error("shading point position differs from the sampled point")
	}
}

func TestImportanceSamplerPointLightSelection(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 5, 0), core.NewVec3(2, 2, 2))
	sampler := NewImportanceSampler(nil, []Light{light})

	ls, ok := sampler.Sample(0, core.NewVec3(0.9, 0.1, 0.1))
	if !ok {
		t.Fatal("no sample")
	}
	if ls.Light != light || ls.Area != nil {
		t.Error("sample does not reference the point light")
	}
	if math.Abs(ls.Probability-1) > 1e-12 {
		t.Errorf("single emitter selection probability %v, want 1", ls.Probability)
	}
}
