package material

import (
	"math"
	"testing"

	"github.com/nasehim7/appleseed/pkg/core"
	"github.com/nasehim7/appleseed/pkg/sampling"
)

func testFrame() (core.Vec3, core.Basis) {
	n := core.NewVec3(0, 1, 0)
	return n, core.NewBasis(n)
}

func TestScatteringModeBitset(t *testing.T) {
	if !ScatteringGlossy.HasGlossyOrSpecular() || !ScatteringSpecular.HasGlossyOrSpecular() {
		t.Error("glossy and specular modes must report HasGlossyOrSpecular")
	}
	if ScatteringDiffuse.HasGlossyOrSpecular() {
		t.Error("diffuse mode must not report HasGlossyOrSpecular")
	}
	if ScatteringAll&ScatteringDiffuse == 0 {
		t.Error("ScatteringAll must include diffuse")
	}
}

func TestLambertianSample(t *testing.T) {
	n, basis := testFrame()
	bsdf := NewLambertian(core.NewVec3(0.8, 0.6, 0.4))
	sctx := sampling.NewContext(sampling.RNGMode, 1, 0)
	outgoing := core.NewVec3(0, 1, 1).Normalize()

	for i := 0; i < 200; i++ {
		s := bsdf.Sample(sctx, true, n, basis, outgoing)
		if s.Mode != ScatteringDiffuse {
			t.Fatalf("expected diffuse mode, got %v", s.Mode)
		}
		cos := s.Incoming.Dot(n)
		if cos <= 0 {
			t.Fatalf("sampled direction below surface: %v", s.Incoming)
		}
		// Cosine-weighted sampling: pdf must equal cos/pi
		if math.Abs(s.Probability-cos/math.Pi) > 1e-9 {
			t.Fatalf("pdf mismatch: got %v, want %v", s.Probability, cos/math.Pi)
		}
	}
}

func TestLambertianEvaluate(t *testing.T) {
	n, basis := testFrame()
	rho := core.NewVec3(0.5, 0.5, 0.5)
	bsdf := NewLambertian(rho)
	outgoing := core.NewVec3(0, 1, 1).Normalize()
	incoming := core.NewVec3(1, 1, 0).Normalize()

	value, prob := bsdf.Evaluate(true, false, n, basis, outgoing, incoming, ScatteringAll)
	if prob <= 0 {
		t.Fatal("expected non-zero probability for upper-hemisphere pair")
	}
	want := rho.Multiply(1.0 / math.Pi)
	if value.Subtract(want).Length() > 1e-12 {
		t.Errorf("expected %v, got %v", want, value)
	}

	// Cosine folding
	folded, _ := bsdf.Evaluate(true, true, n, basis, outgoing, incoming, ScatteringAll)
	cos := incoming.Dot(n)
	if folded.Subtract(want.Multiply(cos)).Length() > 1e-12 {
		t.Errorf("cosineMult value mismatch: got %v", folded)
	}

	// Mode restriction
	if v, p := bsdf.Evaluate(true, false, n, basis, outgoing, incoming, ScatteringGlossy); p != 0 || v != (core.Vec3{}) {
		t.Error("expected zero when diffuse is excluded from the mode set")
	}

	// Below-surface directions contribute nothing
	below := core.NewVec3(0, -1, 0)
	if _, p := bsdf.Evaluate(true, false, n, basis, outgoing, below, ScatteringAll); p != 0 {
		t.Error("expected zero probability for below-surface incoming")
	}
}

func TestGlossySampleMatchesEvaluate(t *testing.T) {
	n, basis := testFrame()
	bsdf := NewGlossy(core.NewVec3(0.9, 0.9, 0.9), 50)
	sctx := sampling.NewContext(sampling.RNGMode, 3, 0)
	outgoing := core.NewVec3(0, 1, 1).Normalize()

	for i := 0; i < 100; i++ {
		s := bsdf.Sample(sctx, true, n, basis, outgoing)
		if s.Mode == ScatteringNone {
			continue // lobe dipped below the surface
		}
		value, prob := bsdf.Evaluate(true, false, n, basis, outgoing, s.Incoming, ScatteringAll)
		if math.Abs(prob-s.Probability) > 1e-6*math.Max(1, s.Probability) {
			t.Fatalf("sample/evaluate pdf mismatch: %v vs %v", s.Probability, prob)
		}
		if value.Subtract(s.Value).Length() > 1e-6*math.Max(1, s.Value.Length()) {
			t.Fatalf("sample/evaluate value mismatch: %v vs %v", s.Value, value)
		}
	}
}

func TestMirrorSampleIsDelta(t *testing.T) {
	n, basis := testFrame()
	bsdf := NewMirror(core.NewVec3(0.95, 0.95, 0.95))
	sctx := sampling.NewContext(sampling.RNGMode, 5, 0)
	outgoing := core.NewVec3(0, 1, 1).Normalize()

	s := bsdf.Sample(sctx, true, n, basis, outgoing)
	if s.Mode != ScatteringSpecular || !s.IsDelta() {
		t.Fatalf("expected delta specular sample, got %+v", s)
	}

	// Mirror reflection about the normal
	want := core.NewVec3(0, 1, -1).Normalize()
	if s.Incoming.Subtract(want).Length() > 1e-12 {
		t.Errorf("expected mirror direction %v, got %v", want, s.Incoming)
	}

	if _, p := bsdf.Evaluate(true, true, n, basis, outgoing, want, ScatteringAll); p != 0 {
		t.Error("delta BSDF must evaluate to zero density")
	}
}
