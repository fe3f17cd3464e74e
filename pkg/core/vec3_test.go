package core

import (
	"math"
	"testing"
)

func TestVec3BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	if got := a.Add(b); got != (Vec3{5, 7, 9}) {
		t.Errorf("Add: expected {5 7 9}, got %v", got)
	}
	if got := a.Subtract(b); got != (Vec3{-3, -3, -3}) {
		t.Errorf("Subtract: expected {-3 -3 -3}, got %v", got)
	}
	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot: expected 32, got %v", got)
	}
	if got := a.Cross(b); got != (Vec3{-3, 6, -3}) {
		t.Errorf("Cross: expected {-3 6 -3}, got %v", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4)
	n := v.Normalize()
	if math.Abs(n.Length()-1.0) > 1e-12 {
		t.Errorf("Normalize: expected unit length, got %v", n.Length())
	}

	// Degenerate input stays zero instead of producing NaNs
	if z := (Vec3{}).Normalize(); z != (Vec3{}) {
		t.Errorf("Normalize of zero vector: expected zero, got %v", z)
	}
}

func TestVec3FlipToSameHemisphere(t *testing.T) {
	n := NewVec3(0, 1, 0)
	below := NewVec3(0.2, -1, 0.1)

	flipped := below.FlipToSameHemisphere(n)
	if flipped.Dot(n) <= 0 {
		t.Errorf("expected flipped vector in normal hemisphere, got %v", flipped)
	}

	above := NewVec3(0.2, 1, 0.1)
	if got := above.FlipToSameHemisphere(n); got != above {
		t.Errorf("expected vector already in hemisphere to be unchanged, got %v", got)
	}
}

func TestVec3IsFinite(t *testing.T) {
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("expected finite vector to report finite")
	}
	if NewVec3(math.NaN(), 0, 0).IsFinite() {
		t.Error("expected NaN component to report non-finite")
	}
	if NewVec3(0, math.Inf(1), 0).IsFinite() {
		t.Error("expected Inf component to report non-finite")
	}
}

func TestBasisOrthonormal(t *testing.T) {
	normals := []Vec3{
		NewVec3(0, 1, 0),
		NewVec3(1, 0, 0),
		NewVec3(0, 0, -1),
		NewVec3(1, 1, 1).Normalize(),
	}

	for _, n := range normals {
		b := NewBasis(n)
		if math.Abs(b.TangentU.Length()-1) > 1e-12 || math.Abs(b.TangentV.Length()-1) > 1e-12 {
			t.Errorf("basis for %v has non-unit tangents", n)
		}
		if math.Abs(b.TangentU.Dot(b.Normal)) > 1e-12 ||
			math.Abs(b.TangentV.Dot(b.Normal)) > 1e-12 ||
			math.Abs(b.TangentU.Dot(b.TangentV)) > 1e-12 {
			t.Errorf("basis for %v is not orthogonal", n)
		}

		// Round trip through local coordinates
		w := NewVec3(0.3, -0.5, 0.7)
		l := b.ToLocal(w)
		back := b.ToWorld(l.X, l.Y, l.Z)
		if back.Subtract(w).Length() > 1e-12 {
			t.Errorf("ToWorld(ToLocal(w)) != w for normal %v: got %v", n, back)
		}
	}
}
