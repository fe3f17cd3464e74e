package sampling

import (
	"testing"

	"github.com/nasehim7/appleseed/pkg/core"
)

func newTestBasis(t *testing.T) core.Basis {
	t.Helper()
	return core.NewBasis(core.NewVec3(0, 1, 0))
}

func TestArenaAllocAndReset(t *testing.T) {
	a := NewArena(8)

	s1 := a.AllocFloats(4)
	s2 := a.AllocFloats(4)
	if len(s1) != 4 || len(s2) != 4 {
		t.Fatalf("expected 4-slot allocations, got %d and %d", len(s1), len(s2))
	}
	if a.Used() != 8 {
		t.Errorf("expected high-water mark 8, got %d", a.Used())
	}

	s1[0] = 1.5
	if s2[0] != 0 {
		t.Error("allocations overlap")
	}

	a.Reset()
	if a.Used() != 0 {
		t.Errorf("expected empty arena after Reset, got %d used", a.Used())
	}

	// Allocations after reset reuse the buffer and come back zeroed
	s3 := a.AllocFloats(4)
	if s3[0] != 0 {
		t.Error("expected zeroed allocation after Reset")
	}
}

func TestArenaGrows(t *testing.T) {
	a := NewArena(2)
	s := a.AllocFloats(100)
	if len(s) != 100 {
		t.Fatalf("expected 100-slot allocation, got %d", len(s))
	}
	if a.Used() != 100 {
		t.Errorf("expected 100 used, got %d", a.Used())
	}
}

func TestArenaAllocationsDoNotAlias(t *testing.T) {
	a := NewArena(16)
	first := a.AllocFloats(8)
	// Force growth; the first slice must keep its contents
	for i := range first {
		first[i] = float64(i)
	}
	a.AllocFloats(64)
	for i := range first {
		if first[i] != float64(i) {
			t.Fatalf("allocation clobbered at %d after growth", i)
		}
	}
}
