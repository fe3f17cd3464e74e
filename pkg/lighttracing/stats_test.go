package lighttracing

import (
	"math"
	"testing"
)

func TestPopulation(t *testing.T) {
	var p Population
	if p.Count() != 0 || p.Mean() != 0 || p.Deviation() != 0 {
		t.Fatal("empty population has non-zero statistics")
	}

	for _, v := range []int{2, 4, 4, 4, 5, 5, 7, 9} {
		p.Insert(v)
	}

	if p.Count() != 8 {
		t.Errorf("count %d, want 8", p.Count())
	}
	if p.Min() != 2 || p.Max() != 9 {
		t.Errorf("range [%d, %d], want [2, 9]", p.Min(), p.Max())
	}
	if math.Abs(p.Mean()-5) > 1e-12 {
		t.Errorf("mean %v, want 5", p.Mean())
	}
	if math.Abs(p.Deviation()-2) > 1e-12 {
		t.Errorf("deviation %v, want 2", p.Deviation())
	}
}

func TestPopulationMergeFrom(t *testing.T) {
	var a, b Population
	a.Insert(1)
	a.Insert(3)
	b.Insert(5)
	b.Insert(7)

	a.MergeFrom(&b)
	if a.Count() != 4 {
		t.Errorf("merged count %d, want 4", a.Count())
	}
	if a.Min() != 1 || a.Max() != 7 {
		t.Errorf("merged range [%d, %d], want [1, 7]", a.Min(), a.Max())
	}
	if math.Abs(a.Mean()-4) > 1e-12 {
		t.Errorf("merged mean %v, want 4", a.Mean())
	}

	var empty Population
	a.MergeFrom(&empty)
	if a.Count() != 4 {
		t.Error("merging an empty population changed the count")
	}
}
