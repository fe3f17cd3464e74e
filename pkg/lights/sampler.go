package lights

import (
	"github.com/nasehim7/appleseed/pkg/core"
)

// ImportanceSampler selects emitters with probability proportional to their
// importance weight. Area lights and non-physical lights share a single CDF,
// so a scene mixing both still draws each with the right frequency.
type ImportanceSampler struct {
	areas  []*AreaLight
	points []Light
	cdf    []float64
	total  float64
}

// NewImportanceSampler builds the selection CDF over the given emitters
func NewImportanceSampler(areas []*AreaLight, points []Light) *ImportanceSampler {
	s := &ImportanceSampler{areas: areas, points: points}
	s.cdf = make([]float64, 0, len(areas)+len(points))

	running := 0.0
	for _, a := range areas {
		running += a.Importance()
		s.cdf = append(s.cdf, running)
	}
	for _, l := range points {
		running += l.Importance()
		s.cdf = append(s.cdf, running)
	}
	s.total = running
	return s
}

// HasLights reports whether at least one emitter is registered
func (s *ImportanceSampler) HasLights() bool {
	return len(s.cdf) > 0 && s.total > 0
}

// Sample draws one emitter. The first component selects the emitter, the
// remaining two place a point on it when the emitter is a surface. Returns
// false when the scene has no emitters.
func (s *ImportanceSampler) Sample(time float64, u core.Vec3) (LightSample, bool) {
	if !s.HasLights() {
		return LightSample{}, false
	}

	target := u.X * s.total
	index := 0
	for index < len(s.cdf)-1 && s.cdf[index] <= target {
		index++
	}

	var selectionProb float64
	if index == 0 {
		selectionProb = s.cdf[0] / s.total
	} else {
		selectionProb = (s.cdf[index] - s.cdf[index-1]) / s.total
	}

	if index < len(s.areas) {
		area := s.areas[index]
		point, normal, areaProb := area.SamplePoint(core.NewVec2(u.Y, u.Z))
		return LightSample{
			Point:           point,
			GeometricNormal: normal,
			ShadingNormal:   normal,
			Area:            area,
			Probability:     selectionProb * areaProb,
		}, true
	}

	light := s.points[index-len(s.areas)]
	return LightSample{
		Light:       light,
		Probability: selectionProb,
	}, true
}
