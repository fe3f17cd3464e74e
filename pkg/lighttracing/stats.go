package lighttracing

import (
	"fmt"
	"math"
)

// Population accumulates summary statistics over a stream of integer
// observations, used to track light path lengths
type Population struct {
	count      uint64
	minimum    int
	maximum    int
	sum        float64
	sumSquares float64
}

// Insert adds one observation
func (p *Population) Insert(value int) {
	if p.count == 0 || value < p.minimum {
		p.minimum = value
	}
	if p.count == 0 || value > p.maximum {
		p.maximum = value
	}
	p.count++
	f := float64(value)
	p.sum += f
	p.sumSquares += f * f
}

// MergeFrom folds another population's observations into this one
func (p *Population) MergeFrom(other *Population) {
	if other.count == 0 {
		return
	}
	if p.count == 0 || other.minimum < p.minimum {
		p.minimum = other.minimum
	}
	if p.count == 0 || other.maximum > p.maximum {
		p.maximum = other.maximum
	}
	p.count += other.count
	p.sum += other.sum
	p.sumSquares += other.sumSquares
}

// Count returns the number of observations
func (p *Population) Count() uint64 { return p.count }

// Min returns the smallest observation, zero when empty
func (p *Population) Min() int { return p.minimum }

// Max returns the largest observation, zero when empty
func (p *Population) Max() int { return p.maximum }

// Mean returns the arithmetic mean, zero when empty
func (p *Population) Mean() float64 {
	if p.count == 0 {
		return 0
	}
	return p.sum / float64(p.count)
}

// Deviation returns the population standard deviation, zero when empty
func (p *Population) Deviation() float64 {
	if p.count == 0 {
		return 0
	}
	mean := p.Mean()
	variance := p.sumSquares/float64(p.count) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return math.Sqrt(variance)
}

// String formats the statistics in a single line
func (p *Population) String() string {
	return fmt.Sprintf("avg %.1f min %d max %d dev %.1f",
		p.Mean(), p.Min(), p.Max(), p.Deviation())
}
