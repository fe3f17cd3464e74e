package sampling

import (
	"math"

	"github.com/nasehim7/appleseed/pkg/core"
)

// Mode selects how the sampling context generates values
type Mode int

const (
	// RNGMode generates uncorrelated hash-based white noise
	RNGMode Mode = iota
	// QMCMode generates scrambled low-discrepancy points in the first two
	// dimensions of each split, falling back to white noise beyond
	QMCMode
)

// ParseMode maps a configuration string to a sampling mode, defaulting to "rng"
func ParseMode(s string) Mode {
	if s == "qmc" {
		return QMCMode
	}
	return RNGMode
}

// Context is a positioned cursor into a structured deterministic random
// stream. A context is split into independent sub-streams indexed by
// (dimension count, draw count); values within a sub-stream are addressed by
// (dimension, instance) and computed by a counter-based generator, so the
// same cursor state always re-derives the same values. The cursor only moves
// forward, never back.
type Context struct {
	mode       Mode
	key        uint64 // sub-stream key
	dimensions int    // dimensions per sample in the current sub-stream
	dimension  int    // next dimension to consume
	instance   uint64 // sample index within the current sub-stream
	totalDraws uint64 // scalars drawn since construction, monotonic
}

// NewContext creates a context positioned at the given sequence index.
// Contexts built from the same (mode, seed, sequenceIndex) produce identical
// streams.
func NewContext(mode Mode, seed, sequenceIndex uint64) *Context {
	return &Context{
		mode:       mode,
		key:        mix64(seed ^ mix64(sequenceIndex)),
		dimensions: 1,
	}
}

// SplitInPlace repositions the context on an independent sub-stream of the
// given dimension and draw count. The child key is a pure function of the
// current cursor state and the split arguments, so re-deriving a split from
// an identical position yields the identical sub-stream.
func (c *Context) SplitInPlace(dimensions, drawCount int) {
	c.key = mix64(c.key ^ mix64(uint64(dimensions)<<32|uint64(drawCount)) ^ mix64(c.totalDraws+0x9e3779b97f4a7c15))
	c.dimensions = dimensions
	c.dimension = 0
	c.instance = 0
}

// Next returns the next scalar in [0, 1) and advances the cursor
func (c *Context) Next() float64 {
	var v float64
	if c.mode == QMCMode && c.dimension < 2 {
		v = c.lowDiscrepancy(c.dimension, c.instance)
	} else {
		v = toUnitFloat(mix64(c.key ^ mix64(uint64(c.dimension)+1) ^ mix64(c.instance<<1|1)))
	}

	c.dimension++
	if c.dimension >= c.dimensions {
		c.dimension = 0
		c.instance++
	}
	c.totalDraws++

	return v
}

// Next2 returns the next two scalars as a Vec2
func (c *Context) Next2() core.Vec2 {
	return core.NewVec2(c.Next(), c.Next())
}

// Next3 returns the next three scalars as a Vec3
func (c *Context) Next3() core.Vec3 {
	return core.NewVec3(c.Next(), c.Next(), c.Next())
}

// lowDiscrepancy returns a Cranley-Patterson rotated radical inverse:
// base 2 for the first dimension, base 3 for the second
func (c *Context) lowDiscrepancy(dimension int, instance uint64) float64 {
	var v float64
	if dimension == 0 {
		v = radicalInverseBase2(instance)
	} else {
		v = radicalInverseBase3(instance)
	}

	// Per-stream rotation keeps sub-streams decorrelated
	offset := toUnitFloat(mix64(c.key ^ mix64(uint64(dimension)+11)))
	v += offset
	if v >= 1 {
		v -= 1
	}
	return v
}

func radicalInverseBase2(n uint64) float64 {
	n = (n << 32) | (n >> 32)
	n = ((n & 0x0000ffff0000ffff) << 16) | ((n & 0xffff0000ffff0000) >> 16)
	n = ((n & 0x00ff00ff00ff00ff) << 8) | ((n & 0xff00ff00ff00ff00) >> 8)
	n = ((n & 0x0f0f0f0f0f0f0f0f) << 4) | ((n & 0xf0f0f0f0f0f0f0f0) >> 4)
	n = ((n & 0x3333333333333333) << 2) | ((n & 0xcccccccccccccccc) >> 2)
	n = ((n & 0x5555555555555555) << 1) | ((n & 0xaaaaaaaaaaaaaaaa) >> 1)
	return float64(n) * (1.0 / (1 << 63) / 2)
}

func radicalInverseBase3(n uint64) float64 {
	inv := 0.0
	base := 1.0 / 3.0
	for n > 0 {
		inv += float64(n%3) * base
		base /= 3
		n /= 3
	}
	return inv
}

// mix64 is the SplitMix64 finalizer, used as the counter-based generator
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// toUnitFloat maps the high 53 bits of x to [0, 1)
func toUnitFloat(x uint64) float64 {
	f := float64(x>>11) * (1.0 / (1 << 53))
	if f >= 1 {
		return math.Nextafter(1, 0)
	}
	return f
}
