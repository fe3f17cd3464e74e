package renderer

import (
	"sync"
	"sync/atomic"

	"github.com/nasehim7/appleseed/pkg/lighttracing"
)

// GlobalSampleBuffer collects film samples from all workers. Merge appends
// whole batches under a mutex; the particle counter is atomic so progress
// reads never block the workers.
type GlobalSampleBuffer struct {
	mu      sync.Mutex
	samples []lighttracing.Sample

	sampleCount uint64
}

// NewGlobalSampleBuffer creates a buffer with room for the given number of
// samples before the first reallocation
func NewGlobalSampleBuffer(capacity int) *GlobalSampleBuffer {
	return &GlobalSampleBuffer{samples: make([]lighttracing.Sample, 0, capacity)}
}

// Merge appends a batch of samples. Safe for concurrent use.
func (b *GlobalSampleBuffer) Merge(samples []lighttracing.Sample) {
	if len(samples) == 0 {
		return
	}
	b.mu.Lock()
	b.samples = append(b.samples, samples...)
	b.mu.Unlock()
}

// IncrementSampleCount records that n more particles have been emitted.
// Safe for concurrent use.
func (b *GlobalSampleBuffer) IncrementSampleCount(n uint64) {
	atomic.AddUint64(&b.sampleCount, n)
}

// SampleCount returns the number of particles emitted so far
func (b *GlobalSampleBuffer) SampleCount() uint64 {
	return atomic.LoadUint64(&b.sampleCount)
}

// Len returns the number of stored film samples
func (b *GlobalSampleBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.samples)
}

// Clear drops all stored samples and resets the particle counter
func (b *GlobalSampleBuffer) Clear() {
	b.mu.Lock()
	b.samples = b.samples[:0]
	b.mu.Unlock()
	atomic.StoreUint64(&b.sampleCount, 0)
}

// DevelopTo splats every stored sample into the frame, scaled so that the
// frame holds a radiance estimate independent of the particle count
func (b *GlobalSampleBuffer) DevelopTo(frame *Frame) {
	count := b.SampleCount()
	if count == 0 {
		return
	}
	scale := float64(frame.Width()*frame.Height()) / float64(count)

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.samples {
		frame.Splat(&b.samples[i], scale)
	}
}
