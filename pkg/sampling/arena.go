package sampling

// Arena is a scratch region allocator: a contiguous buffer with a high-water
// mark, reset to empty at the start of each unit of work. Slices carved from
// the arena are only valid until the next Reset; nothing allocated here may
// be retained past the work unit that allocated it.
type Arena struct {
	buf  []float64
	used int
}

// NewArena creates an arena with the given initial capacity in float64 slots
func NewArena(capacity int) *Arena {
	return &Arena{buf: make([]float64, capacity)}
}

// Reset empties the arena. Previously returned slices become invalid.
func (a *Arena) Reset() {
	a.used = 0
}

// AllocFloats carves n float64 slots out of the arena, zeroed
func (a *Arena) AllocFloats(n int) []float64 {
	if a.used+n > len(a.buf) {
		// Grow to at least double so repeated small allocations amortize
		newSize := len(a.buf) * 2
		if newSize < a.used+n {
			newSize = a.used + n
		}
		newBuf := make([]float64, newSize)
		copy(newBuf, a.buf[:a.used])
		a.buf = newBuf
	}

	s := a.buf[a.used : a.used+n : a.used+n]
	for i := range s {
		s[i] = 0
	}
	a.used += n
	return s
}

// Used returns the current high-water mark in float64 slots
func (a *Arena) Used() int {
	return a.used
}
