package buffer

// Buffer wraps a float32 slice with reuse-friendly semantics.
// Kernels accept raw []float32; use Samples() to bridge.
type Buffer struct {
	samples []float32

	// align is the byte alignment the backing array is guaranteed to keep
	// across Grow and Resize. Zero means no guarantee beyond Go's own.
	align int
}

// New returns a zero-filled Buffer of the given length with no alignment
// guarantee beyond what the runtime provides.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float32, length)}
}

// NewAligned returns a zero-filled Buffer of the given length whose first
// sample sits on an address that is a multiple of align bytes. align must
// be a power of two and a multiple of 4; NewAligned panics otherwise.
// The guarantee survives Grow and Resize.
func NewAligned(length, align int) *Buffer {
	if length < 0 {
		length = 0
	}
	if align < 4 || align&(align-1) != 0 {
		panic("buffer: alignment must be a power of two and a multiple of 4")
	}
	return &Buffer{samples: alignedSlice(length, align), align: align}
}

// FromSlice wraps an existing slice without copying.
// Mutations to the slice are visible through the Buffer and vice versa.
func FromSlice(s []float32) *Buffer {
	return &Buffer{samples: s}
}

// Samples returns the underlying slice.
func (b *Buffer) Samples() []float32 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.samples)
}

// Align returns the byte alignment the buffer guarantees, or 0 if it
// carries no guarantee.
func (b *Buffer) Align() int {
	return b.align
}

// Grow ensures capacity is at least n, preserving existing data and the
// buffer's alignment guarantee. If the current capacity is already >= n
// this is a no-op.
func (b *Buffer) Grow(n int) {
	if n <= cap(b.samples) {
		return
	}
	grown := b.allocate(n)[:len(b.samples)]
	copy(grown, b.samples)
	b.samples = grown
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed. A reallocation
// keeps the buffer's alignment guarantee.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := b.allocate(n)
		copy(s, b.samples)
		b.samples = s
	}
	// Zero any newly exposed elements that may have stale data from
	// previous use of the backing array.
	if n > oldLen {
		for i := oldLen; i < n; i++ {
			b.samples[i] = 0
		}
	}
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	for i := range b.samples {
		b.samples[i] = 0
	}
}

// ZeroRange sets samples in [start, end) to 0.
// Indices are clamped to valid bounds.
func (b *Buffer) ZeroRange(start, end int) {
	if start < 0 {
		start = 0
	}
	if end > len(b.samples) {
		end = len(b.samples)
	}
	for i := start; i < end; i++ {
		b.samples[i] = 0
	}
}

// Copy returns a deep copy of the buffer, including its alignment
// guarantee.
func (b *Buffer) Copy() *Buffer {
	s := b.allocate(len(b.samples))
	copy(s, b.samples)
	return &Buffer{samples: s, align: b.align}
}

// allocate returns a fresh zeroed slice of the given length honoring the
// buffer's alignment guarantee.
func (b *Buffer) allocate(n int) []float32 {
	if b.align > 0 {
		return alignedSlice(n, b.align)
	}
	return make([]float32, n)
}
