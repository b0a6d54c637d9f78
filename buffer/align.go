package buffer

import "unsafe"

// DefaultAlignment is the preferred byte alignment for kernel input and
// output buffers. 32 bytes covers the widest registered kernel (8 lanes
// of float32), so a buffer aligned to it satisfies every variant's
// aligned entry point.
const DefaultAlignment = 32

// Alignment returns the preferred byte alignment for kernel buffers.
func Alignment() int {
	return DefaultAlignment
}

// IsAligned reports whether the first element of s sits on an address
// that is a multiple of align bytes. Empty slices and alignments <= 4
// are trivially aligned.
func IsAligned(s []float32, align int) bool {
	if align <= 4 || len(s) == 0 {
		return true
	}
	addr := uintptr(unsafe.Pointer(unsafe.SliceData(s)))
	return addr&uintptr(align-1) == 0
}

// alignedSlice returns a zeroed slice of the given length whose first
// element is align-byte aligned. It over-allocates by one alignment unit
// and offsets into the backing array; the returned slice's capacity is
// clamped so appends cannot escape the aligned region.
func alignedSlice(length, align int) []float32 {
	pad := align / 4
	raw := make([]float32, length+pad)
	off := 0
	if align > 4 {
		addr := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
		if rem := int(addr & uintptr(align-1)); rem != 0 {
			off = (align - rem) / 4
		}
	}
	return raw[off : off+length : off+length]
}
