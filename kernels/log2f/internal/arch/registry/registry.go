// Package registry stores the available log2 transform implementations
// and selects among them by CPU capability and priority.
package registry

import (
	"sync"

	"github.com/arntercon/volk/internal/cpu"
)

// Policy selects how infinite results are saturated.
type Policy int

const (
	// SignPreserving maps an infinite result to ±SaturationLimit,
	// keeping its sign.
	SignPreserving Policy = iota

	// SignCollapsing maps every infinite result to -SaturationLimit.
	SignCollapsing
)

// String returns the policy name used in diagnostics and tooling.
func (p Policy) String() string {
	switch p {
	case SignPreserving:
		return "sign-preserving"
	case SignCollapsing:
		return "sign-collapsing"
	default:
		return "unknown"
	}
}

// TransformFn writes dst[i] = log2(src[i]) for equal-length slices.
type TransformFn func(dst, src []float32)

// OpEntry is one registered transform implementation.
type OpEntry struct {
	Name      string
	SIMDLevel cpu.SIMDLevel
	Priority  int

	// Width is the number of lanes one vector group processes; 1 for
	// the scalar kernel. The aligned entry point requires both slices
	// on a Width*4 byte boundary.
	Width int

	// Fused marks implementations evaluating the polynomial with fused
	// multiply-adds.
	Fused bool

	// Saturation is the policy the implementation applies to infinite
	// results, including on its scalar tail.
	Saturation Policy

	// Transform has no alignment requirement. TransformAligned assumes
	// both slices are Width*4 byte aligned; the portable bodies share
	// one implementation, so the distinction is contractual.
	Transform        TransformFn
	TransformAligned TransformFn
}

// OpRegistry stores available implementations.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool
}

// Global is the default transform registry.
var Global = &OpRegistry{}

// Register adds an implementation entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup returns the highest-priority implementation supported by features.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return entry
		}
	}

	return nil
}

func (r *OpRegistry) sortByPriority() {
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of the registered entries, sorted by
// priority (highest first).
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all entries. Intended for tests.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
