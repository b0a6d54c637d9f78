// Package buffer provides a reusable float32 buffer type with optional
// alignment guarantees, plus a pool for allocation-friendly processing.
// All kernels accept raw []float32 slices; Buffer is an optional
// convenience that helps callers manage allocation, alignment, and reuse
// in hot paths. Buffers created with NewAligned (and pooled buffers) start
// on an address boundary that satisfies every registered kernel variant.
package buffer
