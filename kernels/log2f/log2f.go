package log2f

import (
	"sync"

	"github.com/arntercon/volk/buffer"
	"github.com/arntercon/volk/internal/cpu"
	"github.com/arntercon/volk/kernels/log2f/internal/arch/registry"
	"github.com/arntercon/volk/kernels/log2f/internal/arch/scalar"
	"github.com/arntercon/volk/kernels/log2f/internal/poly"
)

// Policy selects how infinite results are saturated.
type Policy = registry.Policy

// Saturation policies. See the package documentation for the history
// behind keeping both.
const (
	// SaturateSignPreserving maps an infinite result to ±SaturationLimit,
	// keeping its sign.
	SaturateSignPreserving = registry.SignPreserving

	// SaturateSignCollapsing maps every infinite result to
	// -SaturationLimit.
	SaturateSignCollapsing = registry.SignCollapsing
)

// SaturationLimit is the magnitude substituted for infinite results.
const SaturationLimit float32 = poly.SaturationLimit

var (
	selectedEntry *registry.OpEntry
	selectedOnce  sync.Once
)

func initKernel() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("log2f: no transform kernel registered (missing scalar fallback?)")
	}
	selectedEntry = entry
}

// Transform writes dst[i] ≈ log2(src[i]) for every index using the best
// kernel registered for the host CPU. Both slices must have the same
// length; a mismatch panics. dst may alias src for in-place operation.
// The aligned entry point is used when both slices start on the
// kernel's width×4 byte boundary.
//
// Inputs are expected finite and non-negative. Zero and subnormal
// values are legal (zero saturates to -SaturationLimit); negative and
// NaN inputs yield unspecified results.
func Transform(dst, src []float32) {
	selectedOnce.Do(initKernel)

	entry := selectedEntry
	align := entry.Width * 4
	if buffer.IsAligned(dst, align) && buffer.IsAligned(src, align) {
		entry.TransformAligned(dst, src)
		return
	}
	entry.Transform(dst, src)
}

// Scalar applies the exact reference kernel elementwise with the given
// saturation policy. It is the correctness oracle for the vector
// kernels and the terminal fallback on hardware without one. dst may
// alias src; lengths must match.
func Scalar(dst, src []float32, pol Policy) {
	scalar.Transform(dst, src, pol)
}

// Log2 computes the exact log2(x) rounded to float32, saturating an
// infinite result per the policy.
func Log2(x float32, pol Policy) float32 {
	return scalar.Log2(x, pol)
}

// Variant describes one registered kernel implementation. The function
// fields let a capability-aware caller bypass the automatic dispatch;
// TransformAligned requires both slices on a Width×4 byte boundary.
type Variant struct {
	Name       string
	Level      string
	Width      int
	Fused      bool
	Saturation Policy
	Priority   int

	Transform        func(dst, src []float32)
	TransformAligned func(dst, src []float32)
}

func variantFromEntry(entry *registry.OpEntry) Variant {
	return Variant{
		Name:             entry.Name,
		Level:            entry.SIMDLevel.String(),
		Width:            entry.Width,
		Fused:            entry.Fused,
		Saturation:       entry.Saturation,
		Priority:         entry.Priority,
		Transform:        entry.Transform,
		TransformAligned: entry.TransformAligned,
	}
}

// Variants returns the kernels registered for this build, in priority
// order (highest first).
func Variants() []Variant {
	entries := registry.Global.ListEntries()
	out := make([]Variant, 0, len(entries))
	for i := range entries {
		out = append(out, variantFromEntry(&entries[i]))
	}
	return out
}

// Selected returns the kernel Transform dispatches to on this host.
func Selected() Variant {
	selectedOnce.Do(initKernel)
	return variantFromEntry(selectedEntry)
}
