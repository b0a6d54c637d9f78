// Package scalar implements the exact reference kernel: log2 through the
// platform primitive, with selectable infinity saturation. Every vector
// variant completes its tail through this kernel, and it doubles as the
// registered fallback on hardware without a vector implementation.
package scalar

import (
	"math"

	"github.com/arntercon/volk/kernels/log2f/internal/arch/registry"
	"github.com/arntercon/volk/kernels/log2f/internal/poly"
)

// Log2 computes log2(x) rounded to float32, saturating infinite results
// per the policy. A -Inf input counts as a negative infinite result and
// saturates negative under both policies. Negative finite and NaN inputs
// yield NaN.
func Log2(x float32, pol registry.Policy) float32 {
	if math.IsInf(float64(x), -1) {
		return -poly.SaturationLimit
	}
	r := float32(math.Log2(float64(x)))
	if !math.IsInf(float64(r), 0) {
		return r
	}
	if pol == registry.SignCollapsing {
		return -poly.SaturationLimit
	}
	return float32(math.Copysign(float64(poly.SaturationLimit), float64(r)))
}

// Transform applies the reference kernel elementwise. dst and src must
// have equal length and may alias.
func Transform(dst, src []float32, pol registry.Policy) {
	if len(dst) != len(src) {
		panic("log2f: slice length mismatch")
	}
	for i, x := range src {
		dst[i] = Log2(x, pol)
	}
}
