// Package quad implements the four-wide polynomial kernel. Each group of
// four lanes splits the inputs into exponent and significand, runs the
// degree-6 Horner chain, and recombines as e + P(m)*(m-1). Exceptional
// lanes (full exponent field) saturate sign-preservingly; the tail goes
// through the scalar kernel with the same policy.
package quad

import (
	"math"

	"github.com/arntercon/volk/kernels/log2f/internal/arch/registry"
	"github.com/arntercon/volk/kernels/log2f/internal/arch/scalar"
	"github.com/arntercon/volk/kernels/log2f/internal/poly"
)

// Transform applies the kernel with no alignment requirement.
func Transform(dst, src []float32) {
	transform(dst, src)
}

// TransformAligned applies the kernel assuming both slices start on a
// 16-byte boundary. The portable body is shared with Transform; the
// entry point carries the contract for assembly-backed builds.
func TransformAligned(dst, src []float32) {
	transform(dst, src)
}

func transform(dst, src []float32) {
	if len(dst) != len(src) {
		panic("log2f: slice length mismatch")
	}

	n := len(src) &^ 3
	for i := 0; i < n; i += 4 {
		b0 := math.Float32bits(src[i])
		b1 := math.Float32bits(src[i+1])
		b2 := math.Float32bits(src[i+2])
		b3 := math.Float32bits(src[i+3])

		e0, m0 := poly.Decompose(b0)
		e1, m1 := poly.Decompose(b1)
		e2, m2 := poly.Decompose(b2)
		e3, m3 := poly.Decompose(b3)

		y0 := e0 + poly.Eval6(m0)*(m0-1)
		y1 := e1 + poly.Eval6(m1)*(m1-1)
		y2 := e2 + poly.Eval6(m2)*(m2-1)
		y3 := e3 + poly.Eval6(m3)*(m3-1)

		if poly.IsInfOrNaN(b0) {
			y0 = poly.SaturateInf(b0)
		}
		if poly.IsInfOrNaN(b1) {
			y1 = poly.SaturateInf(b1)
		}
		if poly.IsInfOrNaN(b2) {
			y2 = poly.SaturateInf(b2)
		}
		if poly.IsInfOrNaN(b3) {
			y3 = poly.SaturateInf(b3)
		}

		dst[i] = y0
		dst[i+1] = y1
		dst[i+2] = y2
		dst[i+3] = y3
	}

	scalar.Transform(dst[n:], src[n:], registry.SignPreserving)
}
