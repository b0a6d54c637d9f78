// Package octfused implements the eight-wide kernel with fused
// multiply-adds: every Horner step and the final exponent combine round
// once instead of twice. Results may differ from the non-fused kernel
// in the low mantissa bits but stay within the shared error bound.
package octfused

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
// 32-byte boundary. The portable body is shared with Transform; the
// entry point carries the contract for assembly-backed builds.
func TransformAligned(dst, src []float32) {
	transform(dst, src)
}

func transform(dst, src []float32) {
	if len(dst) != len(src) {
		panic("log2f: slice length mismatch")
	}

	n := len(src) &^ 7
	for i := 0; i < n; i += 8 {
		b0 := math.Float32bits(src[i])
		b1 := math.Float32bits(src[i+1])
		b2 := math.Float32bits(src[i+2])
		b3 := math.Float32bits(src[i+3])
		b4 := math.Float32bits(src[i+4])
		b5 := math.Float32bits(src[i+5])
		b6 := math.Float32bits(src[i+6])
		b7 := math.Float32bits(src[i+7])

		e0, m0 := poly.Decompose(b0)
		e1, m1 := poly.Decompose(b1)
		e2, m2 := poly.Decompose(b2)
		e3, m3 := poly.Decompose(b3)
		e4, m4 := poly.Decompose(b4)
		e5, m5 := poly.Decompose(b5)
		e6, m6 := poly.Decompose(b6)
		e7, m7 := poly.Decompose(b7)

		y0 := poly.FMA32(poly.Eval6Fused(m0), m0-1, e0)
		y1 := poly.FMA32(poly.Eval6Fused(m1), m1-1, e1)
		y2 := poly.FMA32(poly.Eval6Fused(m2), m2-1, e2)
		y3 := poly.FMA32(poly.Eval6Fused(m3), m3-1, e3)
		y4 := poly.FMA32(poly.Eval6Fused(m4), m4-1, e4)
		y5 := poly.FMA32(poly.Eval6Fused(m5), m5-1, e5)
		y6 := poly.FMA32(poly.Eval6Fused(m6), m6-1, e6)
		y7 := poly.FMA32(poly.Eval6Fused(m7), m7-1, e7)

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
		if poly.IsInfOrNaN(b4) {
			y4 = poly.SaturateInf(b4)
		}
		if poly.IsInfOrNaN(b5) {
			y5 = poly.SaturateInf(b5)
		}
		if poly.IsInfOrNaN(b6) {
			y6 = poly.SaturateInf(b6)
		}
		if poly.IsInfOrNaN(b7) {
			y7 = poly.SaturateInf(b7)
		}

		dst[i] = y0
		dst[i+1] = y1
		dst[i+2] = y2
		dst[i+3] = y3
		dst[i+4] = y4
		dst[i+5] = y5
		dst[i+6] = y6
		dst[i+7] = y7
	}

	scalar.Transform(dst[n:], src[n:], registry.SignPreserving)
}
