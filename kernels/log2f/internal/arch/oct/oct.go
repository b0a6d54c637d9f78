// Package oct implements the eight-wide polynomial kernel. The math is
// identical to the four-wide kernel; the wider group amortizes loop
// overhead on 256-bit capable hardware.
package oct

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

		y0 := e0 + poly.Eval6(m0)*(m0-1)
		y1 := e1 + poly.Eval6(m1)*(m1-1)
		y2 := e2 + poly.Eval6(m2)*(m2-1)
		y3 := e3 + poly.Eval6(m3)*(m3-1)
		y4 := e4 + poly.Eval6(m4)*(m4-1)
		y5 := e5 + poly.Eval6(m5)*(m5-1)
		y6 := e6 + poly.Eval6(m6)*(m6-1)
		y7 := e7 + poly.Eval6(m7)*(m7-1)

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
