// Package quadpow implements the four-wide direct-polynomial kernel.
// Unlike the Horner kernels it approximates log2(m) with a power-basis
// polynomial added straight to the exponent, with no (m-1) weighting,
// and builds the significand by fixed-point integer conversion. The fit
// carries a small residual at m = 1, so exact powers of two come out a
// few microunits off their integer logarithm.
package quadpow

import (
	"math"

	"github.com/arntercon/volk/kernels/log2f/internal/arch/registry"
	"github.com/arntercon/volk/kernels/log2f/internal/arch/scalar"
	"github.com/arntercon/volk/kernels/log2f/internal/poly"
)

// Transform applies the kernel. There is no separate aligned entry
// point; the lane layout this kernel inherits never distinguished
// alignment modes.
func Transform(dst, src []float32) {
	if len(dst) != len(src) {
		panic("log2f: slice length mismatch")
	}

	n := len(src) &^ 3
	for i := 0; i < n; i += 4 {
		b0 := math.Float32bits(src[i])
		b1 := math.Float32bits(src[i+1])
		b2 := math.Float32bits(src[i+2])
		b3 := math.Float32bits(src[i+3])

		y0 := poly.EvalDirect(poly.Exponent(b0), poly.DirectSignificand(b0))
		y1 := poly.EvalDirect(poly.Exponent(b1), poly.DirectSignificand(b1))
		y2 := poly.EvalDirect(poly.Exponent(b2), poly.DirectSignificand(b2))
		y3 := poly.EvalDirect(poly.Exponent(b3), poly.DirectSignificand(b3))

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
