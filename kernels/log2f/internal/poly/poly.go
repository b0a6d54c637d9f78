// Package poly holds the bit-level decomposition helpers and minimax
// polynomial tables shared by the log2 kernel variants.
//
// A single precision float is represented as (-1)^sign * 2^exp * 1.sig,
// so log2(x) for positive x splits into the unbiased exponent plus a
// polynomial approximation of log2 over the significand range [1, 2).
package poly

import "math"

// IEEE-754 binary32 field masks.
const (
	SignMask        uint32 = 0x80000000
	ExponentMask    uint32 = 0x7f800000
	SignificandMask uint32 = 0x007fffff

	// HiddenBit is the implicit leading significand bit of a normal float.
	HiddenBit uint32 = 0x00800000

	// OneBits is the bit pattern of float32(1.0). OR-ing it over the
	// significand forces the exponent field to the bias, mapping any
	// normal input onto [1, 2) without changing its significand.
	OneBits uint32 = 0x3f800000

	// ExponentBias is the binary32 exponent bias.
	ExponentBias = 127
)

// SaturationLimit is the magnitude substituted for infinite results.
// It equals the largest finite binary32 exponent, so every representable
// finite input maps strictly inside (-SaturationLimit-23, SaturationLimit].
const SaturationLimit float32 = 127.0

// Weighted Horner coefficients of the default fit: log2(m) is
// approximated as P(m)*(m-1) with P the degree-6 minimax polynomial
// below, constant term first.
const (
	C0 float32 = 3.1157899
	C1 float32 = -3.3241990
	C2 float32 = 2.5988452
	C3 float32 = -1.2315303
	C4 float32 = 3.1821337e-1
	C5 float32 = -3.4436006e-2
)

// Direct-form coefficients: log2(m) approximated as Q0 + Q1*m + ... +
// Q6*m^6 without the (m-1) weighting. This fit trades a seventh term
// for skipping the subtraction, matching the lane layout of the
// four-wide direct kernel.
const (
	Q0 float32 = -3.0400402727048585
	Q1 float32 = 6.1129631282966113
	Q2 float32 = -5.3419892024633207
	Q3 float32 = 3.2865287703753912
	Q4 float32 = -1.2669182593441635
	Q5 float32 = 0.2751487703421256
	Q6 float32 = -0.0256910888150985
)

// DefaultDegree is the coefficient count of the production fit.
const DefaultDegree = 6

// Weighted-fit coefficient tables by degree (coefficient count),
// constant term first. Lower degrees trade accuracy for two fewer
// multiply-adds per lane and are kept for experiments and tooling.
var (
	Coeffs3 = []float32{2.28330284476918490682, -1.04913055217340124191, 0.204446009836232697516}
	Coeffs4 = []float32{2.61761038894603480148, -1.75647175389045657003, 0.688243882994381274313, -0.107254423828329604454}
	Coeffs5 = []float32{2.8882704548164776201, -2.52074962577807006663, 1.48116647521213171641, -0.465725644288844778798, 0.0596515482674574969533}
	Coeffs6 = []float32{C0, C1, C2, C3, C4, C5}
)

// Table returns the weighted-fit coefficient table for the given degree,
// or false if no table exists for it.
func Table(degree int) ([]float32, bool) {
	switch degree {
	case 3:
		return Coeffs3, true
	case 4:
		return Coeffs4, true
	case 5:
		return Coeffs5, true
	case 6:
		return Coeffs6, true
	default:
		return nil, false
	}
}

// Exponent extracts the unbiased exponent of a bit pattern as float32.
func Exponent(bits uint32) float32 {
	return float32(int32((bits>>23)&0xff) - ExponentBias)
}

// Decompose splits the bit pattern of a positive float into its unbiased
// exponent (as float32) and its significand mapped onto [1, 2).
func Decompose(bits uint32) (e, m float32) {
	e = Exponent(bits)
	m = math.Float32frombits(bits&SignificandMask | OneBits)
	return e, m
}

// DirectSignificand converts the significand to [1, 2) by fixed-point
// integer conversion instead of bit masking: (sig | hidden) * 2^-23.
// The result is bit-identical to the Decompose significand; the form
// mirrors the direct kernel's integer-lane heritage.
func DirectSignificand(bits uint32) float32 {
	return float32(int32(bits&SignificandMask|HiddenBit)) * (1.0 / (1 << 23))
}

// IsInfOrNaN reports whether the bit pattern has a full exponent field,
// i.e. encodes an infinity or NaN.
func IsInfOrNaN(bits uint32) bool {
	return bits&ExponentMask == ExponentMask
}

// SaturateInf returns the sign-preserving saturation value for an
// exceptional input lane: -SaturationLimit for negative bit patterns,
// +SaturationLimit otherwise.
func SaturateInf(bits uint32) float32 {
	if bits&SignMask != 0 {
		return -SaturationLimit
	}
	return SaturationLimit
}

// Eval6 evaluates the default degree-6 polynomial at m by Horner's rule.
func Eval6(m float32) float32 {
	p := C5
	p = p*m + C4
	p = p*m + C3
	p = p*m + C2
	p = p*m + C1
	p = p*m + C0
	return p
}

// Eval6Fused evaluates the default degree-6 polynomial with a fused
// multiply-add at every step.
func Eval6Fused(m float32) float32 {
	p := FMA32(C5, m, C4)
	p = FMA32(p, m, C3)
	p = FMA32(p, m, C2)
	p = FMA32(p, m, C1)
	p = FMA32(p, m, C0)
	return p
}

// Eval evaluates an arbitrary coefficient table (constant term first) at
// m by Horner's rule. Used by tooling and tests; the kernels inline
// their fixed-degree chains.
func Eval(m float32, coeffs []float32) float32 {
	var p float32
	for i := len(coeffs) - 1; i >= 0; i-- {
		p = p*m + coeffs[i]
	}
	return p
}

// EvalDirect evaluates the direct-form fit and adds the unbiased
// exponent, preserving the reference summation order: the exponent and
// constant term first, then one power term at a time with the powers
// built by pairwise products.
func EvalDirect(e, m float32) float32 {
	y := e + Q0
	y += Q1 * m
	m2 := m * m
	y += Q2 * m2
	m3 := m2 * m
	y += Q3 * m3
	m4 := m2 * m2
	y += Q4 * m4
	m5 := m3 * m2
	y += Q5 * m5
	m6 := m3 * m3
	y += Q6 * m6
	return y
}

// FMA32 returns a*b+c computed via the float64 fused multiply-add. The
// float32 products are exact in float64, so this matches a hardware
// single-precision FMA up to the final rounding.
func FMA32(a, b, c float32) float32 {
	return float32(math.FMA(float64(a), float64(b), float64(c)))
}
