package quad

import (
	"math"
	"testing"

	"github.com/arntercon/volk/internal/testutil"
	"github.com/arntercon/volk/kernels/log2f/internal/arch/registry"
	"github.com/arntercon/volk/kernels/log2f/internal/arch/scalar"
)

// Empirical bounds of the weighted degree-6 fit. The (m-1) weighting
// pins the error to zero at significand 1, so the relative error stays
// tight just above each power of two; just below one (m → 2 with
// exponent -1) log2 itself vanishes while the fit error does not, so
// that region is held to an absolute bound instead.
const (
	maxRelErr = 1e-4
	maxAbsErr = 1e-5
)

func TestTransformAccuracySweep(t *testing.T) {
	src := testutil.MantissaSweep(-30, 30, 1000)
	dst := make([]float32, len(src))
	Transform(dst, src)

	for i, x := range src {
		want := math.Log2(float64(x))
		abs := math.Abs(float64(dst[i]) - want)
		if abs <= maxAbsErr {
			continue
		}
		rel := abs / math.Abs(want)
		if rel > maxRelErr {
			t.Fatalf("x=%v: got %v, want %v (abs err %v, rel err %v)", x, dst[i], want, abs, rel)
		}
	}
}

func TestTransformAbsoluteErrorNearOne(t *testing.T) {
	// The binade below 1: x ∈ [0.5, 1). Near its top the exact log2
	// approaches zero, so only the absolute error is meaningful there.
	src := testutil.MantissaSweep(-1, -1, 4096)
	dst := make([]float32, len(src))
	Transform(dst, src)

	for i, x := range src {
		want := math.Log2(float64(x))
		if abs := math.Abs(float64(dst[i]) - want); abs > maxAbsErr {
			t.Fatalf("x=%v: got %v, want %v (abs err %v)", x, dst[i], want, abs)
		}
	}
}

func TestTransformPowersOfTwoExact(t *testing.T) {
	// The weighted form multiplies the polynomial by (m-1), which is
	// exactly zero at every power of two in the normal range.
	for k := -126; k <= 127; k++ {
		src := []float32{float32(math.Ldexp(1, k)), 1, 1, 1}
		dst := make([]float32, 4)
		Transform(dst, src)
		if dst[0] != float32(k) {
			t.Fatalf("Transform(2^%d) = %v, want %d", k, dst[0], k)
		}
	}
}

func TestTransformKnownValues(t *testing.T) {
	src := []float32{1, 2, 4, 1024, 0.5}
	dst := make([]float32, len(src))
	Transform(dst, src)

	want := []float32{0, 1, 2, 10, -1}
	testutil.RequireSliceNearlyEqual(t, dst, want, 1e-5)
}

func TestTransformTailMatchesScalar(t *testing.T) {
	// Elements past the last full group of four must be bit-identical
	// to the scalar reference on the same tail slice.
	for n := 0; n <= 13; n++ {
		src := testutil.PositiveNoise(int64(n+1), 100, n)
		dst := make([]float32, n)
		Transform(dst, src)

		tail := n &^ 3
		ref := make([]float32, n-tail)
		scalar.Transform(ref, src[tail:], registry.SignPreserving)
		testutil.RequireSliceBitIdentical(t, dst[tail:], ref)
	}
}

func TestTransformSaturatesInfinities(t *testing.T) {
	posInf := float32(math.Inf(1))
	negInf := float32(math.Inf(-1))

	// One group of four plus a tail of two, both containing infinities,
	// so the vector body and the scalar tail are covered.
	src := []float32{posInf, negInf, 2, posInf, negInf, posInf}
	dst := make([]float32, len(src))
	Transform(dst, src)

	want := []float32{127, -127, 1, 127, -127, 127}
	testutil.RequireSliceBitIdentical(t, dst, want)
}

func TestTransformAlignedBitIdentical(t *testing.T) {
	src := testutil.PositiveNoise(7, 1e6, 257)
	dst := make([]float32, len(src))
	dstAligned := make([]float32, len(src))

	Transform(dst, src)
	TransformAligned(dstAligned, src)
	testutil.RequireSliceBitIdentical(t, dstAligned, dst)
}

func TestTransformInPlace(t *testing.T) {
	buf := []float32{1, 8, 0.25, 2, 64}
	Transform(buf, buf)

	want := []float32{0, 3, -2, 1, 6}
	testutil.RequireSliceNearlyEqual(t, buf, want, 1e-5)
}

func TestTransformLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	Transform(make([]float32, 4), make([]float32, 5))
}
