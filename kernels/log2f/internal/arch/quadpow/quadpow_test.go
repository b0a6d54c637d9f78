package quadpow

import (
	"math"
	"testing"

	"github.com/arntercon/volk/internal/testutil"
	"github.com/arntercon/volk/kernels/log2f/internal/arch/registry"
	"github.com/arntercon/volk/kernels/log2f/internal/arch/scalar"
)

// maxRelErr is looser than the weighted kernels' bound: the direct fit
// carries a residual of a few microunits at significand 1, which turns
// into a relative error of order 1e-3 just above each power of two.
// Where log2 itself vanishes the absolute bound applies instead; it is
// also looser than the weighted kernels' because the power-basis
// summation walks partial sums an order of magnitude larger than the
// result before they cancel.
const (
	maxRelErr = 5e-3
	maxAbsErr = 2e-5
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

func TestTransformPowersOfTwoNear(t *testing.T) {
	// No (m-1) weighting, so powers of two come out within the fit's
	// m = 1 residual of their integer logarithm, not exactly on it.
	for k := -126; k <= 126; k++ {
		src := []float32{float32(math.Ldexp(1, k)), 1, 1, 1}
		dst := make([]float32, 4)
		Transform(dst, src)
		if diff := math.Abs(float64(dst[0]) - float64(k)); diff > 1e-5 {
			t.Fatalf("Transform(2^%d) = %v, want %d within 1e-5", k, dst[0], k)
		}
	}
}

func TestTransformKnownValues(t *testing.T) {
	src := []float32{1, 2, 4, 1024, 0.5}
	dst := make([]float32, len(src))
	Transform(dst, src)

	want := []float32{0, 1, 2, 10, -1}
	testutil.RequireSliceNearlyEqual(t, dst, want, 1e-4)
}

func TestTransformTailMatchesScalar(t *testing.T) {
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

	src := []float32{posInf, negInf, 2, posInf, negInf, posInf}
	dst := make([]float32, len(src))
	Transform(dst, src)

	for _, i := range []int{0, 3, 5} {
		if dst[i] != 127 {
			t.Errorf("dst[%d] = %v, want 127", i, dst[i])
		}
	}
	for _, i := range []int{1, 4} {
		if dst[i] != -127 {
			t.Errorf("dst[%d] = %v, want -127", i, dst[i])
		}
	}
	if diff := math.Abs(float64(dst[2]) - 1); diff > 1e-5 {
		t.Errorf("dst[2] = %v, want 1 within 1e-5", dst[2])
	}
}

func TestTransformLengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on length mismatch")
		}
	}()
	Transform(make([]float32, 4), make([]float32, 5))
}
