package poly

import (
	"math"
	"math/rand"
	"testing"
)

func TestDecomposeKnownValues(t *testing.T) {
	tests := []struct {
		name  string
		x     float32
		wantE float32
		wantM float32
	}{
		{"one", 1.0, 0, 1.0},
		{"two", 2.0, 1, 1.0},
		{"three", 3.0, 1, 1.5},
		{"three eighths", 0.375, -2, 1.5},
		{"smallest normal", math.Float32frombits(0x00800000), -126, 1.0},
		{"largest finite", math.MaxFloat32, 127, 2 - 1.0/(1<<23)},
		{"zero", 0, -127, 1.0},
		{"smallest subnormal", math.Float32frombits(1), -127, 1 + 1.0/(1<<23)},
	}
	for _, tt := range tests {
		e, m := Decompose(math.Float32bits(tt.x))
		if e != tt.wantE || m != tt.wantM {
			t.Errorf("%s: Decompose(%v) = (%v, %v), want (%v, %v)",
				tt.name, tt.x, e, m, tt.wantE, tt.wantM)
		}
	}
}

func TestDecomposeReconstructs(t *testing.T) {
	// For every normal positive x, x == m * 2^e must hold exactly.
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		bits := rng.Uint32() & ^SignMask
		if bits&ExponentMask == 0 || IsInfOrNaN(bits) {
			continue
		}
		x := math.Float32frombits(bits)
		e, m := Decompose(bits)
		back := float32(float64(m) * math.Ldexp(1, int(e)))
		if back != x {
			t.Fatalf("bits 0x%08x: m*2^e = %v, want %v (e=%v m=%v)", bits, back, x, e, m)
		}
	}
}

func TestDirectSignificandMatchesDecompose(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 1000; i++ {
		bits := rng.Uint32()
		_, m := Decompose(bits)
		if got := DirectSignificand(bits); got != m {
			t.Fatalf("bits 0x%08x: DirectSignificand = %v, Decompose m = %v", bits, got, m)
		}
	}
}

func TestTableDegrees(t *testing.T) {
	for degree := 3; degree <= 6; degree++ {
		coeffs, ok := Table(degree)
		if !ok {
			t.Fatalf("Table(%d) missing", degree)
		}
		if len(coeffs) != degree {
			t.Fatalf("Table(%d) has %d coefficients", degree, len(coeffs))
		}
	}
	for _, degree := range []int{0, 1, 2, 7, -1} {
		if _, ok := Table(degree); ok {
			t.Fatalf("Table(%d) should not exist", degree)
		}
	}
	if _, ok := Table(DefaultDegree); !ok {
		t.Fatal("default degree has no table")
	}
}

func TestEval6MatchesGenericEval(t *testing.T) {
	// Eval6 inlines the same Horner chain Eval walks, so the results
	// must be bit-identical.
	for m := float32(1); m < 2; m += 1.0 / 128 {
		if Eval6(m) != Eval(m, Coeffs6) {
			t.Fatalf("m=%v: Eval6 = %v, Eval = %v", m, Eval6(m), Eval(m, Coeffs6))
		}
	}
}

func TestEval6FusedNearPlain(t *testing.T) {
	for m := float32(1); m < 2; m += 1.0 / 1024 {
		plain := float64(Eval6(m))
		fused := float64(Eval6Fused(m))
		if math.Abs(plain-fused) > 1e-5 {
			t.Fatalf("m=%v: plain %v vs fused %v", m, plain, fused)
		}
	}
}

func TestWeightedFitAccuracy(t *testing.T) {
	// Approximation error of P(m)*(m-1) against log2(m) over [1, 2),
	// per degree. Higher degrees must not be worse than lower ones.
	bounds := map[int]float64{3: 2e-2, 4: 4e-3, 5: 1e-3, 6: 5e-4}
	prev := math.Inf(1)
	for degree := 3; degree <= 6; degree++ {
		coeffs, _ := Table(degree)
		maxErr := 0.0
		for i := 0; i < 4096; i++ {
			m := 1 + float32(i)/4096
			got := float64(Eval(m, coeffs) * (m - 1))
			want := math.Log2(float64(m))
			if d := math.Abs(got - want); d > maxErr {
				maxErr = d
			}
		}
		if maxErr > bounds[degree] {
			t.Errorf("degree %d: max error %v exceeds %v", degree, maxErr, bounds[degree])
		}
		if maxErr > prev*1.5 {
			t.Errorf("degree %d: max error %v worse than degree %d (%v)", degree, maxErr, degree-1, prev)
		}
		prev = maxErr
	}
}

func TestDirectFitAccuracy(t *testing.T) {
	maxErr := 0.0
	for i := 0; i < 4096; i++ {
		m := 1 + float32(i)/4096
		got := float64(EvalDirect(0, m))
		want := math.Log2(float64(m))
		if d := math.Abs(got - want); d > maxErr {
			maxErr = d
		}
	}
	if maxErr > 1e-3 {
		t.Errorf("direct fit max error %v exceeds 1e-3", maxErr)
	}
}

func TestEvalDirectAddsExponent(t *testing.T) {
	// Shifting the exponent by whole steps must shift the result by the
	// same amount up to float32 rounding of the additions.
	for _, e := range []float32{-10, -1, 0, 1, 10, 100} {
		base := EvalDirect(0, 1.5)
		shifted := EvalDirect(e, 1.5)
		if d := math.Abs(float64(shifted - base - e)); d > 1e-4 {
			t.Errorf("e=%v: EvalDirect shift off by %v", e, d)
		}
	}
}

func TestSaturateInf(t *testing.T) {
	if got := SaturateInf(math.Float32bits(float32(math.Inf(1)))); got != SaturationLimit {
		t.Fatalf("+Inf: got %v, want %v", got, SaturationLimit)
	}
	if got := SaturateInf(math.Float32bits(float32(math.Inf(-1)))); got != -SaturationLimit {
		t.Fatalf("-Inf: got %v, want %v", got, -SaturationLimit)
	}
}

func TestIsInfOrNaN(t *testing.T) {
	tests := []struct {
		x    float32
		want bool
	}{
		{float32(math.Inf(1)), true},
		{float32(math.Inf(-1)), true},
		{float32(math.NaN()), true},
		{0, false},
		{1, false},
		{math.MaxFloat32, false},
		{math.Float32frombits(1), false},
	}
	for _, tt := range tests {
		if got := IsInfOrNaN(math.Float32bits(tt.x)); got != tt.want {
			t.Errorf("IsInfOrNaN(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestFMA32ExactCases(t *testing.T) {
	// A zero multiplier must pass the addend through untouched.
	if got := FMA32(42, 0, 1.25); got != 1.25 {
		t.Fatalf("FMA32(42, 0, 1.25) = %v, want 1.25", got)
	}
	// Exact products stay exact.
	if got := FMA32(3, 4, 5); got != 17 {
		t.Fatalf("FMA32(3, 4, 5) = %v, want 17", got)
	}
}
