package testutil

import (
	"math"
	"math/rand"
)

// MantissaSweep generates the standard accuracy grid for logarithm
// kernels: for every binary exponent k in [kMin, kMax] it emits steps
// values 2^k * (1 + i/steps), i in [0, steps), walking the significand
// range of each binade.
func MantissaSweep(kMin, kMax, steps int) []float32 {
	if kMax < kMin || steps <= 0 {
		return nil
	}
	out := make([]float32, 0, (kMax-kMin+1)*steps)
	for k := kMin; k <= kMax; k++ {
		base := math.Ldexp(1, k)
		for i := 0; i < steps; i++ {
			out = append(out, float32(base*(1+float64(i)/float64(steps))))
		}
	}
	return out
}

// PositiveNoise generates uniformly distributed values in (0, amplitude]
// with a fixed seed for reproducibility. Suitable as logarithm input.
func PositiveNoise(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((1 - rng.Float64()) * amplitude)
	}
	return out
}

// DeterministicSine generates a deterministic sine wave.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return out
}

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float32 {
	out := make([]float32, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = float32((rng.Float64()*2 - 1) * amplitude)
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float32 {
	out := make([]float32, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float32, length int) []float32 {
	out := make([]float32, length)
	for i := range out {
		out[i] = value
	}
	return out
}
