package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	vecmath "github.com/cwbudde/algo-vecmath"

	"github.com/arntercon/volk/kernels/log2f"
)

// MinDB is the floor applied to dB bins. Zero-power bins clamp here.
const MinDB = -130.0

// dbPerLog2 converts a base-2 logarithm of a power ratio to decibels:
// 10·log10(2).
const dbPerLog2 = 3.0102999566398120

// Analyzer computes one-sided power spectra for frames of a fixed
// power-of-two size.
type Analyzer struct {
	size   int
	win    []float64
	winSum float64
	plan   *algofft.Plan[complex128]

	in, out []complex128
	re, im  []float64
	pow     []float64
	pow32   []float32
}

// New returns an Analyzer for frames of fftSize samples. fftSize must
// be a power of two and at least 2.
func New(fftSize int) (*Analyzer, error) {
	if fftSize < 2 || fftSize&(fftSize-1) != 0 {
		return nil, fmt.Errorf("spectrum: fft size must be a power of two >= 2: %d", fftSize)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrum: init fft plan: %w", err)
	}

	// Periodic Hann, the analysis form: w[i] = 0.5·(1 − cos(2πi/N)).
	win := make([]float64, fftSize)
	sum := 0.0
	for i := range win {
		w := 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(fftSize)))
		win[i] = w
		sum += w
	}

	bins := fftSize/2 + 1
	return &Analyzer{
		size:   fftSize,
		win:    win,
		winSum: sum,
		plan:   plan,
		in:     make([]complex128, fftSize),
		out:    make([]complex128, fftSize),
		re:     make([]float64, bins),
		im:     make([]float64, bins),
		pow:    make([]float64, bins),
		pow32:  make([]float32, bins),
	}, nil
}

// Size returns the frame length the Analyzer was built for.
func (a *Analyzer) Size() int {
	return a.size
}

// Bins returns the number of one-sided spectrum bins, Size()/2+1.
func (a *Analyzer) Bins() int {
	return a.size/2 + 1
}

// powerBins windows the frame, transforms it, and fills a.pow with
// normalized one-sided power: a full-scale sine at a bin center yields
// power 1.0 in its bin.
func (a *Analyzer) powerBins(frame []float32) error {
	if len(frame) != a.size {
		return fmt.Errorf("spectrum: frame length %d does not match fft size %d", len(frame), a.size)
	}

	for i, x := range frame {
		a.in[i] = complex(float64(x)*a.win[i], 0)
	}
	if err := a.plan.Forward(a.out, a.in); err != nil {
		return fmt.Errorf("spectrum: fft: %w", err)
	}

	bins := a.Bins()
	for i := 0; i < bins; i++ {
		a.re[i] = real(a.out[i])
		a.im[i] = imag(a.out[i])
	}
	vecmath.Power(a.pow, a.re, a.im)

	// One-sided amplitude normalization: interior bins carry half the
	// energy of the two-sided spectrum, DC and Nyquist all of it.
	norm := 2 / a.winSum
	for i := range a.pow {
		s := norm
		if i == 0 || i == bins-1 {
			s = norm / 2
		}
		a.pow[i] *= s * s
	}
	return nil
}

// PowerDB writes Bins() dB values for one frame into dst, converting
// power through the approximate log2 kernel. dst must have length
// Bins(). Bins below MinDB (including zero-power bins, which saturate
// in the kernel) clamp to MinDB.
func (a *Analyzer) PowerDB(dst []float32, frame []float32) error {
	if len(dst) != a.Bins() {
		return fmt.Errorf("spectrum: dst length %d does not match bin count %d", len(dst), a.Bins())
	}
	if err := a.powerBins(frame); err != nil {
		return err
	}

	for i, p := range a.pow {
		a.pow32[i] = float32(p)
	}
	log2f.Transform(dst, a.pow32)

	for i := range dst {
		db := dst[i] * dbPerLog2
		if db < MinDB {
			db = MinDB
		}
		dst[i] = db
	}
	return nil
}

// PowerDBPrecise writes the same bins as PowerDB through the exact
// float64 logarithm (or its fastmath approximation when built with
// -tags fastmath). dst must have length Bins().
func (a *Analyzer) PowerDBPrecise(dst []float64, frame []float32) error {
	if len(dst) != a.Bins() {
		return fmt.Errorf("spectrum: dst length %d does not match bin count %d", len(dst), a.Bins())
	}
	if err := a.powerBins(frame); err != nil {
		return err
	}

	for i, p := range a.pow {
		if p <= 0 {
			dst[i] = MinDB
			continue
		}
		db := 10 * mathLog10(p)
		if db < MinDB {
			db = MinDB
		}
		dst[i] = db
	}
	return nil
}
