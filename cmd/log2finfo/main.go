// Command log2finfo prints the log2 kernel variants available on this
// machine together with their measured accuracy.
//
// Usage:
//
//	log2finfo [flags]
//
// It lists the detected CPU features, every registered kernel variant
// with its measured maximum relative error over an exponent/significand
// sweep, and the variant the automatic dispatch selects.
//
// Examples:
//
//	log2finfo
//	log2finfo -kmin -10 -kmax 10 -steps 4000
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/arntercon/volk/buffer"
	"github.com/arntercon/volk/internal/cpu"
	"github.com/arntercon/volk/internal/testutil"
	"github.com/arntercon/volk/kernels/log2f"
)

func main() {
	kMin := flag.Int("kmin", -30, "lowest binary exponent of the accuracy sweep")
	kMax := flag.Int("kmax", 30, "highest binary exponent of the accuracy sweep")
	steps := flag.Int("steps", 1000, "significand steps per binade")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: log2finfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Prints registered log2 kernel variants and their measured accuracy.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *kMax < *kMin || *steps <= 0 {
		fmt.Fprintln(os.Stderr, "log2finfo: invalid sweep range")
		os.Exit(2)
	}

	features := cpu.DetectFeatures()
	fmt.Printf("architecture:        %s\n", features.Architecture)
	fmt.Printf("detected features:   %s\n", featureList(features))
	fmt.Printf("preferred alignment: %d bytes\n\n", buffer.Alignment())

	src := testutil.MantissaSweep(*kMin, *kMax, *steps)
	dst := make([]float32, len(src))
	selected := log2f.Selected()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tLEVEL\tWIDTH\tFMA\tSATURATION\tPRIORITY\tMAX ABS ERR\tMAX REL ERR\t")
	for _, v := range log2f.Variants() {
		v.Transform(dst, src)
		name := v.Name
		if name == selected.Name {
			name += " *"
		}
		absErr, relErr := maxErrs(dst, src)
		fmt.Fprintf(w, "%s\t%s\t%d\t%v\t%s\t%d\t%.3g\t%.3g\t\n",
			name, v.Level, v.Width, v.Fused, v.Saturation, v.Priority, absErr, relErr)
	}
	w.Flush()
	fmt.Println("\n* selected by automatic dispatch")
	fmt.Printf("relative error measured where |log2(x)| >= %g\n", relFloor)
}

func featureList(f cpu.Features) string {
	list := ""
	add := func(has bool, name string) {
		if !has {
			return
		}
		if list != "" {
			list += " "
		}
		list += name
	}
	add(f.HasSSE2, "sse2")
	add(f.HasAVX, "avx")
	add(f.HasAVX2, "avx2")
	add(f.HasFMA, "fma")
	add(f.HasAVX512, "avx512")
	add(f.HasNEON, "neon")
	if list == "" {
		list = "(none)"
	}
	return list
}

// relFloor excludes samples where the exact log2 nearly vanishes (just
// below each power of two): there the relative measure diverges for any
// fixed-coefficient fit and only the absolute error is meaningful.
const relFloor = 0.01

func maxErrs(got, src []float32) (maxAbs, maxRel float64) {
	for i, x := range src {
		want := math.Log2(float64(x))
		abs := math.Abs(float64(got[i]) - want)
		if abs > maxAbs {
			maxAbs = abs
		}
		if math.Abs(want) < relFloor {
			continue
		}
		if rel := abs / math.Abs(want); rel > maxRel {
			maxRel = rel
		}
	}
	return maxAbs, maxRel
}
