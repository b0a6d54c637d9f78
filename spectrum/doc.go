// Package spectrum computes one-sided power spectra of float32 frames
// in decibels, converting power to dB through the approximate log2
// kernel: 10·log10(p) = (10·log10 2)·log2(p).
//
// An Analyzer owns an FFT plan and a periodic Hann window for a fixed
// power-of-two frame size. Bins are normalized so a full-scale sine at
// a bin center reads 0 dBFS; zero-power bins saturate through the
// kernel and clamp to MinDB. A float64 reference path (PowerDBPrecise)
// computes the same bins through the exact logarithm; building with
// -tags fastmath swaps its logarithm onto an approximate one.
//
// An Analyzer reuses internal scratch buffers and is not safe for
// concurrent use.
package spectrum
