// Package log2f computes fast approximate base-2 logarithms over
// float32 slices.
//
// The vector kernels split each value into its IEEE-754 exponent and
// significand and approximate log2 of the significand with a degree-6
// minimax polynomial, giving relative errors on the order of 1e-5 while
// running several times faster than the exact scalar path. Array tails
// that do not fill a full vector group are completed by the exact
// scalar kernel, so every output element is always defined.
//
// Infinite results do not propagate: they saturate to a magnitude of
// 127, the largest finite binary32 exponent. Two historical saturation
// policies exist and are both selectable on the scalar kernel; the
// vector kernels fix the sign-preserving one. Negative and NaN inputs
// are unsupported and yield unspecified results.
//
// Transform picks the best registered kernel for the host CPU once and
// uses its aligned entry point when both slices allow it. Buffers from
// the buffer package with buffer.Alignment() satisfy every kernel's
// alignment contract.
package log2f
