// Package fft provides a radix-2 Fast Fourier Transform over single-precision
// complex buffers.
//
// The transform is a Cooley-Tukey decimation-in-time FFT. Forward computes the
// unnormalized DFT; Inverse applies the conjugate twiddles and scales every
// output sample by 1/N, so Inverse(Forward(x)) reproduces x within float32
// rounding.
//
// Buffer lengths must be powers of two. Mismatched or unsupported lengths are
// rejected with [ErrLengthMismatch] or [ErrInvalidLength] before any output is
// written. Three interchangeable strategies are available through
// [WithStrategy]: the recursive even/odd split (default), an iterative in-place
// bit-reversal variant, and plans from github.com/cwbudde/algo-fft.
//
// All functions are safe for concurrent use. Working buffers are pooled and
// private to each call.
package fft
