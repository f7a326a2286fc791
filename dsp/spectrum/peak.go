package spectrum

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-pitch/dsp/core"
	"github.com/cwbudde/algo-pitch/dsp/fft"
)

// ErrEmptySpectrum is returned when a peak is requested from no bins.
var ErrEmptySpectrum = errors.New("spectrum: empty spectrum")

// BinFrequency returns the center frequency in Hz of bin k for an FFT of size n.
func BinFrequency(k, n int, sampleRate float64) float64 {
	if n <= 0 {
		return 0
	}
	return float64(k) * sampleRate / float64(n)
}

// PeakBin returns the index of the largest value in mag[lo:hi].
// Ties resolve to the lowest index.
func PeakBin(mag []float64, lo, hi int) (int, error) {
	lo = max(lo, 0)
	hi = min(hi, len(mag))
	if lo >= hi {
		return 0, fmt.Errorf("%w: range [%d, %d) of %d bins", ErrEmptySpectrum, lo, hi, len(mag))
	}
	best := lo
	for k := lo + 1; k < hi; k++ {
		if mag[k] > mag[best] {
			best = k
		}
	}
	return best, nil
}

// InterpolatePeak refines bin k with a parabola through its neighbors and
// returns a fractional bin index. Edge bins are returned unchanged.
func InterpolatePeak(mag []float64, k int) float64 {
	if k <= 0 || k >= len(mag)-1 {
		return float64(k)
	}
	a, b, c := mag[k-1], mag[k], mag[k+1]
	den := a - 2*b + c
	if den == 0 {
		return float64(k)
	}
	return float64(k) + 0.5*(a-c)/den
}

// DominantFrequency estimates the strongest non-DC frequency of samples.
//
// The input is zero-padded to the next power of two and transformed with
// package fft. The peak bin below Nyquist is refined by InterpolatePeak.
func DominantFrequency(samples []float32, sampleRate float64, opts ...fft.Option) (float64, error) {
	if len(samples) < 2 {
		return 0, fmt.Errorf("%w: need at least 2 samples, got %d", ErrEmptySpectrum, len(samples))
	}
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("spectrum: sample rate must be > 0: %v", sampleRate)
	}

	n := core.NextPowerOfTwo(len(samples))
	padded := make([]float32, n)
	copy(padded, samples)

	bins := make([]fft.Complex, n)
	if err := fft.ForwardReal(bins, padded, opts...); err != nil {
		return 0, err
	}

	mag := Magnitude(bins[:n/2+1])
	k, err := PeakBin(mag, 1, n/2)
	if err != nil {
		return 0, err
	}
	return BinFrequency(1, n, sampleRate) * InterpolatePeak(mag, k), nil
}
