package pitch

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-pitch/dsp/core"
)

// MinSignalLength is the shortest signal accepted by the estimator.
const MinSignalLength = 2

// Yin estimates fundamental frequency with the YIN algorithm.
type Yin struct {
	opts Options
}

// NewYin validates opts and returns an estimator.
func NewYin(opts Options) (*Yin, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Yin{opts: opts}, nil
}

// Options returns the estimator configuration.
func (y *Yin) Options() Options { return y.opts }

// ExtractFundamentalFrequency is a one-shot estimate with the given options.
func ExtractFundamentalFrequency(signal []float64, opts Options) (Result, error) {
	y, err := NewYin(opts)
	if err != nil {
		return NoPitch, err
	}
	return y.ExtractFundamentalFrequency(signal)
}

// ExtractFundamentalFrequency estimates the fundamental frequency of signal.
//
// signal is not modified. A signal without any lag below the threshold yields
// NoPitch and a nil error.
func (y *Yin) ExtractFundamentalFrequency(signal []float64) (Result, error) {
	if len(signal) < MinSignalLength {
		return NoPitch, fmt.Errorf("%w: %d samples, need at least %d", ErrSignalTooShort, len(signal), MinSignalLength)
	}

	cmndf := CumulativeMeanNormalizedDifference(DifferenceFunction(signal))

	tau, probability := AbsoluteThreshold(cmndf, y.opts.Threshold)
	if tau < 0 {
		return NoPitch, nil
	}

	return Result{
		Frequency:   float64(y.opts.SampleRate) / ParabolicInterpolation(cmndf, tau),
		Probability: probability,
		Found:       true,
	}, nil
}

// DifferenceFunction returns d(τ) for τ in [0, len(signal)/2):
//
//	d(τ) = Σ_{j=0}^{W-1} (signal[j] - signal[j+τ])²,  W = len(signal) - len(signal)/2
//
// d(0) is 0.
func DifferenceFunction(signal []float64) []float64 {
	lags := len(signal) / 2
	window := len(signal) - lags

	diff := make([]float64, lags)
	if lags < 2 {
		return diff
	}

	head := signal[:window]
	delta := make([]float64, window)
	for tau := 1; tau < lags; tau++ {
		vecmath.ScaleBlock(delta, signal[tau:tau+window], -1)
		vecmath.AddBlockInPlace(delta, head)
		diff[tau] = vecmath.DotProduct(delta, delta)
	}

	return diff
}

// CumulativeMeanNormalizedDifference normalizes d(τ) by its running mean:
//
//	cmndf[0] = 1
//	cmndf[τ] = d(τ) · τ / Σ_{j=1}^{τ} d(j)
//
// A zero running sum (silence) yields NaN, which never passes the threshold.
func CumulativeMeanNormalizedDifference(diff []float64) []float64 {
	cmndf := make([]float64, len(diff))
	if len(diff) == 0 {
		return cmndf
	}

	cmndf[0] = 1
	runningSum := 0.0
	for tau := 1; tau < len(diff); tau++ {
		runningSum += diff[tau]
		cmndf[tau] = diff[tau] * float64(tau) / runningSum
	}

	return cmndf
}

// AbsoluteThreshold returns the first lag whose CMNDF is below threshold,
// advanced while the following value keeps decreasing, together with
// 1 - cmndf[τ]. It returns (-1, 0) when no lag qualifies.
func AbsoluteThreshold(cmndf []float64, threshold float64) (tau int, probability float64) {
	for tau = 0; tau < len(cmndf); tau++ {
		if !(cmndf[tau] < threshold) {
			continue
		}

		for tau+1 < len(cmndf) && cmndf[tau+1] < cmndf[tau] {
			tau++
		}
		return tau, 1 - cmndf[tau]
	}

	return -1, 0
}

// ParabolicInterpolation refines tau to a fractional lag using the vertex of
// the parabola through its neighbors. At either end of cmndf it returns tau or
// its single neighbor, whichever has the lower value. Three collinear points
// leave tau unchanged, and the vertex is clamped to [tau-1, tau+1].
// tau must index cmndf.
func ParabolicInterpolation(cmndf []float64, tau int) float64 {
	x0 := tau
	if tau > 0 {
		x0 = tau - 1
	}
	x2 := tau
	if tau < len(cmndf)-1 {
		x2 = tau + 1
	}

	if x0 == tau {
		if cmndf[tau] <= cmndf[x2] {
			return float64(tau)
		}
		return float64(x2)
	}
	if x2 == tau {
		if cmndf[tau] <= cmndf[x0] {
			return float64(tau)
		}
		return float64(x0)
	}

	a, b, c := cmndf[x0], cmndf[tau], cmndf[x2]
	den := a - 2*b + c
	if den == 0 {
		return float64(tau)
	}
	return core.Clamp(float64(tau)+0.5*(a-c)/den, float64(x0), float64(x2))
}
