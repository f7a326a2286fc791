package testutil

import (
	"math"
	"math/rand"
)

// PeriodLength returns the buffer length covering periods cycles of freqHz,
// truncated to whole samples.
func PeriodLength(freqHz, sampleRate, periods float64) int {
	return int(sampleRate / freqHz * periods)
}

// DeterministicCosine generates periods cycles of a unit cosine at freqHz.
// phase is a fraction of one cycle added to every sample's position.
func DeterministicCosine(freqHz, sampleRate, phase, periods float64) []float64 {
	samplesPerPeriod := sampleRate / freqHz
	out := make([]float64, PeriodLength(freqHz, sampleRate, periods))
	for i := range out {
		out[i] = math.Cos(2 * math.Pi * (float64(i)/samplesPerPeriod + phase))
	}
	return out
}

// DeterministicNoise generates uniform white noise in [-amplitude, amplitude)
// with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// WithNoise returns a copy of signal with deterministic uniform noise added.
func WithNoise(signal []float64, seed int64, amplitude float64) []float64 {
	noise := DeterministicNoise(seed, amplitude, len(signal))
	for i, v := range signal {
		noise[i] += v
	}
	return noise
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}
