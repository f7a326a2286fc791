package spectrum

import (
	"fmt"
	"math"
)

// ToneLevel returns the amplitude of the freqHz component of samples, using
// the Goertzel recurrence. A full-scale cosine that completes a whole number
// of cycles in the block reports 1.
//
// freqHz must lie in [0, sampleRate/2].
func ToneLevel(samples []float64, freqHz, sampleRate float64) (float64, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("spectrum: sample rate must be > 0: %v", sampleRate)
	}
	if freqHz < 0 || freqHz > sampleRate/2 || math.IsNaN(freqHz) {
		return 0, fmt.Errorf("spectrum: tone frequency must be between 0 and sampleRate/2: %v", freqHz)
	}
	if len(samples) == 0 {
		return 0, nil
	}

	coeff := 2 * math.Cos(2*math.Pi*freqHz/sampleRate)
	var s0, s1 float64
	for _, x := range samples {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}

	p := s0*s0 + s1*s1 - coeff*s0*s1
	if p <= 0 {
		return 0, nil
	}
	return 2 * math.Sqrt(p) / float64(len(samples)), nil
}
