package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-pitch/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// Generator creates deterministic test signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// SamplesForPeriods returns how many whole samples cover periods cycles of freqHz.
func (g *Generator) SamplesForPeriods(freqHz, periods float64) (int, error) {
	if freqHz <= 0 || math.IsNaN(freqHz) || math.IsInf(freqHz, 0) {
		return 0, fmt.Errorf("signal: frequency must be > 0: %v", freqHz)
	}
	if periods <= 0 {
		return 0, fmt.Errorf("signal: periods must be > 0: %v", periods)
	}
	return int(g.cfg.SampleRate / freqHz * periods), nil
}

// Cosine generates amplitude*cos(2π(f·t + phase)), where phase is a fraction of one cycle.
func (g *Generator) Cosine(freqHz, amplitude, phase float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: cosine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("signal: sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	out := make([]float64, samples)
	step := freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Cos(2*math.Pi*(step*float64(i)+phase))
	}
	return out, nil
}

// Harmonic generates a sum of cosines at integer multiples of freqHz.
// amplitudes[k] is the level of harmonic k+1.
func (g *Generator) Harmonic(freqHz float64, amplitudes []float64, samples int) ([]float64, error) {
	if len(amplitudes) == 0 {
		return nil, fmt.Errorf("signal: harmonic amplitudes must not be empty")
	}
	if samples <= 0 {
		return nil, fmt.Errorf("signal: harmonic samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	for k, a := range amplitudes {
		if a == 0 {
			continue
		}
		partial, err := g.Cosine(freqHz*float64(k+1), a, 0, samples)
		if err != nil {
			return nil, err
		}
		vecmath.AddBlockInPlace(out, partial)
	}
	return out, nil
}

// WhiteNoise generates deterministic uniform white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("signal: noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("signal: noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Mix returns a + b. Both signals must have the same length.
func Mix(a, b []float64) ([]float64, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("signal: mix length mismatch: %d != %d", len(a), len(b))
	}
	out := make([]float64, len(a))
	vecmath.AddBlock(out, a, b)
	return out, nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("signal: normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("signal: normalize input must not be empty")
	}

	out := make([]float64, len(data))
	maxAbs := vecmath.MaxAbs(data)
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}

// ToFloat32 converts samples to single precision for the FFT.
func ToFloat32(data []float64) []float32 {
	out := make([]float32, len(data))
	for i, v := range data {
		out[i] = float32(v)
	}
	return out
}
