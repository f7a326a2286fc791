package pitch

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-pitch/dsp/core"
)

const (
	// DefaultSampleRate is the sample rate used by DefaultOptions.
	DefaultSampleRate = 44100
	// DefaultThreshold is the CMNDF threshold used by DefaultOptions.
	DefaultThreshold = 0.15
)

// Options configures a YIN estimator.
type Options struct {
	// SampleRate of the analyzed signal in Hz.
	SampleRate int
	// Threshold is the CMNDF value below which a lag is accepted as a period
	// candidate. Lower values are stricter.
	Threshold float64
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns 44.1 kHz with a 0.15 threshold.
func DefaultOptions() Options {
	return Options{
		SampleRate: DefaultSampleRate,
		Threshold:  DefaultThreshold,
	}
}

// WithSampleRate sets the sample rate in Hz.
func WithSampleRate(sampleRate int) Option {
	return func(o *Options) {
		o.SampleRate = sampleRate
	}
}

// WithThreshold sets the CMNDF acceptance threshold.
func WithThreshold(threshold float64) Option {
	return func(o *Options) {
		o.Threshold = threshold
	}
}

// WithProcessorConfig takes the sample rate from a shared processor config,
// rounded to whole Hz.
func WithProcessorConfig(cfg core.ProcessorConfig) Option {
	return func(o *Options) {
		o.SampleRate = int(math.Round(cfg.SampleRate))
	}
}

// NewOptions applies opts to DefaultOptions and validates the result.
func NewOptions(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	if err := o.Validate(); err != nil {
		return Options{}, err
	}
	return o, nil
}

// Validate reports whether o can drive an estimator.
func (o Options) Validate() error {
	if o.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, o.SampleRate)
	}
	if !(o.Threshold > 0 && o.Threshold < 1) {
		return fmt.Errorf("%w: %v", ErrInvalidThreshold, o.Threshold)
	}
	return nil
}
