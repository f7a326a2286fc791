package pitch

import "errors"

var (
	// ErrSignalTooShort is returned for signals with fewer than MinSignalLength samples.
	ErrSignalTooShort = errors.New("pitch: signal too short")

	// ErrInvalidSampleRate is returned when the sample rate is not positive.
	ErrInvalidSampleRate = errors.New("pitch: sample rate must be > 0")

	// ErrInvalidThreshold is returned when the threshold is outside (0, 1).
	ErrInvalidThreshold = errors.New("pitch: threshold must be in (0, 1)")
)
