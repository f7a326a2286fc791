package fft

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-pitch/dsp/core"
)

// Sentinel errors returned by transform functions.
var (
	// ErrLengthMismatch is returned when input and output buffers differ in length.
	ErrLengthMismatch = errors.New("fft: buffer length mismatch")

	// ErrInvalidLength is returned when the buffer length is not a power of two.
	ErrInvalidLength = errors.New("fft: length must be a power of two")

	// ErrUnknownStrategy is returned for a Strategy value outside the defined set.
	ErrUnknownStrategy = errors.New("fft: unknown strategy")
)

func validate(dstLen, srcLen int) error {
	if dstLen != srcLen {
		return fmt.Errorf("%w: dst=%d src=%d", ErrLengthMismatch, dstLen, srcLen)
	}
	if srcLen > 1 && !core.IsPowerOfTwo(srcLen) {
		return fmt.Errorf("%w: %d", ErrInvalidLength, srcLen)
	}
	return nil
}
