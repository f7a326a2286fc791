package pitch

import "fmt"

// Result is the outcome of a single estimate.
//
// Frequency and Probability are only meaningful when Found is true; otherwise
// both are zero.
type Result struct {
	Frequency   float64
	Probability float64
	Found       bool
}

// NoPitch is the result reported when no period candidate was found.
var NoPitch = Result{}

// Period returns the detected period in seconds, or 0 when nothing was found.
func (r Result) Period() float64 {
	if !r.Found || r.Frequency == 0 {
		return 0
	}
	return 1 / r.Frequency
}

func (r Result) String() string {
	if !r.Found {
		return "no pitch"
	}
	return fmt.Sprintf("%.2f Hz (p=%.3f)", r.Frequency, r.Probability)
}
