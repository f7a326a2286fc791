package spectrum

import (
	"math"
	"sync"

	"github.com/cwbudde/algo-pitch/dsp/core"
	"github.com/cwbudde/algo-pitch/dsp/fft"
	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	buf.data = core.EnsureLen(buf.data, 2*n)
	return buf.data[:n], buf.data[n : 2*n], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

func split(in []fft.Complex, re, im []float64) {
	for i, c := range in {
		re[i] = float64(c.Re)
		im[i] = float64(c.Im)
	}
}

// Magnitude returns |X[k]| for each bin.
//
// Scratch buffers are pooled, so in steady state this allocates only the
// output slice.
func Magnitude(in []fft.Complex) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	split(in, re, im)
	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each bin.
func Power(in []fft.Complex) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	split(in, re, im)
	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Phase returns arg(X[k]) in radians for each bin.
func Phase(in []fft.Complex) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = math.Atan2(float64(c.Im), float64(c.Re))
	}
	return out
}

// PowerDB converts power values to decibels with a floor at -300 dB.
func PowerDB(power []float64) []float64 {
	out := make([]float64, len(power))
	for i, p := range power {
		if p <= 1e-30 {
			out[i] = -300
			continue
		}
		out[i] = 10 * math.Log10(p)
	}
	return out
}
