package fft

import (
	"math/bits"

	"github.com/cwbudde/algo-pitch/dsp/core"
)

// iterative computes an unscaled radix-2 DFT of src into dst in place.
// len(src) must be a power of two greater than one.
func iterative(dst, src []Complex, sign float64) {
	n := len(src)
	core.CopyInto(dst, src)

	shift := bits.UintSize - bits.Len(uint(n-1))
	for i := range n {
		j := int(bits.Reverse(uint(i)) >> shift)
		if j > i {
			dst[i], dst[j] = dst[j], dst[i]
		}
	}

	for size := 2; size <= n; size <<= 1 {
		half := size / 2
		for k := range half {
			w := twiddle(sign, k, size)
			for start := 0; start < n; start += size {
				a := dst[start+k]
				t := w.Mul(dst[start+k+half])
				dst[start+k] = a.Add(t)
				dst[start+k+half] = a.Sub(t)
			}
		}
	}
}
