package fft

// recursive computes an unscaled radix-2 DFT of src into dst by splitting into
// even- and odd-indexed halves. len(src) must be a power of two.
//
// Both halves are gathered into scratch before dst is written, so dst may
// alias src.
func recursive(dst, src []Complex, sign float64) {
	n := len(src)
	switch n {
	case 0:
		return
	case 1:
		dst[0] = src[0]
		return
	}

	half := n / 2
	buf := getScratch(2 * n)
	defer putScratch(buf)

	split := buf.data[:n]
	even, odd := split[:half], split[half:]
	for i := range half {
		even[i] = src[2*i]
		odd[i] = src[2*i+1]
	}

	sub := buf.data[n : 2*n]
	evenOut, oddOut := sub[:half], sub[half:]
	recursive(evenOut, even, sign)
	recursive(oddOut, odd, sign)

	for k := range half {
		t := twiddle(sign, k, n).Mul(oddOut[k])
		dst[k] = evenOut[k].Add(t)
		dst[k+half] = evenOut[k].Sub(t)
	}
}
