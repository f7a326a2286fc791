package fft

import "math"

// Forward computes the discrete Fourier transform of src into dst.
//
// dst and src must have the same power-of-two length and may alias.
// A zero-length transform is a no-op.
func Forward(dst, src []Complex, opts ...Option) error {
	if err := validate(len(dst), len(src)); err != nil {
		return err
	}
	return transform(dst, src, -1, applyOptions(opts))
}

// ForwardReal computes the DFT of a real signal. Each sample is lifted to a
// complex value with zero imaginary part.
func ForwardReal(dst []Complex, src []float32, opts ...Option) error {
	if err := validate(len(dst), len(src)); err != nil {
		return err
	}

	buf := getScratch(len(src))
	defer putScratch(buf)

	lifted := buf.data
	for i, x := range src {
		lifted[i] = Complex{Re: x}
	}

	return transform(dst, lifted, -1, applyOptions(opts))
}

// Inverse computes the inverse DFT of src into dst, including the 1/N scale.
//
// dst and src must have the same power-of-two length and may alias.
func Inverse(dst, src []Complex, opts ...Option) error {
	if err := validate(len(dst), len(src)); err != nil {
		return err
	}
	if err := transform(dst, src, 1, applyOptions(opts)); err != nil {
		return err
	}

	n := len(dst)
	if n == 0 {
		return nil
	}
	scale := 1 / float32(n)
	for i := range dst {
		dst[i] = dst[i].Scale(scale)
	}
	return nil
}

// InverseReal computes the inverse DFT of src and keeps only the real part of
// each output sample.
func InverseReal(dst []float32, src []Complex, opts ...Option) error {
	if err := validate(len(dst), len(src)); err != nil {
		return err
	}

	buf := getScratch(len(src))
	defer putScratch(buf)

	out := buf.data
	if err := Inverse(out, src, opts...); err != nil {
		return err
	}
	for i, c := range out {
		dst[i] = c.Re
	}
	return nil
}

// transform dispatches to the configured strategy. sign is -1 for the forward
// and +1 for the inverse twiddle direction; no scaling is applied here.
func transform(dst, src []Complex, sign float64, cfg config) error {
	switch len(src) {
	case 0:
		return nil
	case 1:
		dst[0] = src[0]
		return nil
	}

	switch cfg.strategy {
	case StrategyRecursive:
		recursive(dst, src, sign)
		return nil
	case StrategyIterative:
		iterative(dst, src, sign)
		return nil
	case StrategyPlan:
		return planned(dst, src, sign)
	default:
		return ErrUnknownStrategy
	}
}

// twiddle returns exp(sign * 2*pi*i * k/n).
func twiddle(sign float64, k, n int) Complex {
	return Exp(Complex{Im: float32(sign * 2 * math.Pi * float64(k) / float64(n))})
}
