package fft

import (
	"math"
	"strconv"
)

// Complex is a single-precision complex number.
//
// Complex is a value type: every operation returns a new value and leaves its
// operands untouched. NaN and Inf propagate per IEEE-754 rules.
type Complex struct {
	Re float32
	Im float32
}

// NewComplex returns re + im*i.
func NewComplex(re, im float32) Complex {
	return Complex{Re: re, Im: im}
}

// FromComplex64 converts a built-in complex64.
func FromComplex64(c complex64) Complex {
	return Complex{Re: real(c), Im: imag(c)}
}

// Complex64 returns c as a built-in complex64.
func (c Complex) Complex64() complex64 {
	return complex(c.Re, c.Im)
}

// Real returns the real part.
func (c Complex) Real() float32 { return c.Re }

// Imag returns the imaginary part.
func (c Complex) Imag() float32 { return c.Im }

// Add returns c + o.
func (c Complex) Add(o Complex) Complex {
	return Complex{Re: c.Re + o.Re, Im: c.Im + o.Im}
}

// Sub returns c - o.
func (c Complex) Sub(o Complex) Complex {
	return Complex{Re: c.Re - o.Re, Im: c.Im - o.Im}
}

// Mul returns c * o.
//
//	(a + bi)(c + di) = (ac - bd) + (bc + ad)i
func (c Complex) Mul(o Complex) Complex {
	return Complex{
		Re: c.Re*o.Re - c.Im*o.Im,
		Im: c.Im*o.Re + c.Re*o.Im,
	}
}

// Scale returns c * s for a real scalar s.
func (c Complex) Scale(s float32) Complex {
	return Complex{Re: c.Re * s, Im: c.Im * s}
}

// AddScalar returns c + s for a real scalar s.
func (c Complex) AddScalar(s float32) Complex {
	return Complex{Re: c.Re + s, Im: c.Im}
}

// SubScalar returns c - s for a real scalar s.
func (c Complex) SubScalar(s float32) Complex {
	return Complex{Re: c.Re - s, Im: c.Im}
}

// Exp returns e^c = e^Re * (cos Im + i sin Im).
func Exp(c Complex) Complex {
	mag := math.Exp(float64(c.Re))
	sin, cos := math.Sincos(float64(c.Im))

	return Complex{
		Re: float32(mag * cos),
		Im: float32(mag * sin),
	}
}

// String formats c as "<re; im>".
func (c Complex) String() string {
	return "<" + strconv.FormatFloat(float64(c.Re), 'g', -1, 32) +
		"; " + strconv.FormatFloat(float64(c.Im), 'g', -1, 32) + ">"
}
