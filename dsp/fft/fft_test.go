package fft

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"testing"
)

var strategies = []Strategy{StrategyRecursive, StrategyIterative, StrategyPlan}

func randomComplex(seed int64, n int) []Complex {
	rng := rand.New(rand.NewSource(seed))
	out := make([]Complex, n)
	for i := range out {
		out[i] = NewComplex(float32(rng.Float64()*2-1), float32(rng.Float64()*2-1))
	}
	return out
}

// naiveDFT evaluates the DFT directly in float64.
func naiveDFT(src []Complex, sign float64) []complex128 {
	n := len(src)
	out := make([]complex128, n)
	for k := range n {
		var sum complex128
		for j, x := range src {
			angle := sign * 2 * math.Pi * float64(j*k) / float64(n)
			w := complex(math.Cos(angle), math.Sin(angle))
			sum += complex(float64(x.Re), float64(x.Im)) * w
		}
		out[k] = sum
	}
	return out
}

func maxAbsDiff(got []Complex, want []complex128) float64 {
	maxDiff := 0.0
	for i := range got {
		d := math.Hypot(float64(got[i].Re)-real(want[i]), float64(got[i].Im)-imag(want[i]))
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff
}

func TestForwardMatchesNaiveDFT(t *testing.T) {
	for _, s := range strategies {
		for _, n := range []int{2, 4, 8, 32, 128} {
			t.Run(s.String()+"/"+itoa(n), func(t *testing.T) {
				src := randomComplex(int64(n), n)
				dst := make([]Complex, n)

				if err := Forward(dst, src, WithStrategy(s)); err != nil {
					t.Fatalf("Forward() error = %v", err)
				}

				want := naiveDFT(src, -1)
				if d := maxAbsDiff(dst, want); d > 1e-4*float64(n) {
					t.Fatalf("max diff = %g", d)
				}
			})
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range strategies {
		for _, n := range []int{1, 2, 16, 256, 1024} {
			t.Run(s.String()+"/"+itoa(n), func(t *testing.T) {
				src := randomComplex(7, n)
				bins := make([]Complex, n)
				back := make([]Complex, n)

				if err := Forward(bins, src, WithStrategy(s)); err != nil {
					t.Fatalf("Forward() error = %v", err)
				}
				if err := Inverse(back, bins, WithStrategy(s)); err != nil {
					t.Fatalf("Inverse() error = %v", err)
				}

				for i := range src {
					if math.Abs(float64(back[i].Re-src[i].Re)) > 1e-4 ||
						math.Abs(float64(back[i].Im-src[i].Im)) > 1e-4 {
						t.Fatalf("back[%d] = %v, want %v", i, back[i], src[i])
					}
				}
			})
		}
	}
}

func TestSineRoundTrip(t *testing.T) {
	for _, phase := range []float64{0, 0.25} {
		in := make([]float32, 128)
		for i := range in {
			in[i] = float32(math.Sin((float64(i)/float64(len(in)) + phase) * 2 * math.Pi))
		}

		bins := make([]Complex, len(in))
		if err := ForwardReal(bins, in); err != nil {
			t.Fatalf("ForwardReal() error = %v", err)
		}

		// One cycle per frame puts all energy into bins 1 and N-1.
		for k, c := range bins {
			mag := math.Hypot(float64(c.Re), float64(c.Im))
			want := 0.0
			if k == 1 || k == len(bins)-1 {
				want = float64(len(in)) / 2
			}
			if math.Abs(mag-want) > 1e-3 {
				t.Fatalf("phase %v: |X[%d]| = %v, want %v", phase, k, mag, want)
			}
		}

		out := make([]float32, len(in))
		if err := InverseReal(out, bins); err != nil {
			t.Fatalf("InverseReal() error = %v", err)
		}
		for i := range in {
			if math.Abs(float64(out[i]-in[i])) > 1e-5 {
				t.Fatalf("phase %v: out[%d] = %v, want %v", phase, i, out[i], in[i])
			}
		}
	}
}

func TestImpulseIsFlat(t *testing.T) {
	for _, s := range strategies {
		src := make([]Complex, 64)
		src[0] = NewComplex(1, 0)
		dst := make([]Complex, 64)

		if err := Forward(dst, src, WithStrategy(s)); err != nil {
			t.Fatalf("%v: Forward() error = %v", s, err)
		}
		for i, c := range dst {
			if math.Abs(float64(c.Re-1)) > 1e-6 || math.Abs(float64(c.Im)) > 1e-6 {
				t.Fatalf("%v: dst[%d] = %v, want <1; 0>", s, i, c)
			}
		}
	}
}

func TestStrategiesAgree(t *testing.T) {
	src := randomComplex(99, 512)
	ref := make([]Complex, len(src))
	if err := Forward(ref, src); err != nil {
		t.Fatalf("Forward() error = %v", err)
	}

	want := make([]complex128, len(ref))
	for i, c := range ref {
		want[i] = complex(float64(c.Re), float64(c.Im))
	}

	for _, s := range strategies[1:] {
		got := make([]Complex, len(src))
		if err := Forward(got, src, WithStrategy(s)); err != nil {
			t.Fatalf("%v: Forward() error = %v", s, err)
		}
		if d := maxAbsDiff(got, want); d > 1e-3 {
			t.Fatalf("%v: max diff vs recursive = %g", s, d)
		}
	}
}

func TestInPlace(t *testing.T) {
	for _, s := range strategies {
		src := randomComplex(3, 64)
		want := make([]Complex, len(src))
		if err := Forward(want, src, WithStrategy(s)); err != nil {
			t.Fatalf("%v: Forward() error = %v", s, err)
		}

		buf := append([]Complex(nil), src...)
		if err := Forward(buf, buf, WithStrategy(s)); err != nil {
			t.Fatalf("%v: in-place Forward() error = %v", s, err)
		}
		for i := range buf {
			if buf[i] != want[i] {
				t.Fatalf("%v: buf[%d] = %v, want %v", s, i, buf[i], want[i])
			}
		}
	}
}

func TestTrivialLengths(t *testing.T) {
	if err := Forward(nil, nil); err != nil {
		t.Fatalf("Forward(empty) error = %v", err)
	}
	if err := Inverse([]Complex{}, []Complex{}); err != nil {
		t.Fatalf("Inverse(empty) error = %v", err)
	}

	dst := make([]Complex, 1)
	if err := Forward(dst, []Complex{{2, -3}}); err != nil {
		t.Fatalf("Forward(1) error = %v", err)
	}
	if dst[0] != (Complex{2, -3}) {
		t.Fatalf("Forward(1) = %v, want <2; -3>", dst[0])
	}
	if err := Inverse(dst, []Complex{{4, 1}}); err != nil {
		t.Fatalf("Inverse(1) error = %v", err)
	}
	if dst[0] != (Complex{4, 1}) {
		t.Fatalf("Inverse(1) = %v, want <4; 1>", dst[0])
	}
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{
			name: "forward mismatch",
			run:  func() error { return Forward(make([]Complex, 8), make([]Complex, 4)) },
			want: ErrLengthMismatch,
		},
		{
			name: "forward real mismatch",
			run:  func() error { return ForwardReal(make([]Complex, 8), make([]float32, 16)) },
			want: ErrLengthMismatch,
		},
		{
			name: "inverse mismatch",
			run:  func() error { return Inverse(make([]Complex, 2), make([]Complex, 4)) },
			want: ErrLengthMismatch,
		},
		{
			name: "inverse real mismatch",
			run:  func() error { return InverseReal(make([]float32, 3), make([]Complex, 4)) },
			want: ErrLengthMismatch,
		},
		{
			name: "forward non power of two",
			run:  func() error { return Forward(make([]Complex, 12), make([]Complex, 12)) },
			want: ErrInvalidLength,
		},
		{
			name: "inverse real non power of two",
			run:  func() error { return InverseReal(make([]float32, 3), make([]Complex, 3)) },
			want: ErrInvalidLength,
		},
		{
			name: "unknown strategy",
			run: func() error {
				return Forward(make([]Complex, 4), make([]Complex, 4), WithStrategy(Strategy(42)))
			},
			want: ErrUnknownStrategy,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.run(); !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestMismatchLeavesOutputUntouched(t *testing.T) {
	dst := []Complex{{9, 9}, {9, 9}, {9, 9}}
	_ = Forward(dst, make([]Complex, 4))
	for i, c := range dst {
		if c != (Complex{9, 9}) {
			t.Fatalf("dst[%d] = %v, want untouched", i, c)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range strategies {
		got, err := ParseStrategy(s.String())
		if err != nil || got != s {
			t.Fatalf("ParseStrategy(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseStrategy("bluestein"); !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("ParseStrategy(bluestein) error = %v", err)
	}
}

func TestConcurrentTransforms(t *testing.T) {
	src := randomComplex(11, 256)
	want := make(map[Strategy][]Complex, len(strategies))
	for _, s := range strategies {
		ref := make([]Complex, len(src))
		if err := Forward(ref, src, WithStrategy(s)); err != nil {
			t.Fatalf("%v: Forward() error = %v", s, err)
		}
		want[s] = ref
	}

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for w := range 16 {
		wg.Add(1)
		go func(s Strategy) {
			defer wg.Done()
			got := make([]Complex, len(src))
			for range 20 {
				if err := Forward(got, src, WithStrategy(s)); err != nil {
					errs <- err.Error()
					return
				}
				for i := range got {
					if got[i] != want[s][i] {
						errs <- s.String() + ": result differs between concurrent calls"
						return
					}
				}
			}
		}(strategies[w%len(strategies)])
	}
	wg.Wait()
	close(errs)

	for e := range errs {
		t.Fatal(e)
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	buf := [20]byte{}
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}
