package fft

import (
	"fmt"
	"sync"

	algofft "github.com/cwbudde/algo-fft"
)

// complexPlan is the subset of an algo-fft plan used here.
type complexPlan interface {
	Forward(dst, src []complex64) error
	Inverse(dst, src []complex64) error
}

// planPools maps a transform size to a *sync.Pool of plans. Plans carry their
// own scratch, so a plan is checked out for the whole call.
var planPools sync.Map

func getPlan(n int) (complexPlan, *sync.Pool, error) {
	v, _ := planPools.LoadOrStore(n, &sync.Pool{})
	pool := v.(*sync.Pool)

	if p, ok := pool.Get().(complexPlan); ok {
		return p, pool, nil
	}

	p, err := algofft.NewPlan32(n)
	if err != nil {
		return nil, nil, fmt.Errorf("fft: algo-fft plan for size %d: %w", n, err)
	}
	return p, pool, nil
}

// planned runs the transform through algo-fft. sign selects the direction.
// algo-fft normalizes its inverse by 1/N; the result is scaled back by N so
// that every strategy returns the same unscaled transform.
func planned(dst, src []Complex, sign float64) error {
	n := len(src)
	plan, pool, err := getPlan(n)
	if err != nil {
		return err
	}
	defer pool.Put(plan)

	in := make([]complex64, n)
	for i, c := range src {
		in[i] = c.Complex64()
	}
	out := make([]complex64, n)

	if sign < 0 {
		err = plan.Forward(out, in)
	} else {
		err = plan.Inverse(out, in)
	}
	if err != nil {
		return fmt.Errorf("fft: algo-fft transform: %w", err)
	}

	scale := float32(1)
	if sign > 0 {
		scale = float32(n)
	}
	for i, c := range out {
		dst[i] = FromComplex64(c).Scale(scale)
	}
	return nil
}
