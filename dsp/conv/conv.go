package conv

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Errors returned by convolution functions.
var (
	ErrEmptyInput     = errors.New("conv: empty input")
	ErrEmptyKernel    = errors.New("conv: empty kernel")
	ErrLengthMismatch = errors.New("conv: buffer length mismatch")
	ErrInvalidStep    = errors.New("conv: invalid step")
)

// Direct performs direct time-domain linear convolution of a and b.
// Returns a new slice of length len(a) + len(b) - 1.
func Direct(a, b []float64) ([]float64, error) {
	if len(a) == 0 {
		return nil, ErrEmptyInput
	}
	if len(b) == 0 {
		return nil, ErrEmptyKernel
	}

	result := make([]float64, len(a)+len(b)-1)
	DirectTo(result, a, b)
	return result, nil
}

// DirectTo performs direct convolution, writing to a pre-allocated destination.
// dst must have length len(a) + len(b) - 1.
func DirectTo(dst, a, b []float64) {
	m := len(b)
	for i := range dst {
		dst[i] = 0
	}
	for i, v := range a {
		floats.AddScaled(dst[i:i+m], v, b)
	}
}

// DecimateTo writes dst[k] = (x*h)[offset + step*k] for k in [0, len(dst)).
// Samples of the full convolution that fall outside [0, len(x)+len(h)-1) are 0.
func DecimateTo(dst, x, h []float64, offset, step int) error {
	if len(x) == 0 {
		return ErrEmptyInput
	}
	if len(h) == 0 {
		return ErrEmptyKernel
	}
	if step < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}
	if offset < 0 {
		return fmt.Errorf("conv: offset must be >= 0: %d", offset)
	}

	f := len(h)
	hr := make([]float64, f)
	for i, v := range h {
		hr[f-1-i] = v
	}

	for k := range dst {
		n := offset + step*k
		jlo := max(0, n-len(x)+1)
		jhi := min(f-1, n)
		if jlo > jhi {
			dst[k] = 0
			continue
		}
		// sum_j h[j]*x[n-j] with the kernel reversed so both operands ascend.
		dst[k] = floats.Dot(hr[f-1-jhi:f-jlo], x[n-jhi:n-jlo+1])
	}
	return nil
}

// UpsampleAddTo accumulates dst[o] += sum_k c[k]*g[o+offset-step*k] over the
// kernel taps that land inside g. It is the transpose of [DecimateTo].
func UpsampleAddTo(dst, c, g []float64, offset, step int) error {
	if len(c) == 0 {
		return ErrEmptyInput
	}
	if len(g) == 0 {
		return ErrEmptyKernel
	}
	if step < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidStep, step)
	}

	f := len(g)
	for k, v := range c {
		if v == 0 {
			continue
		}
		// Tap idx lands on output o = idx - offset + step*k.
		base := step*k - offset
		lo := max(0, -base)
		hi := min(f, len(dst)-base)
		if lo >= hi {
			continue
		}
		floats.AddScaled(dst[base+lo:base+hi], v, g[lo:hi])
	}
	return nil
}
