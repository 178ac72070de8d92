// Package window provides the analysis windows applied before spectral
// estimation.
package window

import (
	"errors"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
	TypeBlackman
)

var errMismatchedLength = errors.New("samples and coefficients must have same length")

var (
	hannCoeffs     = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

var typeNames = map[Type]string{
	TypeRectangular: "rectangular",
	TypeHann:        "hann",
	TypeHamming:     "hamming",
	TypeBlackman:    "blackman",
}

func (t Type) String() string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return "unknown"
}

// Option configures window generation.
type Option func(*config)

type config struct {
	periodic bool
}

// WithPeriodic configures periodic form (FFT framing) instead of symmetric form.
func WithPeriodic() Option {
	return func(c *config) {
		c.periodic = true
	}
}

// Generate returns window coefficients of the given length.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, length, cfg.periodic))
	}
	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}
	vecmath.MulBlockInPlace(buf, Generate(t, len(buf), opts...))
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)
	return out, nil
}

// CoherentGain returns the mean of the coefficients.
func CoherentGain(coeffs []float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}
	return sum / float64(len(coeffs))
}

func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	case TypeBlackman:
		return cosineFromCoeffs(x, blackmanCoeffs)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}
	return sum
}

func samplePosition(n, size int, periodic bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size - 1)
	if periodic {
		den = float64(size)
	}
	return float64(n) / den
}
