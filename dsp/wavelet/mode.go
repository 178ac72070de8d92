package wavelet

import (
	"fmt"
	"strings"
)

// Mode selects how a signal is extended beyond its edges before filtering.
type Mode int

const (
	// ModeSymmetric mirrors the signal including the edge sample:
	// ... x1 x0 | x0 x1 ... xn-1 | xn-1 xn-2 ...
	ModeSymmetric Mode = iota
	// ModeReflect mirrors the signal around the edge sample:
	// ... x2 x1 | x0 x1 ... xn-1 | xn-2 xn-3 ...
	ModeReflect
	// ModeZero pads with zeros.
	ModeZero
	// ModeConstant repeats the edge samples.
	ModeConstant
	// ModePeriodic wraps the signal around.
	ModePeriodic
)

var modeNames = map[Mode]string{
	ModeSymmetric: "symmetric",
	ModeReflect:   "reflect",
	ModeZero:      "zero",
	ModeConstant:  "constant",
	ModePeriodic:  "periodic",
}

func (m Mode) String() string {
	if n, ok := modeNames[m]; ok {
		return n
	}
	return "unknown"
}

// ParseMode returns the mode with the given name (case-insensitive).
func ParseMode(name string) (Mode, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for m, n := range modeNames {
		if n == key {
			return m, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// at returns the extended sample at index i, which may lie outside [0, len(x)).
func (m Mode) at(x []float64, i int) float64 {
	n := len(x)
	if i >= 0 && i < n {
		return x[i]
	}
	switch m {
	case ModeZero:
		return 0
	case ModeConstant:
		if i < 0 {
			return x[0]
		}
		return x[n-1]
	case ModePeriodic:
		return x[wrap(i, n)]
	case ModeReflect:
		if n == 1 {
			return x[0]
		}
		p := 2*n - 2
		j := wrap(i, p)
		if j < n {
			return x[j]
		}
		return x[p-j]
	default:
		j := wrap(i, 2*n)
		if j < n {
			return x[j]
		}
		return x[2*n-1-j]
	}
}

// extend returns x with pad extended samples on each side.
func (m Mode) extend(x []float64, pad int) []float64 {
	out := make([]float64, len(x)+2*pad)
	for i := range out {
		out[i] = m.at(x, i-pad)
	}
	return out
}

func wrap(i, n int) int {
	j := i % n
	if j < 0 {
		j += n
	}
	return j
}
