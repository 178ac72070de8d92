package wavelet

import (
	"fmt"

	"github.com/cwbudde/algo-wavelet/dsp/conv"
	"github.com/cwbudde/algo-wavelet/dsp/core"
)

// CoeffLen returns the length of each band produced by one DWT level applied
// to n samples with a filter of length filterLen.
func CoeffLen(n, filterLen int) int {
	if n <= 0 || filterLen <= 0 {
		return 0
	}
	return (n + filterLen - 1) / 2
}

// ReconLen returns the length of one IDWT level applied to bands of length n.
func ReconLen(n, filterLen int) int {
	return 2*n - filterLen + 2
}

// DWT performs one level of the discrete wavelet transform.
//
// cA[k] = sum_j DecLo[j] * x[2k+1-j] and likewise cD with DecHi, where x is
// extended past its edges according to mode.
func DWT(x []float64, w Wavelet, mode Mode) (cA, cD []float64, err error) {
	if len(x) == 0 {
		return nil, nil, ErrEmptyInput
	}
	f := w.Len()
	if f == 0 {
		return nil, nil, fmt.Errorf("%w: empty filter bank", ErrUnknownWavelet)
	}

	ext := mode.extend(x, f-1)
	n := CoeffLen(len(x), f)
	cA = make([]float64, n)
	cD = make([]float64, n)

	// Output k sits at index 2k+1 of x, which is 2k+f in the padded signal.
	if err := conv.DecimateTo(cA, ext, w.DecLo, f, 2); err != nil {
		return nil, nil, err
	}
	if err := conv.DecimateTo(cD, ext, w.DecHi, f, 2); err != nil {
		return nil, nil, err
	}
	return cA, cD, nil
}

// IDWT reconstructs one level from approximation and detail bands of equal
// length.
func IDWT(cA, cD []float64, w Wavelet) ([]float64, error) {
	out, err := idwtTo(nil, cA, cD, w)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func idwtTo(buf, cA, cD []float64, w Wavelet) ([]float64, error) {
	if len(cA) == 0 || len(cD) == 0 {
		return nil, ErrEmptyInput
	}
	if len(cA) != len(cD) {
		return nil, fmt.Errorf("%w: approximation %d, detail %d", ErrLengthMismatch, len(cA), len(cD))
	}
	f := w.Len()
	n := ReconLen(len(cA), f)
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d coefficients too short for filter length %d", ErrLengthMismatch, len(cA), f)
	}

	out := core.EnsureLen(buf, n)
	core.Zero(out)
	if err := conv.UpsampleAddTo(out, cA, w.RecLo, f-2, 2); err != nil {
		return nil, err
	}
	if err := conv.UpsampleAddTo(out, cD, w.RecHi, f-2, 2); err != nil {
		return nil, err
	}
	return out, nil
}
