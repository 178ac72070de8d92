package wavelet

// Decomposer splits a signal into an ordered list of coefficient bands:
// the approximation at the deepest level first, then details from the deepest
// level down to level 1.
type Decomposer interface {
	Decompose(signal []float64, wavelet string, level int) ([][]float64, error)
}

// DecomposerFunc adapts a plain function to [Decomposer].
type DecomposerFunc func(signal []float64, wavelet string, level int) ([][]float64, error)

// Decompose calls f.
func (f DecomposerFunc) Decompose(signal []float64, wavelet string, level int) ([][]float64, error) {
	return f(signal, wavelet, level)
}

var _ Decomposer = (*Transform)(nil)
