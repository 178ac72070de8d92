package wavelet

import "fmt"

// MaxLevel returns the deepest useful decomposition level for n samples and a
// filter of length filterLen: floor(log2(n / (filterLen-1))), or 0.
func MaxLevel(n, filterLen int) int {
	if filterLen < 2 || n < filterLen-1 {
		return 0
	}
	level := 0
	for (filterLen-1)<<(level+1) <= n {
		level++
	}
	return level
}

// Transform performs multilevel decompositions with a fixed extension mode.
type Transform struct {
	mode Mode
}

// Option configures a Transform.
type Option func(*Transform)

// WithMode sets the signal extension mode.
func WithMode(m Mode) Option {
	return func(t *Transform) {
		if _, ok := modeNames[m]; ok {
			t.mode = m
		}
	}
}

// NewTransform creates a transform using symmetric extension unless
// configured otherwise.
func NewTransform(opts ...Option) *Transform {
	t := &Transform{mode: ModeSymmetric}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// Mode returns the configured extension mode.
func (t *Transform) Mode() Mode {
	return t.mode
}

// Decompose looks up the named wavelet and decomposes x to the given level.
// It implements [Decomposer].
func (t *Transform) Decompose(x []float64, name string, level int) ([][]float64, error) {
	w, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return t.DecomposeWith(x, w, level)
}

// DecomposeWith decomposes x with w and returns level+1 bands ordered
// [cA_level, cD_level, cD_level-1, ..., cD_1]. Level 0 returns a copy of x as
// the only band.
func (t *Transform) DecomposeWith(x []float64, w Wavelet, level int) ([][]float64, error) {
	if len(x) == 0 {
		return nil, ErrEmptyInput
	}
	if level < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLevel, level)
	}
	if maxLevel := MaxLevel(len(x), w.Len()); level > maxLevel {
		return nil, fmt.Errorf("%w: level %d, max %d for %d samples with %s", ErrLevelTooHigh, level, maxLevel, len(x), w.Name)
	}

	bands := make([][]float64, level+1)
	approx := append([]float64(nil), x...)
	for l := 1; l <= level; l++ {
		cA, cD, err := DWT(approx, w, t.mode)
		if err != nil {
			return nil, fmt.Errorf("wavelet: level %d: %w", l, err)
		}
		bands[level-l+1] = cD
		approx = cA
	}
	bands[0] = approx
	return bands, nil
}

// Reconstruct inverts a decomposition produced by [Transform.Decompose]. When
// an intermediate approximation is one sample longer than the next detail band
// the extra trailing sample is dropped.
func Reconstruct(bands [][]float64, name string) ([]float64, error) {
	w, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	if len(bands) == 0 || len(bands[0]) == 0 {
		return nil, ErrEmptyInput
	}

	approx := append([]float64(nil), bands[0]...)
	var scratch []float64
	for i, detail := range bands[1:] {
		if len(approx) == len(detail)+1 {
			approx = approx[:len(approx)-1]
		}
		out, err := idwtTo(scratch, approx, detail, w)
		if err != nil {
			return nil, fmt.Errorf("wavelet: band %d: %w", i+1, err)
		}
		scratch, approx = approx[:cap(approx)], out
	}
	return approx, nil
}
