package signal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-wavelet/dsp/core"
)

// Component is one sinusoidal term of a composite signal.
type Component struct {
	FreqHz    float64
	Amplitude float64
	Phase     float64 // radians
}

// DefaultComponents returns the 2 Hz, 10 Hz and 20 Hz terms with amplitudes
// 1.0, 0.5 and 0.25.
func DefaultComponents() []Component {
	return []Component{
		{FreqHz: 2, Amplitude: 1},
		{FreqHz: 10, Amplitude: 0.5},
		{FreqHz: 20, Amplitude: 0.25},
	}
}

// Generator synthesizes deterministic signals on an evenly spaced time axis.
type Generator struct {
	cfg core.SynthConfig
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.SynthOption) *Generator {
	return &Generator{cfg: core.ApplySynthOptions(opts...)}
}

// Config returns the generator grid configuration.
func (g *Generator) Config() core.SynthConfig {
	return g.cfg
}

// TimeAxis returns the sample instants of the configured grid.
func (g *Generator) TimeAxis() ([]float64, error) {
	return Linspace(g.cfg.Start, g.cfg.Stop, g.cfg.Samples)
}

// Generate returns the time axis and the sum of components evaluated on it.
// With no components the default three-tone mix is used.
func (g *Generator) Generate(components ...Component) (t, x []float64, err error) {
	t, err = g.TimeAxis()
	if err != nil {
		return nil, nil, err
	}
	if len(components) == 0 {
		components = DefaultComponents()
	}
	return t, Multisine(t, components), nil
}

// Linspace returns n evenly spaced values over [start, stop], both endpoints
// included. n == 1 yields [start].
func Linspace(start, stop float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("linspace samples must be > 0: %d", n)
	}
	if math.IsNaN(start) || math.IsNaN(stop) {
		return nil, fmt.Errorf("linspace bounds must not be NaN: [%f, %f]", start, stop)
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out, nil
	}
	floats.Span(out, start, stop)
	out[n-1] = stop
	return out, nil
}

// Multisine evaluates sum(A*sin(2*pi*f*t + phase)) at each instant of t.
func Multisine(t []float64, components []Component) []float64 {
	out := make([]float64, len(t))
	for _, c := range components {
		w := 2 * math.Pi * c.FreqHz
		for i, ti := range t {
			out[i] += c.Amplitude * math.Sin(w*ti+c.Phase)
		}
	}
	return out
}

// SampleRate returns the sampling rate implied by an evenly spaced time axis.
func SampleRate(t []float64) (float64, error) {
	if len(t) < 2 {
		return 0, fmt.Errorf("sample rate needs at least 2 instants: %d", len(t))
	}
	span := t[len(t)-1] - t[0]
	if span <= 0 {
		return 0, fmt.Errorf("time axis must be increasing: span %f", span)
	}
	return float64(len(t)-1) / span, nil
}
