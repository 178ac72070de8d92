package spectrum

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-wavelet/dsp/core"
	"github.com/cwbudde/algo-wavelet/dsp/window"
)

// ErrEmptyInput is returned for empty signals.
var ErrEmptyInput = errors.New("spectrum: empty input")

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

// Magnitude returns |X[k]| for each complex spectrum bin.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)
	return out
}

// OneSided windows x, zero-pads it to the next power of two and returns the
// non-negative frequency bins 0..fftSize/2 together with fftSize.
func OneSided(x []float64, wt window.Type) ([]complex128, int, error) {
	if len(x) == 0 {
		return nil, 0, ErrEmptyInput
	}

	fftSize := core.NextPowerOf2(len(x))
	if fftSize < 2 {
		fftSize = 2
	}

	weighted, err := window.ApplyCoefficients(x, window.Generate(wt, len(x)))
	if err != nil {
		return nil, 0, err
	}

	in := make([]complex128, fftSize)
	for i, v := range weighted {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, 0, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, 0, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}
	return out[:fftSize/2+1], fftSize, nil
}

// Peak is a local maximum of a magnitude spectrum.
type Peak struct {
	Bin       int
	FreqHz    float64 // parabolically interpolated
	Magnitude float64
}

// Peaks returns up to k local maxima of mag, largest first. Frequencies are
// refined by fitting a parabola through each peak and its neighbours.
func Peaks(mag []float64, sampleRate float64, fftSize, k int) []Peak {
	if len(mag) < 3 || k <= 0 || fftSize <= 0 {
		return nil
	}

	binHz := sampleRate / float64(fftSize)
	var peaks []Peak
	for i := 1; i < len(mag)-1; i++ {
		a, b, c := mag[i-1], mag[i], mag[i+1]
		if b <= a || b < c {
			continue
		}
		offset := 0.0
		if den := a - 2*b + c; den != 0 {
			offset = 0.5 * (a - c) / den
		}
		peaks = append(peaks, Peak{
			Bin:       i,
			FreqHz:    (float64(i) + offset) * binHz,
			Magnitude: b,
		})
	}

	sort.SliceStable(peaks, func(i, j int) bool {
		return peaks[i].Magnitude > peaks[j].Magnitude
	})
	if len(peaks) > k {
		peaks = peaks[:k]
	}
	return peaks
}

// Dominant returns the k strongest tones of x sampled at sampleRate, using a
// Hann window.
func Dominant(x []float64, sampleRate float64, k int) ([]Peak, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("spectrum sample rate must be > 0: %f", sampleRate)
	}
	bins, fftSize, err := OneSided(x, window.TypeHann)
	if err != nil {
		return nil, err
	}
	return Peaks(Magnitude(bins), sampleRate, fftSize, k), nil
}
