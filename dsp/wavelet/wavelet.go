package wavelet

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Wavelet is an orthogonal two-channel filter bank.
type Wavelet struct {
	Name             string
	Family           string
	VanishingMoments int

	DecLo []float64 // analysis low-pass
	DecHi []float64 // analysis high-pass
	RecLo []float64 // synthesis low-pass
	RecHi []float64 // synthesis high-pass
}

// Len returns the filter length.
func (w Wavelet) Len() int {
	return len(w.DecLo)
}

// fromScaling derives the filter bank from a synthesis low-pass filter using
// the quadrature mirror relation rec_hi[k] = (-1)^k rec_lo[F-1-k]. Analysis
// filters are the time-reversed synthesis filters.
func fromScaling(name, family string, moments int, recLo []float64) Wavelet {
	f := len(recLo)
	w := Wavelet{
		Name:             name,
		Family:           family,
		VanishingMoments: moments,
		DecLo:            make([]float64, f),
		DecHi:            make([]float64, f),
		RecLo:            append([]float64(nil), recLo...),
		RecHi:            make([]float64, f),
	}
	for k := 0; k < f; k++ {
		w.RecHi[k] = recLo[f-1-k]
		if k%2 == 1 {
			w.RecHi[k] = -w.RecHi[k]
		}
	}
	for i := 0; i < f; i++ {
		w.DecLo[i] = w.RecLo[f-1-i]
		w.DecHi[i] = w.RecHi[f-1-i]
	}
	return w
}

// Lookup returns the wavelet registered under name (case-insensitive).
func Lookup(name string) (Wavelet, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "haar" {
		return fromScaling("haar", "Haar", 1, daubechiesScaling[1]), nil
	}
	if rest, ok := strings.CutPrefix(key, "db"); ok {
		n, err := strconv.Atoi(rest)
		if err == nil {
			if h, ok := daubechiesScaling[n]; ok {
				return fromScaling("db"+strconv.Itoa(n), "Daubechies", n, h), nil
			}
		}
	}
	return Wavelet{}, fmt.Errorf("%w: %q", ErrUnknownWavelet, name)
}

// Names lists the supported wavelet names in sorted order.
func Names() []string {
	names := []string{"haar"}
	for n := range daubechiesScaling {
		names = append(names, "db"+strconv.Itoa(n))
	}
	sort.Strings(names)
	return names
}
