// Package report summarizes an export table: per-band statistics, each band's
// share of the coefficient energy and the dominant tones of the signal.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-wavelet/dsp/signal"
	"github.com/cwbudde/algo-wavelet/dsp/spectrum"
	"github.com/cwbudde/algo-wavelet/export"
	timestats "github.com/cwbudde/algo-wavelet/stats/time"
)

// DefaultTones is the number of spectral peaks reported.
const DefaultTones = 3

// Band describes one coefficient column with its padding removed.
type Band struct {
	Name        string
	Stats       timestats.Stats
	EnergyShare float64
}

// Report is the diagnostic summary of one run.
type Report struct {
	SampleRate float64
	Signal     timestats.Stats
	Bands      []Band
	Tones      []spectrum.Peak
}

// Analyze builds a report from the time axis t and the export table. Every
// float column after the signal is treated as a coefficient band.
func Analyze(t []float64, tbl *export.Table, tones int) (Report, error) {
	fs, err := signal.SampleRate(t)
	if err != nil {
		return Report{}, fmt.Errorf("report: %w", err)
	}
	sig, err := tbl.Column(export.ColumnSignal)
	if err != nil {
		return Report{}, fmt.Errorf("report: %w", err)
	}

	r := Report{SampleRate: fs, Signal: timestats.Calculate(sig.Values)}
	for _, c := range tbl.Columns() {
		if c.Kind != export.KindFloat || c.Name == export.ColumnSignal {
			continue
		}
		r.Bands = append(r.Bands, Band{
			Name:  c.Name,
			Stats: timestats.Calculate(timestats.Finite(c.Values)),
		})
	}
	energy := make([]float64, len(r.Bands))
	for i, b := range r.Bands {
		energy[i] = b.Stats.Energy
	}
	if total := floats.Sum(energy); total > 0 {
		floats.Scale(1/total, energy)
		for i := range r.Bands {
			r.Bands[i].EnergyShare = energy[i]
		}
	}

	if tones > 0 {
		r.Tones, err = spectrum.Dominant(sig.Values, fs, tones)
		if err != nil {
			return Report{}, fmt.Errorf("report: %w", err)
		}
	}
	return r, nil
}

// Write prints the report as aligned text.
func (r Report) Write(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Signal: %d samples at %.3f Hz, rms %.6f, peak %.6f\n",
		r.Signal.Length, r.SampleRate, r.Signal.RMS, r.Signal.Peak)
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "band\tlength\tmean\trms\tpeak\tenergy\tshare")
	for _, b := range r.Bands {
		fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.6f\t%.6f\t%.6f\t%.2f%%\n",
			b.Name, b.Stats.Length, b.Stats.DC, b.Stats.RMS, b.Stats.Peak, b.Stats.Energy, 100*b.EnergyShare)
	}
	if len(r.Tones) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "tone\tfrequency\tmagnitude")
		for i, p := range r.Tones {
			fmt.Fprintf(tw, "%d\t%.3f Hz\t%.3f\n", i+1, p.FreqHz, p.Magnitude)
		}
	}
	return tw.Flush()
}
