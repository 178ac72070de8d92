// Command wavinfo prints filter-bank properties of the available wavelets and
// the coefficient band lengths a decomposition of a given signal length yields.
//
// Usage:
//
//	wavinfo [flags] [wavelet-name ...]
//
// Without arguments it prints info for all known wavelets.
//
// Examples:
//
//	wavinfo db4
//	wavinfo -n 4096 -level 5 db2 db4
//	wavinfo -list
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-wavelet/dsp/wavelet"
)

func main() {
	n := flag.Int("n", 1000, "signal length in samples")
	level := flag.Int("level", -1, "decomposition depth (-1 uses the maximum useful level)")
	list := flag.Bool("list", false, "list available wavelet names")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: wavinfo [flags] [wavelet-name ...]\n\n")
		fmt.Fprintf(os.Stderr, "Prints filter properties and band lengths of wavelets.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  wavinfo db4\n")
		fmt.Fprintf(os.Stderr, "  wavinfo -n 4096 -level 5 db2 db4\n")
	}
	flag.Parse()

	if *list {
		for _, name := range wavelet.Names() {
			fmt.Println(name)
		}
		return
	}
	if *n <= 0 {
		fmt.Fprintf(os.Stderr, "error: -n must be > 0: %d\n", *n)
		os.Exit(1)
	}

	names := flag.Args()
	if len(names) == 0 {
		names = wavelet.Names()
	}

	var rows []info
	for _, name := range names {
		w, err := wavelet.Lookup(strings.TrimSpace(name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v (use -list to see available)\n", err)
			continue
		}
		rows = append(rows, describe(w, *n, *level))
	}
	if len(rows) == 0 {
		fmt.Fprintf(os.Stderr, "error: no matching wavelets\n")
		os.Exit(1)
	}

	if err := printTable(rows, *n); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type info struct {
	name     string
	taps     int
	moments  int
	maxLevel int
	level    int
	bands    []int
	normErr  float64 // |sum(h^2) - 1|
	dcErr    float64 // |sum(h) - sqrt(2)|
}

func describe(w wavelet.Wavelet, n, level int) info {
	maxLevel := wavelet.MaxLevel(n, w.Len())
	if level < 0 || level > maxLevel {
		level = maxLevel
	}
	return info{
		name:     w.Name,
		taps:     w.Len(),
		moments:  w.VanishingMoments,
		maxLevel: maxLevel,
		level:    level,
		bands:    bandLengths(n, w.Len(), level),
		normErr:  math.Abs(floats.Dot(w.RecLo, w.RecLo) - 1),
		dcErr:    math.Abs(floats.Sum(w.RecLo) - math.Sqrt2),
	}
}

// bandLengths returns the lengths of [cA_level, cD_level, ..., cD_1].
func bandLengths(n, filterLen, level int) []int {
	if level == 0 {
		return []int{n}
	}
	details := make([]int, level)
	for i := range details {
		n = wavelet.CoeffLen(n, filterLen)
		details[i] = n
	}
	out := make([]int, 0, level+1)
	out = append(out, n)
	for i := level - 1; i >= 0; i-- {
		out = append(out, details[i])
	}
	return out
}

func printTable(rows []info, n int) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Wavelet\tTaps\tMoments\tMax Level (N=%d)\tLevel\tBand Lengths\t|sum h^2 - 1|\t|sum h - sqrt2|\n", n)
	fmt.Fprintf(tw, "-------\t----\t-------\t---------\t-----\t------------\t-------------\t--------------\n")
	for _, r := range rows {
		lens := make([]string, len(r.bands))
		for i, l := range r.bands {
			lens[i] = fmt.Sprint(l)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t%s\t%.2e\t%.2e\n",
			r.name, r.taps, r.moments, r.maxLevel, r.level, strings.Join(lens, "/"), r.normErr, r.dcErr)
	}
	return tw.Flush()
}
