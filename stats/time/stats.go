// Package time computes time-domain statistics of sample sequences, including
// NaN-padded coefficient columns.
package time

import "math"

// Stats holds time-domain signal statistics.
type Stats struct {
	Length        int
	DC            float64 // mean
	RMS           float64
	Max           float64
	MaxPos        int
	Min           float64
	MinPos        int
	Peak          float64 // max(|max|, |min|)
	Energy        float64 // sum of squares
	Variance      float64 // population variance
	StdDev        float64
	ZeroCrossings int
}

// Calculate computes all statistics in a single pass using Welford's online
// update for the variance.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var (
		mean, m2      float64
		sumSq         float64
		maxVal        = signal[0]
		maxPos        int
		minVal        = signal[0]
		minPos        int
		zeroCrossings int
	)

	for i, x := range signal {
		delta := x - mean
		mean += delta / float64(i+1)
		m2 += delta * (x - mean)

		sumSq += x * x

		if x > maxVal {
			maxVal = x
			maxPos = i
		}
		if x < minVal {
			minVal = x
			minPos = i
		}

		if i > 0 && signal[i-1]*x < 0 {
			zeroCrossings++
		}
	}

	nf := float64(n)
	variance := m2 / nf

	return Stats{
		Length:        n,
		DC:            mean,
		RMS:           math.Sqrt(sumSq / nf),
		Max:           maxVal,
		MaxPos:        maxPos,
		Min:           minVal,
		MinPos:        minPos,
		Peak:          math.Max(math.Abs(maxVal), math.Abs(minVal)),
		Energy:        sumSq,
		Variance:      variance,
		StdDev:        math.Sqrt(variance),
		ZeroCrossings: zeroCrossings,
	}
}

// Finite returns the leading run of x that contains no NaN, which is the
// native part of a NaN-padded column.
func Finite(x []float64) []float64 {
	for i, v := range x {
		if math.IsNaN(v) {
			return x[:i]
		}
	}
	return x
}

// NonNull counts the entries of x that are not NaN.
func NonNull(x []float64) int {
	n := 0
	for _, v := range x {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}
	return math.Sqrt(sumSq / float64(len(signal)))
}
