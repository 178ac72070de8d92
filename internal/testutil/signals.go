// Package testutil holds deterministic fixtures and tolerance assertions
// shared by the package tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicNoise generates white noise with a fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Ramp returns 0, 1, ..., length-1.
func Ramp(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// NaNs returns a slice of length n filled with NaN.
func NaNs(n int) []float64 {
	return DC(math.NaN(), n)
}
