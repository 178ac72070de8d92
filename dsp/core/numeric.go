package core

import "math"

const defaultEpsilon = 1e-12

// NearlyEqual reports whether a and b are equal within eps.
// Two NaNs compare equal so padded columns can be checked element-wise.
func NearlyEqual(a, b, eps float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}

	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// NextPowerOf2 returns the smallest power of two >= n (1 for n <= 1).
func NextPowerOf2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
