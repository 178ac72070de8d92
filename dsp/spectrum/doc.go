// Package spectrum provides the one-sided magnitude spectrum and peak picking
// used to report the dominant tones of a signal.
//
// FFTs are computed with algo-fft; magnitude unpacking uses the SIMD kernels
// of algo-vecmath.
package spectrum
