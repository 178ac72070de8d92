package wavelet

import "errors"

// Errors returned by the transform.
var (
	ErrUnknownWavelet = errors.New("wavelet: unknown wavelet")
	ErrUnknownMode    = errors.New("wavelet: unknown extension mode")
	ErrEmptyInput     = errors.New("wavelet: empty input")
	ErrInvalidLevel   = errors.New("wavelet: level must be >= 0")
	ErrLevelTooHigh   = errors.New("wavelet: level too high for signal length")
	ErrLengthMismatch = errors.New("wavelet: coefficient length mismatch")
)
