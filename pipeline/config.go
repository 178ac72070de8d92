package pipeline

import "fmt"

// Config holds the fixed parameters of a run.
type Config struct {
	Samples     int
	Start       float64 // seconds
	Stop        float64 // seconds
	Wavelet     string
	Level       int
	OutputPath  string
	PreviewRows int
	Tones       int // dominant tones in the report, 0 disables the spectrum
}

// DefaultConfig returns the parameters of the wavelet export: 1000 samples
// over [0, 10] s, db4, three levels, written to wavelet_data.csv.
func DefaultConfig() Config {
	return Config{
		Samples:     1000,
		Start:       0,
		Stop:        10,
		Wavelet:     "db4",
		Level:       3,
		OutputPath:  "wavelet_data.csv",
		PreviewRows: 5,
		Tones:       3,
	}
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Samples <= 0 {
		return fmt.Errorf("samples must be > 0: %d", c.Samples)
	}
	if c.Stop <= c.Start {
		return fmt.Errorf("interval must be increasing: [%f, %f]", c.Start, c.Stop)
	}
	if c.Level < 0 {
		return fmt.Errorf("level must be >= 0: %d", c.Level)
	}
	if c.OutputPath == "" {
		return fmt.Errorf("output path must not be empty")
	}
	if c.PreviewRows < 0 {
		return fmt.Errorf("preview rows must be >= 0: %d", c.PreviewRows)
	}
	return nil
}
