package core

// SynthConfig defines the sampling grid shared by signal synthesis and export.
type SynthConfig struct {
	Samples int
	Start   float64
	Stop    float64
}

// SynthOption mutates a SynthConfig.
type SynthOption func(*SynthConfig)

// DefaultSynthConfig returns the grid used by the wavelet export: 1000 samples
// evenly spread over [0, 10].
func DefaultSynthConfig() SynthConfig {
	return SynthConfig{
		Samples: 1000,
		Start:   0,
		Stop:    10,
	}
}

// WithSamples sets the number of samples on the grid.
func WithSamples(n int) SynthOption {
	return func(cfg *SynthConfig) {
		if n > 0 {
			cfg.Samples = n
		}
	}
}

// WithInterval sets the closed interval [start, stop] covered by the grid.
func WithInterval(start, stop float64) SynthOption {
	return func(cfg *SynthConfig) {
		if stop > start {
			cfg.Start = start
			cfg.Stop = stop
		}
	}
}

// ApplySynthOptions applies zero or more options to the default config.
func ApplySynthOptions(opts ...SynthOption) SynthConfig {
	cfg := DefaultSynthConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
