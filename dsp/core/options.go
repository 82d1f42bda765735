package core

import "math"

// ProcessorConfig defines the environment-level settings shared by the
// expression graph, the evaluation driver and the exporters. It is supplied
// once at startup and treated as read-only afterwards.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
	// Duration is the length of a full render in seconds.
	Duration float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns 44.1 kHz, 1024-sample blocks and a
// ten second render length.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 44100,
		BlockSize:  1024,
		Duration:   10,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 && !math.IsInf(sampleRate, 0) {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithBlockSize sets the processing block size.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if blockSize > 0 {
			cfg.BlockSize = blockSize
		}
	}
}

// WithDuration sets the full render length in seconds.
func WithDuration(seconds float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if seconds > 0 && !math.IsInf(seconds, 0) {
			cfg.Duration = seconds
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Samples returns the number of samples in a full render,
// round(SampleRate * Duration).
func (cfg ProcessorConfig) Samples() int {
	return int(math.Round(cfg.SampleRate * cfg.Duration))
}
