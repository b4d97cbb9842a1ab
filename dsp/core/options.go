package core

import "time"

// Defaults used when no option overrides them.
const (
	DefaultSampleRate = 44000
	DefaultBlockSize  = 128
)

// ProcessorConfig defines common DSP processing settings.
//
// BlockSize is the batch length used by generators and containers; it is a
// buffering convenience only and never changes filter results.
type ProcessorConfig struct {
	SampleRate float64
	BlockSize  int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the offline rendering defaults.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: DefaultSampleRate,
		BlockSize:  DefaultBlockSize,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
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

// WithConfig copies a complete configuration. Non-positive fields keep
// their current value.
func WithConfig(c ProcessorConfig) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		WithSampleRate(c.SampleRate)(cfg)
		WithBlockSize(c.BlockSize)(cfg)
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

// Nyquist returns half the sample rate.
func (c ProcessorConfig) Nyquist() float64 {
	return c.SampleRate / 2
}

// SamplesDuration converts a sample count to wall-clock duration.
func (c ProcessorConfig) SamplesDuration(n int) time.Duration {
	if c.SampleRate <= 0 {
		return 0
	}
	return time.Duration(float64(n) / c.SampleRate * float64(time.Second))
}

// BlockDuration is the duration of one full block.
func (c ProcessorConfig) BlockDuration() time.Duration {
	return c.SamplesDuration(c.BlockSize)
}
