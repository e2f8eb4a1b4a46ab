package core

import "fmt"

// ProcessorConfig defines common settings shared by synthesis and analysis.
type ProcessorConfig struct {
	// SampleRate is the number of samples per period unit. Synthesis and the
	// direct DFT use it as an integer divisor, so it must be positive.
	SampleRate int
	// BlockSize is the default number of samples produced or analysed.
	BlockSize int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns the configuration of the reference
// experiment: unit sample rate and 32-sample blocks.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 1,
		BlockSize:  32,
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		cfg.SampleRate = sampleRate
	}
}

// WithBlockSize sets the processing block size.
func WithBlockSize(blockSize int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		cfg.BlockSize = blockSize
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
// The result is not validated; see [ProcessorConfig.Validate].
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Validate reports the first precondition the configuration violates.
func (c ProcessorConfig) Validate() error {
	if c.SampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, c.SampleRate)
	}
	if c.BlockSize <= 0 {
		return fmt.Errorf("%w: block size %d", ErrInvalidLength, c.BlockSize)
	}
	return nil
}
