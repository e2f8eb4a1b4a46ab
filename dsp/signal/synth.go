// Package signal synthesizes discrete test signals as sums of sinusoids.
package signal

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectrum/dsp/core"
	"github.com/cwbudde/algo-spectrum/dsp/spectrum"
)

// Synthesizer builds real-valued signals from a set of integer frequencies.
// The sample rate is fixed at construction; frequencies may be added at any
// time and every Generate call reads the current set.
type Synthesizer struct {
	cfg         core.ProcessorConfig
	frequencies []int
}

// NewSynthesizer creates a synthesizer from processor options. Only the
// sample rate and block size are used; both must be positive.
func NewSynthesizer(opts ...core.ProcessorOption) (*Synthesizer, error) {
	cfg := core.ApplyProcessorOptions(opts...)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("synthesizer: %w", err)
	}

	return &Synthesizer{cfg: cfg}, nil
}

// NewSynthesizerWith creates a synthesizer at sampleRate holding freqs.
func NewSynthesizerWith(sampleRate int, freqs ...int) (*Synthesizer, error) {
	s, err := NewSynthesizer(core.WithSampleRate(sampleRate))
	if err != nil {
		return nil, err
	}

	for _, f := range freqs {
		if err := s.Add(f); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Add appends a frequency. Duplicates are kept and add up.
func (s *Synthesizer) Add(freq int) error {
	if err := s.checkFrequency(freq); err != nil {
		return err
	}

	s.frequencies = append(s.frequencies, freq)
	return nil
}

// Frequencies returns a copy of the registered frequencies in insertion order.
func (s *Synthesizer) Frequencies() []int {
	return append([]int(nil), s.frequencies...)
}

// SampleRate returns the sample rate fixed at construction.
func (s *Synthesizer) SampleRate() int {
	return s.cfg.SampleRate
}

// Config returns the synthesizer processor configuration.
func (s *Synthesizer) Config() core.ProcessorConfig {
	return s.cfg
}

// Generate returns a new signal of the given length whose real channel is the
// sum of one sine per registered frequency. The imaginary channel is zero.
func (s *Synthesizer) Generate(length int) (*spectrum.Signal, error) {
	out, err := spectrum.New(length)
	if err != nil {
		return nil, fmt.Errorf("synthesizer: %w", err)
	}

	re := out.Real()
	for i := range re {
		for _, f := range s.frequencies {
			re[i] += s.sine(f, i)
		}
	}

	return out, nil
}

// GenerateBlock is Generate with the configured block size.
func (s *Synthesizer) GenerateBlock() (*spectrum.Signal, error) {
	return s.Generate(s.cfg.BlockSize)
}

// Sine returns sample i of a sine completing one cycle every
// sampleRate*freq samples. Whole-cycle positions are exactly 0. freq must
// be positive and keep the period within int range; i must not be negative.
func (s *Synthesizer) Sine(freq, i int) (float64, error) {
	if err := s.checkFrequency(freq); err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, fmt.Errorf("synthesizer: %w: sample index %d", core.ErrInvalidLength, i)
	}

	return s.sine(freq, i), nil
}

// checkFrequency rejects frequencies whose period sampleRate*freq is not a
// positive int.
func (s *Synthesizer) checkFrequency(freq int) error {
	if freq <= 0 || freq > math.MaxInt/s.cfg.SampleRate {
		return fmt.Errorf("synthesizer: %w: %d at sample rate %d",
			core.ErrInvalidFrequency, freq, s.cfg.SampleRate)
	}
	return nil
}

// sine is Sine without argument checks.
func (s *Synthesizer) sine(freq, i int) float64 {
	period := s.cfg.SampleRate * freq
	fraction := float64(i%period) / float64(period)
	if fraction == 0 {
		return 0
	}

	return math.Sin(2 * math.Pi * fraction)
}
