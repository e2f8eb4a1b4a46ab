package core

import (
	"errors"
	"testing"
)

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(8), WithBlockSize(2048))
	if cfg.SampleRate != 8 {
		t.Fatalf("sample rate = %v, want 8", cfg.SampleRate)
	}
	if cfg.BlockSize != 2048 {
		t.Fatalf("block size = %d, want 2048", cfg.BlockSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
}

func TestNilOptionIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestValidateRejectsNonPositive(t *testing.T) {
	tests := []struct {
		name string
		opts []ProcessorOption
		want error
	}{
		{name: "zero rate", opts: []ProcessorOption{WithSampleRate(0)}, want: ErrInvalidSampleRate},
		{name: "negative rate", opts: []ProcessorOption{WithSampleRate(-44100)}, want: ErrInvalidSampleRate},
		{name: "zero block", opts: []ProcessorOption{WithBlockSize(0)}, want: ErrInvalidLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ApplyProcessorOptions(tt.opts...).Validate()
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
