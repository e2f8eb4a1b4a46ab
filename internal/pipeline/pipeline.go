// Package pipeline runs the synthesize, window, transform and measure chain
// behind the spectra command.
package pipeline

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cwbudde/algo-spectrum/dsp/core"
	"github.com/cwbudde/algo-spectrum/dsp/signal"
	"github.com/cwbudde/algo-spectrum/dsp/spectrum"
	"github.com/cwbudde/algo-spectrum/dsp/window"
	powerstats "github.com/cwbudde/algo-spectrum/stats/power"
)

// Transform selects the analysis transform.
type Transform string

const (
	TransformDFT  Transform = "dft"
	TransformFFT  Transform = "fft"
	TransformPlan Transform = "plan"
)

// ErrUnknownTransform is returned for transform names other than dft, fft
// and plan.
var ErrUnknownTransform = errors.New("unknown transform")

// ParseTransform resolves a case-insensitive transform name.
func ParseTransform(name string) (Transform, error) {
	t := Transform(strings.ToLower(strings.TrimSpace(name)))
	switch t {
	case TransformDFT, TransformFFT, TransformPlan:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}
}

// Config describes one analysis run.
type Config struct {
	SampleRate  int       `json:"sample_rate" yaml:"sample_rate" mapstructure:"sample-rate"`
	Frequencies []int     `json:"frequencies" yaml:"frequencies" mapstructure:"freq"`
	Length      int       `json:"length" yaml:"length" mapstructure:"length"`
	Window      string    `json:"window" yaml:"window" mapstructure:"window"`
	Transform   Transform `json:"transform" yaml:"transform" mapstructure:"transform"`
	Normalize   bool      `json:"normalize" yaml:"normalize" mapstructure:"normalize"`
}

// DefaultConfig returns the reference experiment: a single 7-unit tone at
// unit sample rate over 32 samples, normalized and analysed with the DFT.
func DefaultConfig() Config {
	def := core.DefaultProcessorConfig()

	return Config{
		SampleRate:  def.SampleRate,
		Frequencies: []int{7},
		Length:      def.BlockSize,
		Window:      window.TypeRectangular.String(),
		Transform:   TransformDFT,
		Normalize:   true,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	pc := core.ApplyProcessorOptions(core.WithSampleRate(c.SampleRate), core.WithBlockSize(c.Length))
	if err := pc.Validate(); err != nil {
		return err
	}

	for _, f := range c.Frequencies {
		if f <= 0 {
			return fmt.Errorf("%w: %d", core.ErrInvalidFrequency, f)
		}
	}

	if _, err := window.Parse(c.Window); err != nil {
		return err
	}

	t, err := ParseTransform(string(c.Transform))
	if err != nil {
		return err
	}

	if t != TransformDFT && !core.IsPowerOfTwo(c.Length) {
		return fmt.Errorf("%s transform: %w: %d", t, core.ErrNotPowerOfTwo, c.Length)
	}

	return nil
}

// Result holds the outcome of a run.
type Result struct {
	Config   Config           `json:"config" yaml:"config"`
	Spectrum *spectrum.Signal `json:"-" yaml:"-"`
	Power    []int            `json:"power" yaml:"power"`
	Stats    powerstats.Stats `json:"stats" yaml:"stats"`
}

// Run executes cfg. A nil logger discards log output.
func Run(cfg Config, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	if err := cfg.Validate(); err != nil {
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}

	start := time.Now()
	kind, _ := window.Parse(cfg.Window)
	transform, _ := ParseTransform(string(cfg.Transform))
	cfg.Transform = transform

	synth, err := signal.NewSynthesizerWith(cfg.SampleRate, cfg.Frequencies...)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}

	sig, err := synth.Generate(cfg.Length)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}

	logger.Debug("synthesized signal",
		zap.Int("length", sig.Len()),
		zap.Int("sample_rate", cfg.SampleRate),
		zap.Ints("frequencies", cfg.Frequencies))

	sig.ApplyWindow(kind)
	if cfg.Normalize {
		sig.Normalize(0)
	}

	spec, err := transformSignal(sig, transform, cfg.SampleRate)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: %s: %w", transform, err)
	}

	levels := spec.Clone().PowerSpectrum()
	stats := powerstats.Calculate(levels)

	logger.Info("spectrum computed",
		zap.String("transform", string(transform)),
		zap.Stringer("window", kind),
		zap.Int("peak_bin", stats.PeakBin),
		zap.Float64("std_dev", stats.StdDev),
		zap.Duration("elapsed", time.Since(start)))

	return Result{
		Config:   cfg,
		Spectrum: spec,
		Power:    levels,
		Stats:    stats,
	}, nil
}

func transformSignal(sig *spectrum.Signal, t Transform, sampleRate int) (*spectrum.Signal, error) {
	switch t {
	case TransformFFT:
		return sig.FFT()
	case TransformPlan:
		return sig.PlanFFT()
	default:
		return sig.DFT(sampleRate)
	}
}
