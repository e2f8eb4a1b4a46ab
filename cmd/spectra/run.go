package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-spectrum/internal/pipeline"
	"github.com/cwbudde/algo-spectrum/internal/render"
)

const defaultBarHeight = 8

func addRunFlags(fs *pflag.FlagSet) {
	def := pipeline.DefaultConfig()

	fs.Int("sample-rate", def.SampleRate, "samples per period unit")
	fs.IntSlice("freq", def.Frequencies, "signal frequency, repeatable")
	fs.Int("length", def.Length, "number of samples")
	fs.String("window", def.Window, "window applied before the transform (rectangular, hanning, hamming, blackman)")
	fs.String("transform", string(def.Transform), "transform (dft, fft, plan)")
	fs.Bool("no-normalize", false, "skip normalizing the signal before the transform")
	fs.StringP("output", "o", "table", "output format (table, json, yaml)")
	fs.Bool("bars", false, "append a coloured bar chart of the power levels")
	fs.Int("bar-height", defaultBarHeight, "bar chart height in rows")
}

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the synthesis and analysis chain",
		Long: `Run the synthesis and analysis chain.

Examples:
  # Reference experiment: one 7-unit tone, 32 samples, direct DFT
  spectra run

  # Two tones through the radix-2 FFT with a Hanning window
  spectra run --freq 4 --freq 16 --transform fft --window hann --bars

  # YAML output for scripting
  spectra run --output yaml`,
		Args: cobra.NoArgs,
		RunE: a.runSpectrum,
	}
	addRunFlags(cmd.Flags())

	return cmd
}

func (a *app) pipelineConfig() pipeline.Config {
	v := a.v

	return pipeline.Config{
		SampleRate:  v.GetInt("sample-rate"),
		Frequencies: v.GetIntSlice("freq"),
		Length:      v.GetInt("length"),
		Window:      v.GetString("window"),
		Transform:   pipeline.Transform(v.GetString("transform")),
		Normalize:   !v.GetBool("no-normalize"),
	}
}

func (a *app) runSpectrum(cmd *cobra.Command, _ []string) error {
	logger, err := a.newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	format := a.v.GetString("output")
	if format != "table" && format != "json" && format != "yaml" {
		return fmt.Errorf("unknown output format %q", format)
	}

	res, err := pipeline.Run(a.pipelineConfig(), logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch format {
	case "json":
		err = writeJSON(out, res)
	case "yaml":
		err = writeYAML(out, res)
	default:
		err = writeTable(out, res)
	}
	if err != nil {
		return err
	}

	if a.v.GetBool("bars") {
		r := lipgloss.NewRenderer(out)
		if _, err := fmt.Fprintln(out, render.BarsWith(r, res.Power, a.v.GetInt("bar-height"))); err != nil {
			return fmt.Errorf("write bars: %w", err)
		}
	}

	return nil
}

func writeJSON(w io.Writer, res pipeline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, res pipeline.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}

func writeTable(w io.Writer, res pipeline.Result) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Bin\tRe\tIm\tLevel\n")
	fmt.Fprintf(tw, "---\t--\t--\t-----\n")
	for i, level := range res.Power {
		c := res.Spectrum.At(i)
		fmt.Fprintf(tw, "%d\t%.6f\t%.6f\t%d\n", i, real(c), imag(c), level)
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("write table: %w", err)
	}

	s := res.Stats
	_, err := fmt.Fprintf(w, "\nmean=%.4f variance=%.4f stddev=%.4f peak=%d centroid=%.4f\n",
		s.Mean, s.Variance, s.StdDev, s.PeakBin, s.Centroid)
	if err != nil {
		return fmt.Errorf("write stats: %w", err)
	}

	return nil
}
