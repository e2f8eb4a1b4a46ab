package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-spectrum/dsp/window"
)

func newWindowsCmd() *cobra.Command {
	var (
		size      int
		symmetric bool
	)

	cmd := &cobra.Command{
		Use:   "windows",
		Short: "List window functions with their spectral properties",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if size <= 0 {
				return fmt.Errorf("window size must be > 0: %d", size)
			}

			var opts []window.Option
			if symmetric {
				opts = append(opts, window.WithSymmetric())
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(tw, "Window\tSize\tCoherent Gain\tENBW [bins]\tSidelobe [dB]\n")
			fmt.Fprintf(tw, "------\t----\t-------------\t-----------\t-------------\n")

			for _, t := range window.Types() {
				coeffs := window.Generate(t, size, opts...)
				cg, err := window.CoherentGain(coeffs)
				if err != nil {
					return fmt.Errorf("%s: %w", t, err)
				}
				enbw, err := window.EquivalentNoiseBandwidth(coeffs)
				if err != nil {
					return fmt.Errorf("%s: %w", t, err)
				}

				fmt.Fprintf(tw, "%s\t%d\t%.6f\t%.4f\t%.1f\n",
					t, size, cg, enbw, window.Info(t).HighestSidelobe)
			}

			return tw.Flush()
		},
	}

	cmd.Flags().IntVar(&size, "size", 1024, "window length in samples")
	cmd.Flags().BoolVar(&symmetric, "symmetric", false, "use the symmetric form instead of the periodic one")

	return cmd
}
