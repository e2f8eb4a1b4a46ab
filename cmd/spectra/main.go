// Command spectra synthesizes a sum of sinusoids, transforms it and prints
// the resulting power spectrum.
//
// Usage:
//
//	spectra [run] [flags]
//	spectra windows [flags]
//
// Without a subcommand it runs the analysis. Settings are read from flags,
// then SPECTRA_* environment variables, then spectra.yaml in the working
// directory or $HOME/.config/spectra.
//
// Examples:
//
//	spectra
//	spectra --freq 4 --freq 16 --transform fft --window hann --bars
//	spectra run --sample-rate 2 --freq 3 --length 64 --output json
//	spectra windows --size 4096
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
