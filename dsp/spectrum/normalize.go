package spectrum

import "github.com/cwbudde/algo-spectrum/dsp/core"

// Normalize rescales the real channel in place to [offset, 1] using its own
// minimum and maximum: v' = (v-min)/(max-min)*(1-offset) + offset. A channel
// with zero range is left unchanged.
//
// The imaginary channel is never written. Its rescaled values are computed
// and discarded, so spectra keep their raw imaginary parts; PowerSpectrum
// depends on this. Use NormalizeComplex to rescale both channels.
func (s *Signal) Normalize(offset float64) {
	rescale(s.re, offset)
}

// NormalizeComplex rescales the real and imaginary channels independently to
// [offset, 1], each against its own range.
func (s *Signal) NormalizeComplex(offset float64) {
	rescale(s.re, offset)
	rescale(s.im, offset)
}

// NormalizeArray rescales values in place to [0, 1] via (v-min)/(max-min).
// Constant and empty inputs are left unchanged.
func NormalizeArray(values []float64) {
	rescale(values, 0)
}

func rescale(values []float64, offset float64) {
	lo, hi := core.MinMax(values)
	span := hi - lo
	if !(span > 0) {
		return
	}

	scale := 1 - offset
	for i, v := range values {
		values[i] = (v-lo)/span*scale + offset
	}
}
