package spectrum

import "github.com/cwbudde/algo-spectrum/dsp/window"

// ApplyWindow multiplies the real channel in place by the periodic window of
// the given kind (denominator N = Len). The imaginary channel is untouched.
// Rectangular and unknown kinds leave the signal unchanged.
func (s *Signal) ApplyWindow(kind window.Type) {
	window.Apply(kind, s.re)
}
