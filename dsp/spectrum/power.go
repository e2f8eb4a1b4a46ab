package spectrum

import "github.com/cwbudde/algo-vecmath"

// powerScale is the integer value assigned to the strongest bin.
const powerScale = 100.0

// Magnitude returns |X[k]| = sqrt(re[k]^2 + im[k]^2) for every bin.
func (s *Signal) Magnitude() []float64 {
	out := make([]float64, s.size)
	vecmath.Magnitude(out, s.re, s.im)
	return out
}

// Power returns |X[k]|^2 for every bin.
func (s *Signal) Power() []float64 {
	out := make([]float64, s.size)
	vecmath.Power(out, s.re, s.im)
	return out
}

// PowerSpectrum reduces the signal to integer levels, one per bin.
//
// The real channel is first normalized in place with offset 0 (see
// Normalize; the imaginary channel keeps its raw values). Bin magnitudes are
// then rescaled to [0,1] and truncated from 100*m. Whenever the magnitudes
// are not all equal the strongest bin is exactly 100 and all others lie in
// [0,100). A constant magnitude profile yields truncations of the raw
// magnitudes instead.
//
// PowerSpectrum mutates the receiver.
func (s *Signal) PowerSpectrum() []int {
	s.Normalize(0)

	mag := s.Magnitude()
	NormalizeArray(mag)

	out := make([]int, len(mag))
	for i, m := range mag {
		out[i] = int(powerScale * m)
	}

	return out
}
