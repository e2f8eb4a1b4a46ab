package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-spectrum/dsp/core"
)

// DFT computes a direct O(n²) discrete Fourier transform of the real
// channel and returns it as a new signal of the same length.
//
// Bin i correlates the input against one cycle every (i+1)*sampleRate
// samples:
//
//	X[i] = sum_j re[j] * (cos θ - i·sin θ),  θ = 2π * (j mod p)/p,  p = (i+1)*sampleRate
//
// The imaginary channel of the input does not contribute, and exact-zero
// samples are skipped.
func (s *Signal) DFT(sampleRate int) (*Signal, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("%w: dft sample rate %d", core.ErrInvalidSampleRate, sampleRate)
	}
	// The widest bin period is size*sampleRate.
	if s.size > 0 && sampleRate > math.MaxInt/s.size {
		return nil, fmt.Errorf("%w: dft sample rate %d overflows the period of %d bins",
			core.ErrInvalidSampleRate, sampleRate, s.size)
	}

	out := s.empty()

	for i := range s.size {
		period := (i + 1) * sampleRate
		var accRe, accIm float64

		for j, v := range s.re {
			if v == 0 {
				continue
			}

			c, sn := unitPhasor(float64(j%period) / float64(period))
			accRe += v * c
			accIm -= v * sn
		}

		out.re[i] = accRe
		out.im[i] = accIm
	}

	return out, nil
}

// unitPhasor returns cos and sin of 2π*fraction, exact on the quadrant
// boundaries.
func unitPhasor(fraction float64) (c, s float64) {
	switch fraction {
	case 0:
		return 1, 0
	case 0.25:
		return 0, 1
	case 0.5:
		return -1, 0
	case 0.75:
		return 0, -1
	default:
		return math.Cos(2 * math.Pi * fraction), math.Sin(2 * math.Pi * fraction)
	}
}
