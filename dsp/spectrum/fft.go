package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-spectrum/dsp/core"
	"github.com/cwbudde/algo-vecmath"
)

// BitReversal returns the bit-reversal permutation for n points: entry k
// holds the value whose log2(n)-bit binary form is k reversed. The table is
// built by mirroring each filled block with half the current stride added.
func BitReversal(n int) ([]int, error) {
	if !core.IsPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: bit reversal of %d points", core.ErrNotPowerOfTwo, n)
	}

	table := make([]int, n)
	half := n >> 1
	for block := 1; block < n; block <<= 1 {
		for j := range block {
			table[j+block] = table[j] + half
		}
		half >>= 1
	}

	return table, nil
}

// BitReverse returns a copy of s with its samples reordered through the
// bit-reversal permutation.
func (s *Signal) BitReverse() (*Signal, error) {
	if err := s.requireRadix2(); err != nil {
		return nil, err
	}

	table, err := BitReversal(s.size)
	if err != nil {
		return nil, err
	}

	return s.permute(table), nil
}

// FFT computes the radix-2 decimation-in-time Fourier transform and returns
// it as a new signal. The size must equal 2^Log2Len.
func (s *Signal) FFT() (*Signal, error) {
	if err := s.requireRadix2(); err != nil {
		return nil, err
	}

	table, err := BitReversal(s.size)
	if err != nil {
		return nil, err
	}

	out := s.permute(table)
	out.butterflies()

	return out, nil
}

// IFFT computes the inverse of FFT and returns it as a new signal. The
// receiver is not modified.
func (s *Signal) IFFT() (*Signal, error) {
	if err := s.requireRadix2(); err != nil {
		return nil, err
	}

	conj := s.Clone()
	core.Negate(conj.im)

	out, err := conj.FFT()
	if err != nil {
		return nil, err
	}

	n := float64(s.size)
	vecmath.ScaleBlock(out.re, out.re, 1/n)
	vecmath.ScaleBlock(out.im, out.im, -1/n)

	return out, nil
}

// PlanFFT computes the same forward transform as FFT through an algo-fft
// plan. It is the faster path for large sizes.
func (s *Signal) PlanFFT() (*Signal, error) {
	if err := s.requireRadix2(); err != nil {
		return nil, err
	}

	plan, err := algofft.NewPlan64(s.size)
	if err != nil {
		return nil, fmt.Errorf("fft plan for %d points: %w", s.size, err)
	}

	bins := make([]complex128, s.size)
	if err := plan.Forward(bins, s.Complex()); err != nil {
		return nil, fmt.Errorf("fft forward: %w", err)
	}

	out, err := FromComplex(bins, WithLog2Size(s.log2Size))
	if err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Signal) permute(table []int) *Signal {
	out := s.empty()
	for i, k := range table {
		out.re[i] = s.re[k]
		out.im[i] = s.im[k]
	}
	return out
}

// butterflies runs the log2Size combination stages in place on bit-reversed
// input.
func (s *Signal) butterflies() {
	re, im := s.re, s.im

	for stage := 1; stage <= s.log2Size; stage++ {
		distance := 1 << stage
		half := distance >> 1

		// Twiddle w starts at 1 and advances by u = exp(-iπ/half).
		wRe, wIm := 1.0, 0.0
		uRe := math.Cos(math.Pi / float64(half))
		uIm := -math.Sin(math.Pi / float64(half))

		for k := range half {
			for j := k; j < s.size; j += distance {
				jp := j + half
				tRe := re[jp]*wRe - im[jp]*wIm
				tIm := re[jp]*wIm + im[jp]*wRe
				re[jp] = re[j] - tRe
				im[jp] = im[j] - tIm
				re[j] += tRe
				im[j] += tIm
			}
			wRe, wIm = wRe*uRe-wIm*uIm, wRe*uIm+wIm*uRe
		}
	}
}
