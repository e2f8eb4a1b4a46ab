package spectrum

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/algo-spectrum/dsp/core"
)

// unsetLog2 marks a signal whose size has no radix-2 bit length.
const unsetLog2 = -1

// Signal is a complex signal stored as parallel real and imaginary buffers.
type Signal struct {
	size     int
	log2Size int
	re       []float64
	im       []float64
}

// Option configures a Signal at construction.
type Option func(*Signal)

// WithLog2Size sets the bit length used by the radix-2 routines explicitly.
// FFT and IFFT fail unless the size equals 2^n.
func WithLog2Size(n int) Option {
	return func(s *Signal) {
		s.log2Size = n
	}
}

// New returns a zeroed signal of the given size. The radix-2 bit length is
// derived when size is a power of two.
func New(size int, opts ...Option) (*Signal, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: signal size %d", core.ErrInvalidLength, size)
	}

	s := &Signal{
		size:     size,
		log2Size: unsetLog2,
		re:       make([]float64, size),
		im:       make([]float64, size),
	}
	if n, err := core.Log2(size); err == nil {
		s.log2Size = n
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	return s, nil
}

// FromReal returns a signal whose real channel is a copy of re.
func FromReal(re []float64, opts ...Option) (*Signal, error) {
	return FromParts(re, nil, opts...)
}

// FromParts returns a signal holding copies of re and im. A nil im leaves
// the imaginary channel at zero; otherwise both slices must have equal length.
func FromParts(re, im []float64, opts ...Option) (*Signal, error) {
	if im != nil && len(im) != len(re) {
		return nil, fmt.Errorf("real/imaginary length mismatch: %d != %d", len(re), len(im))
	}

	s, err := New(len(re), opts...)
	if err != nil {
		return nil, err
	}

	core.CopyInto(s.re, re)
	core.CopyInto(s.im, im)

	return s, nil
}

// FromComplex returns a signal holding the real and imaginary parts of bins.
func FromComplex(bins []complex128, opts ...Option) (*Signal, error) {
	s, err := New(len(bins), opts...)
	if err != nil {
		return nil, err
	}

	for i, c := range bins {
		s.re[i] = real(c)
		s.im[i] = imag(c)
	}

	return s, nil
}

// Len returns the number of samples.
func (s *Signal) Len() int { return s.size }

// Log2Len returns the radix-2 bit length, or -1 when none is set.
func (s *Signal) Log2Len() int { return s.log2Size }

// Real returns the real channel. The slice aliases the signal's storage.
func (s *Signal) Real() []float64 { return s.re }

// Imag returns the imaginary channel. The slice aliases the signal's storage.
func (s *Signal) Imag() []float64 { return s.im }

// At returns sample i as a complex value.
func (s *Signal) At(i int) complex128 {
	return complex(s.re[i], s.im[i])
}

// Complex returns a copy of the samples as complex values.
func (s *Signal) Complex() []complex128 {
	out := make([]complex128, s.size)
	for i := range out {
		out[i] = complex(s.re[i], s.im[i])
	}
	return out
}

// Clone returns a deep copy sharing no storage with s.
func (s *Signal) Clone() *Signal {
	c := s.empty()
	copy(c.re, s.re)
	copy(c.im, s.im)
	return c
}

// Reset zeroes both channels.
func (s *Signal) Reset() {
	core.Zero(s.re)
	core.Zero(s.im)
}

// empty returns a zeroed signal with the same shape as s.
func (s *Signal) empty() *Signal {
	return &Signal{
		size:     s.size,
		log2Size: s.log2Size,
		re:       make([]float64, s.size),
		im:       make([]float64, s.size),
	}
}

func (s *Signal) requireRadix2() error {
	if s.log2Size < 0 || s.log2Size >= strconv.IntSize-1 || s.size != 1<<s.log2Size {
		return fmt.Errorf("%w: size %d, log2 size %d", core.ErrNotPowerOfTwo, s.size, s.log2Size)
	}
	return nil
}
