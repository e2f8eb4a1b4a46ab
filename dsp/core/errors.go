package core

import (
	"errors"
	"fmt"
	"math/bits"
)

// Precondition violations reported by the dsp packages. Call sites wrap them
// with the offending value; match with errors.Is.
var (
	ErrInvalidLength     = errors.New("length must be > 0")
	ErrInvalidSampleRate = errors.New("sample rate must be > 0")
	ErrInvalidFrequency  = errors.New("frequency must be > 0")
	ErrNotPowerOfTwo     = errors.New("size must be a power of two")
)

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// Log2 returns log2(n) for a positive power of two n.
func Log2(n int) (int, error) {
	if !IsPowerOfTwo(n) {
		return 0, fmt.Errorf("%w: %d", ErrNotPowerOfTwo, n)
	}
	return bits.TrailingZeros(uint(n)), nil
}
