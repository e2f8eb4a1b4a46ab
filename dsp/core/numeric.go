package core

import "math"

const defaultEpsilon = 1e-12

// Clamp limits value to the inclusive range [lo, hi].
func Clamp(value, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	if value < lo {
		return lo
	}

	if value > hi {
		return hi
	}

	return value
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// MinMax returns the smallest and largest value of data.
// Both are zero for empty input.
func MinMax(data []float64) (lo, hi float64) {
	if len(data) == 0 {
		return 0, 0
	}

	lo, hi = data[0], data[0]
	for _, v := range data[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}

	return lo, hi
}
