// Package power computes summary statistics of integer power profiles such
// as the output of [spectrum.Signal.PowerSpectrum].
package power

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a power profile. Variance and StdDev use the population
// formulas: the squared deviations are divided by Length.
type Stats struct {
	Length   int
	Sum      int
	Mean     float64
	Variance float64
	StdDev   float64
	Min      int
	Max      int
	PeakBin  int     // first index holding Max
	Centroid float64 // level-weighted mean bin index
}

func toFloat(values []int) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}

	return out
}

// Calculate returns the statistics of values. An empty profile yields the
// zero Stats.
func Calculate(values []int) Stats {
	n := len(values)
	if n == 0 {
		return Stats{}
	}

	x := toFloat(values)
	mean, variance := stat.PopMeanVariance(x, nil)
	peak := floats.MaxIdx(x)

	sum := 0
	for _, v := range values {
		sum += v
	}

	return Stats{
		Length:   n,
		Sum:      sum,
		Mean:     mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Min:      int(floats.Min(x)),
		Max:      values[peak],
		PeakBin:  peak,
		Centroid: centroid(x),
	}
}

// StdDev returns the population standard deviation of values, or 0 for an
// empty profile.
func StdDev(values []int) float64 {
	if len(values) == 0 {
		return 0
	}

	_, variance := stat.PopMeanVariance(toFloat(values), nil)
	return math.Sqrt(variance)
}

// Centroid returns the level-weighted mean bin index. A profile with zero
// total level has centroid 0.
func Centroid(values []int) float64 {
	return centroid(toFloat(values))
}

func centroid(x []float64) float64 {
	total := floats.Sum(x)
	if total == 0 || len(x) < 2 {
		return 0
	}

	idx := floats.Span(make([]float64, len(x)), 0, float64(len(x)-1))

	return floats.Dot(idx, x) / total
}
