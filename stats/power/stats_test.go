package power

import (
	"math"
	"testing"
)

const tolerance = 1e-10

var goldenProfile = []int{
	10, 0, 4, 1, 0, 11, 100, 10, 15, 13, 4, 10, 24, 20, 6, 1,
	0, 7, 18, 29, 36, 39, 38, 34, 29, 23, 17, 11, 6, 3, 1, 0,
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestCalculateEmpty(t *testing.T) {
	if got := Calculate(nil); got != (Stats{}) {
		t.Fatalf("Calculate(nil) = %+v, want zero", got)
	}
	if got := StdDev(nil); got != 0 {
		t.Fatalf("StdDev(nil) = %v, want 0", got)
	}
}

func TestCalculateGolden(t *testing.T) {
	s := Calculate(goldenProfile)

	if s.Length != 32 {
		t.Errorf("Length = %d, want 32", s.Length)
	}
	if s.Sum != 520 {
		t.Errorf("Sum = %d, want 520", s.Sum)
	}
	if !almostEqual(s.Mean, 16.25, tolerance) {
		t.Errorf("Mean = %v, want 16.25", s.Mean)
	}
	if !almostEqual(s.Variance, 370.875, 1e-9) {
		t.Errorf("Variance = %v, want 370.875", s.Variance)
	}
	if !almostEqual(s.StdDev, math.Sqrt(370.875), 1e-9) {
		t.Errorf("StdDev = %v, want %v", s.StdDev, math.Sqrt(370.875))
	}
	if s.Min != 0 || s.Max != 100 || s.PeakBin != 6 {
		t.Errorf("min/max/peak = %d/%d/%d, want 0/100/6", s.Min, s.Max, s.PeakBin)
	}
	if !almostEqual(s.Centroid, 15.8, 1e-9) {
		t.Errorf("Centroid = %v, want 15.8", s.Centroid)
	}
}

func TestCalculateTable(t *testing.T) {
	tests := []struct {
		name     string
		values   []int
		mean     float64
		variance float64
		peak     int
	}{
		{name: "single", values: []int{7}, mean: 7, variance: 0, peak: 0},
		{name: "constant", values: []int{3, 3, 3, 3}, mean: 3, variance: 0, peak: 0},
		{name: "two-level", values: []int{0, 100}, mean: 50, variance: 2500, peak: 1},
		{name: "ramp", values: []int{1, 2, 3, 4}, mean: 2.5, variance: 1.25, peak: 3},
		{name: "first peak wins", values: []int{5, 9, 9, 1}, mean: 6, variance: 11, peak: 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Calculate(tc.values)
			if !almostEqual(s.Mean, tc.mean, tolerance) {
				t.Errorf("Mean = %v, want %v", s.Mean, tc.mean)
			}
			if !almostEqual(s.Variance, tc.variance, tolerance) {
				t.Errorf("Variance = %v, want %v", s.Variance, tc.variance)
			}
			if !almostEqual(s.StdDev, math.Sqrt(tc.variance), tolerance) {
				t.Errorf("StdDev = %v, want %v", s.StdDev, math.Sqrt(tc.variance))
			}
			if s.PeakBin != tc.peak {
				t.Errorf("PeakBin = %d, want %d", s.PeakBin, tc.peak)
			}
			if got := StdDev(tc.values); !almostEqual(got, s.StdDev, tolerance) {
				t.Errorf("StdDev() = %v, Calculate().StdDev = %v", got, s.StdDev)
			}
		})
	}
}

func TestCentroid(t *testing.T) {
	tests := []struct {
		values []int
		want   float64
	}{
		{values: nil, want: 0},
		{values: []int{0, 0, 0}, want: 0},
		{values: []int{42}, want: 0},
		{values: []int{0, 0, 10, 0}, want: 2},
		{values: []int{1, 0, 0, 1}, want: 1.5},
	}

	for _, tc := range tests {
		if got := Centroid(tc.values); !almostEqual(got, tc.want, tolerance) {
			t.Errorf("Centroid(%v) = %v, want %v", tc.values, got, tc.want)
		}
	}
}

func TestCalculateDoesNotMutateInput(t *testing.T) {
	in := append([]int(nil), goldenProfile...)
	_ = Calculate(in)

	for i := range in {
		if in[i] != goldenProfile[i] {
			t.Fatalf("input modified at %d", i)
		}
	}
}
