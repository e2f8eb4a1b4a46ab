package spectrum

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-spectrum/dsp/core"
	"github.com/cwbudde/algo-spectrum/internal/testutil"
	"gonum.org/v1/gonum/dsp/fourier"
)

func TestBitReversalTable(t *testing.T) {
	got, err := BitReversal(8)
	if err != nil {
		t.Fatalf("BitReversal error: %v", err)
	}

	want := []int{0, 4, 2, 6, 1, 5, 3, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("table = %v, want %v", got, want)
		}
	}

	one, err := BitReversal(1)
	if err != nil || len(one) != 1 || one[0] != 0 {
		t.Fatalf("BitReversal(1) = %v, %v", one, err)
	}
}

func TestBitReversalMatchesBitwiseReverse(t *testing.T) {
	for _, n := range testutil.PowerOfTwoSizes(1024) {
		bitsN, _ := core.Log2(n)
		table, err := BitReversal(n)
		if err != nil {
			t.Fatalf("BitReversal(%d) error: %v", n, err)
		}

		for k, v := range table {
			r := 0
			for b := range bitsN {
				if k&(1<<b) != 0 {
					r |= 1 << (bitsN - 1 - b)
				}
			}
			if v != r {
				t.Fatalf("n=%d: table[%d] = %d, want %d", n, k, v, r)
			}
		}
	}
}

func TestBitReversalInvolution(t *testing.T) {
	for _, n := range testutil.PowerOfTwoSizes(1024) {
		re := make([]float64, n)
		for i := range re {
			re[i] = float64(i)
		}

		s, _ := FromReal(re)
		once, err := s.BitReverse()
		if err != nil {
			t.Fatalf("n=%d: BitReverse error: %v", n, err)
		}
		twice, err := once.BitReverse()
		if err != nil {
			t.Fatalf("n=%d: BitReverse error: %v", n, err)
		}

		testutil.RequireSliceNearlyEqual(t, twice.Real(), re, 0)
	}
}

func TestBitReversalRejectsNonPowerOfTwo(t *testing.T) {
	for _, n := range []int{0, 3, 6, 100} {
		if _, err := BitReversal(n); !errors.Is(err, core.ErrNotPowerOfTwo) {
			t.Fatalf("BitReversal(%d) error = %v, want ErrNotPowerOfTwo", n, err)
		}
	}
}

func TestFFTRequiresRadix2(t *testing.T) {
	odd, _ := New(12)
	if _, err := odd.FFT(); !errors.Is(err, core.ErrNotPowerOfTwo) {
		t.Fatalf("FFT on 12 points error = %v", err)
	}
	if _, err := odd.IFFT(); !errors.Is(err, core.ErrNotPowerOfTwo) {
		t.Fatalf("IFFT on 12 points error = %v", err)
	}
	if _, err := odd.PlanFFT(); !errors.Is(err, core.ErrNotPowerOfTwo) {
		t.Fatalf("PlanFFT on 12 points error = %v", err)
	}

	mismatched, _ := New(32, WithLog2Size(4))
	if _, err := mismatched.FFT(); !errors.Is(err, core.ErrNotPowerOfTwo) {
		t.Fatalf("FFT with size 32 and log2 4 error = %v", err)
	}
	if _, err := mismatched.BitReverse(); !errors.Is(err, core.ErrNotPowerOfTwo) {
		t.Fatalf("BitReverse with size 32 and log2 4 error = %v", err)
	}
}

func TestFFTMatchesNaiveDFT(t *testing.T) {
	for _, n := range []int{1, 2, 4, 8, 32, 128} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			re := testutil.DeterministicNoise(int64(n), 1, n)
			im := testutil.DeterministicNoise(int64(n)+1, 1, n)
			s, _ := FromParts(re, im)

			got, err := s.FFT()
			if err != nil {
				t.Fatalf("FFT error: %v", err)
			}

			want := make([]complex128, n)
			for k := range want {
				for j := range n {
					want[k] += complex(re[j], im[j]) * cmplx.Rect(1, -2*math.Pi*float64(j*k)/float64(n))
				}
			}

			testutil.RequireComplexNearlyEqual(t, got.Complex(), want, 1e-9)
		})
	}
}

func TestFFTMatchesGonum(t *testing.T) {
	for _, n := range testutil.PowerOfTwoSizes(512) {
		x := make([]complex128, n)
		re := testutil.DeterministicNoise(11, 1, n)
		for i := range x {
			x[i] = complex(re[i], 0)
		}

		s, _ := FromComplex(x)
		got, err := s.FFT()
		if err != nil {
			t.Fatalf("n=%d: FFT error: %v", n, err)
		}

		want := fourier.NewCmplxFFT(n).Coefficients(nil, x)
		testutil.RequireComplexNearlyEqual(t, got.Complex(), want, 1e-9)
	}
}

func TestPlanFFTMatchesFFT(t *testing.T) {
	for _, n := range testutil.PowerOfTwoSizes(1024) {
		re := testutil.DeterministicNoise(21, 1, n)
		im := testutil.DeterministicNoise(22, 1, n)
		s, _ := FromParts(re, im)

		ref, err := s.FFT()
		if err != nil {
			t.Fatalf("n=%d: FFT error: %v", n, err)
		}

		got, err := s.PlanFFT()
		if err != nil {
			t.Fatalf("n=%d: PlanFFT error: %v", n, err)
		}

		if got.Log2Len() != s.Log2Len() {
			t.Fatalf("n=%d: Log2Len() = %d, want %d", n, got.Log2Len(), s.Log2Len())
		}
		testutil.RequireComplexNearlyEqual(t, got.Complex(), ref.Complex(), 1e-9)
	}
}

func TestIFFTRoundTrip(t *testing.T) {
	for _, n := range testutil.PowerOfTwoSizes(1024) {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			re := testutil.DeterministicNoise(int64(n), 10, n)
			s, _ := FromReal(re)

			spec, err := s.FFT()
			if err != nil {
				t.Fatalf("FFT error: %v", err)
			}

			back, err := spec.IFFT()
			if err != nil {
				t.Fatalf("IFFT error: %v", err)
			}

			testutil.RequireSliceRelNearlyEqual(t, back.Real(), re, 1e-9)
			testutil.RequireSliceRelNearlyEqual(t, back.Imag(), make([]float64, n), 1e-9)
		})
	}
}

func TestIFFTRoundTripComplex(t *testing.T) {
	re := testutil.DeterministicNoise(5, 1, 64)
	im := testutil.DeterministicNoise(6, 1, 64)
	s, _ := FromParts(re, im)

	spec, _ := s.FFT()
	back, err := spec.IFFT()
	if err != nil {
		t.Fatalf("IFFT error: %v", err)
	}

	testutil.RequireSliceRelNearlyEqual(t, back.Real(), re, 1e-9)
	testutil.RequireSliceRelNearlyEqual(t, back.Imag(), im, 1e-9)
}

func TestTransformsDoNotMutateReceiver(t *testing.T) {
	re := testutil.DeterministicNoise(8, 1, 16)
	im := testutil.DeterministicNoise(9, 1, 16)
	s, _ := FromParts(re, im)

	if _, err := s.FFT(); err != nil {
		t.Fatalf("FFT error: %v", err)
	}
	if _, err := s.IFFT(); err != nil {
		t.Fatalf("IFFT error: %v", err)
	}
	if _, err := s.PlanFFT(); err != nil {
		t.Fatalf("PlanFFT error: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, s.Real(), re, 0)
	testutil.RequireSliceNearlyEqual(t, s.Imag(), im, 0)
}

// Direct DFT bin d-1 uses a period of d samples at unit sample rate, which is
// FFT bin N/d for every divisor d of N.
func TestDFTAgreesWithFFTOnAlignedBins(t *testing.T) {
	for _, n := range testutil.PowerOfTwoSizes(256) {
		re := testutil.DeterministicNoise(int64(3*n), 1, n)
		s, _ := FromReal(re)

		direct, err := s.DFT(1)
		if err != nil {
			t.Fatalf("n=%d: DFT error: %v", n, err)
		}
		fast, err := s.FFT()
		if err != nil {
			t.Fatalf("n=%d: FFT error: %v", n, err)
		}

		directMag := direct.Magnitude()
		fastMag := fast.Magnitude()

		for d := 1; d <= n; d <<= 1 {
			k := (n / d) % n
			if cmplx.Abs(direct.At(d-1)-fast.At(k)) > 1e-9 {
				t.Fatalf("n=%d d=%d: dft=%v fft=%v", n, d, direct.At(d-1), fast.At(k))
			}
			if math.Abs(directMag[d-1]-fastMag[k]) > 1e-9 {
				t.Fatalf("n=%d d=%d: |dft|=%v |fft|=%v", n, d, directMag[d-1], fastMag[k])
			}
		}
	}
}
