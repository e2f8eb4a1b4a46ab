package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHanning
	TypeHamming
	TypeBlackman
)

// Cosine-sum coefficients: w(x) = sum_k c[k] * cos(2*pi*k*x).
var (
	hanningCoeffs  = []float64{0.5, -0.5}
	hammingCoeffs  = []float64{0.54, -0.46}
	blackmanCoeffs = []float64{0.42, -0.5, 0.08}
)

// Metadata holds static spectral properties of a window type.
type Metadata struct {
	Name            string
	ENBW            float64
	HighestSidelobe float64
	CoherentGain    float64
}

var metadataByType = map[Type]Metadata{
	TypeRectangular: {Name: "Rectangular", ENBW: 1, HighestSidelobe: -13.3, CoherentGain: 1},
	TypeHanning:     {Name: "Hanning", ENBW: 1.5, HighestSidelobe: -31.5, CoherentGain: 0.5},
	TypeHamming:     {Name: "Hamming", ENBW: 1.36, HighestSidelobe: -42.7, CoherentGain: 0.54},
	TypeBlackman:    {Name: "Blackman", ENBW: 1.73, HighestSidelobe: -58.1, CoherentGain: 0.42},
}

// Types lists the supported window types in declaration order.
func Types() []Type {
	return []Type{TypeRectangular, TypeHanning, TypeHamming, TypeBlackman}
}

// String returns the window name, or "Type(n)" for unknown values.
func (t Type) String() string {
	if m, ok := metadataByType[t]; ok {
		return m.Name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Parse resolves a case-insensitive window name. "hann" and "rect" are
// accepted as aliases.
func Parse(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "rectangular", "rect", "none":
		return TypeRectangular, nil
	case "hanning", "hann":
		return TypeHanning, nil
	case "hamming":
		return TypeHamming, nil
	case "blackman":
		return TypeBlackman, nil
	default:
		return TypeRectangular, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

// Option configures window generation.
type Option func(*config)

type config struct {
	symmetric bool
}

// WithSymmetric uses the symmetric form (denominator N-1) instead of the
// periodic form (denominator N) used for FFT framing.
func WithSymmetric() Option {
	return func(c *config) {
		c.symmetric = true
	}
}

// Generate returns window coefficients of the given length. Unknown types
// yield the rectangular window.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	for i := range out {
		out[i] = evalWindow(t, samplePosition(i, length, cfg.symmetric))
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 || coeffsFor(t) == nil {
		return
	}

	_ = ApplyCoefficientsInPlace(buf, Generate(t, len(buf), opts...))
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	if m, ok := metadataByType[t]; ok {
		return m
	}

	return Metadata{}
}

// CoherentGain returns sum(w[n]) / N, the DC response of the window.
func CoherentGain(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	return sum / float64(len(coeffs)), nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

func coeffsFor(t Type) []float64 {
	switch t {
	case TypeHanning:
		return hanningCoeffs
	case TypeHamming:
		return hammingCoeffs
	case TypeBlackman:
		return blackmanCoeffs
	default:
		return nil
	}
}

func evalWindow(t Type, x float64) float64 {
	coeffs := coeffsFor(t)
	if coeffs == nil {
		return 1
	}

	return cosineFromCoeffs(x, coeffs)
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}

func samplePosition(n, size int, symmetric bool) float64 {
	if size <= 1 {
		return 0
	}

	den := float64(size)
	if symmetric {
		den = float64(size - 1)
	}

	return float64(n) / den
}
