package window

import "errors"

// ErrUnknownType is returned by [Parse] for unrecognized window names.
var ErrUnknownType = errors.New("unknown window type")

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
)
