// Package spectrum provides a complex-valued signal container and the
// transforms that move it between the time and frequency domains.
//
// A [Signal] owns index-aligned real and imaginary sample buffers. Windowing
// and normalization mutate a signal in place; the direct DFT, the radix-2
// FFT/IFFT and the bit-reversal permutation return a new [Signal] and leave
// the receiver untouched, so callers may keep the pre-transform value.
//
// [Signal.PowerSpectrum] reduces a spectrum to integers in [0,100] for
// statistics and visualization consumers.
package spectrum
