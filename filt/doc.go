// Package filt provides FIR band filtering for time series.
//
// Filters are designed as windowed-sinc kernels (Hamming window by
// default) and applied with FFT convolution. Kernels are symmetric and
// odd-length, so the applied filter is linear phase; [Apply] compensates
// the group delay, returning an output aligned with, and of the same
// length as, the input.
//
// The kernel length defaults to three cycles of the lowest cutoff
// frequency, which trades passband ripple against edge transients in a
// way that suits exploratory time-series work. Use [WithCycles] or
// [WithNumTaps] to override.
//
// Basic usage:
//
//	out, err := filt.Filter(sig, filt.Bandpass, 13, 30)
package filt
