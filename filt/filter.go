package filt

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-neuro/core"
)

// Errors returned when applying kernels.
var (
	ErrEmptyKernel   = errors.New("filt: empty kernel")
	ErrKernelTooLong = errors.New("filt: kernel longer than signal")
)

// Filter designs a kernel for the given pass type and band edges and
// applies it to the series. The output has the same length and sample
// rate as the input; the input is left untouched.
func Filter(ts core.TimeSeries, pass PassType, low, high float64, opts ...Option) (core.TimeSeries, error) {
	kernel, err := Design(pass, low, high, ts.SampleRate, opts...)
	if err != nil {
		return core.TimeSeries{}, err
	}
	return Apply(ts, kernel)
}

// Apply convolves the series with a FIR kernel using FFT convolution.
//
// The result is trimmed to the input length, centered so that the
// group delay of a symmetric kernel is compensated. Edge regions
// shorter than half the kernel carry transient artifacts, as with any
// FIR filter.
func Apply(ts core.TimeSeries, kernel []float64) (core.TimeSeries, error) {
	n := ts.Len()
	m := len(kernel)
	if n == 0 {
		return core.TimeSeries{}, core.ErrEmptySeries
	}
	if m == 0 {
		return core.TimeSeries{}, ErrEmptyKernel
	}
	if m > n {
		return core.TimeSeries{}, fmt.Errorf("%w: %d taps, %d samples", ErrKernelTooLong, m, n)
	}

	fftSize := nextPowerOf2(n + m - 1)

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return core.TimeSeries{}, fmt.Errorf("filt: failed to create FFT plan: %w", err)
	}

	signalPadded := make([]complex128, fftSize)
	kernelPadded := make([]complex128, fftSize)
	for i, v := range ts.Samples {
		signalPadded[i] = complex(v, 0)
	}
	for i, v := range kernel {
		kernelPadded[i] = complex(v, 0)
	}

	signalFreq := make([]complex128, fftSize)
	kernelFreq := make([]complex128, fftSize)
	if err := plan.Forward(signalFreq, signalPadded); err != nil {
		return core.TimeSeries{}, err
	}
	if err := plan.Forward(kernelFreq, kernelPadded); err != nil {
		return core.TimeSeries{}, err
	}

	for i := range signalFreq {
		signalFreq[i] *= kernelFreq[i]
	}

	resultTime := make([]complex128, fftSize)
	if err := plan.Inverse(resultTime, signalFreq); err != nil {
		return core.TimeSeries{}, err
	}

	// Centered extraction: same length as the input, group delay removed.
	start := (m - 1) / 2
	out := make([]float64, n)
	for i := range out {
		out[i] = real(resultTime[start+i])
	}

	return core.TimeSeries{SampleRate: ts.SampleRate, Samples: out}, nil
}

// nextPowerOf2 returns the next power of 2 >= n.
func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p *= 2
	}
	return p
}
