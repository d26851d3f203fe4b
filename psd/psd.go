// Package psd estimates power spectral densities and fits their
// aperiodic (power-law) component.
package psd

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-neuro/core"
)

// ErrTooFewPoints is returned when a fit has fewer than two usable bins.
var ErrTooFewPoints = errors.New("psd: too few points for fit")

// Spectrum is a one-sided power spectral density: Power[i] is the PSD
// at Freqs[i], from DC up to Nyquist.
type Spectrum struct {
	Freqs []float64
	Power []float64
}

// Len returns the number of frequency bins.
func (s Spectrum) Len() int { return len(s.Freqs) }

type config struct {
	fftSize int
}

// Option configures spectral estimation.
type Option func(*config)

// WithFFTSize sets an explicit FFT size. Sizes below the signal length
// are raised to the next power of two covering it; defaults to the next
// power of two covering the signal.
func WithFFTSize(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.fftSize = n
		}
	}
}

// Periodogram estimates the one-sided PSD of a series using a single
// Hann-windowed FFT. Scaling follows the periodogram convention
// (power per Hz), so relative levels and spectral slopes are preserved.
func Periodogram(ts core.TimeSeries, opts ...Option) (Spectrum, error) {
	n := ts.Len()
	if n < 2 {
		return Spectrum{}, core.ErrEmptySeries
	}
	if ts.SampleRate <= 0 {
		return Spectrum{}, fmt.Errorf("psd: sample rate must be > 0: %f", ts.SampleRate)
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	fftSize := nextPowerOf2(n)
	if cfg.fftSize > fftSize {
		fftSize = nextPowerOf2(cfg.fftSize)
	}

	// Hann window, applied before zero padding.
	win := hann(n)
	windowed := make([]float64, n)
	vecmath.MulBlock(windowed, ts.Samples, win)

	var winPower float64
	for _, w := range win {
		winPower += w * w
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return Spectrum{}, fmt.Errorf("psd: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}, err
	}

	bins := fftSize/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
	}
	power := make([]float64, bins)
	vecmath.Power(power, re, im)

	// One-sided density scaling: interior bins carry both spectrum halves.
	scale := 1 / (ts.SampleRate * winPower)
	for k := range power {
		power[k] *= scale
		if k != 0 && k != bins-1 {
			power[k] *= 2
		}
	}

	freqs := make([]float64, bins)
	binHz := ts.SampleRate / float64(fftSize)
	for k := range freqs {
		freqs[k] = float64(k) * binHz
	}

	return Spectrum{Freqs: freqs, Power: power}, nil
}

// TrimRange restricts a spectrum to frequencies in [low, high],
// bounds inclusive. The returned slices are copies.
func TrimRange(s Spectrum, low, high float64) Spectrum {
	var freqs, power []float64
	for i, f := range s.Freqs {
		if f >= low && f <= high {
			freqs = append(freqs, f)
			power = append(power, s.Power[i])
		}
	}
	return Spectrum{Freqs: freqs, Power: power}
}

// FitPowerlaw fits log10(power) = offset + exponent*log10(freq) by
// least squares, skipping non-positive frequencies and powers. For a
// 1/f^a spectrum the returned exponent is -a.
func FitPowerlaw(s Spectrum) (offset, exponent float64, err error) {
	var xs, ys []float64
	for i, f := range s.Freqs {
		if f <= 0 || s.Power[i] <= 0 {
			continue
		}
		xs = append(xs, math.Log10(f))
		ys = append(ys, math.Log10(s.Power[i]))
	}
	if len(xs) < 2 {
		return 0, 0, ErrTooFewPoints
	}

	n := float64(len(xs))
	var sumX, sumY, sumXX, sumXY float64
	for i := range xs {
		sumX += xs[i]
		sumY += ys[i]
		sumXX += xs[i] * xs[i]
		sumXY += xs[i] * ys[i]
	}

	denom := n*sumXX - sumX*sumX
	if denom == 0 {
		return 0, 0, ErrTooFewPoints
	}
	exponent = (n*sumXY - sumX*sumY) / denom
	offset = (sumY - exponent*sumX) / n
	return offset, exponent, nil
}

// hann returns symmetric Hann window coefficients.
func hann(length int) []float64 {
	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}
	for i := range out {
		out[i] = 0.5 - 0.5*math.Cos(2*math.Pi*float64(i)/float64(length-1))
	}
	return out
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
