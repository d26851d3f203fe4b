package filt

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Errors returned by kernel design.
var (
	ErrInvalidCutoff = errors.New("filt: cutoff must satisfy 0 < f < Nyquist")
	ErrInvalidBand   = errors.New("filt: band must satisfy 0 < low < high < Nyquist")
)

// PassType selects the filter response shape.
type PassType int

const (
	Bandpass PassType = iota
	Bandstop
	Lowpass
	Highpass
)

// String returns the conventional name of the pass type.
func (p PassType) String() string {
	switch p {
	case Bandpass:
		return "bandpass"
	case Bandstop:
		return "bandstop"
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	default:
		return "unknown"
	}
}

const defaultCycles = 3.0

type designConfig struct {
	cycles  float64
	numTaps int
	window  WindowType
}

func defaultDesignConfig() designConfig {
	return designConfig{
		cycles: defaultCycles,
		window: WindowHamming,
	}
}

// Option configures kernel design.
type Option func(*designConfig)

// WithCycles sets the kernel length as a number of cycles of the lowest
// cutoff frequency. Defaults to 3.
func WithCycles(cycles float64) Option {
	return func(cfg *designConfig) {
		if cycles > 0 {
			cfg.cycles = cycles
		}
	}
}

// WithNumTaps sets an explicit kernel length, overriding the cycle
// heuristic. Even values are rounded up to the next odd length.
func WithNumTaps(n int) Option {
	return func(cfg *designConfig) {
		if n > 0 {
			cfg.numTaps = n
		}
	}
}

// WithWindow selects the kernel taper. Defaults to Hamming.
func WithWindow(t WindowType) Option {
	return func(cfg *designConfig) {
		cfg.window = t
	}
}

// Design computes a windowed-sinc FIR kernel for the given pass type.
//
// For Bandpass and Bandstop both edges are used and must satisfy
// 0 < low < high < Nyquist. Lowpass uses high as its cutoff; Highpass
// uses low; the unused edge is ignored. The returned kernel is
// symmetric with odd length.
func Design(pass PassType, low, high, sampleRate float64, opts ...Option) ([]float64, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("filt: sample rate must be > 0: %f", sampleRate)
	}

	cfg := defaultDesignConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	nyquist := sampleRate / 2
	switch pass {
	case Bandpass, Bandstop:
		if low <= 0 || high <= low || high >= nyquist {
			return nil, fmt.Errorf("%w: [%g %g] at %g Hz", ErrInvalidBand, low, high, sampleRate)
		}
	case Lowpass:
		if high <= 0 || high >= nyquist {
			return nil, fmt.Errorf("%w: %g at %g Hz", ErrInvalidCutoff, high, sampleRate)
		}
	case Highpass:
		if low <= 0 || low >= nyquist {
			return nil, fmt.Errorf("%w: %g at %g Hz", ErrInvalidCutoff, low, sampleRate)
		}
	default:
		return nil, fmt.Errorf("filt: unknown pass type %d", pass)
	}

	taps := cfg.numTaps
	if taps <= 0 {
		ref := low
		if pass == Lowpass || ref <= 0 {
			ref = high
		}
		taps = int(math.Ceil(cfg.cycles * sampleRate / ref))
	}
	if taps%2 == 0 {
		taps++
	}
	if taps < 3 {
		taps = 3
	}

	var kernel []float64
	switch pass {
	case Lowpass:
		kernel = lowpassKernel(high/sampleRate, taps, cfg.window)
	case Highpass:
		// Spectral inversion of a windowed lowpass at the same edge.
		kernel = invert(lowpassKernel(low/sampleRate, taps, cfg.window))
	case Bandpass:
		kernel = bandpassKernel(low/sampleRate, high/sampleRate, taps, cfg.window)
	case Bandstop:
		bp := bandpassKernel(low/sampleRate, high/sampleRate, taps, cfg.window)
		normalizeGain(bp, Bandpass, low, high, sampleRate)
		kernel = invert(bp)
	}

	normalizeGain(kernel, pass, low, high, sampleRate)
	return kernel, nil
}

// Response computes the complex frequency response of a kernel at the
// given frequency and sample rate.
func Response(kernel []float64, freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	var re, im float64
	for k, c := range kernel {
		re += c * math.Cos(w*float64(k))
		im -= c * math.Sin(w*float64(k))
	}
	return complex(re, im)
}

// MagnitudeDB returns the kernel magnitude response in dB.
func MagnitudeDB(kernel []float64, freqHz, sampleRate float64) float64 {
	h := Response(kernel, freqHz, sampleRate)
	return 20 * math.Log10(math.Hypot(real(h), imag(h)))
}

// lowpassKernel returns a windowed-sinc lowpass kernel with normalized
// cutoff fc (cycles per sample), scaled to unit DC gain.
func lowpassKernel(fc float64, taps int, win WindowType) []float64 {
	out := make([]float64, taps)
	mid := float64(taps-1) / 2
	for i := range out {
		out[i] = 2 * fc * sinc(2*fc*(float64(i)-mid))
	}
	vecmath.MulBlockInPlace(out, windowCoeffs(win, taps))

	var sum float64
	for _, v := range out {
		sum += v
	}
	if sum != 0 {
		for i := range out {
			out[i] /= sum
		}
	}
	return out
}

// bandpassKernel is the difference of two unit-DC-gain lowpass kernels.
func bandpassKernel(fLow, fHigh float64, taps int, win WindowType) []float64 {
	hi := lowpassKernel(fHigh, taps, win)
	lo := lowpassKernel(fLow, taps, win)
	for i := range hi {
		hi[i] -= lo[i]
	}
	return hi
}

// invert performs spectral inversion: H(f) -> 1 - H(f).
// Requires an odd-length symmetric kernel.
func invert(kernel []float64) []float64 {
	for i := range kernel {
		kernel[i] = -kernel[i]
	}
	kernel[(len(kernel)-1)/2]++
	return kernel
}

// normalizeGain scales the kernel to unit magnitude at a reference
// frequency in the passband: DC for lowpass and bandstop, Nyquist for
// highpass, and the geometric band center for bandpass.
func normalizeGain(kernel []float64, pass PassType, low, high, sampleRate float64) {
	var ref float64
	switch pass {
	case Lowpass, Bandstop:
		ref = 0
	case Highpass:
		ref = sampleRate / 2
	case Bandpass:
		ref = math.Sqrt(low * high)
	}

	h := Response(kernel, ref, sampleRate)
	gain := math.Hypot(real(h), imag(h))
	if gain == 0 || math.IsNaN(gain) || math.IsInf(gain, 0) {
		return
	}
	for i := range kernel {
		kernel[i] /= gain
	}
}

// sinc is the normalized sinc function sin(pi*x)/(pi*x).
func sinc(x float64) float64 {
	if x == 0 {
		return 1
	}
	px := math.Pi * x
	return math.Sin(px) / px
}
