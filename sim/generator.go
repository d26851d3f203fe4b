package sim

import (
	"fmt"
	"math"
	"math/rand"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-neuro/core"
	"github.com/cwbudde/algo-neuro/filt"
)

// Generator creates deterministic aperiodic signals from a shared
// configuration and an owned random source.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
	rng  *rand.Rand
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the deterministic random seed.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator with seed 1.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
	g.rng = rand.New(rand.NewSource(g.seed))
	return g
}

// NewGeneratorWithOptions creates a generator with simulation-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	g.rng = rand.New(rand.NewSource(g.seed))
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the seed the random stream was last reset to.
func (g *Generator) Seed() int64 { return g.seed }

// SetSeed resets the random stream. Simulations after equal SetSeed
// calls reproduce each other exactly.
func (g *Generator) SetSeed(seed int64) {
	g.seed = seed
	g.rng = rand.New(rand.NewSource(seed))
}

type simConfig struct {
	lowBound  float64
	highBound float64
}

// SimOption configures a single simulation call.
type SimOption func(*simConfig)

// WithFrequencyBounds restricts the simulated signal to [low, high] Hz
// by FIR filtering after generation. A zero bound leaves that side
// unbounded, so WithFrequencyBounds(0, 150) lowpasses at 150 Hz.
func WithFrequencyBounds(low, high float64) SimOption {
	return func(cfg *simConfig) {
		cfg.lowBound = low
		cfg.highBound = high
	}
}

// Powerlaw simulates duration seconds of aperiodic activity whose power
// spectrum follows f^exponent. The output has zero mean and unit
// variance. Negative exponents concentrate energy at low frequencies.
func (g *Generator) Powerlaw(duration, exponent float64, opts ...SimOption) (core.TimeSeries, error) {
	n, err := g.sampleCount(duration)
	if err != nil {
		return core.TimeSeries{}, err
	}

	var cfg simConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	samples, err := g.powerlawSamples(n, exponent)
	if err != nil {
		return core.TimeSeries{}, err
	}

	ts := core.TimeSeries{SampleRate: g.cfg.SampleRate, Samples: samples}
	if cfg.lowBound > 0 || cfg.highBound > 0 {
		ts, err = boundFrequencies(ts, cfg.lowBound, cfg.highBound)
		if err != nil {
			return core.TimeSeries{}, err
		}
	}

	zscore(ts.Samples)
	return ts, nil
}

// WhiteNoise simulates duration seconds of flat-spectrum Gaussian
// noise with zero mean and unit variance.
func (g *Generator) WhiteNoise(duration float64) (core.TimeSeries, error) {
	n, err := g.sampleCount(duration)
	if err != nil {
		return core.TimeSeries{}, err
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = g.rng.NormFloat64()
	}
	zscore(out)
	return core.TimeSeries{SampleRate: g.cfg.SampleRate, Samples: out}, nil
}

func (g *Generator) sampleCount(duration float64) (int, error) {
	if duration <= 0 {
		return 0, fmt.Errorf("sim: duration must be > 0: %f", duration)
	}
	if g.cfg.SampleRate <= 0 {
		return 0, fmt.Errorf("sim: sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	n := int(math.Round(duration * g.cfg.SampleRate))
	if n < 2 {
		return 0, fmt.Errorf("sim: duration %f too short at %f Hz", duration, g.cfg.SampleRate)
	}
	return n, nil
}

// powerlawSamples rotates the spectrum of Gaussian white noise by
// f^(exponent/2), which shapes its power spectral density to f^exponent.
func (g *Generator) powerlawSamples(n int, exponent float64) ([]float64, error) {
	fftSize := nextPowerOf2(n)

	noise := make([]complex128, fftSize)
	for i := range noise {
		noise[i] = complex(g.rng.NormFloat64(), 0)
	}
	if exponent == 0 {
		out := make([]float64, n)
		for i := range out {
			out[i] = real(noise[i])
		}
		return out, nil
	}

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("sim: failed to create FFT plan: %w", err)
	}

	spectrum := make([]complex128, fftSize)
	if err := plan.Forward(spectrum, noise); err != nil {
		return nil, err
	}

	// Scale each bin by |f|^(exponent/2), mirrored so the result stays
	// real. The DC bin is zeroed; the mean is removed downstream anyway.
	binHz := g.cfg.SampleRate / float64(fftSize)
	spectrum[0] = 0
	for k := 1; k < fftSize; k++ {
		bin := k
		if bin > fftSize-k {
			bin = fftSize - k
		}
		f := float64(bin) * binHz
		spectrum[k] *= complex(math.Pow(f, exponent/2), 0)
	}

	shaped := make([]complex128, fftSize)
	if err := plan.Inverse(shaped, spectrum); err != nil {
		return nil, err
	}

	out := make([]float64, n)
	for i := range out {
		out[i] = real(shaped[i])
	}
	return out, nil
}

// boundFrequencies applies the FIR filter matching the requested bounds.
func boundFrequencies(ts core.TimeSeries, low, high float64) (core.TimeSeries, error) {
	switch {
	case low > 0 && high > 0:
		return filt.Filter(ts, filt.Bandpass, low, high)
	case high > 0:
		return filt.Filter(ts, filt.Lowpass, 0, high)
	default:
		return filt.Filter(ts, filt.Highpass, low, 0)
	}
}

// zscore normalizes samples to zero mean and unit variance in place.
func zscore(samples []float64) {
	n := float64(len(samples))
	if n == 0 {
		return
	}

	var mean float64
	for _, v := range samples {
		mean += v
	}
	mean /= n

	var variance float64
	for i := range samples {
		samples[i] -= mean
		variance += samples[i] * samples[i]
	}
	variance /= n
	if variance == 0 {
		return
	}

	std := math.Sqrt(variance)
	for i := range samples {
		samples[i] /= std
	}
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
