package psd_test

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-neuro/core"
	"github.com/cwbudde/algo-neuro/psd"
	"github.com/cwbudde/algo-neuro/sim"
)

// Simulated power-law signals should carry their requested spectral
// exponent, within estimation noise of a single periodogram.
func TestSimulatedExponentRecovered(t *testing.T) {
	for _, exponent := range []float64{-0.5, -1, -1.5, -2} {
		g := sim.NewGeneratorWithOptions(
			[]core.ProcessorOption{core.WithSampleRate(1000)},
			sim.WithSeed(21),
		)

		sig, err := g.Powerlaw(16, exponent)
		if err != nil {
			t.Fatalf("Powerlaw(%v) error = %v", exponent, err)
		}

		s, err := psd.Periodogram(sig)
		if err != nil {
			t.Fatalf("Periodogram() error = %v", err)
		}

		_, got, err := psd.FitPowerlaw(psd.TrimRange(s, 2, 200))
		if err != nil {
			t.Fatalf("FitPowerlaw() error = %v", err)
		}
		if math.Abs(got-exponent) > 0.3 {
			t.Fatalf("fitted exponent = %.2f, want %.1f +/- 0.3", got, exponent)
		}
	}
}

func TestWhiteNoiseIsFlat(t *testing.T) {
	g := sim.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(1000)},
		sim.WithSeed(21),
	)

	sig, err := g.WhiteNoise(16)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}

	s, err := psd.Periodogram(sig)
	if err != nil {
		t.Fatalf("Periodogram() error = %v", err)
	}

	_, got, err := psd.FitPowerlaw(psd.TrimRange(s, 2, 200))
	if err != nil {
		t.Fatalf("FitPowerlaw() error = %v", err)
	}
	if math.Abs(got) > 0.3 {
		t.Fatalf("fitted exponent = %.2f, want ~0", got)
	}
}

func TestFrequencyBoundsSuppressHighEnd(t *testing.T) {
	g := sim.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(1000)},
		sim.WithSeed(21),
	)

	bounded, err := g.Powerlaw(8, -1, sim.WithFrequencyBounds(0, 150))
	if err != nil {
		t.Fatalf("Powerlaw() error = %v", err)
	}

	s, err := psd.Periodogram(bounded)
	if err != nil {
		t.Fatalf("Periodogram() error = %v", err)
	}

	pass := psd.TrimRange(s, 10, 100)
	stop := psd.TrimRange(s, 300, 450)

	if avg(pass.Power) < 100*avg(stop.Power) {
		t.Fatalf("stopband not suppressed: pass %v, stop %v", avg(pass.Power), avg(stop.Power))
	}
}

func avg(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
