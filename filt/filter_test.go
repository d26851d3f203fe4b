package filt

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-neuro/core"
)

func sineSeries(freqHz, sampleRate float64, samples int) core.TimeSeries {
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = math.Sin(step * float64(i))
	}
	return core.TimeSeries{SampleRate: sampleRate, Samples: out}
}

// rms over the center portion, away from filter edge transients.
func centerRMS(samples []float64) float64 {
	lo := len(samples) / 4
	hi := 3 * len(samples) / 4
	var sum float64
	for _, v := range samples[lo:hi] {
		sum += v * v
	}
	return math.Sqrt(sum / float64(hi-lo))
}

func TestFilterPreservesLength(t *testing.T) {
	sig := sineSeries(20, 1000, 4000)
	out, err := Filter(sig, Bandpass, 13, 30)
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	if out.Len() != sig.Len() {
		t.Fatalf("Len() = %d, want %d", out.Len(), sig.Len())
	}
	if out.SampleRate != sig.SampleRate {
		t.Fatalf("SampleRate = %v, want %v", out.SampleRate, sig.SampleRate)
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	sig := sineSeries(20, 1000, 4000)
	before := sig.Samples[100]
	if _, err := Filter(sig, Bandpass, 13, 30); err != nil {
		t.Fatalf("Filter() error = %v", err)
	}
	if sig.Samples[100] != before {
		t.Fatal("Filter mutated its input")
	}
}

func TestBandpassPassesInBandTone(t *testing.T) {
	sig := sineSeries(20, 1000, 4000)
	out, err := Filter(sig, Bandpass, 13, 30)
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}

	inRMS := centerRMS(sig.Samples)
	outRMS := centerRMS(out.Samples)
	if outRMS < 0.8*inRMS {
		t.Fatalf("in-band tone attenuated: rms %v -> %v", inRMS, outRMS)
	}
}

func TestBandpassRejectsOutOfBandTone(t *testing.T) {
	sig := sineSeries(120, 1000, 4000)
	out, err := Filter(sig, Bandpass, 13, 30)
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}

	if outRMS := centerRMS(out.Samples); outRMS > 0.05*centerRMS(sig.Samples) {
		t.Fatalf("out-of-band tone leaked: rms %v", outRMS)
	}
}

func TestApplyGroupDelayCompensation(t *testing.T) {
	// A symmetric kernel applied with centered extraction keeps a
	// passband tone phase-aligned with the input.
	sig := sineSeries(20, 1000, 4000)
	out, err := Filter(sig, Bandpass, 13, 30)
	if err != nil {
		t.Fatalf("Filter() error = %v", err)
	}

	var dot, norm float64
	lo, hi := 1000, 3000
	for i := lo; i < hi; i++ {
		dot += sig.Samples[i] * out.Samples[i]
		norm += sig.Samples[i] * sig.Samples[i]
	}
	if corr := dot / norm; corr < 0.9 {
		t.Fatalf("phase correlation = %v, want > 0.9", corr)
	}
}

func TestApplyKernelTooLong(t *testing.T) {
	sig := sineSeries(20, 1000, 100)
	kernel := make([]float64, 231)
	if _, err := Apply(sig, kernel); !errors.Is(err, ErrKernelTooLong) {
		t.Fatalf("error = %v, want ErrKernelTooLong", err)
	}
}

func TestApplyEmptyInputs(t *testing.T) {
	if _, err := Apply(core.TimeSeries{SampleRate: 1000}, []float64{1}); !errors.Is(err, core.ErrEmptySeries) {
		t.Fatalf("error = %v, want ErrEmptySeries", err)
	}
	sig := sineSeries(20, 1000, 100)
	if _, err := Apply(sig, nil); !errors.Is(err, ErrEmptyKernel) {
		t.Fatalf("error = %v, want ErrEmptyKernel", err)
	}
}

func TestNextPowerOf2(t *testing.T) {
	cases := map[int]int{1: 1, 2: 2, 3: 4, 4000: 4096, 4231: 8192}
	for in, want := range cases {
		if got := nextPowerOf2(in); got != want {
			t.Fatalf("nextPowerOf2(%d) = %d, want %d", in, got, want)
		}
	}
}
