package sim

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-neuro/core"
)

func TestPowerlawLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))
	sig, err := g.Powerlaw(4, -1)
	if err != nil {
		t.Fatalf("Powerlaw() error = %v", err)
	}
	if sig.Len() != 4000 {
		t.Fatalf("Len() = %d, want 4000", sig.Len())
	}
	if sig.SampleRate != 1000 {
		t.Fatalf("SampleRate = %v, want 1000", sig.SampleRate)
	}
}

func TestPowerlawFractionalDurationRounds(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))
	sig, err := g.Powerlaw(0.5004, -1)
	if err != nil {
		t.Fatalf("Powerlaw() error = %v", err)
	}
	if sig.Len() != 500 {
		t.Fatalf("Len() = %d, want 500", sig.Len())
	}
}

func TestPowerlawDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions([]core.ProcessorOption{core.WithSampleRate(1000)}, WithSeed(21))
	g2 := NewGeneratorWithOptions([]core.ProcessorOption{core.WithSampleRate(1000)}, WithSeed(21))

	s1, err := g1.Powerlaw(2, -1.5)
	if err != nil {
		t.Fatalf("Powerlaw() error = %v", err)
	}
	s2, err := g2.Powerlaw(2, -1.5)
	if err != nil {
		t.Fatalf("Powerlaw() error = %v", err)
	}

	for i := range s1.Samples {
		if s1.Samples[i] != s2.Samples[i] {
			t.Fatalf("sample mismatch at %d: %v != %v", i, s1.Samples[i], s2.Samples[i])
		}
	}
}

func TestSetSeedReproduces(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))

	g.SetSeed(21)
	a, err := g.Powerlaw(1, -1)
	if err != nil {
		t.Fatalf("Powerlaw() error = %v", err)
	}
	g.SetSeed(21)
	b, err := g.Powerlaw(1, -1)
	if err != nil {
		t.Fatalf("Powerlaw() error = %v", err)
	}

	for i := range a.Samples {
		if a.Samples[i] != b.Samples[i] {
			t.Fatalf("sample mismatch at %d after SetSeed", i)
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(1))
	g2 := NewGeneratorWithOptions(nil, WithSeed(2))

	a, err := g1.Powerlaw(1, -1)
	if err != nil {
		t.Fatalf("Powerlaw() error = %v", err)
	}
	b, err := g2.Powerlaw(1, -1)
	if err != nil {
		t.Fatalf("Powerlaw() error = %v", err)
	}

	same := true
	for i := range a.Samples {
		if a.Samples[i] != b.Samples[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected different seeds to produce different signals")
	}
}

func TestSuccessiveCallsAdvanceStream(t *testing.T) {
	g := NewGeneratorWithOptions(nil, WithSeed(21))

	a, err := g.Powerlaw(1, -1)
	if err != nil {
		t.Fatalf("Powerlaw() error = %v", err)
	}
	b, err := g.Powerlaw(1, -1)
	if err != nil {
		t.Fatalf("Powerlaw() error = %v", err)
	}

	same := true
	for i := range a.Samples {
		if a.Samples[i] != b.Samples[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("expected successive simulations to differ")
	}
}

func TestPowerlawNormalized(t *testing.T) {
	g := NewGeneratorWithOptions([]core.ProcessorOption{core.WithSampleRate(1000)}, WithSeed(21))
	sig, err := g.Powerlaw(4, -1)
	if err != nil {
		t.Fatalf("Powerlaw() error = %v", err)
	}

	var mean float64
	for _, v := range sig.Samples {
		mean += v
	}
	mean /= float64(sig.Len())
	if math.Abs(mean) > 1e-9 {
		t.Fatalf("mean = %v, want ~0", mean)
	}

	var variance float64
	for _, v := range sig.Samples {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(sig.Len())
	if math.Abs(variance-1) > 1e-9 {
		t.Fatalf("variance = %v, want ~1", variance)
	}
}

func TestConcatSegments(t *testing.T) {
	g := NewGeneratorWithOptions([]core.ProcessorOption{core.WithSampleRate(1000)}, WithSeed(21))

	a, err := g.Powerlaw(2, -1.5)
	if err != nil {
		t.Fatalf("Powerlaw() error = %v", err)
	}
	b, err := g.Powerlaw(2, -1)
	if err != nil {
		t.Fatalf("Powerlaw() error = %v", err)
	}

	sig, err := core.Concat(a, b)
	if err != nil {
		t.Fatalf("Concat() error = %v", err)
	}
	if sig.Len() != 4000 {
		t.Fatalf("Len() = %d, want 4000", sig.Len())
	}
}

func TestWhiteNoiseLengthAndNormalization(t *testing.T) {
	g := NewGeneratorWithOptions([]core.ProcessorOption{core.WithSampleRate(500)}, WithSeed(7))
	sig, err := g.WhiteNoise(2)
	if err != nil {
		t.Fatalf("WhiteNoise() error = %v", err)
	}
	if sig.Len() != 1000 {
		t.Fatalf("Len() = %d, want 1000", sig.Len())
	}
}

func TestPowerlawRejectsBadDuration(t *testing.T) {
	g := NewGenerator()
	if _, err := g.Powerlaw(0, -1); err == nil {
		t.Fatal("expected error for zero duration")
	}
	if _, err := g.Powerlaw(-1, -1); err == nil {
		t.Fatal("expected error for negative duration")
	}
}

func TestFrequencyBoundsRejectsBadRange(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(1000))
	// Upper bound above Nyquist must surface the filter design error.
	if _, err := g.Powerlaw(4, -1, WithFrequencyBounds(0, 600)); err == nil {
		t.Fatal("expected error for bound above Nyquist")
	}
}
