package core

import (
	"errors"
	"fmt"
)

// Errors returned by time-series constructors and combinators.
var (
	ErrEmptySeries  = errors.New("core: empty time series")
	ErrRateMismatch = errors.New("core: sample rate mismatch")
)

// TimeSeries pairs a sample rate with an ordered sequence of amplitude
// samples. Operations on a TimeSeries never mutate it; they return a
// new value instead.
type TimeSeries struct {
	SampleRate float64
	Samples    []float64
}

// New creates a TimeSeries from a sample rate and a sample slice.
// The samples are copied.
func New(sampleRate float64, samples []float64) (TimeSeries, error) {
	if sampleRate <= 0 {
		return TimeSeries{}, fmt.Errorf("core: sample rate must be > 0: %f", sampleRate)
	}
	if len(samples) == 0 {
		return TimeSeries{}, ErrEmptySeries
	}
	s := make([]float64, len(samples))
	copy(s, samples)
	return TimeSeries{SampleRate: sampleRate, Samples: s}, nil
}

// Len returns the number of samples.
func (ts TimeSeries) Len() int { return len(ts.Samples) }

// Duration returns the series length in seconds.
func (ts TimeSeries) Duration() float64 {
	if ts.SampleRate <= 0 {
		return 0
	}
	return float64(len(ts.Samples)) / ts.SampleRate
}

// Times returns the time axis of the series: a monotonically increasing
// slice starting at 0, with one entry per sample.
func (ts TimeSeries) Times() []float64 {
	out := make([]float64, len(ts.Samples))
	if ts.SampleRate <= 0 {
		return out
	}
	dt := 1 / ts.SampleRate
	for i := range out {
		out[i] = float64(i) * dt
	}
	return out
}

// Clone returns a deep copy of the series.
func (ts TimeSeries) Clone() TimeSeries {
	s := make([]float64, len(ts.Samples))
	copy(s, ts.Samples)
	return TimeSeries{SampleRate: ts.SampleRate, Samples: s}
}

// Concat appends b after a, sample-wise. Both series must share the
// same sample rate. The inputs are left untouched.
func Concat(a, b TimeSeries) (TimeSeries, error) {
	if a.SampleRate != b.SampleRate {
		return TimeSeries{}, fmt.Errorf("%w: %f != %f", ErrRateMismatch, a.SampleRate, b.SampleRate)
	}
	if len(a.Samples) == 0 && len(b.Samples) == 0 {
		return TimeSeries{}, ErrEmptySeries
	}
	s := make([]float64, 0, len(a.Samples)+len(b.Samples))
	s = append(s, a.Samples...)
	s = append(s, b.Samples...)
	return TimeSeries{SampleRate: a.SampleRate, Samples: s}, nil
}
