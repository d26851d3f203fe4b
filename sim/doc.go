// Package sim simulates aperiodic neural time series.
//
// The central entry point is [Generator.Powerlaw], which produces
// broadband noise whose power spectral density follows 1/f^|exponent|.
// An exponent of 0 yields white noise, -1 pink noise, -2 brown noise.
// Signals are normalized to zero mean and unit variance, so traces with
// different exponents are directly comparable.
//
// A Generator owns its random source. Reproducibility is explicit:
// construct with [WithSeed] or call [Generator.SetSeed], and every
// subsequent simulation consumes the same deterministic stream. Two
// generators with equal seeds produce identical output.
package sim
