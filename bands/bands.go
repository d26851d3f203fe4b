// Package bands provides a registry of named frequency bands.
//
// A band is a named (low, high) frequency interval in Hz, such as the
// canonical EEG bands (delta, theta, alpha, beta, gamma). A [Registry]
// holds an ordered collection of bands: iteration yields bands in the
// order they were defined, which callers rely on for pairing bands
// with plot panels or output columns.
package bands

import (
	"errors"
	"fmt"
)

// ErrInvalidRange is returned when a band definition violates
// 0 < low < high.
var ErrInvalidRange = errors.New("bands: invalid frequency range")

// Band is a named frequency interval. Bounds are in Hz.
type Band struct {
	Name string
	Low  float64
	High float64
}

// String formats the band as "name [low high]".
func (b Band) String() string {
	return fmt.Sprintf("%s [%g %g]", b.Name, b.Low, b.High)
}

// Registry is an ordered, read-only collection of bands.
type Registry struct {
	bands  []Band
	byName map[string]Band
}

// NewRegistry builds a registry from band definitions, preserving
// definition order. Every band must satisfy 0 < Low < High and names
// must be unique.
func NewRegistry(defs []Band) (*Registry, error) {
	if len(defs) == 0 {
		return nil, errors.New("bands: no band definitions")
	}

	r := &Registry{
		bands:  make([]Band, 0, len(defs)),
		byName: make(map[string]Band, len(defs)),
	}
	for _, b := range defs {
		if b.Low <= 0 || b.High <= b.Low {
			return nil, fmt.Errorf("%w: %s [%g %g]", ErrInvalidRange, b.Name, b.Low, b.High)
		}
		if b.Name == "" {
			return nil, errors.New("bands: band name must not be empty")
		}
		if _, dup := r.byName[b.Name]; dup {
			return nil, fmt.Errorf("bands: duplicate band name %q", b.Name)
		}
		r.bands = append(r.bands, b)
		r.byName[b.Name] = b
	}
	return r, nil
}

// Bands returns all bands in definition order. The returned slice is a
// copy; mutating it does not affect the registry.
func (r *Registry) Bands() []Band {
	out := make([]Band, len(r.bands))
	copy(out, r.bands)
	return out
}

// Get looks a band up by name.
func (r *Registry) Get(name string) (Band, bool) {
	b, ok := r.byName[name]
	return b, ok
}

// Len returns the number of bands.
func (r *Registry) Len() int { return len(r.bands) }

// Canonical returns the standard EEG band table:
//
//	delta      2 –   4 Hz
//	theta      4 –   8 Hz
//	alpha      8 –  13 Hz
//	beta      13 –  30 Hz
//	low_gamma 30 –  50 Hz
//	high_gamma 50 – 150 Hz
func Canonical() *Registry {
	r, err := NewRegistry([]Band{
		{"delta", 2, 4},
		{"theta", 4, 8},
		{"alpha", 8, 13},
		{"beta", 13, 30},
		{"low_gamma", 30, 50},
		{"high_gamma", 50, 150},
	})
	if err != nil {
		// The canonical table is a literal; a failure here is a bug.
		panic(err)
	}
	return r
}
