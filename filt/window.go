package filt

import "math"

// WindowType identifies a taper applied to the sinc kernel.
type WindowType int

const (
	WindowHamming WindowType = iota
	WindowHann
	WindowBlackman
	WindowRectangular
)

// windowCoeffs returns symmetric window coefficients of the given length.
func windowCoeffs(t WindowType, length int) []float64 {
	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	n := float64(length - 1)
	for i := range out {
		x := float64(i) / n
		switch t {
		case WindowHann:
			out[i] = 0.5 - 0.5*math.Cos(2*math.Pi*x)
		case WindowHamming:
			out[i] = 0.54 - 0.46*math.Cos(2*math.Pi*x)
		case WindowBlackman:
			out[i] = 0.42 - 0.5*math.Cos(2*math.Pi*x) + 0.08*math.Cos(4*math.Pi*x)
		case WindowRectangular:
			out[i] = 1
		default:
			out[i] = 1
		}
	}
	return out
}
