package biquad

import "github.com/cwbudde/algo-synth/dsp/core"

// Coefficients holds the transfer function of one second-order section,
// normalized so that a0 = 1:
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Vector returns the coefficients as (b0, b1, b2, a0, a1, a2) with a0 = 1.
func (c Coefficients) Vector() [6]float64 {
	return [6]float64{c.B0, c.B1, c.B2, 1, c.A1, c.A2}
}

// IsFinite reports whether every coefficient is finite.
func (c Coefficients) IsFinite() bool {
	_, ok := core.AllFinite([]float64{c.B0, c.B1, c.B2, c.A1, c.A2})
	return ok
}
