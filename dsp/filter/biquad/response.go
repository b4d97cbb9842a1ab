package biquad

import (
	"math"
	"math/cmplx"
)

func omega(freqHz, sampleRate float64) float64 {
	return 2 * math.Pi * freqHz / sampleRate
}

// Response evaluates H(z) on the unit circle at freqHz.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	zi := cmplx.Rect(1, -omega(freqHz, sampleRate)) // z^-1
	v := c.Vector()
	num := complex(v[0], 0) + zi*(complex(v[1], 0)+zi*complex(v[2], 0))
	den := complex(v[3], 0) + zi*(complex(v[4], 0)+zi*complex(v[5], 0))
	return num / den
}

// MagnitudeSquared returns |H|^2 at freqHz without complex arithmetic.
//
// For a quadratic p0 + p1 z^-1 + p2 z^-2 on the unit circle,
// |P|^2 = p0^2 + p1^2 + p2^2 + 2 p1 (p0 + p2) cos w + 2 p0 p2 cos 2w.
func (c Coefficients) MagnitudeSquared(freqHz, sampleRate float64) float64 {
	w := omega(freqHz, sampleRate)
	c1, c2 := math.Cos(w), math.Cos(2*w)
	return powerOnCircle(c.B0, c.B1, c.B2, c1, c2) / powerOnCircle(1, c.A1, c.A2, c1, c2)
}

func powerOnCircle(p0, p1, p2, cosW, cos2W float64) float64 {
	return p0*p0 + p1*p1 + p2*p2 + 2*p1*(p0+p2)*cosW + 2*p0*p2*cos2W
}

// MagnitudeDB returns the gain at freqHz in decibels.
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 10 * math.Log10(c.MagnitudeSquared(freqHz, sampleRate))
}

// Phase returns the phase at freqHz in radians, within [-pi, pi].
func (c Coefficients) Phase(freqHz, sampleRate float64) float64 {
	return cmplx.Phase(c.Response(freqHz, sampleRate))
}
