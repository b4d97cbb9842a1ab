package design

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/filter/biquad"
)

const radicandEpsilon = 1e-12

// Params describes one cookbook design.
type Params struct {
	SampleRate float64 // Hz, > 0
	Cutoff     float64 // Hz, in (0, SampleRate/2)
	GainDB     float64
	Slope      float64 // shelf slope s, > 0; 1 is the steepest monotonic shape
}

// Butterworth returns parameters for a maximally flat section at cutoff.
func Butterworth(sampleRate, cutoff float64) Params {
	return Params{SampleRate: sampleRate, Cutoff: cutoff, GainDB: 0, Slope: 1}
}

// Validate checks the ranges of p.
func (p Params) Validate() error {
	if !core.IsFinite(p.SampleRate) || p.SampleRate <= 0 {
		return fmt.Errorf("sample rate must be > 0: %v: %w", p.SampleRate, ErrInvalidParams)
	}
	if !core.IsFinite(p.Cutoff) || p.Cutoff <= 0 || p.Cutoff >= p.SampleRate/2 {
		return fmt.Errorf("cutoff must be in (0, %v): %v: %w", p.SampleRate/2, p.Cutoff, ErrInvalidParams)
	}
	if !core.IsFinite(p.Slope) || p.Slope <= 0 {
		return fmt.Errorf("slope must be > 0: %v: %w", p.Slope, ErrInvalidParams)
	}
	if !core.IsFinite(p.GainDB) {
		return fmt.Errorf("gain must be finite: %v: %w", p.GainDB, ErrInvalidParams)
	}
	return nil
}

// Intermediate returns the normalized angular frequency w, the bandwidth
// term alpha and the equivalent quality factor q of p. q is +Inf when the
// radicand is exactly zero.
func Intermediate(p Params) (w, alpha, q float64, err error) {
	if err := p.Validate(); err != nil {
		return 0, 0, 0, err
	}

	a := math.Pow(10, p.GainDB/40)
	w = 2 * math.Pi * p.Cutoff / p.SampleRate

	radicand := (a+1/a)*(1/p.Slope-p.Slope) + 2
	if radicand < 0 && core.NearlyEqual(radicand, 0, radicandEpsilon) {
		// Boundary slope; the negative value is rounding.
		radicand = 0
	}
	if radicand < 0 {
		return 0, 0, 0, fmt.Errorf("gain %v dB slope %v gives radicand %v: %w", p.GainDB, p.Slope, radicand, ErrDomain)
	}

	root := math.Sqrt(radicand)
	alpha = 0.5 * math.Sin(w) * root
	q = 1 / root
	return w, alpha, q, nil
}

// Lowpass designs a cookbook lowpass section.
func Lowpass(p Params) (biquad.Coefficients, error) {
	w, alpha, _, err := Intermediate(p)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	cw := math.Cos(w)
	b0 := (1 - cw) / 2
	return normalizeBiquad(b0, 2*b0, b0, 1+alpha, -2*cw, 1-alpha), nil
}

// Highpass designs a cookbook highpass section.
func Highpass(p Params) (biquad.Coefficients, error) {
	w, alpha, _, err := Intermediate(p)
	if err != nil {
		return biquad.Coefficients{}, err
	}

	cw := math.Cos(w)
	b0 := (1 + cw) / 2
	return normalizeBiquad(b0, -2*b0, b0, 1+alpha, -2*cw, 1-alpha), nil
}

// a0 = 1 + alpha with alpha >= 0 for w in (0, pi), so it is never zero.
func normalizeBiquad(b0, b1, b2, a0, a1, a2 float64) biquad.Coefficients {
	return biquad.Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}

