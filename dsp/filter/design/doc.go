// Package design computes second-order lowpass and highpass coefficients
// with the Audio EQ Cookbook formulas.
//
// The shape is controlled by a gain in dB and a slope s in place of Q:
//
//	A     = 10^(gain/40)
//	w     = 2*pi*f0/fs
//	alpha = sin(w)/2 * sqrt((A + 1/A)*(1/s - s) + 2)
//
// With gain 0 and slope 1 the result is a Butterworth section (Q = 1/sqrt(2)).
// The gain shapes the resonance only; it is not a passband gain.
//
// Returned [biquad.Coefficients] are already divided by a0.
package design
