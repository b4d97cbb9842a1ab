// Package spectrum provides frequency-domain views of rendered signals.
//
// [Real] computes the one-sided magnitude spectrum of a real sample sequence
// through an algo-fft plan, zero-padded to a power-of-two transform size.
// [Goertzel] measures a single frequency bin, which is cheaper than a full
// transform when only the level of a known tone is of interest.
package spectrum
