// Package window provides tapering windows for spectrum analysis.
//
// Windows are generalized cosine sums evaluated on [0, 1]. Use
// [WithPeriodic] for FFT framing.
package window
