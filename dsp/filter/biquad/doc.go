// Package biquad provides the runtime for a single second-order IIR
// section in direct form I.
//
// A [Filter] runs [Coefficients] over a batched signal.Signal, carrying
// the four delay registers ([State]) across batch boundaries and starting
// from zero on every call. Coefficient design lives in dsp/filter/design.
//
// The block kernel is chosen once per process from the registered
// implementations for the running CPU.
package biquad
