// Package pcm converts floating-point samples to 16-bit PCM and writes
// mono WAV containers.
//
// Samples are clamped to [-1, 1] and scaled by 2^15-1, so full scale maps to
// ±32767 and -32768 is never produced.
package pcm
