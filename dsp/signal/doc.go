// Package signal holds batched sample sequences and the generators that fill
// them.
//
// A [Signal] is an ordered list of sample batches. Batches are a buffering
// convenience: consumers that care about the waveform use [Signal.Flatten],
// and filters carry their state across batch boundaries.
package signal
