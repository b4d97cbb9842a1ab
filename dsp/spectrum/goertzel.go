package spectrum

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// Goertzel tracks one DFT bin at an arbitrary frequency across every
// sample fed since the last Reset. Frequencies that do not fit a whole
// number of cycles into the processed length leak like any DFT bin.
type Goertzel struct {
	freq float64
	rate float64
	k    float64 // 2cos(w)

	q1, q2 float64
	n      int
}

// NewGoertzel returns a detector for freqHz, which must lie in
// [0, sampleRate/2].
func NewGoertzel(freqHz, sampleRate float64) (*Goertzel, error) {
	if !core.IsFinite(sampleRate) || sampleRate <= 0 {
		return nil, fmt.Errorf("goertzel: sample rate must be > 0: %v", sampleRate)
	}
	if !core.IsFinite(freqHz) || freqHz < 0 || freqHz > sampleRate/2 {
		return nil, fmt.Errorf("goertzel: frequency must be in [0, %v]: %v", sampleRate/2, freqHz)
	}

	return &Goertzel{
		freq: freqHz,
		rate: sampleRate,
		k:    2 * math.Cos(2*math.Pi*freqHz/sampleRate),
	}, nil
}

// Reset forgets all processed samples.
func (g *Goertzel) Reset() {
	g.q1, g.q2, g.n = 0, 0, 0
}

// ProcessBlock feeds samples into the detector. Blocks may be of any size;
// feeding a signal batch by batch gives the same result as feeding it whole.
func (g *Goertzel) ProcessBlock(samples []float64) {
	q1, q2 := g.q1, g.q2
	for _, x := range samples {
		q1, q2 = x+g.k*q1-q2, q1
	}
	g.q1, g.q2 = q1, q2
	g.n += len(samples)
}

// Power returns |X|^2 for the bin, matching a DFT over the same samples.
func (g *Goertzel) Power() float64 {
	return g.q1*g.q1 + g.q2*g.q2 - g.k*g.q1*g.q2
}

// Magnitude returns |X|.
func (g *Goertzel) Magnitude() float64 {
	// Rounding can push an empty bin slightly negative.
	return math.Sqrt(math.Max(g.Power(), 0))
}

// Amplitude returns the peak amplitude 2|X|/N of a sinusoid at the
// detector frequency, or 0 before any sample was processed.
func (g *Goertzel) Amplitude() float64 {
	if g.n == 0 {
		return 0
	}
	return 2 * g.Magnitude() / float64(g.n)
}

// Frequency returns the detector frequency in Hz.
func (g *Goertzel) Frequency() float64 { return g.freq }

// ToneAmplitude returns the amplitude of the freqHz component of samples.
func ToneAmplitude(samples []float64, freqHz, sampleRate float64) (float64, error) {
	g, err := NewGoertzel(freqHz, sampleRate)
	if err != nil {
		return 0, err
	}
	g.ProcessBlock(samples)
	return g.Amplitude(), nil
}
