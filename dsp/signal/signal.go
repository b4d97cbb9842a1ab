package signal

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/pcm"
	"github.com/cwbudde/algo-synth/dsp/spectrum"
	"github.com/cwbudde/algo-vecmath"
)

// Signal is an ordered sequence of sample batches plus the running phase
// used by [Signal.AppendTone].
//
// A Signal is not safe for concurrent mutation.
type Signal struct {
	cfg     core.ProcessorConfig
	batches [][]float64
	phase   float64
}

// New returns an empty signal.
func New(opts ...core.ProcessorOption) *Signal {
	return &Signal{cfg: core.ApplyProcessorOptions(opts...)}
}

// FromSamples copies samples into a new signal, split into BlockSize
// batches. The final batch may be shorter.
func FromSamples(samples []float64, opts ...core.ProcessorOption) *Signal {
	s := New(opts...)
	n := s.cfg.BlockSize
	for start := 0; start < len(samples); start += n {
		end := min(start+n, len(samples))
		s.batches = append(s.batches, append([]float64(nil), samples[start:end]...))
	}
	return s
}

// Config returns the processing configuration of the signal.
func (s *Signal) Config() core.ProcessorConfig { return s.cfg }

// Phase returns the accumulated generator phase in radians. It grows
// without bound.
func (s *Signal) Phase() float64 { return s.phase }

// NumBatches returns the number of batches.
func (s *Signal) NumBatches() int { return len(s.batches) }

// Batch returns batch i. The slice is shared with the signal and must be
// treated as read-only.
func (s *Signal) Batch(i int) []float64 { return s.batches[i] }

// Len returns the total number of samples.
func (s *Signal) Len() int {
	n := 0
	for _, b := range s.batches {
		n += len(b)
	}
	return n
}

// Duration returns the playback length of the signal.
func (s *Signal) Duration() time.Duration {
	return s.cfg.SamplesDuration(s.Len())
}

// AppendTone appends one batch of a unit-amplitude sine at freqHz,
// continuing from the phase left by the previous call.
//
// Frequencies above Nyquist alias; no check is made.
func (s *Signal) AppendTone(freqHz float64) {
	inc := 2 * math.Pi * freqHz / s.cfg.SampleRate
	batch := make([]float64, s.cfg.BlockSize)
	for i := range batch {
		batch[i] = math.Sin(s.phase + float64(i)*inc)
	}
	s.batches = append(s.batches, batch)
	s.phase += float64(len(batch)-1)*inc + inc
}

// AppendBatch appends a copy of batch.
func (s *Signal) AppendBatch(batch []float64) error {
	if len(batch) == 0 {
		return fmt.Errorf("append empty batch: %w", ErrShapeMismatch)
	}
	s.batches = append(s.batches, append([]float64(nil), batch...))
	return nil
}

// Mix adds other into s element-wise, batch by batch.
//
// Both signals must have the same number of batches and equal lengths at
// every batch index; otherwise ErrShapeMismatch is returned and s is left
// unchanged.
func (s *Signal) Mix(other *Signal) error {
	if err := s.sameShape(other); err != nil {
		return err
	}
	for i, b := range s.batches {
		vecmath.AddBlockInPlace(b, other.batches[i])
	}
	return nil
}

func (s *Signal) sameShape(other *Signal) error {
	if len(s.batches) != len(other.batches) {
		return fmt.Errorf("batch count %d != %d: %w", len(s.batches), len(other.batches), ErrShapeMismatch)
	}
	for i, b := range s.batches {
		if len(b) != len(other.batches[i]) {
			return fmt.Errorf("batch %d length %d != %d: %w", i, len(b), len(other.batches[i]), ErrShapeMismatch)
		}
	}
	return nil
}

// Transform calls fn on every batch in order. fn may modify the batch in
// place but must not retain it. The first error stops the walk and is
// returned as is.
func (s *Signal) Transform(fn func(i int, batch []float64) error) error {
	for i, b := range s.batches {
		if err := fn(i, b); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a deep copy of s, including configuration and phase.
func (s *Signal) Clone() *Signal {
	c := &Signal{
		cfg:     s.cfg,
		batches: make([][]float64, len(s.batches)),
		phase:   s.phase,
	}
	for i, b := range s.batches {
		c.batches[i] = append([]float64(nil), b...)
	}
	return c
}

// Flatten concatenates all batches into a new slice.
func (s *Signal) Flatten() []float64 {
	out := make([]float64, 0, s.Len())
	for _, b := range s.batches {
		out = append(out, b...)
	}
	return out
}

// Spectrum returns the magnitude spectrum of the flattened signal, limited
// to the first maxBin bins (all bins when maxBin <= 0).
func (s *Signal) Spectrum(maxBin int, opts ...spectrum.Option) (spectrum.Spectrum, error) {
	sp, err := spectrum.Real(s.Flatten(), s.cfg.SampleRate, opts...)
	if err != nil {
		return spectrum.Spectrum{}, err
	}
	return sp.Truncate(maxBin), nil
}

// PCM16 returns the signal quantized to signed 16-bit frames.
func (s *Signal) PCM16() []int16 {
	return pcm.Encode16(s.Flatten())
}

// PCM16Bytes returns the quantized frames packed little-endian.
func (s *Signal) PCM16Bytes() []byte {
	return pcm.Bytes16LE(s.Flatten())
}

// WriteWAV writes the signal as a mono 16-bit WAV stream at the signal's
// sample rate.
func (s *Signal) WriteWAV(w io.WriteSeeker) error {
	return pcm.WriteWAV(w, s.Flatten(), int(math.Round(s.cfg.SampleRate)))
}
