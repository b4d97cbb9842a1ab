package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-vecmath"
	"golang.org/x/sync/errgroup"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Tone renders batches phase-continuous batches of a unit sine at freqHz.
func (g *Generator) Tone(freqHz float64, batches int) (*Signal, error) {
	if batches <= 0 {
		return nil, fmt.Errorf("tone batches must be > 0: %d", batches)
	}
	s := New(core.WithConfig(g.cfg))
	for range batches {
		s.AppendTone(freqHz)
	}
	return s, nil
}

// Chord renders one tone per frequency and mixes them into a single signal.
// Tones render concurrently and are summed in the order given, so the
// result does not depend on scheduling. The result is not normalized.
func (g *Generator) Chord(freqsHz []float64, batches int) (*Signal, error) {
	if len(freqsHz) == 0 {
		return nil, fmt.Errorf("chord needs at least one frequency")
	}

	tones := make([]*Signal, len(freqsHz))
	var eg errgroup.Group
	for i, f := range freqsHz {
		eg.Go(func() error {
			tone, err := g.Tone(f, batches)
			tones[i] = tone
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	mix := tones[0]
	for _, tone := range tones[1:] {
		if err := mix.Mix(tone); err != nil {
			return nil, err
		}
	}
	return mix, nil
}

// Sine generates a sine wave starting at phase 0.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude],
// batched like every other signal.
func (g *Generator) WhiteNoise(amplitude float64, samples int) (*Signal, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return FromSamples(out, core.WithConfig(g.cfg)), nil
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	out := make([]float64, len(data))
	maxAbs := vecmath.MaxAbs(data)
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	vecmath.ScaleBlock(out, data, targetPeak/maxAbs)
	return out, nil
}
