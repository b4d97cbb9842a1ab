package spectrum

import (
	"errors"
	"fmt"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-synth/dsp/window"
)

var errEmptyInput = errors.New("spectrum input must not be empty")

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Spectrum is a one-sided magnitude spectrum. Freqs[k] is the centre
// frequency of bin k in Hz and Mags[k] the unnormalized |X[k]|.
type Spectrum struct {
	Freqs []float64
	Mags  []float64

	// Size is the transform length the bins were computed with.
	Size int
}

type config struct {
	minSize int
	window  window.Type
}

// Option configures [Real].
type Option func(*config)

// WithMinSize zero-pads the input to at least n samples before the
// transform. Padding to the sample rate gives roughly 1 Hz bins.
func WithMinSize(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.minSize = n
		}
	}
}

// WithWindow tapers the input with a periodic window of type t before the
// transform. Magnitudes are divided by the window's coherent gain so a
// bin-centred tone keeps its rectangular-window height.
func WithWindow(t window.Type) Option {
	return func(cfg *config) {
		cfg.window = t
	}
}

// Real returns the magnitude spectrum of a real-valued sequence.
//
// The transform length is the next power of two that holds both the input
// and the WithMinSize request. Bins 0..Size/2 are returned.
func Real(samples []float64, sampleRate float64, opts ...Option) (Spectrum, error) {
	if len(samples) == 0 {
		return Spectrum{}, errEmptyInput
	}
	if sampleRate <= 0 {
		return Spectrum{}, fmt.Errorf("spectrum sample rate must be > 0: %f", sampleRate)
	}

	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	size := nextPowerOf2(max(len(samples), cfg.minSize))
	if size < 2 {
		size = 2
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return Spectrum{}, fmt.Errorf("spectrum fft plan: %w", err)
	}

	gain := 1.0
	src := samples
	if cfg.window != window.TypeRectangular {
		w := window.Generate(cfg.window, len(samples), window.WithPeriodic())
		if gain, err = window.CoherentGain(w); err != nil || gain == 0 {
			return Spectrum{}, fmt.Errorf("spectrum window %v has no coherent gain", cfg.window)
		}
		src = make([]float64, len(samples))
		vecmath.MulBlock(src, samples, w)
	}

	in := make([]complex128, size)
	for i, x := range src {
		in[i] = complex(x, 0)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}, fmt.Errorf("spectrum forward fft: %w", err)
	}

	bins := size/2 + 1
	binHz := sampleRate / float64(size)
	sp := Spectrum{
		Freqs: make([]float64, bins),
		Mags:  Magnitude(out[:bins]),
		Size:  size,
	}
	for k := range sp.Freqs {
		sp.Freqs[k] = float64(k) * binHz
	}
	if gain != 1 {
		vecmath.ScaleBlock(sp.Mags, sp.Mags, 1/gain)
	}
	return sp, nil
}

// Len returns the number of bins.
func (s Spectrum) Len() int { return len(s.Mags) }

// Truncate returns the first maxBin bins. Values outside (0, Len] return
// the spectrum unchanged. The result shares storage with s.
func (s Spectrum) Truncate(maxBin int) Spectrum {
	if maxBin <= 0 || maxBin >= len(s.Mags) {
		return s
	}
	return Spectrum{
		Freqs: s.Freqs[:maxBin],
		Mags:  s.Mags[:maxBin],
		Size:  s.Size,
	}
}

// BinWidth returns the spacing between bins in Hz.
func (s Spectrum) BinWidth() float64 {
	if len(s.Freqs) < 2 {
		return 0
	}
	return s.Freqs[1] - s.Freqs[0]
}

// Peak returns the frequency and magnitude of the strongest bin, ignoring DC
// unless it is the only bin.
func (s Spectrum) Peak() (freq, mag float64) {
	if len(s.Mags) == 0 {
		return 0, 0
	}
	start := 1
	if len(s.Mags) == 1 {
		start = 0
	}
	best := start
	for k := start + 1; k < len(s.Mags); k++ {
		if s.Mags[k] > s.Mags[best] {
			best = k
		}
	}
	return s.Freqs[best], s.Mags[best]
}

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
