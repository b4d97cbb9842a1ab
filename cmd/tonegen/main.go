// Command tonegen renders sine tones, runs them through a cookbook biquad
// and writes the result as a mono 16-bit WAV file.
//
// Usage:
//
//	tonegen [flags]
//
// Examples:
//
//	tonegen -tones 440,2000 -filter lpf -cutoff 1000 -out tones.wav
//	tonegen -rate 48000 -batch 256 -batches 400 -filter hpf -cutoff 500 -v
//	tonegen -noise 0.2 -maxbin 1024 -window blackman
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/filter/biquad"
	"github.com/cwbudde/algo-synth/dsp/filter/design"
	"github.com/cwbudde/algo-synth/dsp/signal"
	"github.com/cwbudde/algo-synth/dsp/spectrum"
	"github.com/cwbudde/algo-synth/dsp/window"
)

type options struct {
	rate      float64
	batch     int
	batches   int
	tones     []float64
	noise     float64
	seed      int64
	filter    string
	cutoff    float64
	gain      float64
	slope     float64
	normalize bool
	peakDB    float64
	out       string
	maxBin    int
	window    string
}

func main() {
	var opts options
	var tones string
	var verbose bool

	flag.Float64Var(&opts.rate, "rate", core.DefaultSampleRate, "sample rate in Hz")
	flag.IntVar(&opts.batch, "batch", core.DefaultBlockSize, "samples per batch")
	flag.IntVar(&opts.batches, "batches", 200, "number of batches to render")
	flag.StringVar(&tones, "tones", "440,2000", "comma-separated tone frequencies in Hz")
	flag.Float64Var(&opts.noise, "noise", 0, "white noise amplitude mixed into the tones")
	flag.Int64Var(&opts.seed, "seed", 1, "noise seed")
	flag.StringVar(&opts.filter, "filter", "lpf", "filter type: lpf, hpf or none")
	flag.Float64Var(&opts.cutoff, "cutoff", 1000, "filter cutoff in Hz")
	flag.Float64Var(&opts.gain, "gain", 0, "cookbook gain in dB (shapes the resonance)")
	flag.Float64Var(&opts.slope, "slope", 1, "cookbook shelf slope")
	flag.BoolVar(&opts.normalize, "normalize", true, "scale the filtered signal to the -peak level")
	flag.Float64Var(&opts.peakDB, "peak", -1, "normalization peak in dBFS")
	flag.StringVar(&opts.out, "out", "", "output WAV path (empty skips writing)")
	flag.IntVar(&opts.maxBin, "maxbin", 0, "number of spectrum bins to analyze (0 = all)")
	flag.StringVar(&opts.window, "window", "hann", "analysis window: none, hann, hamming, blackman or flat-top")
	flag.BoolVar(&verbose, "v", false, "log coefficients and processing details")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: tonegen [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Renders tones, filters them with a biquad and writes a WAV file.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  tonegen -tones 440,2000 -filter lpf -cutoff 1000 -out tones.wav\n")
		fmt.Fprintf(os.Stderr, "  tonegen -filter hpf -cutoff 500 -v\n")
	}
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	freqs, err := parseFrequencies(tones)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	opts.tones = freqs

	if err := run(opts, os.Stdout, log); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseFrequencies(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("tone %q: %w", field, err)
		}
		if f <= 0 {
			return nil, fmt.Errorf("tone frequency must be > 0: %v", f)
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, errors.New("no tone frequencies given")
	}
	return out, nil
}

func run(opts options, stdout io.Writer, log logrus.FieldLogger) error {
	coreOpts := []core.ProcessorOption{
		core.WithSampleRate(opts.rate),
		core.WithBlockSize(opts.batch),
	}
	gen := signal.NewGenerator(coreOpts, signal.WithSeed(opts.seed))
	cfg := gen.Config()

	sig, err := gen.Chord(opts.tones, opts.batches)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"tones":    opts.tones,
		"batches":  sig.NumBatches(),
		"samples":  sig.Len(),
		"duration": sig.Duration(),
	}).Debug("rendered tones")

	if opts.noise > 0 {
		noise, err := gen.WhiteNoise(opts.noise, sig.Len())
		if err != nil {
			return err
		}
		if err := sig.Mix(noise); err != nil {
			return fmt.Errorf("mix noise: %w", err)
		}
	}

	sig, err = applyFilter(sig, opts, log)
	if err != nil {
		return err
	}

	if opts.normalize {
		norm, err := signal.Normalize(sig.Flatten(), core.DBToLinear(opts.peakDB))
		if err != nil {
			return err
		}
		sig = signal.FromSamples(norm, core.WithConfig(cfg))
	}

	if opts.out != "" {
		if err := writeWAV(opts.out, sig); err != nil {
			return err
		}
		log.WithField("path", opts.out).Info("wrote wav")
	}

	win, err := window.ParseType(opts.window)
	if err != nil {
		return err
	}
	sp, err := sig.Spectrum(opts.maxBin, spectrum.WithWindow(win))
	if err != nil {
		return err
	}
	freq, mag := sp.Peak()

	w := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "samples\t%d\n", sig.Len())
	fmt.Fprintf(w, "duration\t%v\n", sig.Duration())
	fmt.Fprintf(w, "fft size\t%d\n", sp.Size)
	fmt.Fprintf(w, "window\t%v\n", win)
	fmt.Fprintf(w, "bin width\t%.3f Hz\n", sp.BinWidth())
	fmt.Fprintf(w, "peak\t%.1f Hz (%.3f)\n", freq, mag)

	samples := sig.Flatten()
	for _, f := range opts.tones {
		amp, err := spectrum.ToneAmplitude(samples, f, cfg.SampleRate)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "tone %.1f Hz\t%.4f (%.1f dB)\n", f, amp, core.LinearToDB(amp))
	}
	return w.Flush()
}

func applyFilter(sig *signal.Signal, opts options, log logrus.FieldLogger) (*signal.Signal, error) {
	var kind design.Kind
	switch strings.ToLower(opts.filter) {
	case "none", "":
		return sig, nil
	case "lpf":
		kind = design.KindLowpass
	case "hpf":
		kind = design.KindHighpass
	default:
		k, err := design.ParseKind(opts.filter)
		if err != nil {
			return nil, err
		}
		kind = k
	}

	p := design.Params{
		SampleRate: sig.Config().SampleRate,
		Cutoff:     opts.cutoff,
		GainDB:     opts.gain,
		Slope:      opts.slope,
	}
	_, _, q, err := design.Intermediate(p)
	if err != nil {
		return nil, err
	}
	c, err := design.Design(kind, p)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"kind": kind,
		"q":    q,
		"b0":   c.B0,
		"b1":   c.B1,
		"b2":   c.B2,
		"a1":   c.A1,
		"a2":   c.A2,
	}).Debug("designed biquad")

	return biquad.NewFilter(c).Process(sig)
}

func writeWAV(path string, sig *signal.Signal) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return sig.WriteWAV(f)
}
