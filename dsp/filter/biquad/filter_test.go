package biquad

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-synth/dsp/core"
	"github.com/cwbudde/algo-synth/dsp/signal"
	"github.com/cwbudde/algo-synth/internal/testutil"
)

const eps = 1e-12

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func passthrough() Coefficients {
	return Coefficients{B0: 1}
}

func simpleLowpass() Coefficients {
	return Coefficients{B0: 0.25, B1: 0.5, B2: 0.25, A1: -0.2, A2: 0.04}
}

func referenceOf(c Coefficients, in []float64) []float64 {
	return testutil.DirectFormI(c.B0, c.B1, c.B2, c.A1, c.A2, in)
}

func TestCoefficientsVector(t *testing.T) {
	got := simpleLowpass().Vector()
	want := [6]float64{0.25, 0.5, 0.25, 1, -0.2, 0.04}
	if got != want {
		t.Fatalf("Vector() = %v, want %v", got, want)
	}
}

func TestCoefficientsIsFinite(t *testing.T) {
	if !simpleLowpass().IsFinite() {
		t.Fatal("finite coefficients reported non-finite")
	}
	if (Coefficients{B0: 1, A1: math.Inf(1)}).IsFinite() {
		t.Fatal("Inf coefficient reported finite")
	}
}

func TestStateProcessSample_HandTraced(t *testing.T) {
	c := simpleLowpass()
	var s State

	want := []float64{0.25, 0.55, 0.35, 0.048}
	for i, w := range want {
		x := 0.0
		if i == 0 {
			x = 1
		}
		if y := s.ProcessSample(c, x); !almostEqual(y, w, eps) {
			t.Fatalf("y[%d] = %.15f, want %.15f", i, y, w)
		}
	}
	if s.X1 != 0 || s.X2 != 0 || !almostEqual(s.Y1, 0.048, eps) || !almostEqual(s.Y2, 0.35, eps) {
		t.Fatalf("registers after impulse = %+v", s)
	}

	s.Reset()
	if s != (State{}) {
		t.Fatalf("Reset left %+v", s)
	}
}

func TestProcess_PreservesShape(t *testing.T) {
	in := signal.FromSamples(testutil.DeterministicNoise(1, 1, 10), core.WithBlockSize(4))
	in.AppendTone(440)

	out, err := NewFilter(simpleLowpass()).Process(in)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if out.NumBatches() != in.NumBatches() {
		t.Fatalf("batches = %d, want %d", out.NumBatches(), in.NumBatches())
	}
	for i := range in.NumBatches() {
		if len(out.Batch(i)) != len(in.Batch(i)) {
			t.Fatalf("batch %d len = %d, want %d", i, len(out.Batch(i)), len(in.Batch(i)))
		}
	}
	if out.Config() != in.Config() || out.Phase() != in.Phase() {
		t.Fatal("Process must keep configuration and phase")
	}
}

func TestProcess_MatchesDirectFormI(t *testing.T) {
	samples := testutil.DeterministicNoise(7, 1, 1000)
	c := Coefficients{B0: 0.2, B1: -0.1, B2: 0.05, A1: -1.1, A2: 0.3}

	out, err := NewFilter(c).Process(signal.FromSamples(samples, core.WithBlockSize(128)))
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, out.Flatten(), referenceOf(c, samples), eps)
}

func TestProcess_StateCarriesAcrossBatches(t *testing.T) {
	samples := testutil.DeterministicSine(1000, 48000, 0.8, 300)
	f := NewFilter(simpleLowpass())

	var outs [][]float64
	for _, block := range []int{1, 3, 64, 300} {
		out, err := f.Process(signal.FromSamples(samples, core.WithBlockSize(block)))
		if err != nil {
			t.Fatalf("block %d: Process() error = %v", block, err)
		}
		outs = append(outs, out.Flatten())
	}
	for i := 1; i < len(outs); i++ {
		testutil.RequireSliceNearlyEqual(t, outs[i], outs[0], eps)
	}
}

func TestProcess_ZeroStateEveryCall(t *testing.T) {
	in := signal.FromSamples(testutil.DC(1, 16), core.WithBlockSize(4))
	f := NewFilter(simpleLowpass())

	first, err := f.Process(in)
	if err != nil {
		t.Fatal(err)
	}
	second, err := f.Process(in)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, second.Flatten(), first.Flatten(), 0)
}

func TestProcess_DoesNotModifyInput(t *testing.T) {
	samples := testutil.DeterministicNoise(3, 1, 50)
	in := signal.FromSamples(samples, core.WithBlockSize(8))

	if _, err := NewFilter(simpleLowpass()).Process(in); err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, in.Flatten(), samples, 0)
}

func TestProcess_Passthrough(t *testing.T) {
	samples := testutil.DeterministicNoise(11, 0.5, 33)
	out, err := NewFilter(passthrough()).Process(signal.FromSamples(samples, core.WithBlockSize(5)))
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, out.Flatten(), samples, 0)
}

func TestProcess_Empty(t *testing.T) {
	out, err := NewFilter(simpleLowpass()).Process(signal.New())
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if out.NumBatches() != 0 {
		t.Fatalf("batches = %d, want 0", out.NumBatches())
	}
}

func TestProcess_NonFinite(t *testing.T) {
	samples := []float64{0, 0, 0, 0, 1, math.NaN(), 0, 0}
	_, err := NewFilter(simpleLowpass()).Process(signal.FromSamples(samples, core.WithBlockSize(4)))
	if !errors.Is(err, ErrNonFinite) {
		t.Fatalf("Process() error = %v, want ErrNonFinite", err)
	}
	if !strings.Contains(err.Error(), "batch 1 sample 1") {
		t.Fatalf("error %q does not locate the failing sample", err)
	}
	if !strings.Contains(err.Error(), "b0=0.25") {
		t.Fatalf("error %q does not report coefficients", err)
	}
	// Registers entering the NaN sample, after the impulse at sample 0.
	if !strings.Contains(err.Error(), "x1=1 x2=0 y1=0.25 y2=0)") {
		t.Fatalf("error %q does not report the registers at the failing sample", err)
	}
}

func TestProcessSamples_NonFiniteRegisters(t *testing.T) {
	in := []float64{1, 0, math.Inf(1), 0}
	_, err := NewFilter(simpleLowpass()).ProcessSamples(in)
	if !errors.Is(err, ErrNonFinite) {
		t.Fatalf("ProcessSamples() error = %v, want ErrNonFinite", err)
	}
	// y0 = 0.25, y1 = 0.5 + 0.2*0.25 = 0.55.
	if !strings.Contains(err.Error(), "sample 2") || !strings.Contains(err.Error(), "x1=0 x2=1 y1=0.55 y2=0.25)") {
		t.Fatalf("error %q does not report the registers at the failing sample", err)
	}
}

func TestProcess_UnstableOverflows(t *testing.T) {
	c := Coefficients{B0: 1, A1: -3}
	_, err := NewFilter(c).Process(signal.FromSamples(testutil.DC(1, 2048), core.WithBlockSize(128)))
	if !errors.Is(err, ErrNonFinite) {
		t.Fatalf("Process() error = %v, want ErrNonFinite", err)
	}
}

func TestProcessSamples(t *testing.T) {
	in := testutil.DeterministicNoise(5, 1, 37)
	c := simpleLowpass()

	got, err := NewFilter(c).ProcessSamples(in)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, got, referenceOf(c, in), eps)

	if _, err := NewFilter(c).ProcessSamples([]float64{math.Inf(1)}); !errors.Is(err, ErrNonFinite) {
		t.Fatalf("ProcessSamples(Inf) error = %v, want ErrNonFinite", err)
	}
}

func TestImpulseResponse(t *testing.T) {
	c := simpleLowpass()
	f := NewFilter(c)

	ir := f.ImpulseResponse(32)
	testutil.RequireSliceNearlyEqual(t, ir, referenceOf(c, testutil.Impulse(32, 0)), eps)

	if f.ImpulseResponse(0) != nil {
		t.Fatal("ImpulseResponse(0) must be nil")
	}
	if f.Coefficients() != c {
		t.Fatal("Coefficients() changed")
	}
}

func TestProcessSample_LongRunStaysFinite(t *testing.T) {
	var s State
	c := simpleLowpass()
	out := make([]float64, 100000)
	for i := range out {
		out[i] = s.ProcessSample(c, math.Sin(float64(i)*0.01))
	}
	testutil.RequireFinite(t, out)
}
