package biquad

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-synth/dsp/core"
	archregistry "github.com/cwbudde/algo-synth/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-synth/dsp/signal"
	"github.com/cwbudde/algo-synth/internal/testutil"
	"github.com/cwbudde/algo-vecmath/cpu"
)

type dispatchCase struct {
	name     string
	features cpu.Features
	wantImpl string
}

func resetProcessBlockDispatchForTest() {
	processBlockImpl = nil
	processBlockInitOnce = sync.Once{}
}

// runDispatchCases forces each feature set, checks which kernel the
// registry hands out and runs a batched signal through it.
func runDispatchCases(t *testing.T, cases []dispatchCase) {
	t.Helper()
	c := simpleLowpass()
	samples := testutil.DeterministicNoise(7, 0.8, 37)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cpu.SetForcedFeatures(tc.features)
			defer cpu.ResetDetection()
			resetProcessBlockDispatchForTest()
			defer resetProcessBlockDispatchForTest()

			entry := archregistry.Global.Lookup(cpu.DetectFeatures())
			if entry == nil {
				t.Fatal("Lookup returned nil")
			}
			if entry.Name != tc.wantImpl {
				t.Fatalf("kernel = %q, want %q", entry.Name, tc.wantImpl)
			}

			in := signal.FromSamples(samples, core.WithBlockSize(8))
			out, err := NewFilter(c).Process(in)
			if err != nil {
				t.Fatal(err)
			}
			testutil.RequireSliceNearlyEqual(t, out.Flatten(), referenceOf(c, samples), eps)
		})
	}
}
