package testutil

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// RequireSliceNearlyEqual fails t unless got and want have the same length
// and agree element-wise within eps. The failure names the worst sample.
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	idx, diff := worstDiff(got, want)
	if diff > eps {
		t.Fatalf("index %d: got %v, want %v (diff %g > eps %g)", idx, got[idx], want[idx], diff, eps)
	}
}

// RequireFinite fails t on the first NaN or Inf in data.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	if i, ok := core.AllFinite(data); !ok {
		t.Fatalf("index %d: non-finite value %v", i, data[i])
	}
}

// worstDiff returns the index and size of the largest absolute difference.
// NaN on either side counts as an infinite difference.
func worstDiff(a, b []float64) (int, float64) {
	idx, worst := 0, 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if math.IsNaN(d) {
			d = math.Inf(1)
		}
		if d > worst {
			idx, worst = i, d
		}
	}
	return idx, worst
}
