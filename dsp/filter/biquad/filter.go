//nolint:funcorder
package biquad

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-synth/dsp/core"
	archregistry "github.com/cwbudde/algo-synth/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-synth/dsp/signal"
	"github.com/cwbudde/algo-vecmath/cpu"
)

var (
	processBlockImpl     archregistry.ProcessBlockFn
	processBlockInitOnce sync.Once
)

func initProcessBlockKernel() {
	entry := archregistry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("biquad: no ProcessBlock kernel registered (missing generic fallback?)")
	}

	if entry.ProcessBlock == nil {
		panic("biquad: selected kernel missing ProcessBlock")
	}

	processBlockImpl = entry.ProcessBlock
}

// Filter applies one biquad section. It holds no state between calls and
// is safe for concurrent use.
type Filter struct {
	c Coefficients
}

// NewFilter returns a filter for c.
func NewFilter(c Coefficients) *Filter {
	return &Filter{c: c}
}

// Coefficients returns the filter coefficients.
func (f *Filter) Coefficients() Coefficients { return f.c }

// Process filters in and returns a new signal with the same batch shape,
// configuration and phase. The delay registers start at zero and carry
// across batch boundaries; in is not modified.
//
// If any output sample is NaN or Inf, ErrNonFinite is returned together
// with the coefficients and registers at the failing batch.
func (f *Filter) Process(in *signal.Signal) (*signal.Signal, error) {
	processBlockInitOnce.Do(initProcessBlockKernel)

	out := in.Clone()
	coeffs := archregistry.Coefficients(f.c)
	var st archregistry.State

	err := out.Transform(func(i int, batch []float64) error {
		entry := st
		st = processBlockImpl(coeffs, st, batch)
		if j, ok := core.AllFinite(batch); !ok {
			return f.nonFinite(i, j, batch[j], f.replay(State(entry), in.Batch(i)[:j]))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// ProcessSamples filters a copy of in from zero state.
func (f *Filter) ProcessSamples(in []float64) ([]float64, error) {
	processBlockInitOnce.Do(initProcessBlockKernel)

	out := append([]float64(nil), in...)
	processBlockImpl(archregistry.Coefficients(f.c), archregistry.State{}, out)
	if j, ok := core.AllFinite(out); !ok {
		return nil, f.nonFinite(0, j, out[j], f.replay(State{}, in[:j]))
	}
	return out, nil
}

// ImpulseResponse returns the first n samples of h[n].
func (f *Filter) ImpulseResponse(n int) []float64 {
	if n <= 0 {
		return nil
	}
	var st State
	ir := make([]float64, n)
	ir[0] = st.ProcessSample(f.c, 1)
	for i := 1; i < n; i++ {
		ir[i] = st.ProcessSample(f.c, 0)
	}
	return ir
}

// replay runs x through st and returns the registers that feed the sample
// following x.
func (f *Filter) replay(st State, x []float64) State {
	for _, v := range x {
		st.ProcessSample(f.c, v)
	}
	return st
}

// nonFinite reports the failing sample together with the registers it was
// computed from.
func (f *Filter) nonFinite(batch, sample int, v float64, st State) error {
	c := f.c
	return fmt.Errorf("batch %d sample %d = %v (b0=%g b1=%g b2=%g a1=%g a2=%g; x1=%g x2=%g y1=%g y2=%g): %w",
		batch, sample, v,
		c.B0, c.B1, c.B2, c.A1, c.A2,
		st.X1, st.X2, st.Y1, st.Y2,
		ErrNonFinite)
}
