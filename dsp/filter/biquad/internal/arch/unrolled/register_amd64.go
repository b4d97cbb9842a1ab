//go:build amd64 && !purego

package unrolled

import (
	"github.com/cwbudde/algo-synth/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "unrolled4",
		SIMDLevel:    cpu.SIMDAVX2,
		Priority:     20,
		ProcessBlock: ProcessBlock,
	})
}
