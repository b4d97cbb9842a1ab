//go:build arm64 && !purego

package unrolled

import (
	"github.com/cwbudde/algo-synth/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

func init() {
	registry.Global.Register(registry.OpEntry{
		Name:         "unrolled4",
		SIMDLevel:    cpu.SIMDNEON,
		Priority:     15,
		ProcessBlock: ProcessBlock,
	})
}
