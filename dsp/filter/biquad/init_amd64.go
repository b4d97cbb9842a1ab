//go:build amd64 && !purego

package biquad

import (
	_ "github.com/cwbudde/algo-synth/dsp/filter/biquad/internal/arch/generic"  // register generic backend
	_ "github.com/cwbudde/algo-synth/dsp/filter/biquad/internal/arch/registry" // initialize backend registry
	_ "github.com/cwbudde/algo-synth/dsp/filter/biquad/internal/arch/unrolled" // register unrolled backend
)
