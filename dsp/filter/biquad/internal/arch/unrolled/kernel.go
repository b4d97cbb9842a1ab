// Package unrolled provides a 4x-unrolled direct-form-I kernel. Each
// output uses the same expression as the generic kernel, so results are
// bit-identical.
package unrolled

import "github.com/cwbudde/algo-synth/dsp/filter/biquad/internal/arch/registry"

// ProcessBlock filters buf in place, four samples per iteration.
func ProcessBlock(c registry.Coefficients, s registry.State, buf []float64) registry.State {
	b0, b1, b2 := c.B0, c.B1, c.B2
	a1, a2 := c.A1, c.A2
	x1, x2, y1, y2 := s.X1, s.X2, s.Y1, s.Y2

	i := 0
	n := len(buf)
	for ; i+3 < n; i += 4 {
		in0, in1, in2, in3 := buf[i], buf[i+1], buf[i+2], buf[i+3]

		out0 := b0*in0 + b1*x1 + b2*x2 - a1*y1 - a2*y2
		out1 := b0*in1 + b1*in0 + b2*x1 - a1*out0 - a2*y1
		out2 := b0*in2 + b1*in1 + b2*in0 - a1*out1 - a2*out0
		out3 := b0*in3 + b1*in2 + b2*in1 - a1*out2 - a2*out1

		buf[i], buf[i+1], buf[i+2], buf[i+3] = out0, out1, out2, out3

		x1, x2 = in3, in2
		y1, y2 = out3, out2
	}

	for ; i < n; i++ {
		x := buf[i]
		y := b0*x + b1*x1 + b2*x2 - a1*y1 - a2*y2
		x2, x1 = x1, x
		y2, y1 = y1, y
		buf[i] = y
	}

	return registry.State{X1: x1, X2: x2, Y1: y1, Y2: y2}
}
