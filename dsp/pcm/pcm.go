package pcm

import (
	"encoding/binary"
	"math"

	"github.com/cwbudde/algo-synth/dsp/core"
)

// FullScale is the integer value that a sample of 1.0 quantizes to.
const FullScale = 1<<15 - 1

// Quantize16 converts one sample to a signed 16-bit value.
func Quantize16(x float64) int16 {
	if math.IsNaN(x) {
		return 0
	}
	return int16(math.Round(core.Clamp(x, -1, 1) * FullScale))
}

// Dequantize16 maps a 16-bit value back to [-1, 1].
func Dequantize16(q int16) float64 {
	return float64(q) / FullScale
}

// Encode16 quantizes every sample.
func Encode16(samples []float64) []int16 {
	out := make([]int16, len(samples))
	for i, x := range samples {
		out[i] = Quantize16(x)
	}
	return out
}

// Decode16 de-quantizes every value.
func Decode16(frames []int16) []float64 {
	out := make([]float64, len(frames))
	for i, q := range frames {
		out[i] = Dequantize16(q)
	}
	return out
}

// Bytes16LE packs the quantized samples as little-endian signed 16-bit
// frames, two bytes per sample.
func Bytes16LE(samples []float64) []byte {
	out := make([]byte, 2*len(samples))
	for i, x := range samples {
		binary.LittleEndian.PutUint16(out[2*i:], uint16(Quantize16(x)))
	}
	return out
}
