package pcm

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const (
	bitDepth      = 16
	numChannels   = 1
	wavFormatPCM  = 1
	maxSampleRate = 1 << 20
)

var (
	errInvalidWAV = errors.New("not a valid wav stream")
	errNotMono    = errors.New("wav must be mono")
)

// WriteWAV writes samples as a mono 16-bit PCM WAV stream.
func WriteWAV(w io.WriteSeeker, samples []float64, sampleRate int) error {
	if sampleRate <= 0 || sampleRate > maxSampleRate {
		return fmt.Errorf("wav sample rate out of range: %d", sampleRate)
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, numChannels, wavFormatPCM)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: numChannels,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: bitDepth,
	}
	for i, x := range samples {
		buf.Data[i] = int(Quantize16(x))
	}

	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("wav write: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wav close: %w", err)
	}
	return nil
}

// ReadWAV decodes a 16-bit WAV stream. Multi-channel input is rejected.
func ReadWAV(r io.ReadSeeker) ([]float64, int, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, errInvalidWAV
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wav read: %w", err)
	}
	if buf.Format == nil || buf.Format.NumChannels != numChannels {
		return nil, 0, errNotMono
	}
	if dec.BitDepth != bitDepth {
		return nil, 0, fmt.Errorf("wav bit depth must be %d: %d", bitDepth, dec.BitDepth)
	}

	out := make([]float64, len(buf.Data))
	for i, v := range buf.Data {
		out[i] = Dequantize16(int16(v))
	}
	return out, buf.Format.SampleRate, nil
}
