// Package wavio exports rendered mono buffers as PCM WAV files and reads them
// back for comparison.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/cwbudde/algo-synthgraph/dsp/core"
)

const wavFormatPCM = 1

var (
	ErrUnsupportedBitDepth = errors.New("wavio: bit depth must be 16, 24 or 32")
	ErrInvalidSampleRate   = errors.New("wavio: sample rate must be positive")
	ErrInvalidFile         = errors.New("wavio: not a valid WAV file")
)

// Write encodes samples as mono integer PCM. Values outside [-1, 1] are
// clipped.
func Write(w io.WriteSeeker, samples []float64, sampleRate, bitDepth int) error {
	if bitDepth != 16 && bitDepth != 24 && bitDepth != 32 {
		return fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}

	scale := fullScale(bitDepth) - 1
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleRate,
		},
		Data:           make([]int, len(samples)),
		SourceBitDepth: bitDepth,
	}
	for i, v := range samples {
		buf.Data[i] = int(math.Round(core.Clamp(v, -1, 1) * scale))
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, 1, wavFormatPCM)
	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		return fmt.Errorf("wavio: encode: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("wavio: finalize: %w", err)
	}
	return nil
}

// WriteFile creates path and writes samples to it.
func WriteFile(path string, samples []float64, sampleRate, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := Write(f, samples, sampleRate, bitDepth); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Read decodes a PCM WAV stream into samples in [-1, 1]. Multi-channel
// input is averaged down to mono.
func Read(r io.ReadSeeker) ([]float64, int, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, 0, ErrInvalidFile
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, 0, fmt.Errorf("wavio: decode: %w", err)
	}

	bitDepth := int(dec.SampleBitDepth())
	if bitDepth == 0 {
		return nil, 0, fmt.Errorf("%w: unknown bit depth", ErrInvalidFile)
	}

	channels := max(buf.Format.NumChannels, 1)
	factor := fullScale(bitDepth)
	frames := len(buf.Data) / channels

	out := make([]float64, frames)
	for i := range out {
		sum := 0.0
		for c := range channels {
			sum += float64(buf.Data[i*channels+c])
		}
		out[i] = sum / float64(channels) / factor
	}

	return out, buf.Format.SampleRate, nil
}

// ReadFile opens path and decodes it with Read.
func ReadFile(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	return Read(f)
}

func fullScale(bitDepth int) float64 {
	return math.Ldexp(1, bitDepth-1)
}
