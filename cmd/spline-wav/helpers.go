package main

import (
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	spline "github.com/tphakala/go-cubic-spline"
)

// wavData holds a decoded WAV file as planar float64 channels in [-1, 1).
type wavData struct {
	channels [][]float64
	rate     int
	bitDepth int
}

// readWAV decodes a WAV file into planar float channels.
func readWAV(path string) (*wavData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("invalid WAV file: %s", path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode PCM data: %w", err)
	}

	channels := buf.Format.NumChannels
	bitDepth := int(decoder.BitDepth)
	frames := len(buf.Data) / channels
	if frames < minChannelSamples {
		return nil, fmt.Errorf("input too short: %d frames, need at least %d", frames, minChannelSamples)
	}

	return &wavData{
		channels: deinterleave(buf.Data, channels, bitDepth),
		rate:     buf.Format.SampleRate,
		bitDepth: bitDepth,
	}, nil
}

// writeWAV encodes planar float channels as a PCM WAV file.
func writeWAV(path string, channels [][]float64, rate, bitDepth int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, rate, bitDepth, len(channels), pcmFormat)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: len(channels), SampleRate: rate},
		Data:           interleave(channels, bitDepth),
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("failed to write PCM data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV file: %w", err)
	}
	return nil
}

// deinterleave splits interleaved integer samples into planar float channels.
func deinterleave(data []int, channels, bitDepth int) [][]float64 {
	frames := len(data) / channels
	scale := 1.0 / float64(int(1)<<(bitDepth-1))

	out := make([][]float64, channels)
	for ch := range out {
		out[ch] = make([]float64, frames)
		for i := 0; i < frames; i++ {
			out[ch][i] = float64(data[i*channels+ch]) * scale
		}
	}
	return out
}

// interleave merges planar float channels into interleaved integer samples,
// clipping to the bit depth's range.
func interleave(channels [][]float64, bitDepth int) []int {
	frames := len(channels[0])
	fullScale := int(1) << (bitDepth - 1)

	data := make([]int, frames*len(channels))
	for ch, samples := range channels {
		for i, v := range samples {
			s := int(math.Round(v * float64(fullScale)))
			if s > fullScale-1 {
				s = fullScale - 1
			} else if s < -fullScale {
				s = -fullScale
			}
			data[i*len(channels)+ch] = s
		}
	}
	return data
}

// resampleChannels resamples each channel by the given ratio, concurrently
// when parallel is set.
func resampleChannels(channels [][]float64, ratio float64, parallel bool) ([][]float64, error) {
	out := make([][]float64, len(channels))

	if !parallel || len(channels) == 1 {
		for ch, samples := range channels {
			resampled, err := resampleChannel(samples, ratio)
			if err != nil {
				return nil, fmt.Errorf("channel %d: %w", ch, err)
			}
			out[ch] = resampled
		}
		return out, nil
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for ch := range channels {
		wg.Add(1)
		go func(ch int) {
			defer wg.Done()
			resampled, err := resampleChannel(channels[ch], ratio)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("channel %d: %w", ch, err)
				}
				mu.Unlock()
				return
			}
			out[ch] = resampled
		}(ch)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// resampleChannel evaluates the channel at output grid positions using
// splines fitted over sliding windows of input samples.
//
// Output position j maps to input position j/ratio. A window of windowSize
// consecutive samples is fitted once and serves every output position inside
// its core region (the window minus its edge margins), so the solver cost is
// amortized across many output samples.
func resampleChannel(in []float64, ratio float64) ([]float64, error) {
	n := len(in)
	if n < minChannelSamples {
		return nil, fmt.Errorf("channel too short: %d samples, need at least %d", n, minChannelSamples)
	}

	// Output positions span [0, n-1] in input space.
	outLen := int(math.Floor(float64(n-1)*ratio)) + 1
	out := make([]float64, outLen)

	xs := make([]float64, windowSize)
	j := 0
	for j < outLen {
		pos := float64(j) / ratio

		ws := int(pos) - windowMargin
		if ws < 0 {
			ws = 0
		}
		if ws > n-windowSize {
			ws = n - windowSize
		}

		for i := range xs {
			xs[i] = float64(ws + i)
		}
		s, err := spline.FitXY(xs, in[ws:ws+windowSize])
		if err != nil {
			return nil, err
		}

		coreEnd := float64(ws + windowSize - 1 - windowMargin)
		if ws == n-windowSize {
			coreEnd = float64(n - 1)
		}

		for j < outLen {
			pos = float64(j) / ratio
			if pos > coreEnd {
				break
			}
			y, err := s.Evaluate(pos)
			if err != nil {
				return nil, err
			}
			out[j] = y
			j++
		}
	}
	return out, nil
}
