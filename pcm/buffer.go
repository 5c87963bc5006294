// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	goaudio "github.com/go-audio/audio"
)

// FloatBuffer packs per-channel samples into a go-audio float buffer with
// interleaved data, for handing off to go-audio based pipelines.
func FloatBuffer(channels [][]float32, sampleRate int) (*goaudio.FloatBuffer, error) {
	interleaved, err := Interleave(channels)
	if err != nil {
		return nil, err
	}

	data := make([]float64, len(interleaved))
	for i, s := range interleaved {
		data[i] = float64(s)
	}

	return &goaudio.FloatBuffer{
		Format: &goaudio.Format{
			NumChannels: len(channels),
			SampleRate:  sampleRate,
		},
		Data: data,
	}, nil
}

// IntBuffer16 converts interleaved float32 samples to a 16-bit go-audio
// int buffer. Samples outside [-1, 1] are clamped.
func IntBuffer16(samples []float32, sampleRate, numChannels int) (*goaudio.IntBuffer, error) {
	if numChannels <= 0 {
		return nil, ErrNoChannels
	}
	if len(samples)%numChannels != 0 {
		return nil, ErrInvalidChannelCount
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(Float32ToInt16(s))
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: numChannels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}, nil
}
