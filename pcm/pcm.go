// SPDX-License-Identifier: EPL-2.0

package pcm

// Float32ToInt16 converts a normalized float32 sample to 16-bit PCM.
func Float32ToInt16(x float32) int16 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	// Use 32767 for positive max to avoid overflow
	return int16(x * 32767.0)
}

// Interleave merges per-channel sample slices into a single interleaved
// slice: [L0, R0, L1, R1, ...]. All channels must have the same length.
func Interleave(channels [][]float32) ([]float32, error) {
	if len(channels) == 0 {
		return nil, ErrNoChannels
	}

	frames := len(channels[0])
	for _, ch := range channels[1:] {
		if len(ch) != frames {
			return nil, ErrChannelLengthMismatch
		}
	}

	out := make([]float32, 0, frames*len(channels))
	for i := 0; i < frames; i++ {
		for _, ch := range channels {
			out = append(out, ch[i])
		}
	}

	return out, nil
}

// Deinterleave splits interleaved samples into one slice per channel. The
// sample count must be a whole number of frames.
func Deinterleave(samples []float32, numChannels int) ([][]float32, error) {
	if numChannels <= 0 {
		return nil, ErrNoChannels
	}
	if len(samples)%numChannels != 0 {
		return nil, ErrInvalidChannelCount
	}

	frames := len(samples) / numChannels
	out := make([][]float32, numChannels)
	for ch := range out {
		out[ch] = make([]float32, frames)
	}

	for i := 0; i < frames; i++ {
		for ch := 0; ch < numChannels; ch++ {
			out[ch][i] = samples[i*numChannels+ch]
		}
	}

	return out, nil
}
