// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"fmt"
	"io"

	"github.com/go-audio/wav"
)

// WriteWAV16 writes interleaved float32 samples as a 16-bit PCM WAV file.
// The writer must support seeking because the WAV header is finalized with
// the chunk sizes after the data is written.
func WriteWAV16(w io.WriteSeeker, sampleRate, numChannels int, samples []float32) error {
	buf, err := IntBuffer16(samples, sampleRate, numChannels)
	if err != nil {
		return err
	}

	enc := wav.NewEncoder(w, sampleRate, 16, numChannels, 1)
	if err := enc.Write(buf); err != nil {
		return fmt.Errorf("writing wav data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}

	return nil
}
