// SPDX-License-Identifier: EPL-2.0

package vorbisfile

import (
	"errors"
	"io"
)

// SampleReader presents a File as a stream of interleaved float32 samples
// in [-1, 1]. Unlike File.Decode, whose channel slices alias decoder-owned
// memory, ReadSamples copies samples into the caller's buffer, so the data
// stays valid for as long as the caller needs it.
//
// Stream interruptions (holes in the page sequence) are recovered from
// silently; decoding simply continues past them.
type SampleReader struct {
	f    blockDecoder
	info Info

	// current block from File.Decode and the next frame to consume in it
	block [][]float32
	frame int
}

// blockDecoder is the slice of File that SampleReader needs, split out to
// allow testing with a fake decoder.
type blockDecoder interface {
	Decode() ([][]float32, error)
	Info(link int) (Info, error)
	Close() error
}

// NewSampleReader wraps an open File. The reported sample rate and channel
// count are those of the link active at the time of the call.
func NewSampleReader(f *File) (*SampleReader, error) {
	info, err := f.Info(CurrentLink)
	if err != nil {
		return nil, err
	}

	return &SampleReader{f: f, info: info}, nil
}

// SampleRate of the PCM stream in Hz.
func (r *SampleReader) SampleRate() int { return r.info.SampleRate }

// Channels count (e.g., 1=mono, 2=stereo).
func (r *SampleReader) Channels() int { return r.info.Channels }

// BufSize is the number of frames a single decode step produces at most.
func (r *SampleReader) BufSize() int { return BlockSize }

// Close releases the underlying File.
func (r *SampleReader) Close() error { return r.f.Close() }

// ReadSamples fills dst with interleaved float32 samples and returns the
// number of values written (not frames). When the stream ends while dst is
// only partially filled, the partial count is returned with a nil error and
// the next call reports 0 and io.EOF.
func (r *SampleReader) ReadSamples(dst []float32) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	written := 0
	for written < len(dst) {
		if r.block == nil || r.frame >= len(r.block[0]) {
			block, err := r.f.Decode()
			if errors.Is(err, ErrStreamInterrupted) {
				continue
			}
			if errors.Is(err, ErrEndOfStream) {
				if written > 0 {
					return written, nil
				}
				return 0, io.EOF
			}
			if err != nil {
				return written, err
			}
			r.block = block
			r.frame = 0
		}

		numChannels := len(r.block)
		frames := (len(dst) - written) / numChannels
		if frames == 0 {
			if written == 0 {
				return 0, ErrInvalidArgument
			}
			break
		}
		if avail := len(r.block[0]) - r.frame; frames > avail {
			frames = avail
		}

		for i := 0; i < frames; i++ {
			for ch := 0; ch < numChannels; ch++ {
				dst[written] = r.block[ch][r.frame+i]
				written++
			}
		}
		r.frame += frames
	}

	return written, nil
}
