// SPDX-License-Identifier: EPL-2.0

// Package pcm converts decoded Vorbis samples between layouts and formats.
//
// The vorbisfile package produces non-interleaved float32 channels; most
// audio sinks want interleaved data, integers, or go-audio buffers. This
// package covers those conversions.
//
// # Sample Layouts
//
// Decoded audio comes in two layouts:
//   - Non-interleaved: one slice per channel, [[L0, L1, ...], [R0, R1, ...]]
//   - Interleaved: a single slice, [L0, R0, L1, R1, ...]
//
// Interleave and Deinterleave convert between them:
//
//	interleaved, err := pcm.Interleave(channels)
//	channels, err := pcm.Deinterleave(interleaved, 2)
//
// # go-audio Buffers
//
// For pipelines built on github.com/go-audio, FloatBuffer and IntBuffer16
// wrap samples in the corresponding buffer types with a populated format:
//
//	buf, err := pcm.FloatBuffer(channels, 44100)
//	ints, err := pcm.IntBuffer16(interleaved, 44100, 2)
//
// # Writing WAV Files
//
// WriteWAV16 stores interleaved samples as a 16-bit PCM WAV file:
//
//	out, _ := os.Create("output.wav")
//	defer out.Close()
//	err := pcm.WriteWAV16(out, 44100, 2, samples)
//
// # Sample Format
//
// Float samples are expected in [-1.0, 1.0]. Conversions to 16-bit PCM
// clamp values outside that range rather than wrapping.
package pcm
