// SPDX-License-Identifier: EPL-2.0

// Package vorbisfile decodes Ogg Vorbis audio through libvorbisfile,
// reading the compressed stream from any io.Reader.
//
// Instead of handing libvorbisfile a file handle, the package opens the
// decoder with ov_open_callbacks and feeds it through a read callback that
// pulls bytes from the caller's reader. Any byte source works: a file,
// stdin, a network connection, or an in-memory buffer. Seeking is
// deliberately unsupported, so streams are decoded strictly front to back.
//
// # Requirements
//
// This package uses cgo and links against libvorbisfile (and through it
// libvorbis and libogg). The development headers must be installed to
// build, e.g. libvorbis-dev on Debian or libvorbis on Homebrew.
//
// # Decoding a Stream
//
// Open a decoder around a reader and pull blocks of samples:
//
//	f, err := vorbisfile.Open(file)
//	if err != nil {
//	    // Handle error
//	}
//	defer f.Close()
//
//	for {
//	    channels, err := f.Decode()
//	    if errors.Is(err, vorbisfile.ErrEndOfStream) {
//	        break
//	    }
//	    if err != nil {
//	        // Handle error
//	    }
//	    // channels holds one []float32 per channel, all equal length
//	}
//
// Decode emits non-interleaved float32 samples in [-1.0, 1.0], one slice
// per channel, at most BlockSize samples per channel per call.
//
// # Buffer Ownership
//
// The slices returned by Decode alias buffers owned by the native decoder
// state. They are valid only until the next Decode or Close call on the
// same File. Copy the samples out to keep them longer, or wrap the File in
// a SampleReader, which copies on every read and produces interleaved
// samples:
//
//	r, _ := vorbisfile.NewSampleReader(f)
//	buf := make([]float32, 4096)
//	n, err := r.ReadSamples(buf)
//
// # Metadata
//
// Stream tags travel as KEY=VALUE text entries plus a vendor string:
//
//	if c, ok := f.Comment(vorbisfile.CurrentLink); ok {
//	    fmt.Println("encoded by", c.Vendor)
//	    for _, kv := range c.Pairs() {
//	        fmt.Println(kv[0], "=", kv[1])
//	    }
//	}
//
// Stream parameters (channel count, sample rate, bitrate bounds) are
// available through Info.
//
// # Error Handling
//
// Every libvorbisfile status code maps to one of the package sentinel
// errors, comparable with errors.Is. Two of them are not failures:
// ErrEndOfStream signals completion and keeps being returned once seen,
// and ErrStreamInterrupted reports a hole in the stream data that the
// decoder recovers from on its own, so decoding may simply continue.
// The remaining errors end the current decode loop; only ErrInternalFault
// is truly unrecoverable.
//
// # Concurrency
//
// A File is strictly single threaded: every call blocks until the native
// decoder returns, and during that call the read callback may fire any
// number of times against the underlying reader. Calls on one File must
// never overlap.
//
// # Limitations
//
// Note:
//   - Decoding only; encoding is not supported
//   - No seeking; the stream is consumed strictly forward
//   - Chained streams decode link by link, but link enumeration beyond
//     passing an index to Comment and Info is not provided
package vorbisfile
