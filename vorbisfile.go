// SPDX-License-Identifier: EPL-2.0

package vorbisfile

/*
#cgo LDFLAGS: -lvorbisfile -lvorbis -logg
#include <stdint.h>
#include <stdlib.h>
#include <vorbis/vorbisfile.h>

extern size_t vorbisfileRead(void *ptr, size_t size, size_t nmemb, void *datasource);
extern int vorbisfileSeek(void *datasource, ogg_int64_t offset, int whence);
extern long vorbisfileTell(void *datasource);
extern int vorbisfileClose(void *datasource);

// vorbisfile_open installs the callback table and opens the decoder. The
// handle travels as the datasource context pointer and comes back to the
// callbacks above on every invocation.
static int vorbisfile_open(uintptr_t handle, OggVorbis_File *vf) {
	ov_callbacks callbacks = {
		.read_func  = vorbisfileRead,
		.seek_func  = vorbisfileSeek,
		.close_func = vorbisfileClose,
		.tell_func  = vorbisfileTell,
	};

	return ov_open_callbacks((void *)handle, vf, NULL, 0, callbacks);
}
*/
import "C"

import (
	"io"
	"runtime/cgo"
	"unsafe"
)

// BlockSize is the maximum number of samples per channel a single Decode
// call produces.
const BlockSize = 4096

// CurrentLink selects the logical bitstream currently being decoded when
// passed to Comment or Info.
const CurrentLink = -1

// File decodes an Ogg Vorbis stream read from an io.Reader.
//
// A File is not safe for concurrent use; calls on one instance must be
// sequential. libvorbisfile invokes the read callback synchronously during
// Open and Decode, so those calls block until the reader delivers enough
// compressed data or fails.
type File struct {
	src io.Reader

	// vf lives on the C heap. libvorbisfile keeps internal pointers into
	// the block, so its address must never change while the File is open.
	vf     *C.OggVorbis_File
	handle cgo.Handle

	// channels is rebuilt on every Decode call; it only holds views into
	// buffers owned by vf.
	channels [][]float32
	closed   bool
}

// Open creates a decoder for the Ogg Vorbis stream supplied by r. The File
// takes ownership of the reader for the duration of decoding; Open itself
// already reads from it to parse the stream headers.
func Open(r io.Reader) (*File, error) {
	f := &File{
		src: r,
		vf:  (*C.OggVorbis_File)(C.calloc(1, C.sizeof_OggVorbis_File)),
	}
	f.handle = cgo.NewHandle(f)

	if status := C.vorbisfile_open(C.uintptr_t(f.handle), f.vf); status != 0 {
		// The decoder state was never initialized, so ov_clear must not
		// run against it. Releasing the raw block is all the rollback
		// there is.
		C.free(unsafe.Pointer(f.vf))
		f.handle.Delete()

		return nil, statusError(int(status))
	}

	return f, nil
}

// Decode produces the next block of samples, one slice per channel, all of
// equal length between 1 and BlockSize. It returns ErrEndOfStream once the
// stream is exhausted, and keeps returning it on further calls.
//
// The returned slices alias buffers owned by the native decoder. They stay
// valid only until the next Decode or Close call; copy the data out for
// anything longer lived, or use a SampleReader which does so already.
func (f *File) Decode() ([][]float32, error) {
	if f.closed {
		return nil, ErrInvalidArgument
	}

	var (
		pcm       **C.float
		bitstream C.int
	)

	n := C.ov_read_float(f.vf, &pcm, C.int(BlockSize), &bitstream)
	if n == 0 {
		return nil, ErrEndOfStream
	}
	if n < 0 {
		return nil, statusError(int(n))
	}

	info := C.ov_info(f.vf, bitstream)
	if info == nil {
		return nil, ErrInternalFault
	}
	numChannels := int(info.channels)

	// Views from the previous block are invalid now, rebuild from scratch.
	f.channels = f.channels[:0]
	buffers := unsafe.Slice(pcm, numChannels)
	for ch := 0; ch < numChannels; ch++ {
		samples := unsafe.Slice((*float32)(unsafe.Pointer(buffers[ch])), int(n))
		f.channels = append(f.channels, samples)
	}

	return f.channels, nil
}

// Info describes one logical bitstream link.
type Info struct {
	// Version is the Vorbis encoder version the link was produced with.
	Version int
	// Channels is the channel count of the link.
	Channels int
	// SampleRate of the PCM stream in Hz.
	SampleRate int

	// Bitrate bounds in bits per second. Zero when the stream does not
	// declare them.
	BitrateUpper   int
	BitrateNominal int
	BitrateLower   int
}

// Info reports the stream parameters of the given link. Pass CurrentLink
// for the link currently being decoded.
func (f *File) Info(link int) (Info, error) {
	if f.closed {
		return Info{}, ErrInvalidArgument
	}

	info := C.ov_info(f.vf, C.int(link))
	if info == nil {
		return Info{}, ErrInvalidArgument
	}

	return Info{
		Version:        int(info.version),
		Channels:       int(info.channels),
		SampleRate:     int(info.rate),
		BitrateUpper:   int(info.bitrate_upper),
		BitrateNominal: int(info.bitrate_nominal),
		BitrateLower:   int(info.bitrate_lower),
	}, nil
}

// Comment fetches the metadata of the given link, or of the current link
// when CurrentLink is passed. The second return value is false when the
// stream carries no comment structure for that link.
func (f *File) Comment(link int) (*Comments, bool) {
	if f.closed {
		return nil, false
	}

	cm := C.ov_comment(f.vf, C.int(link))
	if cm == nil {
		return nil, false
	}

	return commentsFromNative(cm), true
}

// Close releases the native decoder state. It is safe to call more than
// once; only the first call performs the teardown. Close never closes the
// underlying reader, which stays owned by the caller.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true

	C.ov_clear(f.vf)
	C.free(unsafe.Pointer(f.vf))
	f.handle.Delete()
	f.channels = nil

	return nil
}
