// SPDX-License-Identifier: EPL-2.0

package vorbisfile

/*
#include <vorbis/codec.h>
*/
import "C"

import (
	"errors"
	"fmt"
)

var (
	// ErrEndOfStream reports that the decoder consumed the whole stream.
	// It is a completion signal, not a failure; further Decode calls keep
	// returning it.
	ErrEndOfStream = errors.New("end of stream")
	// ErrStreamInterrupted reports missing or corrupt data in the stream.
	// libvorbisfile recovers from it on its own, so callers may simply
	// keep decoding.
	ErrStreamInterrupted = errors.New("interruption in stream data")
	// ErrRead reports an I/O failure while reading compressed data.
	ErrRead = errors.New("read failed on data source")
	// ErrInternalFault reports an internal inconsistency in the decoder
	// state. Recovery is impossible.
	ErrInternalFault = errors.New("internal decoder fault")
	// ErrNotImplemented reports use of a feature libvorbisfile does not
	// implement.
	ErrNotImplemented = errors.New("feature not implemented")
	// ErrInvalidArgument reports an invalid argument passed to the
	// decoder.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrNotVorbis reports data that is not recognized as Ogg Vorbis.
	ErrNotVorbis = errors.New("not Ogg Vorbis data")
	// ErrInvalidHeader reports a corrupt or indecipherable Vorbis header.
	ErrInvalidHeader = errors.New("invalid Vorbis header")
	// ErrUnsupportedVersion reports an unsupported bitstream format
	// revision.
	ErrUnsupportedVersion = errors.New("unsupported bitstream version")
	// ErrNotAudio reports a packet that is not audio data.
	ErrNotAudio = errors.New("packet is not audio")
	// ErrBadPacket reports an audio packet that failed to decode.
	ErrBadPacket = errors.New("invalid stream packet")
	// ErrCorruptLink reports a logical bitstream link that exists but is
	// corrupt.
	ErrCorruptLink = errors.New("corrupt stream link")
	// ErrNotSeekable reports a seek request against a non-seekable
	// stream. This binding never seeks, so any seek attempt inside
	// libvorbisfile surfaces as this error.
	ErrNotSeekable = errors.New("stream is not seekable")
	// ErrUnknownStatus reports a status code outside the documented
	// libvorbisfile set. It indicates a contract violation by the native
	// library and is returned instead of aborting.
	ErrUnknownStatus = errors.New("unknown native status code")
)

// statusError translates a negative libvorbisfile status code into one of
// the package sentinel errors. OV_FALSE carries no more detail than "no
// result" and maps to ErrUnknownStatus together with any undocumented code.
func statusError(code int) error {
	switch code {
	case C.OV_HOLE:
		return ErrStreamInterrupted
	case C.OV_EREAD:
		return ErrRead
	case C.OV_EFAULT:
		return ErrInternalFault
	case C.OV_EIMPL:
		return ErrNotImplemented
	case C.OV_EINVAL:
		return ErrInvalidArgument
	case C.OV_ENOTVORBIS:
		return ErrNotVorbis
	case C.OV_EBADHEADER:
		return ErrInvalidHeader
	case C.OV_EVERSION:
		return ErrUnsupportedVersion
	case C.OV_ENOTAUDIO:
		return ErrNotAudio
	case C.OV_EBADPACKET:
		return ErrBadPacket
	case C.OV_EBADLINK:
		return ErrCorruptLink
	case C.OV_ENOSEEK:
		return ErrNotSeekable
	default:
		return fmt.Errorf("%w: %d", ErrUnknownStatus, int(code))
	}
}
