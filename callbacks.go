// SPDX-License-Identifier: EPL-2.0

package vorbisfile

/*
#include <stddef.h>
#include <vorbis/vorbisfile.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

// The callback table handed to ov_open_callbacks carries no instance state,
// so the four entry points below are free functions that recover the owning
// File through the datasource context pointer. The context is a
// runtime/cgo.Handle encoded as void*, never a Go pointer: handles stay
// valid no matter what the runtime does with the File's memory, and looking
// one up always yields the File's current address.

func fileFromContext(datasource unsafe.Pointer) *File {
	return cgo.Handle(uintptr(datasource)).Value().(*File)
}

// vorbisfileRead fills ptr with up to size*nmemb bytes from the reader
// behind datasource and reports how many complete size-byte elements were
// produced. Short reads are retried against the remaining region until the
// buffer is full or the reader reports an error or EOF; a trailing partial
// element is not counted. libvorbisfile tells EOF apart from failure on its
// own, so both end the loop the same way here.
//
//export vorbisfileRead
func vorbisfileRead(ptr unsafe.Pointer, size, nmemb C.size_t, datasource unsafe.Pointer) C.size_t {
	f := fileFromContext(datasource)

	want := int(size) * int(nmemb)
	if want == 0 {
		return 0
	}
	dst := unsafe.Slice((*byte)(ptr), want)

	total := 0
	for total < want {
		n, err := f.src.Read(dst[total:])
		total += n
		if err != nil {
			break
		}
	}

	return C.size_t(total / int(size))
}

// vorbisfileSeek always fails: this binding decodes from a plain io.Reader
// and does not support seeking.
//
//export vorbisfileSeek
func vorbisfileSeek(datasource unsafe.Pointer, offset C.ogg_int64_t, whence C.int) C.int {
	return -1
}

// vorbisfileTell always fails, for the same reason as vorbisfileSeek.
//
//export vorbisfileTell
func vorbisfileTell(datasource unsafe.Pointer) C.long {
	return -1
}

// vorbisfileClose reports success without doing anything. The File owns the
// reader and releases it on Close, not libvorbisfile.
//
//export vorbisfileClose
func vorbisfileClose(datasource unsafe.Pointer) C.int {
	return 0
}
