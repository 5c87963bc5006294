// SPDX-License-Identifier: EPL-2.0

package vorbisfile

/*
#include <vorbis/codec.h>
*/
import "C"

import (
	"strings"
	"unicode/utf8"
	"unsafe"
)

// Comments holds the metadata of one logical bitstream link.
type Comments struct {
	// Vendor identifies the encoder implementation that produced the
	// stream.
	Vendor string
	// Comments are the user tags, conventionally of the form KEY=VALUE
	// although bare entries without '=' are allowed.
	Comments []string
}

// commentsFromNative copies a vorbis_comment structure out of decoder-owned
// memory. Entries are length prefixed rather than NUL terminated, so each
// one is read with its recorded length. Vorbis requires comment data to be
// UTF-8; entries that are not are skipped rather than failing the whole
// extraction.
func commentsFromNative(cm *C.vorbis_comment) *Comments {
	count := int(cm.comments)
	out := &Comments{
		Vendor:   C.GoString(cm.vendor),
		Comments: make([]string, 0, count),
	}

	entries := unsafe.Slice(cm.user_comments, count)
	lengths := unsafe.Slice(cm.comment_lengths, count)
	for i := 0; i < count; i++ {
		entry := C.GoStringN(entries[i], lengths[i])
		if !utf8.ValidString(entry) {
			continue
		}
		out.Comments = append(out.Comments, entry)
	}

	return out
}

// Pairs splits every comment entry into a key and a value at the first '='.
// A bare entry with no '=' becomes a key with an empty value, as does an
// entry whose '=' is the final byte.
func (c *Comments) Pairs() [][2]string {
	pairs := make([][2]string, 0, len(c.Comments))
	for _, entry := range c.Comments {
		key, value, _ := strings.Cut(entry, "=")
		pairs = append(pairs, [2]string{key, value})
	}

	return pairs
}
