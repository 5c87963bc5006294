// SPDX-License-Identifier: EPL-2.0

package pcm

import "errors"

var (
	ErrNoChannels            = errors.New("no channels given")
	ErrChannelLengthMismatch = errors.New("channels must be of equal length")
	ErrInvalidChannelCount   = errors.New("sample count must be a multiple of channels")
)
