// SPDX-License-Identifier: EPL-2.0

package playback

import "errors"

var (
	// ErrUnsupportedBitDepth indicates samples a sink cannot unpack.
	ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")
	// ErrNoChannels indicates a header declaring zero channels.
	ErrNoChannels = errors.New("channel count must be greater than zero")
	// ErrPartialFrame indicates the payload ended in the middle of a frame.
	ErrPartialFrame = errors.New("payload ends with a partial frame")
	// ErrSessionFinished indicates Run was called on a session that already ran.
	ErrSessionFinished = errors.New("playback session already finished")
)
