// SPDX-License-Identifier: EPL-2.0

package transcode

import "errors"

var (
	// ErrUnsupportedExtension indicates no renderer is registered for a file extension.
	ErrUnsupportedExtension = errors.New("no renderer for file extension")
	// ErrNotAiffFile indicates the input is not a readable AIFF file.
	ErrNotAiffFile = errors.New("not an AIFF file")
	// ErrUnsupportedAiffDepth indicates an AIFF bit depth with no PCM WAVE equivalent here.
	ErrUnsupportedAiffDepth = errors.New("unsupported AIFF bit depth")
	// ErrNoChannels indicates a decoded stream reporting zero channels.
	ErrNoChannels = errors.New("decoded stream has no channels")
)
