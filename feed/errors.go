// SPDX-License-Identifier: EPL-2.0

package feed

import "errors"

var (
	// ErrZeroCapacity indicates a feeder was asked for non-positive sized chunks.
	ErrZeroCapacity = errors.New("buffer capacity must be greater than zero")
	// ErrShortBuffer indicates Fill was given a buffer smaller than the capacity.
	ErrShortBuffer = errors.New("buffer smaller than feeder capacity")
	// ErrPayloadOutOfRange indicates the payload does not lie inside its source.
	ErrPayloadOutOfRange = errors.New("payload outside source buffer")
)
