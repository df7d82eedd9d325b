package engine

import "errors"

// Sentinel errors returned by extraction and validation. Callers should
// match them with errors.Is since they are wrapped with positional context.
var (
	// ErrOutOfBounds indicates a requested rectangle or circle extends past
	// the source image dimensions.
	ErrOutOfBounds = errors.New("region out of bounds")

	// ErrRegionTooSmall indicates a selection dimension below the 10 pixel
	// minimum. Smaller regions magnify into unusable blur and are rejected
	// before any samples are copied.
	ErrRegionTooSmall = errors.New("region too small")
)
