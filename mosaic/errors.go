package mosaic

import "errors"

// Sentinel errors for mosaic construction.
var (
	// ErrBadDimensions indicates a non-positive width or height.
	ErrBadDimensions = errors.New("mosaic: width and height must be positive")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("mosaic: all rows must have the same length")
)
