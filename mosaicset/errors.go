package mosaicset

import "errors"

// Sentinel errors for mosaic set operations.
var (
	// ErrSizeMismatch indicates a mosaic (or merged set) whose dimensions
	// differ from the set's fixed size.
	ErrSizeMismatch = errors.New("mosaicset: mosaic dimensions do not match the set size")
	// ErrNotDistinct indicates the rotation-orbit invariant is violated:
	// some stored mosaic is a rotation of another stored mosaic (or of
	// itself). It signals a canonicalization or indexing bug upstream.
	ErrNotDistinct = errors.New("mosaicset: rotation orbit collides; set is not canonical")
)

// Panic messages for programmer errors.
const (
	panicSquareSize = "mosaicset: NewSquareSet: size must be positive"
	panicRectSize   = "mosaicset: NewRectSet: width and height must be positive and distinct"
)
