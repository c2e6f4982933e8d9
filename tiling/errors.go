package tiling

import "errors"

// Sentinel errors for tiling operations.
var (
	// ErrColorChar indicates a byte outside the 'a'..'w' color alphabet.
	ErrColorChar = errors.New("tiling: byte outside color alphabet 'a'..'w'")
)
