package tiling

// Color is one of the 23 edge symbols, stored as 0..22.
// Color 0 (Exterior) is the reserved border value: it marks a side that
// faces the outside of the board and carries no physical color.
type Color uint8

const (
	// Exterior is the reserved border value.
	Exterior Color = 0

	// BorderColorMin..BorderColorMax are the colors that appear on edges
	// shared between border and interior tiles.
	BorderColorMin Color = 1
	BorderColorMax Color = 5

	// InteriorColorMin..InteriorColorMax are the purely interior colors.
	InteriorColorMin Color = 6
	InteriorColorMax Color = 22

	// ColorCount is the size of the color alphabet, Exterior included.
	ColorCount = 23
)

// IsBorder reports whether c is the reserved exterior value.
// Complexity: O(1).
func (c Color) IsBorder() bool {
	return c == Exterior
}

// IsValidNonBorder reports whether c is a real (non-exterior) color.
// Complexity: O(1).
func (c Color) IsValidNonBorder() bool {
	return c >= BorderColorMin && c <= InteriorColorMax
}

// ColorFromChar maps a byte in 'a'..'w' onto a Color ('a' is Exterior).
// The second result is false for bytes outside the alphabet.
// Complexity: O(1).
func ColorFromChar(b byte) (Color, bool) {
	if b < 'a' || b > 'w' {
		return Exterior, false
	}

	return Color(b - 'a'), true
}

// Char returns the byte form of c: 'a' for Exterior through 'w'.
// Complexity: O(1).
func (c Color) Char() byte {
	return 'a' + byte(c)
}

// String returns the single-character display form of c.
func (c Color) String() string {
	return string(c.Char())
}
