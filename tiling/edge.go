package tiling

// Edge is the ordered run of colors along one boundary of a mosaic,
// stored in character form ('a'..'w', one byte per color). Being a
// string it is comparable and usable as a map key, which is how mosaic
// sets index their contents.
//
// Two mosaics glued along a shared boundary read that boundary in
// opposite traversal directions, so a lookup for a gluing partner always
// reverses the query key first.
type Edge string

// EdgeOf builds an Edge from colors in traversal order.
// Complexity: O(n).
func EdgeOf(colors ...Color) Edge {
	buf := make([]byte, len(colors))
	for i, c := range colors {
		buf[i] = c.Char()
	}

	return Edge(buf)
}

// ParseEdge validates that every byte of s lies in 'a'..'w' and returns
// it as an Edge. Returns ErrColorChar otherwise.
// Complexity: O(n).
func ParseEdge(s string) (Edge, error) {
	for i := 0; i < len(s); i++ {
		if _, ok := ColorFromChar(s[i]); !ok {
			return "", ErrColorChar
		}
	}

	return Edge(s), nil
}

// Len returns the number of colors on the edge.
// Complexity: O(1).
func (e Edge) Len() int {
	return len(e)
}

// At returns the i-th color in traversal order.
// Complexity: O(1).
func (e Edge) At(i int) Color {
	return Color(e[i] - 'a')
}

// Reversed returns the same colors read back-to-front. It is an
// involution: e.Reversed().Reversed() == e.
// Complexity: O(n).
func (e Edge) Reversed() Edge {
	buf := make([]byte, len(e))
	for i := 0; i < len(e); i++ {
		buf[i] = e[len(e)-1-i]
	}

	return Edge(buf)
}

// FlipEq reports whether e equals o read in the opposite direction,
// without allocating.
// Complexity: O(n).
func (e Edge) FlipEq(o Edge) bool {
	if len(e) != len(o) {
		return false
	}
	for i := 0; i < len(e); i++ {
		if e[i] != o[len(o)-1-i] {
			return false
		}
	}

	return true
}

// String returns the character form of the edge.
func (e Edge) String() string {
	return string(e)
}
