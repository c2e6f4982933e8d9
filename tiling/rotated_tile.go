package tiling

// ExteriorMask records which sides of a rotated tile read the exterior
// value: bit 0 = right, bit 1 = top, bit 2 = left, bit 3 = bottom.
type ExteriorMask uint8

const (
	// MaskRight flags an exterior right side.
	MaskRight ExteriorMask = 1 << iota
	// MaskTop flags an exterior top side.
	MaskTop
	// MaskLeft flags an exterior left side.
	MaskLeft
	// MaskBottom flags an exterior bottom side.
	MaskBottom
)

// RotatedTile is a catalog tile together with an applied rotation.
type RotatedTile struct {
	Tile     Tile
	Rotation Rotation
}

// MinRotatedTile and MaxRotatedTile bound the (tile, rotation) ordering.
var (
	MinRotatedTile = RotatedTile{Tile: 0, Rotation: Identity}
	MaxRotatedTile = RotatedTile{Tile: TileCount - 1, Rotation: QuarterTurnRight}
)

// Color returns the color of side s once the rotation is applied: the
// rotated tile shows on s whatever the unrotated tile shows on the side
// that the rotation carries onto s.
// Complexity: O(1).
func (rt RotatedTile) Color(s Side) Color {
	return rt.Tile.Color(s.ReverseTransform(rt.Rotation))
}

// Add composes an extra rotation onto the tile.
// Complexity: O(1).
func (rt RotatedTile) Add(r Rotation) RotatedTile {
	rt.Rotation = rt.Rotation.Add(r)

	return rt
}

// ExteriorMask computes the exterior flags of all four sides.
// Complexity: O(1).
func (rt RotatedTile) ExteriorMask() ExteriorMask {
	var mask ExteriorMask
	if rt.Color(Right) == Exterior {
		mask |= MaskRight
	}
	if rt.Color(Top) == Exterior {
		mask |= MaskTop
	}
	if rt.Color(Left) == Exterior {
		mask |= MaskLeft
	}
	if rt.Color(Bottom) == Exterior {
		mask |= MaskBottom
	}

	return mask
}

// IsCanonicalCorner reports whether the rotated tile is a corner in
// canonical orientation.
//
//	┌──────────┐
//	│ ┌────────┤
//	│ │╭─►     │
//	│ │ corner │
//	│ │     ◄─╯│
//	└─┴────────┘
//
// Corner pieces in canonical orientation have exterior sides on the top
// and left.
// Complexity: O(1).
func (rt RotatedTile) IsCanonicalCorner() bool {
	return rt.ExteriorMask() == MaskTop|MaskLeft
}

// IsCanonicalEdge reports whether the rotated tile is an edge in
// canonical orientation.
//
//	┌─┬────────┐
//	│ │╭─►     │
//	│ │  edge  │
//	│ │     ◄─╯│
//	└─┴────────┘
//
// Edge pieces in canonical orientation have an exterior side on the left.
// Complexity: O(1).
func (rt RotatedTile) IsCanonicalEdge() bool {
	return rt.ExteriorMask() == MaskLeft
}

// IsCanonicalCenter reports whether the rotated tile is a center in
// canonical orientation.
//
//	┌────────┐
//	│ ▴    ▴ │
//	│ center │
//	│        │
//	└────────┘
//
// Center pieces have no exterior sides; the identity rotation is the
// canonical representative.
// Complexity: O(1).
func (rt RotatedTile) IsCanonicalCenter() bool {
	return rt.ExteriorMask() == 0 && rt.Rotation == Identity
}

// Before reports whether rt precedes o in the (tile, rotation) order
// used to pick canonical representatives.
// Complexity: O(1).
func (rt RotatedTile) Before(o RotatedTile) bool {
	if rt.Tile != o.Tile {
		return rt.Tile < o.Tile
	}

	return rt.Rotation < o.Rotation
}

// Min returns the smaller of rt and o in the (tile, rotation) order.
// Complexity: O(1).
func (rt RotatedTile) Min(o RotatedTile) RotatedTile {
	if o.Before(rt) {
		return o
	}

	return rt
}
