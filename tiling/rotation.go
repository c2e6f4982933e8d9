package tiling

// Side identifies one of the four sides of a tile or square mosaic.
// The numeric order (right, top, left, bottom) is load-bearing: adding a
// Rotation to a Side walks the sides counter-clockwise, so Side and
// Rotation share one arithmetic.
type Side uint8

const (
	// Right is side 0; RotationFromRight maps it to Identity.
	Right Side = iota
	// Top is side 1.
	Top
	// Left is side 2.
	Left
	// Bottom is side 3.
	Bottom

	sideCount = 4
)

// Sides lists all four sides in indexing order.
var Sides = [sideCount]Side{Right, Top, Left, Bottom}

// Transform returns the side that s lands on after rotating by r.
// Complexity: O(1).
func (s Side) Transform(r Rotation) Side {
	return Side((uint8(s) + uint8(r)) % sideCount)
}

// ReverseTransform returns the side that lands on s after rotating by r.
// It inverts Transform: s.Transform(r).ReverseTransform(r) == s.
// Complexity: O(1).
func (s Side) ReverseTransform(r Rotation) Side {
	return Side((uint8(s) + sideCount - uint8(r)) % sideCount)
}

// RotationFromRight returns the rotation carrying the right side onto s.
// Complexity: O(1).
func (s Side) RotationFromRight() Rotation {
	return Rotation(s)
}

// String returns the lowercase side name.
func (s Side) String() string {
	switch s {
	case Right:
		return "right"
	case Top:
		return "top"
	case Left:
		return "left"
	default:
		return "bottom"
	}
}

// Rotation is an element of the cyclic group of order 4: the number of
// counter-clockwise quarter turns.
type Rotation uint8

const (
	// Identity leaves sides in place.
	Identity Rotation = iota
	// QuarterTurnLeft is one counter-clockwise quarter turn.
	QuarterTurnLeft
	// HalfTurn is two quarter turns.
	HalfTurn
	// QuarterTurnRight is three counter-clockwise quarter turns.
	QuarterTurnRight

	rotationCount = 4
)

// Rotations lists the full rotation group in group order.
var Rotations = [rotationCount]Rotation{Identity, QuarterTurnLeft, HalfTurn, QuarterTurnRight}

// Add composes two rotations.
// Complexity: O(1).
func (r Rotation) Add(o Rotation) Rotation {
	return Rotation((uint8(r) + uint8(o)) % rotationCount)
}

// String returns the rotation name.
func (r Rotation) String() string {
	switch r {
	case Identity:
		return "identity"
	case QuarterTurnLeft:
		return "quarter-turn-left"
	case HalfTurn:
		return "half-turn"
	default:
		return "quarter-turn-right"
	}
}

// RectRotation is an element of the order-2 rotation subgroup that maps
// a non-square rectangle onto itself: identity or half turn.
type RectRotation uint8

const (
	// RectIdentity leaves the rectangle in place.
	RectIdentity RectRotation = iota
	// RectHalfTurn rotates the rectangle by 180 degrees.
	RectHalfTurn

	rectRotationCount = 2
)

// RectRotations lists the rectangular rotation group in group order.
var RectRotations = [rectRotationCount]RectRotation{RectIdentity, RectHalfTurn}

// Add composes two rectangular rotations.
// Complexity: O(1).
func (r RectRotation) Add(o RectRotation) RectRotation {
	return RectRotation((uint8(r) + uint8(o)) % rectRotationCount)
}

// ToSquare embeds r into the full rotation group.
// Complexity: O(1).
func (r RectRotation) ToSquare() Rotation {
	return Rotation(2 * uint8(r))
}

// String returns the rotation name.
func (r RectRotation) String() string {
	if r == RectIdentity {
		return "identity"
	}

	return "half-turn"
}

// VerticalSide identifies the right or left boundary of a rectangle.
// The numeric order mirrors Side so that RotationFromRight is a cast.
type VerticalSide uint8

const (
	// VerticalRight is the right boundary.
	VerticalRight VerticalSide = iota
	// VerticalLeft is the left boundary.
	VerticalLeft
)

// RotationFromRight returns the rectangular rotation carrying the right
// boundary onto s.
// Complexity: O(1).
func (s VerticalSide) RotationFromRight() RectRotation {
	return RectRotation(s)
}

// ToSide returns the square-side equivalent of s.
// Complexity: O(1).
func (s VerticalSide) ToSide() Side {
	if s == VerticalRight {
		return Right
	}

	return Left
}

// Add rotates the boundary selector by r.
// Complexity: O(1).
func (s VerticalSide) Add(r RectRotation) VerticalSide {
	return VerticalSide((uint8(s) + uint8(r)) % rectRotationCount)
}

// HorizontalSide identifies the top or bottom boundary of a rectangle.
type HorizontalSide uint8

const (
	// HorizontalTop is the top boundary.
	HorizontalTop HorizontalSide = iota
	// HorizontalBottom is the bottom boundary.
	HorizontalBottom
)

// RotationFromTop returns the rectangular rotation carrying the top
// boundary onto s.
// Complexity: O(1).
func (s HorizontalSide) RotationFromTop() RectRotation {
	return RectRotation(s)
}

// ToSide returns the square-side equivalent of s.
// Complexity: O(1).
func (s HorizontalSide) ToSide() Side {
	if s == HorizontalTop {
		return Top
	}

	return Bottom
}

// Add rotates the boundary selector by r.
// Complexity: O(1).
func (s HorizontalSide) Add(r RectRotation) HorizontalSide {
	return HorizontalSide((uint8(s) + uint8(r)) % rectRotationCount)
}
