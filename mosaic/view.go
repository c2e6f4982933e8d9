package mosaic

import (
	"github.com/katalvlaran/tessella/tiling"
)

// RotatedSquare is a zero-copy view of a square backing mosaic under a
// rotation from the full order-4 group. At remaps coordinates through
// the rotation's permutation and adds the rotation to each retrieved
// tile; the backing storage is never touched. Views compose: rotating a
// view accumulates rotation by group addition.
//
// The view assumes the backing mosaic is square; callers obtain views
// from square sets, whose inserts enforce that.
type RotatedSquare struct {
	M        Mosaic
	Rotation tiling.Rotation
}

// Width returns the side length. Complexity: O(1).
func (v RotatedSquare) Width() int { return v.M.Width() }

// Height returns the side length. Complexity: O(1).
func (v RotatedSquare) Height() int { return v.M.Height() }

// At returns the rotated tile at (x, y) of the rotated view.
// Complexity: O(1).
func (v RotatedSquare) At(x, y int) tiling.RotatedTile {
	n := v.M.Width()
	var rt tiling.RotatedTile
	switch v.Rotation {
	case tiling.Identity:
		rt = v.M.At(x, y)
	case tiling.QuarterTurnLeft:
		rt = v.M.At(n-1-y, x)
	case tiling.HalfTurn:
		rt = v.M.At(n-1-x, n-1-y)
	default: // QuarterTurnRight
		rt = v.M.At(y, n-1-x)
	}

	return rt.Add(v.Rotation)
}

// Add composes an extra rotation onto the view without copying.
// Complexity: O(1).
func (v RotatedSquare) Add(r tiling.Rotation) RotatedSquare {
	return RotatedSquare{M: v.M, Rotation: v.Rotation.Add(r)}
}

// RotatedRect is a zero-copy view of a rectangular backing mosaic under
// a rotation from the order-2 subgroup. The half turn maps (x, y) to
// (W-1-x, H-1-y) and half-turns every retrieved tile.
type RotatedRect struct {
	M        Mosaic
	Rotation tiling.RectRotation
}

// Width returns the number of columns. Complexity: O(1).
func (v RotatedRect) Width() int { return v.M.Width() }

// Height returns the number of rows. Complexity: O(1).
func (v RotatedRect) Height() int { return v.M.Height() }

// At returns the rotated tile at (x, y) of the rotated view.
// Complexity: O(1).
func (v RotatedRect) At(x, y int) tiling.RotatedTile {
	var rt tiling.RotatedTile
	switch v.Rotation {
	case tiling.RectIdentity:
		rt = v.M.At(x, y)
	default: // RectHalfTurn
		rt = v.M.At(v.M.Width()-1-x, v.M.Height()-1-y)
	}

	return rt.Add(v.Rotation.ToSquare())
}

// Add composes an extra rectangular rotation onto the view.
// Complexity: O(1).
func (v RotatedRect) Add(r tiling.RectRotation) RotatedRect {
	return RotatedRect{M: v.M, Rotation: v.Rotation.Add(r)}
}
