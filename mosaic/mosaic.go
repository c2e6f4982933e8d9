package mosaic

import (
	"github.com/katalvlaran/tessella/tiling"
)

// Mosaic is a read-only rectangular grid of rotated tiles.
// Coordinates are 0-indexed with x fastest; (0,0) is the top-left cell.
type Mosaic interface {
	// Width returns the number of columns.
	Width() int
	// Height returns the number of rows.
	Height() int
	// At returns the rotated tile at (x, y).
	At(x, y int) tiling.RotatedTile
}

// VerticalEdge extracts the right or left boundary of m.
//
// The right edge is read top-to-bottom, the left edge bottom-to-top.
// Under this convention a boundary and the boundary it glues to are
// equal only after reversal, which is exactly how set lookups probe.
// Complexity: O(H).
func VerticalEdge(m Mosaic, side tiling.VerticalSide) tiling.Edge {
	w, h := m.Width(), m.Height()
	colors := make([]tiling.Color, h)
	switch side {
	case tiling.VerticalRight:
		for y := 0; y < h; y++ {
			colors[y] = m.At(w-1, y).Color(tiling.Right)
		}
	case tiling.VerticalLeft:
		for y := 0; y < h; y++ {
			colors[y] = m.At(0, h-1-y).Color(tiling.Left)
		}
	}

	return tiling.EdgeOf(colors...)
}

// HorizontalEdge extracts the top or bottom boundary of m.
//
// The top edge is read left-to-right, the bottom edge right-to-left.
// Complexity: O(W).
func HorizontalEdge(m Mosaic, side tiling.HorizontalSide) tiling.Edge {
	w, h := m.Width(), m.Height()
	colors := make([]tiling.Color, w)
	switch side {
	case tiling.HorizontalTop:
		for x := 0; x < w; x++ {
			colors[x] = m.At(x, 0).Color(tiling.Top)
		}
	case tiling.HorizontalBottom:
		for x := 0; x < w; x++ {
			colors[x] = m.At(w-1-x, h-1).Color(tiling.Bottom)
		}
	}

	return tiling.EdgeOf(colors...)
}

// SquareEdge extracts any of the four boundaries of a square mosaic.
// Complexity: O(N).
func SquareEdge(m Mosaic, side tiling.Side) tiling.Edge {
	switch side {
	case tiling.Right:
		return VerticalEdge(m, tiling.VerticalRight)
	case tiling.Top:
		return HorizontalEdge(m, tiling.HorizontalTop)
	case tiling.Left:
		return VerticalEdge(m, tiling.VerticalLeft)
	default:
		return HorizontalEdge(m, tiling.HorizontalBottom)
	}
}

// Fingerprint serializes m into a comparable key: two bytes per cell
// (tile, rotation) in row-major order. Lexicographic comparison of
// fingerprints equals cell-wise comparison of equal-size mosaics, so
// the fingerprint doubles as the total order behind canonical
// tie-breaks and distinctness checks.
// Complexity: O(W×H).
func Fingerprint(m Mosaic) string {
	w, h := m.Width(), m.Height()
	buf := make([]byte, 0, 2*w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rt := m.At(x, y)
			buf = append(buf, byte(rt.Tile), byte(rt.Rotation))
		}
	}

	return string(buf)
}

// MinTile returns the minimum rotated tile of m in (tile, rotation)
// order. It is the whole-assembly canonical marker for center mosaics,
// which carry no intrinsic boundary marker.
// Complexity: O(W×H).
func MinTile(m Mosaic) tiling.RotatedTile {
	result := tiling.MaxRotatedTile
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			result = result.Min(m.At(x, y))
		}
	}

	return result
}
