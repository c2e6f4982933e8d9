// Package tiling provides the primitive value types of the mosaic
// enumeration library: colors, sides, the rotation groups, the fixed
// tile catalog, rotated tiles with canonical-orientation classification,
// and boundary edge keys.
//
// What:
//
//   - Color: one of 23 edge symbols; Exterior is the reserved border value.
//   - Side / Rotation: the cyclic group of order 4 acting on tile sides.
//   - VerticalSide / HorizontalSide / RectRotation: the order-2 subgroup
//     acting on non-square mosaics.
//   - Tile: one of 256 catalog entries, each with four colored edges.
//   - RotatedTile: a (tile, rotation) pair deriving edge colors through
//     the inverse rotation; classified as corner, edge or center by its
//     exterior mask.
//   - Edge: an ordered run of colors along one mosaic boundary, the join
//     key of the whole enumeration; supports reversal and flip-equality.
//
// Why:
//
//   - Every larger structure (mosaics, canonical sets, doubling joins)
//     reduces to these values; their arithmetic fixes the direction and
//     orientation conventions all indexing correctness depends on.
//
// Errors:
//
//   - ErrColorChar: a byte outside 'a'..'w' was parsed as a color.
//
// All operations are pure and allocation-free except Edge construction.
package tiling
