package compose

import (
	"github.com/katalvlaran/tessella/builder"
	"github.com/katalvlaran/tessella/mosaic"
	"github.com/katalvlaran/tessella/mosaicset"
	"github.com/katalvlaran/tessella/tiling"
)

// RectCorners joins a canonical square corner set with a square edge
// set into the canonical 2N×N corner set.
//
//	┌──────────┬────────┐      ┌───────────────────┐
//	│ ┌────────┼────────┤      │ ┌─────────────────┤
//	│ │ ▴    ▴ │      ▸ │      │ │ ▴             ▴ │
//	│ │ corner │  edge  │  =>  │ │     corner      │
//	│ │        │      ▸ │      │ │                 │
//	└─┴────────┴────────┘      └─┴─────────────────┘
//
// The corner operand stays in canonical orientation and the edge
// operand is rotated a quarter turn right, which lines its border up
// with the corner's top border; the result is canonical by
// construction.
func RectCorners[R any](
	bld builder.Builder[R],
	corners, edges *mosaicset.SquareSet,
	opts ...Option,
) (R, error) {
	return BuildRectangles(
		bld,
		corners,
		func(a mosaic.RotatedSquare) bool { return a.Rotation == tiling.Identity },
		edges,
		func(b mosaic.RotatedSquare) bool { return b.Rotation == tiling.QuarterTurnRight },
		opts...,
	)
}

// RectEdges joins a canonical square edge set with a square center set
// into the canonical 2N×N edge set.
//
//	┌─┬────────┬────────┐      ┌─┬─────────────────┐
//	│ │ ▴    ▴ │╭─►     │      │ │ ▴             ▴ │
//	│ │  edge  │ center │  =>  │ │      edge       │
//	│ │        │     ◄─╯│      │ │                 │
//	└─┴────────┴────────┘      └─┴─────────────────┘
//
// The edge operand stays canonical; the center operand may take any
// orientation, since the result's border marker comes entirely from
// the edge half.
func RectEdges[R any](
	bld builder.Builder[R],
	edges, centers *mosaicset.SquareSet,
	opts ...Option,
) (R, error) {
	return BuildRectangles(
		bld,
		edges,
		func(a mosaic.RotatedSquare) bool { return a.Rotation == tiling.Identity },
		centers,
		func(mosaic.RotatedSquare) bool { return true },
		opts...,
	)
}

// RectCenters joins a square center set with itself into the canonical
// 2N×N center set.
//
//	┌────────┬────────┐      ┌─────────────────┐
//	│╭─►     │╭─►     │      │ ▴             ▴ │
//	│ center │ center │  =>  │     center      │
//	│     ◄─╯│     ◄─╯│      │                 │
//	└────────┴────────┘      └─────────────────┘
//
// Center results carry no border marker, so the half-turn orbit is
// broken by the lowest-numbered tile of the candidate: it is kept only
// when that tile is rotated Identity or QuarterTurnLeft. The half turn
// adds two quarter turns to every tile, so exactly one of the two
// orientations passes. The left operand's minimum is memoized.
func RectCenters[R any](
	bld builder.Builder[R],
	centers *mosaicset.SquareSet,
	opts ...Option,
) (R, error) {
	return BuildRectanglesMemo(
		bld,
		centers,
		func(a mosaic.RotatedSquare) (tiling.RotatedTile, bool) {
			return mosaic.MinTile(a), true
		},
		centers,
		func(aMin tiling.RotatedTile, b mosaic.RotatedSquare) bool {
			min := aMin.Min(mosaic.MinTile(b))

			return min.Rotation == tiling.Identity || min.Rotation == tiling.QuarterTurnLeft
		},
		opts...,
	)
}

// SquareCorners stacks a canonical rectangular corner set on a
// rectangular edge set into the canonical 2N×2N corner set.
//
//	┌───────────────────┐      ┌───────────────────┐
//	│ ┌─────────────────┤      │ ┌─────────────────┤
//	│ │ ▴             ▴ │      │ │ ▴             ▴ │
//	│ │     corner      │      │ │                 │
//	├─┼─────────────────┤  =>  │ │     corner      │
//	│ │ ▴             ▴ │      │ │                 │
//	│ │      edge       │      │ │                 │
//	└─┴─────────────────┘      └─┴─────────────────┘
//
// Both operands stay in canonical orientation; stacking extends the
// corner's left border downward through the edge's border.
func SquareCorners[R any](
	bld builder.Builder[R],
	corners, edges *mosaicset.RectSet,
	opts ...Option,
) (R, error) {
	return BuildSquares(
		bld,
		corners,
		func(a mosaic.RotatedRect) bool { return a.Rotation == tiling.RectIdentity },
		edges,
		func(b mosaic.RotatedRect) bool { return b.Rotation == tiling.RectIdentity },
		opts...,
	)
}

// SquareEdges stacks a canonical rectangular edge set on itself into
// the canonical 2N×2N edge set. Both operands stay in canonical
// orientation.
func SquareEdges[R any](
	bld builder.Builder[R],
	edges *mosaicset.RectSet,
	opts ...Option,
) (R, error) {
	return BuildSquares(
		bld,
		edges,
		func(a mosaic.RotatedRect) bool { return a.Rotation == tiling.RectIdentity },
		edges,
		func(b mosaic.RotatedRect) bool { return b.Rotation == tiling.RectIdentity },
		opts...,
	)
}

// SquareCenters stacks a rectangular center set on itself into the
// canonical 2N×2N center set. The quarter-turn orbit of a center square
// is broken by its lowest-numbered tile: only candidates whose minimum
// tile is rotated Identity are kept.
func SquareCenters[R any](
	bld builder.Builder[R],
	centers *mosaicset.RectSet,
	opts ...Option,
) (R, error) {
	return BuildSquaresMemo(
		bld,
		centers,
		func(a mosaic.RotatedRect) (tiling.RotatedTile, bool) {
			return mosaic.MinTile(a), true
		},
		centers,
		func(aMin tiling.RotatedTile, b mosaic.RotatedRect) bool {
			return aMin.Min(mosaic.MinTile(b)).Rotation == tiling.Identity
		},
		opts...,
	)
}
