// Package compose implements the doubling joins that grow canonical
// mosaic sets: two N×N square sets combine side by side into a
// 2N×N rectangular set, and two 2N×N rectangular sets stack into a
// 2N×2N square set. Alternating the two joins walks 1×1 → 2×1 → 2×2 →
// 4×2 → 4×4 → … without ever enumerating a larger space than the
// canonical populations themselves.
//
// What:
//
//   - Seed1x1: the 1×1 base case, classifying every rotated tile into
//     canonical corner, edge, and center sets (optionally excluding
//     pinned tiles).
//   - BuildRectangles / BuildRectanglesMemo: the horizontal join. For
//     every boundary bucket of the left set, candidates from the right
//     set are found by probing its left-side index with the reversed
//     boundary; matching pairs that share no tile are spliced and fed
//     to a builder strategy.
//   - BuildSquares / BuildSquaresMemo: the vertical join, stacking a
//     top rectangle on a bottom one the same way via the horizontal
//     boundary indexes.
//   - RectCorners, RectEdges, RectCenters, SquareCorners, SquareEdges,
//     SquareCenters: the six class pipelines, each fixing the rotation
//     filters (and, for centers, the lowest-tile tie-break) that make
//     the produced set canonical.
//
// Canonicalization:
//
//   - Corner and edge results carry a structural marker (the exterior
//     corner or border), so filtering input rotations suffices.
//   - Center results have no structural marker; the canonical
//     representative of a rotation orbit is chosen by the orientation
//     of the lowest-numbered tile. Rectangle doubling keeps minima
//     rotated Identity or QuarterTurnLeft (one per half-turn orbit),
//     square doubling keeps Identity only (one per quarter-turn orbit).
//     The left operand's minimum is memoized across the inner loop.
//
// Concurrency:
//
//   - Joins fan buckets out to a bounded worker pool; each worker feeds
//     a private builder shard. WithParallelism bounds the pool.
//
// Errors:
//
//   - Candidate pairs that would reuse a tile are rejected silently;
//     they are not errors. Mismatched set geometry at join entry is a
//     programmer error and panics.
package compose
