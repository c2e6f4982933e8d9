// Package mosaicset provides the canonical mosaic collections: append-
// only-then-frozen sets of equal-size mosaics, dual-indexed by boundary
// under every rotation of the applicable group.
//
// What:
//
//   - SquareSet: mosaics of one fixed N×N size, indexed by the right
//     edge of each of the four rotated views. One index serves lookups
//     on any side through a rotation correction.
//   - RectSet: mosaics of one fixed W×H size (W ≠ H), indexed by the
//     right edge and the top edge of both half-turn views.
//   - Insert assigns sequential slots; Extend merges independently built
//     partial sets by offsetting slots, with order-independent effect;
//     Query and Buckets resolve boundary lookups; CheckDistinct verifies
//     the canonical invariant.
//
// Invariant:
//
//   - Every stored mosaic, taken through the full rotation orbit (4 for
//     squares, 2 for rectangles), yields pairwise-distinct mosaics; no
//     stored mosaic collides with a rotation of another. CheckDistinct
//     recomputes the orbit and returns ErrNotDistinct on violation.
//
// Concurrency:
//
//   - Sets are not locked. Build a set from one goroutine (or as
//     independent shard sets folded through Extend) and treat it as
//     read-only afterwards.
//
// Errors:
//
//   - ErrSizeMismatch: a mosaic or merged set with different dimensions.
//   - ErrNotDistinct: the rotation-orbit invariant is violated.
package mosaicset
