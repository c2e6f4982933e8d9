// Package mosaic provides the mosaic abstraction: rectangular grids of
// rotated tiles behind one read-only interface, with two physical
// storage layouts and zero-copy rotated views.
//
// What:
//
//   - Mosaic: the capability set {At(x,y), Width, Height}.
//   - Grid: dense row-major storage, the working representation.
//   - Packed: quad-compressed storage (4 cells per storage unit) for
//     memory-constrained large sets, built via the Compact factory.
//   - RotatedSquare / RotatedRect: value wrappers holding a backing
//     mosaic and a rotation; At remaps coordinates and adds the rotation
//     at call time, never copying storage. Views compose by group
//     addition.
//   - VerticalEdge / HorizontalEdge / SquareEdge: boundary extraction
//     with a fixed per-side traversal direction (right edge top-to-bottom,
//     left edge bottom-to-top, top edge left-to-right, bottom edge
//     right-to-left) chosen so that two boundaries that glue together
//     compare equal only through reversal, never directly.
//   - Fingerprint: a total order over equal-size mosaics, used for
//     canonical tie-breaks and distinctness checks.
//   - Render: box-drawing display of a mosaic with border shading and
//     rotation markers.
//
// Errors:
//
//   - ErrBadDimensions: a grid was requested with a non-positive side.
//   - ErrNonRectangular: rows of differing lengths.
//
// Complexity:
//
//   - At through any view: O(1).
//   - Edge extraction: O(side length).
//   - Compact / Fingerprint / Render: O(W×H).
package mosaic
