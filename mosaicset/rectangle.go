package mosaicset

import (
	"sort"

	"github.com/katalvlaran/tessella/mosaic"
	"github.com/katalvlaran/tessella/tiling"
)

// RectEntry identifies one stored mosaic slot under one rotation of the
// order-2 group.
type RectEntry struct {
	Slot     int
	Rotation tiling.RectRotation
}

// RectBucket is one index bucket of a rectangular set.
type RectBucket struct {
	Edge    tiling.Edge
	Entries []RectEntry
}

// RectSet is a canonical collection of W×H mosaics (W ≠ H). Unlike the
// square set it keeps two indexes, because rectangles join along both
// axes: the right edge and the top edge of both half-turn views.
type RectSet struct {
	width, height int
	mosaics       []mosaic.Mosaic
	byRight       map[tiling.Edge][]RectEntry
	byTop         map[tiling.Edge][]RectEntry
}

// NewRectSet creates an empty set of width×height mosaics.
// Panics if the dimensions are non-positive or equal (programmer error:
// square mosaics belong in a SquareSet, whose rotation group is larger).
func NewRectSet(width, height int) *RectSet {
	if width <= 0 || height <= 0 || width == height {
		panic(panicRectSize)
	}

	return &RectSet{
		width:   width,
		height:  height,
		byRight: make(map[tiling.Edge][]RectEntry),
		byTop:   make(map[tiling.Edge][]RectEntry),
	}
}

// Width returns the fixed width. Complexity: O(1).
func (s *RectSet) Width() int { return s.width }

// Height returns the fixed height. Complexity: O(1).
func (s *RectSet) Height() int { return s.height }

// Len returns the number of stored mosaics. Complexity: O(1).
func (s *RectSet) Len() int { return len(s.mosaics) }

// Mosaic returns the stored mosaic in the given slot. Complexity: O(1).
func (s *RectSet) Mosaic(slot int) mosaic.Mosaic { return s.mosaics[slot] }

// ViewVertical resolves an entry from the right-edge index into the
// rotated view whose boundary on `side` equals the indexed edge.
// Complexity: O(1).
func (s *RectSet) ViewVertical(e RectEntry, side tiling.VerticalSide) mosaic.RotatedRect {
	return mosaic.RotatedRect{
		M:        s.mosaics[e.Slot],
		Rotation: e.Rotation.Add(side.RotationFromRight()),
	}
}

// ViewHorizontal resolves an entry from the top-edge index into the
// rotated view whose boundary on `side` equals the indexed edge.
// Complexity: O(1).
func (s *RectSet) ViewHorizontal(e RectEntry, side tiling.HorizontalSide) mosaic.RotatedRect {
	return mosaic.RotatedRect{
		M:        s.mosaics[e.Slot],
		Rotation: e.Rotation.Add(side.RotationFromTop()),
	}
}

// Insert assigns the mosaic the next sequential slot and indexes the
// right and top edges of both its half-turn views.
// Returns ErrSizeMismatch if m is not width×height.
// Complexity: O(W+H) plus map operations.
func (s *RectSet) Insert(m mosaic.Mosaic) error {
	if m.Width() != s.width || m.Height() != s.height {
		return ErrSizeMismatch
	}
	slot := len(s.mosaics)
	for _, rotation := range tiling.RectRotations {
		view := mosaic.RotatedRect{M: m, Rotation: rotation}
		entry := RectEntry{Slot: slot, Rotation: rotation}

		right := mosaic.VerticalEdge(view, tiling.VerticalRight)
		s.byRight[right] = append(s.byRight[right], entry)

		top := mosaic.HorizontalEdge(view, tiling.HorizontalTop)
		s.byTop[top] = append(s.byTop[top], entry)
	}
	s.mosaics = append(s.mosaics, m)

	return nil
}

// Extend merges another set into s, offsetting the other set's slots by
// the current length; the final content is independent of merge order.
// The other set must not be used afterwards.
// Returns ErrSizeMismatch if the dimensions differ.
// Complexity: O(len(other) + index entries of other).
func (s *RectSet) Extend(other *RectSet) error {
	if other.width != s.width || other.height != s.height {
		return ErrSizeMismatch
	}
	base := len(s.mosaics)
	s.mosaics = append(s.mosaics, other.mosaics...)
	for edge, entries := range other.byRight {
		bucket := s.byRight[edge]
		for _, e := range entries {
			bucket = append(bucket, RectEntry{Slot: e.Slot + base, Rotation: e.Rotation})
		}
		s.byRight[edge] = bucket
	}
	for edge, entries := range other.byTop {
		bucket := s.byTop[edge]
		for _, e := range entries {
			bucket = append(bucket, RectEntry{Slot: e.Slot + base, Rotation: e.Rotation})
		}
		s.byTop[edge] = bucket
	}
	other.mosaics, other.byRight, other.byTop = nil, nil, nil

	return nil
}

// QueryVertical returns every rotated view whose boundary on `side`
// equals the given edge value.
// Complexity: O(matches).
func (s *RectSet) QueryVertical(side tiling.VerticalSide, edge tiling.Edge) []mosaic.RotatedRect {
	entries := s.byRight[edge]
	if len(entries) == 0 {
		return nil
	}
	views := make([]mosaic.RotatedRect, len(entries))
	for i, e := range entries {
		views[i] = s.ViewVertical(e, side)
	}

	return views
}

// QueryHorizontal returns every rotated view whose boundary on `side`
// equals the given edge value.
// Complexity: O(matches).
func (s *RectSet) QueryHorizontal(side tiling.HorizontalSide, edge tiling.Edge) []mosaic.RotatedRect {
	entries := s.byTop[edge]
	if len(entries) == 0 {
		return nil
	}
	views := make([]mosaic.RotatedRect, len(entries))
	for i, e := range entries {
		views[i] = s.ViewHorizontal(e, side)
	}

	return views
}

// VerticalBuckets returns the right-edge index grouped by edge value in
// deterministic order.
// Complexity: O(n log n).
func (s *RectSet) VerticalBuckets() []RectBucket {
	return rectBuckets(s.byRight)
}

// HorizontalBuckets returns the top-edge index grouped by edge value in
// deterministic order.
// Complexity: O(n log n).
func (s *RectSet) HorizontalBuckets() []RectBucket {
	return rectBuckets(s.byTop)
}

func rectBuckets(index map[tiling.Edge][]RectEntry) []RectBucket {
	buckets := make([]RectBucket, 0, len(index))
	for edge, entries := range index {
		sorted := make([]RectEntry, len(entries))
		copy(sorted, entries)
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Slot != sorted[j].Slot {
				return sorted[i].Slot < sorted[j].Slot
			}

			return sorted[i].Rotation < sorted[j].Rotation
		})
		buckets = append(buckets, RectBucket{Edge: edge, Entries: sorted})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Edge < buckets[j].Edge })

	return buckets
}

// CheckDistinct recomputes the half-turn orbit over all stored mosaics
// and verifies its cardinality equals 2·Len.
// Complexity: O(2·Len·W·H).
func (s *RectSet) CheckDistinct() error {
	orbit := make(map[string]struct{}, 2*len(s.mosaics))
	for _, m := range s.mosaics {
		for _, rotation := range tiling.RectRotations {
			orbit[mosaic.Fingerprint(mosaic.RotatedRect{M: m, Rotation: rotation})] = struct{}{}
		}
	}
	if len(orbit) != 2*len(s.mosaics) {
		return ErrNotDistinct
	}

	return nil
}
