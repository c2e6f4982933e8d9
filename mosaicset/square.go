package mosaicset

import (
	"sort"

	"github.com/katalvlaran/tessella/mosaic"
	"github.com/katalvlaran/tessella/tiling"
)

// SquareEntry identifies one stored mosaic slot under one rotation of
// the order-4 group. The index maps an edge value to every entry whose
// rotated view shows that value on its right boundary.
type SquareEntry struct {
	Slot     int
	Rotation tiling.Rotation
}

// SquareBucket is one index bucket: an edge value and every entry whose
// boundary matches it. One bucket is one parallel unit of join work.
type SquareBucket struct {
	Edge    tiling.Edge
	Entries []SquareEntry
}

// SquareSet is a canonical collection of N×N mosaics. See the package
// documentation for the distinctness invariant and the freeze-after-
// build usage contract.
type SquareSet struct {
	size    int
	mosaics []mosaic.Mosaic
	byRight map[tiling.Edge][]SquareEntry
}

// NewSquareSet creates an empty set of size×size mosaics.
// Panics if size is not positive (programmer error).
func NewSquareSet(size int) *SquareSet {
	if size <= 0 {
		panic(panicSquareSize)
	}

	return &SquareSet{
		size:    size,
		byRight: make(map[tiling.Edge][]SquareEntry),
	}
}

// SingletonSquare creates a 1×1 set holding exactly one rotated tile.
// It covers pinned tiles (externally fixed placements) without carrying
// their data into the core.
func SingletonSquare(rt tiling.RotatedTile) (*SquareSet, error) {
	g, err := mosaic.GridFromRows([][]tiling.RotatedTile{{rt}})
	if err != nil {
		return nil, err
	}
	s := NewSquareSet(1)
	if err := s.Insert(g); err != nil {
		return nil, err
	}

	return s, nil
}

// Size returns the fixed side length. Complexity: O(1).
func (s *SquareSet) Size() int { return s.size }

// Len returns the number of stored mosaics. Complexity: O(1).
func (s *SquareSet) Len() int { return len(s.mosaics) }

// Mosaic returns the stored mosaic in the given slot. Complexity: O(1).
func (s *SquareSet) Mosaic(slot int) mosaic.Mosaic { return s.mosaics[slot] }

// View resolves an entry into the rotated view whose boundary on `side`
// equals the entry's indexed edge: the stored rotation plus the rotation
// carrying the right side onto the requested one.
// Complexity: O(1).
func (s *SquareSet) View(e SquareEntry, side tiling.Side) mosaic.RotatedSquare {
	return mosaic.RotatedSquare{
		M:        s.mosaics[e.Slot],
		Rotation: e.Rotation.Add(side.RotationFromRight()),
	}
}

// Insert assigns the mosaic the next sequential slot and indexes the
// right edge of each of its four rotated views.
// Returns ErrSizeMismatch if m is not size×size.
// Complexity: O(4·N) plus map operations.
func (s *SquareSet) Insert(m mosaic.Mosaic) error {
	if m.Width() != s.size || m.Height() != s.size {
		return ErrSizeMismatch
	}
	slot := len(s.mosaics)
	for _, rotation := range tiling.Rotations {
		edge := mosaic.SquareEdge(mosaic.RotatedSquare{M: m, Rotation: rotation}, tiling.Right)
		s.byRight[edge] = append(s.byRight[edge], SquareEntry{Slot: slot, Rotation: rotation})
	}
	s.mosaics = append(s.mosaics, m)

	return nil
}

// Extend merges another set into s, offsetting the other set's slots by
// the current length. The final content is independent of merge order,
// which is what lets independently built shard sets fold into one
// result. The other set must not be used afterwards.
// Returns ErrSizeMismatch if the sizes differ.
// Complexity: O(len(other) + index entries of other).
func (s *SquareSet) Extend(other *SquareSet) error {
	if other.size != s.size {
		return ErrSizeMismatch
	}
	base := len(s.mosaics)
	s.mosaics = append(s.mosaics, other.mosaics...)
	for edge, entries := range other.byRight {
		bucket := s.byRight[edge]
		for _, e := range entries {
			bucket = append(bucket, SquareEntry{Slot: e.Slot + base, Rotation: e.Rotation})
		}
		s.byRight[edge] = bucket
	}
	other.mosaics, other.byRight = nil, nil

	return nil
}

// Query returns every rotated view whose boundary on `side` equals the
// given edge value.
// Complexity: O(matches).
func (s *SquareSet) Query(side tiling.Side, edge tiling.Edge) []mosaic.RotatedSquare {
	entries := s.byRight[edge]
	if len(entries) == 0 {
		return nil
	}
	views := make([]mosaic.RotatedSquare, len(entries))
	for i, e := range entries {
		views[i] = s.View(e, side)
	}

	return views
}

// Buckets returns the whole index grouped by edge value, sorted by edge
// and then by (slot, rotation) for deterministic traversal. Resolving
// an entry against the same `side` passed here yields views whose
// boundary on that side equals the bucket edge.
// Complexity: O(n log n).
func (s *SquareSet) Buckets() []SquareBucket {
	buckets := make([]SquareBucket, 0, len(s.byRight))
	for edge, entries := range s.byRight {
		sorted := make([]SquareEntry, len(entries))
		copy(sorted, entries)
		sort.Slice(sorted, func(i, j int) bool {
			if sorted[i].Slot != sorted[j].Slot {
				return sorted[i].Slot < sorted[j].Slot
			}

			return sorted[i].Rotation < sorted[j].Rotation
		})
		buckets = append(buckets, SquareBucket{Edge: edge, Entries: sorted})
	}
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Edge < buckets[j].Edge })

	return buckets
}

// CheckDistinct recomputes the full rotation orbit over all stored
// mosaics and verifies its cardinality equals 4·Len: if any two
// rotations of stored mosaics coincide, the orbit set deduplicates them
// and the sizes cannot match. Used as a correctness self-test after
// every build phase.
// Complexity: O(4·Len·N²).
func (s *SquareSet) CheckDistinct() error {
	orbit := make(map[string]struct{}, 4*len(s.mosaics))
	for _, m := range s.mosaics {
		for _, rotation := range tiling.Rotations {
			orbit[mosaic.Fingerprint(mosaic.RotatedSquare{M: m, Rotation: rotation})] = struct{}{}
		}
	}
	if len(orbit) != 4*len(s.mosaics) {
		return ErrNotDistinct
	}

	return nil
}
