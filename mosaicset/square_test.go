package mosaicset

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tessella/mosaic"
	"github.com/katalvlaran/tessella/tiling"
)

// gridOf builds a dense grid of identity-rotated tiles from catalog ids.
func gridOf(t *testing.T, ids [][]int) *mosaic.Grid {
	t.Helper()
	rows := make([][]tiling.RotatedTile, len(ids))
	for y, row := range ids {
		rows[y] = make([]tiling.RotatedTile, len(row))
		for x, id := range row {
			rows[y][x] = tiling.RotatedTile{Tile: tiling.Tile(id), Rotation: tiling.Identity}
		}
	}
	g, err := mosaic.GridFromRows(rows)
	require.NoError(t, err)

	return g
}

// queryRotations collects the sorted view rotations of a query result.
func queryRotations(s *SquareSet, side tiling.Side, edge tiling.Edge) []tiling.Rotation {
	var rotations []tiling.Rotation
	for _, v := range s.Query(side, edge) {
		rotations = append(rotations, v.Rotation)
	}
	sort.Slice(rotations, func(i, j int) bool { return rotations[i] < rotations[j] })

	return rotations
}

// TestSquareSetQuery inserts the 2×2 mosaic of tiles 0, 1, 16, 17
// (boundaries "fi", "aa", "aa", "or") and checks, for every side and
// every edge value, exactly which rotated views the index resolves.
func TestSquareSetQuery(t *testing.T) {
	s := NewSquareSet(2)
	require.NoError(t, s.Insert(gridOf(t, [][]int{{0, 1}, {16, 17}})))
	require.Equal(t, 1, s.Len())
	require.Equal(t, 2, s.Size())

	cases := []struct {
		side tiling.Side
		edge tiling.Edge
		want []tiling.Rotation
	}{
		{tiling.Right, "aa", []tiling.Rotation{tiling.HalfTurn, tiling.QuarterTurnRight}},
		{tiling.Right, "fi", []tiling.Rotation{tiling.Identity}},
		{tiling.Right, "or", []tiling.Rotation{tiling.QuarterTurnLeft}},
		{tiling.Top, "aa", []tiling.Rotation{tiling.Identity, tiling.QuarterTurnRight}},
		{tiling.Top, "fi", []tiling.Rotation{tiling.QuarterTurnLeft}},
		{tiling.Top, "or", []tiling.Rotation{tiling.HalfTurn}},
		{tiling.Left, "aa", []tiling.Rotation{tiling.Identity, tiling.QuarterTurnLeft}},
		{tiling.Left, "fi", []tiling.Rotation{tiling.HalfTurn}},
		{tiling.Left, "or", []tiling.Rotation{tiling.QuarterTurnRight}},
		{tiling.Bottom, "aa", []tiling.Rotation{tiling.QuarterTurnLeft, tiling.HalfTurn}},
		{tiling.Bottom, "fi", []tiling.Rotation{tiling.QuarterTurnRight}},
		{tiling.Bottom, "or", []tiling.Rotation{tiling.Identity}},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, queryRotations(s, tc.side, tc.edge),
			"side %v edge %q", tc.side, tc.edge)
	}

	// Every yielded view must actually show the queried edge on the
	// queried side.
	for _, tc := range cases {
		for _, v := range s.Query(tc.side, tc.edge) {
			require.Equal(t, tc.edge, mosaic.SquareEdge(v, tc.side))
		}
	}

	require.Empty(t, s.Query(tiling.Right, "zz"))
	require.Empty(t, s.Query(tiling.Right, "ab"))
}

// TestSquareSetBuckets checks that buckets cover the whole index in
// sorted order and resolve to views bearing the bucket edge.
func TestSquareSetBuckets(t *testing.T) {
	s := NewSquareSet(2)
	require.NoError(t, s.Insert(gridOf(t, [][]int{{0, 1}, {16, 17}})))

	buckets := s.Buckets()
	require.Len(t, buckets, 3) // aa, fi, or

	var edges []tiling.Edge
	total := 0
	for _, b := range buckets {
		edges = append(edges, b.Edge)
		total += len(b.Entries)
		for _, e := range b.Entries {
			require.Equal(t, b.Edge, mosaic.SquareEdge(s.View(e, tiling.Right), tiling.Right))
		}
	}
	require.Equal(t, []tiling.Edge{"aa", "fi", "or"}, edges)
	require.Equal(t, 4, total) // one entry per rotation
}

// TestSquareSetInsertSizeMismatch covers the dimension sentinel.
func TestSquareSetInsertSizeMismatch(t *testing.T) {
	s := NewSquareSet(2)
	require.ErrorIs(t, s.Insert(gridOf(t, [][]int{{0}})), ErrSizeMismatch)
	require.ErrorIs(t, s.Insert(gridOf(t, [][]int{{0, 1, 2}, {16, 17, 18}})), ErrSizeMismatch)

	other := NewSquareSet(3)
	require.ErrorIs(t, s.Extend(other), ErrSizeMismatch)
}

// fingerprints collects the sorted fingerprints of a set's content,
// which compares sets up to slot relabeling.
func fingerprints(s *SquareSet) []string {
	var fps []string
	for i := 0; i < s.Len(); i++ {
		fps = append(fps, mosaic.Fingerprint(s.Mosaic(i)))
	}
	sort.Strings(fps)

	return fps
}

// TestSquareSetExtend splits an insert sequence across shards, merges in
// both orders, and checks the merged content and index equal the
// single-shard build.
func TestSquareSetExtend(t *testing.T) {
	mosaics := []*mosaic.Grid{
		gridOf(t, [][]int{{0, 1}, {16, 17}}),
		gridOf(t, [][]int{{2, 3}, {18, 19}}),
		gridOf(t, [][]int{{4, 5}, {20, 21}}),
	}

	sequential := NewSquareSet(2)
	for _, m := range mosaics {
		require.NoError(t, sequential.Insert(m))
	}

	build := func(order []int) *SquareSet {
		shards := make([]*SquareSet, 2)
		shards[0] = NewSquareSet(2)
		require.NoError(t, shards[0].Insert(mosaics[0]))
		shards[1] = NewSquareSet(2)
		require.NoError(t, shards[1].Insert(mosaics[1]))
		require.NoError(t, shards[1].Insert(mosaics[2]))

		merged := NewSquareSet(2)
		for _, i := range order {
			require.NoError(t, merged.Extend(shards[i]))
		}

		return merged
	}

	for _, order := range [][]int{{0, 1}, {1, 0}} {
		merged := build(order)
		require.Equal(t, sequential.Len(), merged.Len())
		require.Empty(t, cmp.Diff(fingerprints(sequential), fingerprints(merged)))
		require.NoError(t, merged.CheckDistinct())

		// The merged index must answer queries identically.
		for _, b := range sequential.Buckets() {
			require.Len(t, merged.Query(tiling.Right, b.Edge), len(sequential.Query(tiling.Right, b.Edge)),
				"edge %q", b.Edge)
		}
	}
}

// TestSquareSetCheckDistinct covers both sides of the orbit invariant.
func TestSquareSetCheckDistinct(t *testing.T) {
	good := NewSquareSet(1)
	require.NoError(t, good.Insert(gridOf(t, [][]int{{0}})))
	require.NoError(t, good.Insert(gridOf(t, [][]int{{1}})))
	require.NoError(t, good.CheckDistinct())

	// Inserting a rotation of an already stored mosaic collapses the
	// orbit and must be detected.
	bad := NewSquareSet(1)
	require.NoError(t, bad.Insert(gridOf(t, [][]int{{0}})))
	rotated, err := mosaic.GridFromRows([][]tiling.RotatedTile{
		{{Tile: 0, Rotation: tiling.QuarterTurnLeft}},
	})
	require.NoError(t, err)
	require.NoError(t, bad.Insert(rotated))
	require.ErrorIs(t, bad.CheckDistinct(), ErrNotDistinct)
}

// TestSingletonSquare checks the pinned-tile constructor.
func TestSingletonSquare(t *testing.T) {
	rt := tiling.RotatedTile{Tile: 135, Rotation: tiling.Identity}
	s, err := SingletonSquare(rt)
	require.NoError(t, err)
	require.Equal(t, 1, s.Len())
	require.Equal(t, rt, s.Mosaic(0).At(0, 0))
	require.NoError(t, s.CheckDistinct())
}
