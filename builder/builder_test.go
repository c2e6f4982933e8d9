package builder

import (
	"sort"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tessella/mosaic"
	"github.com/katalvlaran/tessella/mosaicset"
	"github.com/katalvlaran/tessella/tiling"
)

// Static conformance of every strategy to the Builder interface.
var (
	_ Builder[*mosaicset.SquareSet] = (*InMemorySquares)(nil)
	_ Builder[*mosaicset.RectSet]   = (*InMemoryRects)(nil)
	_ Builder[uint64]               = (*Counting)(nil)
	_ Builder[Tally]                = (*Sampling)(nil)
)

// grid1x1 builds a single-cell grid for the given tile.
func grid1x1(t *testing.T, id int) *mosaic.Grid {
	t.Helper()
	g, err := mosaic.GridFromRows([][]tiling.RotatedTile{
		{{Tile: tiling.Tile(id), Rotation: tiling.Identity}},
	})
	require.NoError(t, err)

	return g
}

// grid2x1 builds a 2×1 grid from two tiles.
func grid2x1(t *testing.T, left, right int) *mosaic.Grid {
	t.Helper()
	g, err := mosaic.GridFromRows([][]tiling.RotatedTile{{
		{Tile: tiling.Tile(left), Rotation: tiling.Identity},
		{Tile: tiling.Tile(right), Rotation: tiling.Identity},
	}})
	require.NoError(t, err)

	return g
}

// runWorkers fans tile batches out to concurrent shards of b.
func runWorkers(t *testing.T, b interface{ NewShard() Shard }, batches [][]*mosaic.Grid) {
	t.Helper()
	var wg sync.WaitGroup
	for _, batch := range batches {
		shard := b.NewShard()
		wg.Add(1)
		go func(batch []*mosaic.Grid) {
			defer wg.Done()
			defer shard.Done()
			for _, m := range batch {
				require.NoError(t, shard.Insert(m))
			}
		}(batch)
	}
	wg.Wait()
}

func batchesOf(t *testing.T, tiles []int, perBatch int) [][]*mosaic.Grid {
	t.Helper()
	var batches [][]*mosaic.Grid
	for i := 0; i < len(tiles); i += perBatch {
		var batch []*mosaic.Grid
		for _, id := range tiles[i:min(i+perBatch, len(tiles))] {
			batch = append(batch, grid1x1(t, id))
		}
		batches = append(batches, batch)
	}

	return batches
}

// TestInMemorySquares folds concurrent shards into one canonical set
// and checks dense and packed storage agree cell for cell.
func TestInMemorySquares(t *testing.T) {
	tiles := make([]int, 64)
	for i := range tiles {
		tiles[i] = 4 * i // distinct, covers the whole catalog range
	}

	collect := func(opts ...Option) []string {
		b := NewInMemorySquares(1, opts...)
		runWorkers(t, b, batchesOf(t, tiles, 8))
		set, err := b.Finish()
		require.NoError(t, err)
		require.Equal(t, len(tiles), set.Len())
		require.NoError(t, set.CheckDistinct())
		fps := make([]string, set.Len())
		for i := range fps {
			fps[i] = mosaic.Fingerprint(set.Mosaic(i))
		}
		sort.Strings(fps)

		return fps
	}

	require.Empty(t, cmp.Diff(collect(), collect(WithPacked())))
}

// TestInMemoryRects checks the rectangular materializing strategy.
func TestInMemoryRects(t *testing.T) {
	b := NewInMemoryRects(2, 1)
	var wg sync.WaitGroup
	for w := 0; w < 4; w++ {
		shard := b.NewShard()
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			defer shard.Done()
			for i := 0; i < 4; i++ {
				require.NoError(t, shard.Insert(grid2x1(t, 8*w+i, 8*w+i+4)))
			}
		}(w)
	}
	wg.Wait()

	set, err := b.Finish()
	require.NoError(t, err)
	require.Equal(t, 16, set.Len())
	require.NoError(t, set.CheckDistinct())
}

// TestInMemoryInsertMismatch propagates the set's dimension sentinel
// through the shard.
func TestInMemoryInsertMismatch(t *testing.T) {
	b := NewInMemorySquares(2)
	shard := b.NewShard()
	require.ErrorIs(t, shard.Insert(grid1x1(t, 0)), mosaicset.ErrSizeMismatch)
	shard.Done()
	_, err := b.Finish()
	require.NoError(t, err)
}

// TestCounting checks counts fold across shards.
func TestCounting(t *testing.T) {
	b := NewCounting()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		shard := b.NewShard()
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			defer shard.Done()
			for i := 0; i <= w; i++ {
				require.NoError(t, shard.Insert(grid1x1(t, i)))
			}
		}(w)
	}
	wg.Wait()

	total, err := b.Finish()
	require.NoError(t, err)
	require.Equal(t, uint64(1+2+3+4+5+6+7+8), total)
}

// TestCountingEmpty checks the degenerate no-shard build.
func TestCountingEmpty(t *testing.T) {
	total, err := NewCounting().Finish()
	require.NoError(t, err)
	require.Zero(t, total)
}

// TestSampling checks the tally and that the retained sample is a copy,
// detached from whatever storage the worker inserted.
func TestSampling(t *testing.T) {
	b := NewSampling()
	shard := b.NewShard()
	scratch := grid1x1(t, 7)
	require.NoError(t, shard.Insert(scratch))
	// Workers reuse scratch grids between inserts; the sample must not
	// observe later writes.
	scratch.Set(0, 0, tiling.RotatedTile{Tile: 200, Rotation: tiling.HalfTurn})
	require.NoError(t, shard.Insert(scratch))
	shard.Done()

	tally, err := b.Finish()
	require.NoError(t, err)
	require.Equal(t, uint64(2), tally.Count)
	require.NotNil(t, tally.Sample)
	require.Equal(t, tiling.RotatedTile{Tile: 7, Rotation: tiling.Identity}, tally.Sample.At(0, 0))
}

// TestSamplingEmpty checks a build that produces nothing.
func TestSamplingEmpty(t *testing.T) {
	b := NewSampling()
	shard := b.NewShard()
	shard.Done()

	tally, err := b.Finish()
	require.NoError(t, err)
	require.Zero(t, tally.Count)
	require.Nil(t, tally.Sample)
}
