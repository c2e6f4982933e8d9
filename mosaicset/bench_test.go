package mosaicset

import (
	"testing"

	"github.com/katalvlaran/tessella/mosaic"
	"github.com/katalvlaran/tessella/tiling"
)

// benchGrids prepares n distinct 2×2 grids.
func benchGrids(n int) []*mosaic.Grid {
	grids := make([]*mosaic.Grid, n)
	for i := range grids {
		g, err := mosaic.NewGrid(2, 2)
		if err != nil {
			panic(err)
		}
		for c := 0; c < 4; c++ {
			g.Set(c%2, c/2, tiling.RotatedTile{
				Tile:     tiling.Tile((4*i + c) % tiling.TileCount),
				Rotation: tiling.Rotation(c % 4),
			})
		}
		grids[i] = g
	}

	return grids
}

// BenchmarkSquareSetInsert measures indexing throughput.
func BenchmarkSquareSetInsert(b *testing.B) {
	grids := benchGrids(64)

	b.ResetTimer() // ignore fixture setup
	for i := 0; i < b.N; i++ {
		s := NewSquareSet(2)
		for _, g := range grids {
			if err := s.Insert(g); err != nil {
				b.Fatalf("Insert failed: %v", err)
			}
		}
	}
}

// BenchmarkSquareSetQuery measures boundary lookups against a built set.
func BenchmarkSquareSetQuery(b *testing.B) {
	s := NewSquareSet(2)
	for _, g := range benchGrids(64) {
		if err := s.Insert(g); err != nil {
			b.Fatalf("Insert failed: %v", err)
		}
	}
	buckets := s.Buckets()

	b.ResetTimer() // ignore set construction
	for i := 0; i < b.N; i++ {
		bucket := buckets[i%len(buckets)]
		if views := s.Query(tiling.Left, bucket.Edge.Reversed()); len(views) > 0 {
			_ = views[0]
		}
	}
}
