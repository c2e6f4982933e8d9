package compose

import (
	"github.com/katalvlaran/tessella/mosaic"
	"github.com/katalvlaran/tessella/mosaicset"
	"github.com/katalvlaran/tessella/tiling"
)

// Classes groups the three canonical sets of one size.
type Classes struct {
	Corners *mosaicset.SquareSet
	Edges   *mosaicset.SquareSet
	Centers *mosaicset.SquareSet
}

// SeedOption tunes the 1×1 seeding.
type SeedOption func(*seedConfig)

type seedConfig struct {
	excluded usedTiles
}

// Excluding drops the given tiles from the seeded sets. Excluded tiles
// are placed externally (pinned tiles) and re-enter a doubling pipeline
// through mosaicset.SingletonSquare sets.
func Excluding(tiles ...tiling.Tile) SeedOption {
	return func(c *seedConfig) {
		for _, t := range tiles {
			c.excluded.mark(t)
		}
	}
}

// Seed1x1 classifies every rotated tile of the catalog and collects the
// canonical representatives into the base 1×1 corner, edge, and center
// sets. Corner and edge tiles are canonical in the single orientation
// placing their exterior sides on the top-left and left; center tiles
// are canonical in the identity orientation only, so every tile lands
// in exactly one set exactly once.
// Complexity: O(TileCount·4).
func Seed1x1(opts ...SeedOption) (Classes, error) {
	var cfg seedConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	classes := Classes{
		Corners: mosaicset.NewSquareSet(1),
		Edges:   mosaicset.NewSquareSet(1),
		Centers: mosaicset.NewSquareSet(1),
	}
	for id := 0; id < tiling.TileCount; id++ {
		t := tiling.Tile(id)
		if cfg.excluded.has(t) {
			continue
		}
		for _, rotation := range tiling.Rotations {
			rt := tiling.RotatedTile{Tile: t, Rotation: rotation}

			var target *mosaicset.SquareSet
			switch {
			case rt.IsCanonicalCorner():
				target = classes.Corners
			case rt.IsCanonicalEdge():
				target = classes.Edges
			case rt.IsCanonicalCenter():
				target = classes.Centers
			default:
				continue
			}

			g, err := mosaic.GridFromRows([][]tiling.RotatedTile{{rt}})
			if err != nil {
				return Classes{}, err
			}
			if err := target.Insert(g); err != nil {
				return Classes{}, err
			}
		}
	}

	return classes, nil
}
