package compose

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSeed1x1 checks the canonical base-case classification: of the
// 1024 rotated tiles, 4 are canonical corners, 56 canonical edges and
// 196 canonical centers, with no overlaps.
func TestSeed1x1(t *testing.T) {
	classes, err := Seed1x1()
	require.NoError(t, err)

	require.Equal(t, 4, classes.Corners.Len())
	require.Equal(t, 56, classes.Edges.Len())
	require.Equal(t, 196, classes.Centers.Len())

	require.NoError(t, classes.Corners.CheckDistinct())
	require.NoError(t, classes.Edges.CheckDistinct())
	require.NoError(t, classes.Centers.CheckDistinct())

	// Every canonical 1×1 mosaic holds exactly one canonical rotated
	// tile of its own class.
	for i := 0; i < classes.Corners.Len(); i++ {
		require.True(t, classes.Corners.Mosaic(i).At(0, 0).IsCanonicalCorner())
	}
	for i := 0; i < classes.Edges.Len(); i++ {
		require.True(t, classes.Edges.Mosaic(i).At(0, 0).IsCanonicalEdge())
	}
	for i := 0; i < classes.Centers.Len(); i++ {
		require.True(t, classes.Centers.Mosaic(i).At(0, 0).IsCanonicalCenter())
	}
}

// TestSeed1x1Excluding drops five interior tiles; each one removes
// exactly its canonical center mosaic.
func TestSeed1x1Excluding(t *testing.T) {
	classes, err := Seed1x1(Excluding(76, 125, 135, 179, 211))
	require.NoError(t, err)

	require.Equal(t, 4, classes.Corners.Len())
	require.Equal(t, 56, classes.Edges.Len())
	require.Equal(t, 191, classes.Centers.Len())

	for i := 0; i < classes.Centers.Len(); i++ {
		tile := classes.Centers.Mosaic(i).At(0, 0).Tile
		require.NotContains(t, []int{76, 125, 135, 179, 211}, int(tile))
	}
}
