package mosaic

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tessella/tiling"
)

// TestRender checks the layout of the diagnostic display: five text
// lines per tile row, ten runes per tile column, indent applied to
// every line, and the tile numbers and rotation markers present.
func TestRender(t *testing.T) {
	g, err := GridFromRows([][]tiling.RotatedTile{
		{{Tile: 0, Rotation: tiling.Identity}, {Tile: 1, Rotation: tiling.QuarterTurnLeft}},
		{{Tile: 16, Rotation: tiling.HalfTurn}, {Tile: 17, Rotation: tiling.QuarterTurnRight}},
	})
	require.NoError(t, err)

	const indent = 4
	out := Render(g, indent)
	require.True(t, strings.HasSuffix(out, "\n"))

	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5*g.Height())
	for _, line := range lines {
		require.True(t, strings.HasPrefix(line, strings.Repeat(" ", indent)))
		require.Equal(t, indent+10*g.Width(), len([]rune(line)))
	}

	for _, want := range []string{"0", "1", "16", "17"} {
		require.Contains(t, out, want)
	}
	// One marker per rotation in the fixture.
	for _, marker := range []string{"▴", "◂", "▾", "▸"} {
		require.Contains(t, out, marker)
	}
	// Tile 0 is a corner: its exterior top and left render shaded.
	require.Contains(t, out, "█")
	require.Contains(t, out, "▄")
}

// TestRenderNoIndent keeps the zero-indent path honest.
func TestRenderNoIndent(t *testing.T) {
	g, err := GridFromRows([][]tiling.RotatedTile{
		{{Tile: 128, Rotation: tiling.Identity}},
	})
	require.NoError(t, err)

	out := Render(g, 0)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 5)
	require.False(t, strings.HasPrefix(lines[0], " "))
	require.Contains(t, out, "128")
}
