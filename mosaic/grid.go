package mosaic

import (
	"github.com/katalvlaran/tessella/tiling"
)

// Grid is the dense mosaic representation: one row-major slice with one
// entry per cell. It is the working storage that joins assemble into.
type Grid struct {
	width, height int
	cells         []tiling.RotatedTile
}

// NewGrid allocates a zeroed width×height grid.
// Returns ErrBadDimensions if either side is non-positive.
// Complexity: O(W×H).
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadDimensions
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  make([]tiling.RotatedTile, width*height),
	}, nil
}

// GridFromRows builds a grid from a non-empty rectangular 2D slice,
// deep-copying the input. Returns ErrBadDimensions for an empty input
// and ErrNonRectangular if any row length differs.
// Complexity: O(W×H).
func GridFromRows(rows [][]tiling.RotatedTile) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadDimensions
	}
	w := len(rows[0])
	g, err := NewGrid(w, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		copy(g.cells[y*w:(y+1)*w], row)
	}

	return g, nil
}

// CopyOf materializes any mosaic into a fresh dense grid.
// Complexity: O(W×H).
func CopyOf(m Mosaic) *Grid {
	g := &Grid{
		width:  m.Width(),
		height: m.Height(),
		cells:  make([]tiling.RotatedTile, m.Width()*m.Height()),
	}
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			g.cells[y*g.width+x] = m.At(x, y)
		}
	}

	return g
}

// Width returns the number of columns. Complexity: O(1).
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows. Complexity: O(1).
func (g *Grid) Height() int { return g.height }

// At returns the rotated tile at (x, y). Complexity: O(1).
func (g *Grid) At(x, y int) tiling.RotatedTile {
	return g.cells[y*g.width+x]
}

// Set places a rotated tile at (x, y). Complexity: O(1).
func (g *Grid) Set(x, y int, rt tiling.RotatedTile) {
	g.cells[y*g.width+x] = rt
}
