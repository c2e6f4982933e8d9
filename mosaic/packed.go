package mosaic

import (
	"github.com/katalvlaran/tessella/tiling"
)

// quad packs a 2×2 block of cells into five bytes: four tile indices and
// one byte holding four 2-bit rotations, cell i at bits [2i, 2i+2).
// Cell order within the quad is row-major: 2*(y%2) + x%2.
type quad struct {
	tiles     [4]uint8
	rotations uint8
}

// Packed is the quad-compressed mosaic representation. It trades
// indexing simplicity for roughly a quarter of the dense footprint,
// which is what keeps very large materialized sets in memory.
type Packed struct {
	width, height int
	quadWidth     int
	quads         []quad
}

// Compact copies m into packed storage.
// Complexity: O(W×H).
func Compact(m Mosaic) *Packed {
	w, h := m.Width(), m.Height()
	qw, qh := (w+1)/2, (h+1)/2
	p := &Packed{
		width:     w,
		height:    h,
		quadWidth: qw,
		quads:     make([]quad, qw*qh),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rt := m.At(x, y)
			q := &p.quads[(y/2)*qw+x/2]
			i := 2*(y%2) + x%2
			q.tiles[i] = uint8(rt.Tile)
			q.rotations |= uint8(rt.Rotation) << (2 * i)
		}
	}

	return p
}

// Width returns the number of columns. Complexity: O(1).
func (p *Packed) Width() int { return p.width }

// Height returns the number of rows. Complexity: O(1).
func (p *Packed) Height() int { return p.height }

// At unpacks the rotated tile at (x, y). Complexity: O(1).
func (p *Packed) At(x, y int) tiling.RotatedTile {
	q := &p.quads[(y/2)*p.quadWidth+x/2]
	i := 2*(y%2) + x%2

	return tiling.RotatedTile{
		Tile:     tiling.Tile(q.tiles[i]),
		Rotation: tiling.Rotation((q.rotations >> (2 * i)) & 3),
	}
}
