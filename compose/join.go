package compose

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/tessella/builder"
	"github.com/katalvlaran/tessella/mosaic"
	"github.com/katalvlaran/tessella/mosaicset"
	"github.com/katalvlaran/tessella/tiling"
)

// Option tunes a join run.
type Option func(*config)

type config struct {
	parallelism int
}

// WithParallelism bounds the number of concurrently processed boundary
// buckets. The default is GOMAXPROCS. Panics if n is not positive.
func WithParallelism(n int) Option {
	if n <= 0 {
		panic(panicParallelism)
	}

	return func(c *config) { c.parallelism = n }
}

func newConfig(opts []Option) config {
	c := config{parallelism: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// usedTiles is a 256-bit occupancy set over tile identities.
type usedTiles [4]uint64

// mark records the tile and reports whether it was still free.
func (u *usedTiles) mark(t tiling.Tile) bool {
	i, bit := t/64, uint64(1)<<(t%64)
	if u[i]&bit != 0 {
		return false
	}
	u[i] |= bit

	return true
}

// has reports whether the tile is recorded.
func (u *usedTiles) has(t tiling.Tile) bool {
	return u[t/64]&(uint64(1)<<(t%64)) != 0
}

// spliceHorizontal writes a side by side with b into dst, rejecting the
// pair if any tile identity occurs twice. dst must be 2N×N for N×N
// inputs. A rejected splice leaves dst partially written.
func spliceHorizontal(dst *mosaic.Grid, a, b mosaic.Mosaic) bool {
	n := a.Width()
	var used usedTiles
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			rt := a.At(x, y)
			if !used.mark(rt.Tile) {
				return false
			}
			dst.Set(x, y, rt)
			rt = b.At(x, y)
			if !used.mark(rt.Tile) {
				return false
			}
			dst.Set(x+n, y, rt)
		}
	}

	return true
}

// spliceVertical writes a above b into dst, rejecting the pair if any
// tile identity occurs twice. dst must be W×2H for W×H inputs.
func spliceVertical(dst *mosaic.Grid, a, b mosaic.Mosaic) bool {
	w, h := a.Width(), a.Height()
	var used usedTiles
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			rt := a.At(x, y)
			if !used.mark(rt.Tile) {
				return false
			}
			dst.Set(x, y, rt)
			rt = b.At(x, y)
			if !used.mark(rt.Tile) {
				return false
			}
			dst.Set(x, y+h, rt)
		}
	}

	return true
}

// BuildRectanglesMemo joins two N×N square sets side by side into 2N×N
// candidates and feeds the accepted ones to bld.
//
// For every right-boundary bucket of a, the left-side index of b is
// probed with the reversed boundary, so every produced pair glues
// exactly. aMemo runs once per left view: it may reject the view
// outright (ok == false) or produce a memo that bFilter consults for
// every right candidate, which is what keeps the center tie-break from
// rescanning the left view in the inner loop. Pairs sharing a tile
// identity are rejected silently.
//
// Buckets are processed by a bounded worker pool, each worker feeding a
// private shard of bld; the builder folds shards in completion order,
// which its strategies make order-independent.
//
// Panics if a and b differ in size (programmer error).
// Complexity: O(pairs·N²) work over len(a buckets) parallel units.
func BuildRectanglesMemo[R, M any](
	bld builder.Builder[R],
	a *mosaicset.SquareSet,
	aMemo func(mosaic.RotatedSquare) (M, bool),
	b *mosaicset.SquareSet,
	bFilter func(M, mosaic.RotatedSquare) bool,
	opts ...Option,
) (R, error) {
	if a.Size() != b.Size() {
		panic(panicSizeMismatch)
	}
	cfg := newConfig(opts)
	size := a.Size()

	var g errgroup.Group
	g.SetLimit(cfg.parallelism)
	for _, bucket := range a.Buckets() {
		bucket := bucket
		shard := bld.NewShard()
		g.Go(func() error {
			defer shard.Done()
			scratch, err := mosaic.NewGrid(2*size, size)
			if err != nil {
				return err
			}
			probe := bucket.Edge.Reversed()
			for _, entry := range bucket.Entries {
				left := a.View(entry, tiling.Right)
				memo, ok := aMemo(left)
				if !ok {
					continue
				}
				for _, right := range b.Query(tiling.Left, probe) {
					if !bFilter(memo, right) {
						continue
					}
					if !spliceHorizontal(scratch, left, right) {
						continue
					}
					if err := shard.Insert(scratch); err != nil {
						return err
					}
				}
			}

			return nil
		})
	}
	err := g.Wait()
	result, finishErr := bld.Finish()
	if err == nil {
		err = finishErr
	}

	return result, err
}

// BuildRectangles is BuildRectanglesMemo with independent per-side
// filters and no memo.
func BuildRectangles[R any](
	bld builder.Builder[R],
	a *mosaicset.SquareSet,
	aFilter func(mosaic.RotatedSquare) bool,
	b *mosaicset.SquareSet,
	bFilter func(mosaic.RotatedSquare) bool,
	opts ...Option,
) (R, error) {
	return BuildRectanglesMemo(
		bld,
		a,
		func(v mosaic.RotatedSquare) (struct{}, bool) { return struct{}{}, aFilter(v) },
		b,
		func(_ struct{}, v mosaic.RotatedSquare) bool { return bFilter(v) },
		opts...,
	)
}

// BuildSquaresMemo stacks two 2N×N rectangular sets into 2N×2N
// candidates and feeds the accepted ones to bld. The top operand is
// drawn from a's bottom-boundary buckets; the top-side index of b is
// probed with the reversed boundary. Everything else mirrors
// BuildRectanglesMemo.
//
// Panics if the sets differ in geometry or their width is not twice
// their height (programmer error).
// Complexity: O(pairs·N²) work over len(a buckets) parallel units.
func BuildSquaresMemo[R, M any](
	bld builder.Builder[R],
	a *mosaicset.RectSet,
	aMemo func(mosaic.RotatedRect) (M, bool),
	b *mosaicset.RectSet,
	bFilter func(M, mosaic.RotatedRect) bool,
	opts ...Option,
) (R, error) {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		panic(panicSizeMismatch)
	}
	if a.Width() != 2*a.Height() {
		panic(panicNotDoubled)
	}
	cfg := newConfig(opts)
	width := a.Width()

	var g errgroup.Group
	g.SetLimit(cfg.parallelism)
	for _, bucket := range a.HorizontalBuckets() {
		bucket := bucket
		shard := bld.NewShard()
		g.Go(func() error {
			defer shard.Done()
			scratch, err := mosaic.NewGrid(width, width)
			if err != nil {
				return err
			}
			probe := bucket.Edge.Reversed()
			for _, entry := range bucket.Entries {
				top := a.ViewHorizontal(entry, tiling.HorizontalBottom)
				memo, ok := aMemo(top)
				if !ok {
					continue
				}
				for _, bottom := range b.QueryHorizontal(tiling.HorizontalTop, probe) {
					if !bFilter(memo, bottom) {
						continue
					}
					if !spliceVertical(scratch, top, bottom) {
						continue
					}
					if err := shard.Insert(scratch); err != nil {
						return err
					}
				}
			}

			return nil
		})
	}
	err := g.Wait()
	result, finishErr := bld.Finish()
	if err == nil {
		err = finishErr
	}

	return result, err
}

// BuildSquares is BuildSquaresMemo with independent per-side filters
// and no memo.
func BuildSquares[R any](
	bld builder.Builder[R],
	a *mosaicset.RectSet,
	aFilter func(mosaic.RotatedRect) bool,
	b *mosaicset.RectSet,
	bFilter func(mosaic.RotatedRect) bool,
	opts ...Option,
) (R, error) {
	return BuildSquaresMemo(
		bld,
		a,
		func(v mosaic.RotatedRect) (struct{}, bool) { return struct{}{}, aFilter(v) },
		b,
		func(_ struct{}, v mosaic.RotatedRect) bool { return bFilter(v) },
		opts...,
	)
}
