package builder

import (
	"github.com/katalvlaran/tessella/mosaic"
	"github.com/katalvlaran/tessella/mosaicset"
)

// InMemorySquares materializes every produced mosaic into one canonical
// square set. Each shard accumulates a private partial set; the
// collector folds partials through Extend, so the final set is the same
// regardless of shard completion order (up to slot numbering).
type InMemorySquares struct {
	opts options
	size int
	col  *collector[*mosaicset.SquareSet]
	set  *mosaicset.SquareSet
	err  error
}

// NewInMemorySquares creates a builder collecting size×size mosaics.
func NewInMemorySquares(size int, opts ...Option) *InMemorySquares {
	b := &InMemorySquares{
		opts: newOptions(opts),
		size: size,
		set:  mosaicset.NewSquareSet(size),
	}
	b.col = newCollector(func(partial *mosaicset.SquareSet) {
		if err := b.set.Extend(partial); err != nil && b.err == nil {
			b.err = err
		}
	})

	return b
}

// NewShard returns a fresh private shard. Safe for concurrent use.
func (b *InMemorySquares) NewShard() Shard {
	b.col.add()

	return &squareShard{b: b, set: mosaicset.NewSquareSet(b.size)}
}

// Finish waits for all shards and returns the folded set.
func (b *InMemorySquares) Finish() (*mosaicset.SquareSet, error) {
	b.col.wait()
	if b.err != nil {
		return nil, b.err
	}

	return b.set, nil
}

type squareShard struct {
	b   *InMemorySquares
	set *mosaicset.SquareSet
}

func (s *squareShard) Insert(m mosaic.Mosaic) error {
	return s.set.Insert(s.b.opts.store(m))
}

func (s *squareShard) Done() { s.b.col.deliver(s.set) }

// InMemoryRects is the rectangular counterpart of InMemorySquares.
type InMemoryRects struct {
	opts          options
	width, height int
	col           *collector[*mosaicset.RectSet]
	set           *mosaicset.RectSet
	err           error
}

// NewInMemoryRects creates a builder collecting width×height mosaics.
func NewInMemoryRects(width, height int, opts ...Option) *InMemoryRects {
	b := &InMemoryRects{
		opts:   newOptions(opts),
		width:  width,
		height: height,
		set:    mosaicset.NewRectSet(width, height),
	}
	b.col = newCollector(func(partial *mosaicset.RectSet) {
		if err := b.set.Extend(partial); err != nil && b.err == nil {
			b.err = err
		}
	})

	return b
}

// NewShard returns a fresh private shard. Safe for concurrent use.
func (b *InMemoryRects) NewShard() Shard {
	b.col.add()

	return &rectShard{b: b, set: mosaicset.NewRectSet(b.width, b.height)}
}

// Finish waits for all shards and returns the folded set.
func (b *InMemoryRects) Finish() (*mosaicset.RectSet, error) {
	b.col.wait()
	if b.err != nil {
		return nil, b.err
	}

	return b.set, nil
}

type rectShard struct {
	b   *InMemoryRects
	set *mosaicset.RectSet
}

func (s *rectShard) Insert(m mosaic.Mosaic) error {
	return s.set.Insert(s.b.opts.store(m))
}

func (s *rectShard) Done() { s.b.col.deliver(s.set) }
