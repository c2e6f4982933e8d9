package builder

import (
	"github.com/katalvlaran/tessella/mosaic"
)

// Counting discards the produced mosaics and folds only their number.
// It is the strategy of choice once a population outgrows memory: the
// pipeline runs identically, the builder just tallies.
type Counting struct {
	col   *collector[uint64]
	total uint64
}

// NewCounting creates a counting builder.
func NewCounting() *Counting {
	b := &Counting{}
	b.col = newCollector(func(n uint64) { b.total += n })

	return b
}

// NewShard returns a fresh private shard. Safe for concurrent use.
func (b *Counting) NewShard() Shard {
	b.col.add()

	return &countShard{col: b.col}
}

// Finish waits for all shards and returns the total count.
func (b *Counting) Finish() (uint64, error) {
	b.col.wait()

	return b.total, nil
}

type countShard struct {
	col   *collector[uint64]
	count uint64
}

func (s *countShard) Insert(mosaic.Mosaic) error {
	s.count++

	return nil
}

func (s *countShard) Done() { s.col.deliver(s.count) }
