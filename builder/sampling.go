package builder

import (
	"github.com/katalvlaran/tessella/mosaic"
)

// Tally is the result of a sampling build: the total number of produced
// mosaics plus one representative, or a nil Sample when nothing was
// produced.
type Tally struct {
	Count  uint64
	Sample mosaic.Mosaic
}

// Sampling counts like Counting but additionally keeps the first mosaic
// each shard sees, folding partial tallies by summing counts and
// retaining the first sample to arrive. Which representative survives
// depends on scheduling; only its validity is guaranteed.
type Sampling struct {
	opts  options
	col   *collector[Tally]
	total Tally
}

// NewSampling creates a sampling builder.
func NewSampling(opts ...Option) *Sampling {
	b := &Sampling{opts: newOptions(opts)}
	b.col = newCollector(func(t Tally) {
		b.total.Count += t.Count
		if b.total.Sample == nil {
			b.total.Sample = t.Sample
		}
	})

	return b
}

// NewShard returns a fresh private shard. Safe for concurrent use.
func (b *Sampling) NewShard() Shard {
	b.col.add()

	return &samplingShard{b: b}
}

// Finish waits for all shards and returns the folded tally.
func (b *Sampling) Finish() (Tally, error) {
	b.col.wait()

	return b.total, nil
}

type samplingShard struct {
	b     *Sampling
	tally Tally
}

func (s *samplingShard) Insert(m mosaic.Mosaic) error {
	s.tally.Count++
	if s.tally.Sample == nil {
		s.tally.Sample = s.b.opts.store(m)
	}

	return nil
}

func (s *samplingShard) Done() { s.b.col.deliver(s.tally) }
