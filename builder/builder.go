package builder

import (
	"github.com/katalvlaran/tessella/mosaic"
)

// Shard accepts the mosaics produced by a single worker. A shard is
// owned by exactly one goroutine and performs no locking of its own.
// Done delivers the shard's content to the builder and must be called
// exactly once; the shard must not be used afterwards.
type Shard interface {
	// Insert records one produced mosaic. The mosaic is only valid for
	// the duration of the call; a shard that retains it must copy it
	// first, so workers are free to reuse scratch storage.
	Insert(m mosaic.Mosaic) error
	// Done delivers the shard's content to its builder.
	Done()
}

// Builder hands out shards to concurrent workers and folds their
// content into one result. NewShard may be called from any goroutine
// before Finish; Finish must be called exactly once, after every shard
// handed out is Done, and returns the folded result.
type Builder[R any] interface {
	NewShard() Shard
	Finish() (R, error)
}

// Option configures the materializing builders.
type Option func(*options)

type options struct {
	packed bool
}

// WithPacked stores inserted mosaics in quad-compressed form instead of
// dense grids, cutting the resident size of large sets to roughly a
// quarter at the price of slower cell access.
func WithPacked() Option {
	return func(o *options) { o.packed = true }
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// store materializes m for retention, honoring the packed option.
// Views are always copied out of their backing mosaics first; retaining
// a view would pin the backing storage and alias its lifetime.
func (o options) store(m mosaic.Mosaic) mosaic.Mosaic {
	if o.packed {
		return mosaic.Compact(m)
	}

	return mosaic.CopyOf(m)
}
