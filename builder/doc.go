// Package builder provides the pluggable accumulation strategies that
// mosaic-producing pipelines feed. A pipeline fans its work out to
// concurrent workers; each worker requests a private Shard, inserts the
// mosaics it produces, and marks the shard Done. The builder folds the
// shards into one result as they complete.
//
// What:
//
//   - Builder[R]: hands out shards and folds them into a result of
//     type R. NewShard is safe to call from any goroutine; Finish waits
//     for all outstanding shards and returns the folded result.
//   - InMemorySquares / InMemoryRects: materialize every mosaic into a
//     canonical set (mosaicset.SquareSet / mosaicset.RectSet), either
//     dense or, with WithPacked, in quad-compressed storage.
//   - Counting: folds shards into a plain total, for populations too
//     large to materialize.
//   - Sampling: a counting builder that additionally retains one
//     representative mosaic, so huge counts can be spot-checked.
//
// Why:
//
//   - Folding is associative and commutative (set Extend offsets slots,
//     counts add), so the result is independent of shard completion
//     order and pipelines stay free to schedule workers however they
//     like.
//
// Concurrency:
//
//   - A Shard belongs to exactly one worker and is not locked; Done
//     must be called exactly once per shard. Finish must be called
//     exactly once, after every shard is Done.
//
// Errors:
//
//   - Shard.Insert and Finish forward sentinel errors of the underlying
//     set (mosaicset.ErrSizeMismatch).
package builder
