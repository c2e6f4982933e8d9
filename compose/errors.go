package compose

// Panic messages for programmer errors.
const (
	panicSizeMismatch = "compose: joined sets must share the same mosaic geometry"
	panicNotDoubled   = "compose: rectangle width must be twice its height"
	panicParallelism  = "compose: parallelism must be positive"
)
