package builder

import "sync"

// collectorBuffer bounds how many finished shard payloads may queue
// ahead of the folding goroutine.
const collectorBuffer = 16

// collector is the shared delivery machinery: finished shards send
// their payload on a channel, and a single folding goroutine merges
// payloads in arrival order. One folder means the aggregate needs no
// locking; order-independence of the fold makes arrival order
// irrelevant.
type collector[P any] struct {
	ch   chan P
	wg   sync.WaitGroup
	done chan struct{}
}

func newCollector[P any](fold func(P)) *collector[P] {
	c := &collector[P]{
		ch:   make(chan P, collectorBuffer),
		done: make(chan struct{}),
	}
	go func() {
		defer close(c.done)
		for p := range c.ch {
			fold(p)
		}
	}()

	return c
}

// add registers one outstanding shard.
func (c *collector[P]) add() { c.wg.Add(1) }

// deliver hands a finished shard's payload to the folder.
func (c *collector[P]) deliver(p P) {
	c.ch <- p
	c.wg.Done()
}

// wait blocks until every outstanding shard has delivered and the
// folder has consumed the last payload.
func (c *collector[P]) wait() {
	c.wg.Wait()
	close(c.ch)
	<-c.done
}
