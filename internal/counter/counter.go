package counter

import "sync/atomic"

// Counter is a running total that can be shared between the goroutine doing
// the work and the one rendering progress.
type Counter struct {
	total atomic.Int64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) Add(value int) {
	c.total.Add(int64(value))
}

func (c *Counter) Count() int {
	return int(c.total.Load())
}
