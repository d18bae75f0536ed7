// Package idgen mints element ids that are unique for the life of the process.
package idgen

import (
	"strconv"
	"sync/atomic"
)

// Counter hands out increasing sequence numbers. The zero value is ready
// to use and starts at 0. Numbers are never reused or reset.
type Counter struct {
	next atomic.Uint64
}

// Default is the process-wide counter used when none is injected
var Default = &Counter{}

// Next returns "<prefix>-<n>" and advances the counter
func (c *Counter) Next(prefix string) string {
	n := c.next.Add(1) - 1
	return prefix + "-" + strconv.FormatUint(n, 10)
}

// Peek returns the number the next call to Next will use
func (c *Counter) Peek() uint64 {
	return c.next.Load()
}
