// Package ids generates session-unique identifiers for sections, items and links.
package ids

import (
	"strconv"
	"sync"
	"time"
)

// Generator produces ids of the form "<prefix>-<unix millis>". Two calls in the same
// millisecond (or after the clock steps back) get a "-<seq>" suffix so ids never repeat
// within one Generator's lifetime. Uniqueness across sessions is not guaranteed.
type Generator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
	seq  int
}

// New creates a Generator reading the wall clock
func New() *Generator {
	return NewWithClock(time.Now)
}

// NewWithClock creates a Generator with an injectable clock, for tests
func NewWithClock(now func() time.Time) *Generator {
	return &Generator{now: now}
}

// New returns a fresh id for prefix
func (g *Generator) New(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	ms := g.now().UnixMilli()
	if ms > g.last {
		g.last = ms
		g.seq = 0
	} else {
		// clock did not advance: keep the last timestamp so ids stay non-decreasing
		g.seq++
	}

	id := prefix + "-" + strconv.FormatInt(g.last, 10)
	if g.seq > 0 {
		id += "-" + strconv.Itoa(g.seq)
	}
	return id
}
