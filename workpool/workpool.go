// Package workpool provides the shared pool of entries awaiting insertion.
//
// The pool is consumed from the front only and shrinks monotonically. All
// access goes through a single mutex; no iteration is exposed, so callers
// cannot reach the backing storage without the lock.
package workpool

import (
	"math/rand/v2"
	"sync"

	"github.com/parkerblume/minotaur/conclist"
)

// Pool is a mutex-guarded FIFO of unlinked entries.
type Pool[K comparable] struct {
	mu      sync.Mutex
	entries []*conclist.Entry[K]
	pos     int
}

// New returns a pool draining the given entries in order. The slice is owned
// by the pool after the call.
func New[K comparable](entries []*conclist.Entry[K]) *Pool[K] {
	return &Pool[K]{entries: entries}
}

// NewSeeded returns a pool holding one entry per key in [0, n), shuffled
// with rng. Seeding is a one-time, non-contended setup step.
func NewSeeded(n int, rng *rand.Rand) *Pool[int] {
	entries := make([]*conclist.Entry[int], n)
	for i := range entries {
		entries[i] = conclist.NewEntry(i)
	}
	rng.Shuffle(len(entries), func(i, j int) {
		entries[i], entries[j] = entries[j], entries[i]
	})
	return New(entries)
}

// PopFront removes and returns the front entry. The boolean is false if the
// pool was empty.
func (p *Pool[K]) PopFront() (*conclist.Entry[K], bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pos >= len(p.entries) {
		return nil, false
	}
	e := p.entries[p.pos]
	p.entries[p.pos] = nil
	p.pos++
	return e, true
}

// IsEmpty reports whether the pool has been fully drained.
func (p *Pool[K]) IsEmpty() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.pos >= len(p.entries)
}

// Len returns the number of entries not yet popped.
func (p *Pool[K]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries) - p.pos
}
