// Package conclist implements a concurrent sorted singly-linked list.
//
// Traversal is lock-free: readers walk the chain through atomic successor
// pointers and must tolerate concurrent structural changes. Mutation is
// serialized by a single coarse lock and committed with a compare-and-swap
// that re-validates the pointer read under the lock. A failed swap means the
// traversal snapshot went stale, so the whole operation restarts from the
// head; retrying only the swap would commit against a predecessor that may
// itself have been unlinked.
package conclist

import (
	"sync"
	"sync/atomic"
)

// Less is a function that returns true if a is less than b.
type Less[K comparable] func(a, b K) bool

// Entry is a single keyed node. The key never changes after construction;
// the successor pointer is mutated only through atomic operations, and only
// by the list once the entry has been linked.
type Entry[K comparable] struct {
	key  K
	next atomic.Pointer[Entry[K]]
}

// NewEntry returns an unlinked entry holding key.
func NewEntry[K comparable](key K) *Entry[K] {
	return &Entry[K]{key: key}
}

// Key returns the entry's key.
func (e *Entry[K]) Key() K {
	return e.key
}

// Next returns the entry's current successor. The value is a point-in-time
// read and may be stale by the time the caller inspects it.
func (e *Entry[K]) Next() *Entry[K] {
	return e.next.Load()
}

// List is a sorted list of entries reachable from an atomic head pointer.
// At any quiescent point the chain is non-decreasing by key and terminates
// in nil. Keys are not deduplicated: concurrent insertions of equal keys all
// succeed and end up adjacent.
type List[K comparable] struct {
	less Less[K]
	head atomic.Pointer[Entry[K]]
	mu   sync.Mutex

	length       atomic.Int64
	casRetries   atomic.Int64
	casSuccesses atomic.Int64
}

// New returns an empty list ordered by less.
func New[K comparable](less Less[K]) *List[K] {
	return &List[K]{less: less}
}

// Add links e at its sorted position. The position reflects the list's state
// at commit time, not at traversal time: the insertion pointer is re-read
// under the lock and the swap is verified against that fresh value.
func (l *List[K]) Add(e *Entry[K]) {
	for {
		var pred *Entry[K]
		curr := l.head.Load()

		for curr != nil && l.less(curr.key, e.key) {
			pred = curr
			curr = curr.next.Load()
		}

		l.mu.Lock()
		if pred == nil {
			expected := l.head.Load()
			e.next.Store(expected)
			if l.head.CompareAndSwap(expected, e) {
				l.mu.Unlock()
				l.length.Add(1)
				l.casSuccesses.Add(1)
				if addHook != nil {
					addHook(e.key)
				}
				return
			}
		} else {
			expected := pred.next.Load()
			e.next.Store(expected)
			if pred.next.CompareAndSwap(expected, e) {
				l.mu.Unlock()
				l.length.Add(1)
				l.casSuccesses.Add(1)
				if addHook != nil {
					addHook(e.key)
				}
				return
			}
		}
		l.mu.Unlock()
		l.casRetries.Add(1)
	}
}

// Remove unlinks and returns the first entry whose key equals key. The
// boolean is false if no such entry was observed, in which case the list is
// left untouched. When several goroutines race to remove the same key,
// exactly one of them receives the entry; the others re-traverse and report
// false once the key is gone.
func (l *List[K]) Remove(key K) (*Entry[K], bool) {
	for {
		var pred *Entry[K]
		curr := l.head.Load()

		for curr != nil && l.less(curr.key, key) {
			pred = curr
			curr = curr.next.Load()
		}
		if curr == nil || curr.key != key {
			return nil, false
		}

		l.mu.Lock()
		if pred == nil {
			if l.head.CompareAndSwap(curr, curr.next.Load()) {
				l.mu.Unlock()
				l.length.Add(-1)
				l.casSuccesses.Add(1)
				return curr, true
			}
		} else {
			if pred.next.CompareAndSwap(curr, curr.next.Load()) {
				l.mu.Unlock()
				l.length.Add(-1)
				l.casSuccesses.Add(1)
				return curr, true
			}
		}
		l.mu.Unlock()
		l.casRetries.Add(1)
	}
}

// RemoveMin unlinks and returns the entry currently at the head, with no key
// comparison. The boolean is false if the list was observed empty, which is
// an ordinary outcome rather than an error; the call has no side effect in
// that case.
func (l *List[K]) RemoveMin() (*Entry[K], bool) {
	for {
		curr := l.head.Load()
		if curr == nil {
			return nil, false
		}

		l.mu.Lock()
		if l.head.CompareAndSwap(curr, curr.next.Load()) {
			l.mu.Unlock()
			l.length.Add(-1)
			l.casSuccesses.Add(1)
			return curr, true
		}
		l.mu.Unlock()
		l.casRetries.Add(1)
	}
}

// Contains reports whether an entry with the given key was observed during a
// single lock-free pass. It takes no lock and offers no linearizability: the
// key may have been removed by the time the call returns, or an in-flight
// insertion may not be visible yet. Callers should treat the result as a
// hint and rely on Remove for the authoritative answer.
func (l *List[K]) Contains(key K) bool {
	curr := l.head.Load()
	for curr != nil && l.less(curr.key, key) {
		curr = curr.next.Load()
	}
	return curr != nil && curr.key == key
}

// IsEmpty reports whether the head was nil at the instant of the read.
// Advisory only under concurrency.
func (l *List[K]) IsEmpty() bool {
	return l.head.Load() == nil
}

// Len returns the number of linked entries. The count is maintained with
// atomic adds outside the critical section, so it can briefly lag the
// structure under contention.
func (l *List[K]) Len() int64 {
	return l.length.Load()
}

// CASStats reports the total number of failed and successful structural
// compare-and-swaps across Add, Remove and RemoveMin. These counters enable
// contention analysis in benchmarks.
func (l *List[K]) CASStats() (retries, successes int64) {
	return l.casRetries.Load(), l.casSuccesses.Load()
}
