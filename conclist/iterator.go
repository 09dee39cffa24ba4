package conclist

// Iterator provides a forward-only view over the list. It reads successor
// pointers atomically but takes no lock, so it is only guaranteed to observe
// a consistent chain when no mutation is in flight. Tests use it to validate
// ordering at quiescent points.
type Iterator[K comparable] struct {
	l       *List[K]
	current *Entry[K]
	valid   bool
}

// Iterator returns a new iterator positioned before the first entry.
func (l *List[K]) Iterator() *Iterator[K] {
	return &Iterator[K]{l: l}
}

// Valid reports whether the iterator currently points at an entry.
func (it *Iterator[K]) Valid() bool {
	if it == nil {
		return false
	}
	return it.valid
}

// Key returns the key at the iterator's current position. It should only be
// called when Valid reports true.
func (it *Iterator[K]) Key() K {
	var zero K
	if it == nil || !it.valid {
		return zero
	}
	return it.current.key
}

// Entry returns the entry at the iterator's current position, or nil when
// the iterator is not valid.
func (it *Iterator[K]) Entry() *Entry[K] {
	if it == nil || !it.valid {
		return nil
	}
	return it.current
}

// Next advances the iterator and reports whether it moved to an entry. If
// the iterator was not valid prior to the call, it advances to the first
// entry.
func (it *Iterator[K]) Next() bool {
	if it == nil || it.l == nil {
		return false
	}

	var next *Entry[K]
	if it.valid {
		next = it.current.next.Load()
	} else {
		next = it.l.head.Load()
	}

	if next == nil {
		it.current = nil
		it.valid = false
		return false
	}
	it.current = next
	it.valid = true
	return true
}
