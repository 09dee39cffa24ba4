package party

import "sync/atomic"

// Flag is a one-shot probe signal. The coordinator sets it; only the owning
// servant consumes it, and each set is consumed at most once. The interface
// deliberately exposes nothing beyond Set and TestAndClear so the
// single-consumer contract stays visible.
type Flag struct {
	v atomic.Bool
}

// Set raises the flag. Setting an already-raised flag coalesces with the
// pending signal.
func (f *Flag) Set() {
	f.v.Store(true)
}

// TestAndClear reports whether the flag was raised, lowering it in the same
// atomic step.
func (f *Flag) TestAndClear() bool {
	return f.v.CompareAndSwap(true, false)
}
