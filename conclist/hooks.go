package conclist

// Test hooks (kept separate so instrumentation doesn't clutter logic).
// They must not perform blocking or mutating operations that affect
// production correctness.
var (
	// addHook is invoked after an entry has been linked.
	addHook func(key any)
)
