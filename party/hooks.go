package party

// Test hooks (kept separate so instrumentation doesn't clutter logic).
// They must not perform blocking or mutating operations that affect
// production correctness.
var (
	// removedHook is invoked after a servant successfully removes a present.
	// targeted is true when the removal answered a probe for that tag.
	removedHook func(servant, tag int, targeted bool)
)
