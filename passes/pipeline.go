package passes

// DefaultPipeline returns the standard optimisation sequence spec.md §4.3
// runs before search: strip dangling references (cheap and idempotent, so
// every earlier pass's cleanup mistakes are caught), prune to what is
// reachable from the fixed start set, compute forward/backward distance
// bounds (pruning anything that cannot finish within maxLength), mark
// required chunks, and finally bound duffer runs. RequiredChunks runs
// before DufferBounds so the duffer pass can see which chunks it must never
// prune.
//
// Method-count feasibility (query's ErrUnachievableMethodCount family) is
// deliberately not a pass here: a method count is only meaningful along one
// start-to-end path, not per chunk, so it is checked incrementally as
// package search extends a composition prefix rather than as a graph
// rewrite (see DESIGN.md).
func DefaultPipeline(maxLength, maxDufferRows int) []Pass {
	return []Pass{
		StripDangling(),
		Reachability(),
		ComputeDistances(maxLength),
		RequiredChunks(),
		DufferBounds(maxDufferRows),
	}
}
