package graph

import "errors"

// Sentinel errors returned by Build and the chunk-construction it drives.
var (
	// ErrNoStarts is returned when a Layout names no start chunks at all.
	ErrNoStarts = errors.New("graph: layout has no start chunks")

	// ErrSizeLimit is returned once the number of expanded chunks exceeds
	// the configured graph_size_limit (spec.md §7).
	ErrSizeLimit = errors.New("graph: graph_size_limit exceeded")

	// ErrInconsistentStroke is returned when a chunk has odd per-part
	// length but a stroke-specific music type is in effect (spec.md §4.2).
	ErrInconsistentStroke = errors.New("graph: chunk length inconsistent with stroke-specific music")

	// ErrSkipChunk is returned by a Layout's Expand to discard a chunk
	// without failing the whole build: it is false against itself, either
	// within one part or against itself in another part (spec.md §3, §4.2).
	ErrSkipChunk = errors.New("graph: chunk is false against itself")
)
