package graph

import "github.com/monument-ringing/monument/partgroup"

// Layout is the graph builder's only dependency on method/call/music
// detail: it answers "what chunks start a composition" and "having reached
// chunk id, what does it contain and where does it lead". Package query
// (together with bells, falseness and music) implements Layout; Build
// itself only knows how to run Dijkstra over whatever a Layout reports.
type Layout interface {
	// Starts returns every chunk id that may open a composition, with the
	// rotation (always 0 in ordinary use; non-zero only if a start is
	// itself expressed relative to a rotated course head) under which it
	// was reached.
	Starts() []StartSeed

	// Expand materialises chunk id's content and outgoing links.
	// distanceFromStart is the row count accumulated before this chunk
	// (needed for stroke tracking — spec.md §4.2 "Stroke consistency").
	// It is called at most once per distinct id reachable within the
	// configured max length (Build memoises by id). Returning
	// ErrSkipChunk discards id without failing the whole build — the
	// chunk is false against itself and must never appear in the graph
	// (spec.md §3, §4.2 "Falseness wiring").
	Expand(id ChunkId, distanceFromStart int) (ExpandedChunk, error)
}

// StartSeed is one of a Layout's start chunks.
type StartSeed struct {
	ID       ChunkId
	Rotation partgroup.Rotation
}

// SuccessorSeed is one outgoing link reported by Layout.Expand, already
// canonicalised under the part-head group (spec.md §4.2 "Falseness
// wiring"/§3 course-head equivalence).
type SuccessorSeed struct {
	Target   ChunkId
	Rotation partgroup.Rotation
	CallIdx  int     // -1 for a plain/spliced continuation with no call
	Weight   float32 // call or splice weight; 0 for an unweighted continuation
}

// ExpandedChunk is everything Layout.Expand knows about one chunk, before
// Build turns it into a *Chunk and wires it into the Graph.
type ExpandedChunk struct {
	PerPartLength      int
	MethodCounts       []int
	Music              []MusicContribution
	CourseHeadBonus    float32
	Duffer             bool
	StartsAtHandstroke bool
	End                EndKind
	FalseChunks        []ChunkId
	Successors         []SuccessorSeed
}
