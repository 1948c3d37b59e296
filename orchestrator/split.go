package orchestrator

import "github.com/monument-ringing/monument/graph"

// Split partitions g into one independent sub-graph per start chunk, each
// containing only the chunks forward-reachable from that single start —
// spec.md §4.6's "optionally split by start chunk into disjoint graphs...
// each independently optimised". A chunk reachable from more than one
// start is deep-copied into every sub-graph that reaches it, since once a
// sub-graph is handed to its own passes.Optimise pass its LBDist*/Required
// fields diverge from its siblings'.
//
// The returned sub-graph's sole StartRef always carries StartIdx 0 (its
// position in the sub-graph's own Starts slice), not whatever index it had
// in g — search.Seed and compose.Reconstruct both resolve a path's start
// index against the graph currently in hand, so a stale index from g would
// silently resolve to the wrong (or a nonexistent) start.
func Split(g *graph.Graph) []*graph.Graph {
	out := make([]*graph.Graph, 0, len(g.Starts))
	for _, start := range g.Starts {
		reachable := walkForward(g, start.ID)

		sub := graph.NewGraph(g.NumParts)
		for id := range reachable {
			c, ok := g.Chunks[id]
			if !ok {
				continue
			}
			sub.Chunks[id] = cloneChunk(c)
		}

		startChunk, ok := sub.Chunks[start.ID]
		if !ok {
			continue
		}
		startChunk.StartIdx = 0
		sub.Starts = []graph.StartRef{{ID: start.ID, StartIdx: 0, Rotation: start.Rotation}}

		for _, e := range g.Ends {
			if reachable[e.ID] {
				sub.Ends = append(sub.Ends, e)
			}
		}

		out = append(out, sub)
	}
	return out
}

// walkForward returns every chunk id reachable from start by following
// successor links, stack-based and visited-set guarded exactly as
// passes.Reachability's own forward walk (package passes cannot be reused
// directly here: its walk is unexported and, more fundamentally, computes
// reachability from the union of *all* starts, where Split needs one
// start's reachable set in isolation).
func walkForward(g *graph.Graph, start graph.ChunkId) map[graph.ChunkId]bool {
	seen := map[graph.ChunkId]bool{start: true}
	stack := []graph.ChunkId{start}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c, ok := g.Chunks[id]
		if !ok {
			continue
		}
		for _, link := range c.Successors {
			if seen[link.Target] {
				continue
			}
			seen[link.Target] = true
			stack = append(stack, link.Target)
		}
	}
	return seen
}

// cloneChunk deep-copies the slice fields Optimise mutates or filters
// (Successors/Predecessors/FalseChunks) plus MethodCounts, so a pass run
// against one sub-graph can never alias another's.
func cloneChunk(c *graph.Chunk) *graph.Chunk {
	clone := *c
	clone.MethodCounts = append([]int(nil), c.MethodCounts...)
	clone.Music = append([]graph.MusicContribution(nil), c.Music...)
	clone.Successors = append([]graph.Link(nil), c.Successors...)
	clone.Predecessors = append([]graph.Link(nil), c.Predecessors...)
	clone.FalseChunks = append([]graph.ChunkId(nil), c.FalseChunks...)
	return &clone
}
