package passes

import "github.com/monument-ringing/monument/graph"

// RequiredChunks marks every chunk that lies on every remaining start-to-end
// path as Chunk.Required — spec.md §4.3's dominator-based required-chunk
// detection. A chunk dominates an end if, and only if, every path from
// every start to that end passes through it; a chunk is Required when it
// dominates every remaining end, since a composition reaching any other end
// would then be a path around it.
//
// This uses the classic iterative (Cooper/Harvey/Kennedy-style) dominance
// fixed point rather than the Lengauer-Tarjan tree algorithm: simpler to
// read, and it tolerates the graph having several start chunks (a virtual
// super-start feeding all of them) without special-casing. It costs more
// per iteration than a tree walk; acceptable at the chunk counts a single
// query's graph reaches.
func RequiredChunks() Pass {
	return Single("required-chunks", markRequired)
}

func markRequired(g *graph.Graph) {
	ids := make([]graph.ChunkId, 0, len(g.Chunks))
	for id := range g.Chunks {
		ids = append(ids, id)
	}
	if len(ids) == 0 || len(g.Ends) == 0 {
		return
	}

	isStart := make(map[graph.ChunkId]bool, len(g.Starts))
	for _, s := range g.Starts {
		isStart[s.ID] = true
	}

	universe := make(map[graph.ChunkId]bool, len(ids))
	for _, id := range ids {
		universe[id] = true
	}

	dom := make(map[graph.ChunkId]map[graph.ChunkId]bool, len(ids))
	for _, id := range ids {
		if isStart[id] {
			dom[id] = map[graph.ChunkId]bool{id: true}
		} else {
			dom[id] = cloneSet(universe)
		}
	}

	for changed := true; changed; {
		changed = false
		for _, id := range ids {
			if isStart[id] {
				continue
			}
			chunk := g.Chunks[id]
			var merged map[graph.ChunkId]bool
			have := false
			for _, l := range chunk.Predecessors {
				pred := dom[l.Target]
				if pred == nil {
					continue
				}
				if !have {
					merged = cloneSet(pred)
					have = true
					continue
				}
				merged = intersectSet(merged, pred)
			}
			if !have {
				// Unreachable internal chunk; an earlier reachability pass
				// should already have pruned it, but leave dom alone rather
				// than guess.
				continue
			}
			merged[id] = true
			if !setsEqual(merged, dom[id]) {
				dom[id] = merged
				changed = true
			}
		}
	}

	var required map[graph.ChunkId]bool
	for i, e := range g.Ends {
		if i == 0 {
			required = cloneSet(dom[e.ID])
			continue
		}
		required = intersectSet(required, dom[e.ID])
	}
	for id := range required {
		if chunk, ok := g.Chunks[id]; ok {
			chunk.Required = true
		}
	}
}

func cloneSet(s map[graph.ChunkId]bool) map[graph.ChunkId]bool {
	out := make(map[graph.ChunkId]bool, len(s))
	for k := range s {
		out[k] = true
	}
	return out
}

func intersectSet(a, b map[graph.ChunkId]bool) map[graph.ChunkId]bool {
	out := make(map[graph.ChunkId]bool)
	small, large := a, b
	if len(b) < len(a) {
		small, large = b, a
	}
	for k := range small {
		if large[k] {
			out[k] = true
		}
	}
	return out
}

func setsEqual(a, b map[graph.ChunkId]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
