package passes

import "github.com/monument-ringing/monument/graph"

// StripDangling removes references to chunk ids that are no longer in the
// graph from every chunk's successor, predecessor and false-chunk list. In
// ordinary use graph.DirectionalView.Remove already keeps these lists
// consistent as it deletes chunks, so this pass is a defensive idempotent
// cleanup rather than a load-bearing one — cheap enough to run every
// iteration, and it catches any future pass that mutates a chunk's lists
// directly instead of going through Remove.
func StripDangling() Pass {
	return Single("strip-dangling", func(g *graph.Graph) {
		for _, chunk := range g.Chunks {
			chunk.Successors = filterLinks(g, chunk.Successors)
			chunk.Predecessors = filterLinks(g, chunk.Predecessors)
			chunk.FalseChunks = filterIDs(g, chunk.FalseChunks)
		}
	})
}

func filterLinks(g *graph.Graph, links []graph.Link) []graph.Link {
	out := links[:0]
	for _, l := range links {
		if _, ok := g.Chunks[l.Target]; ok {
			out = append(out, l)
		}
	}
	return out
}

func filterIDs(g *graph.Graph, ids []graph.ChunkId) []graph.ChunkId {
	out := ids[:0]
	for _, id := range ids {
		if _, ok := g.Chunks[id]; ok {
			out = append(out, id)
		}
	}
	return out
}
