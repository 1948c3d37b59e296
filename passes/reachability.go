package passes

import "github.com/monument-ringing/monument/graph"

// Reachability removes every chunk not reachable from the graph's start
// set — spec.md §4.3's "single start pruning": with one (or several)
// concrete start chunks fixed, anything the forward walk never visits can
// never appear in a composition and is dead weight for every later pass.
func Reachability() Pass {
	return OneDirection("reachability", graph.Forward, func(v graph.DirectionalView) {
		reachable := walk(v)
		var remove []graph.ChunkId
		for id := range v.Graph().Chunks {
			if !reachable[id] {
				remove = append(remove, id)
			}
		}
		for _, id := range remove {
			v.Remove(id)
		}
	})
}

// walk returns the set of chunk ids reachable from v's entries by
// following v.Edges.
func walk(v graph.DirectionalView) map[graph.ChunkId]bool {
	seen := make(map[graph.ChunkId]bool)
	var stack []graph.ChunkId
	for _, e := range v.Entries() {
		if !seen[e] {
			seen[e] = true
			stack = append(stack, e)
		}
	}
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, link := range v.Edges(id) {
			if !seen[link.Target] {
				seen[link.Target] = true
				stack = append(stack, link.Target)
			}
		}
	}
	return seen
}
