package passes

import "github.com/monument-ringing/monument/graph"

// Pass is one optimisation rewrite applied to a *graph.Graph. The three
// constructors below are spec.md §4.3's three Pass variants; each just
// wraps a narrower callback into the same Run signature, so the fixed-point
// loop (Optimise) never has to switch on a pass's shape.
type Pass struct {
	Name string
	Run  func(g *graph.Graph)
}

// Single wraps a pass that only ever needs the whole graph, not a
// direction — e.g. dangling-reference cleanup, required-chunk detection.
func Single(name string, fn func(g *graph.Graph)) Pass {
	return Pass{Name: name, Run: fn}
}

// OneDirection wraps a pass that only runs in one direction — e.g. single-
// start reachability pruning, which only makes sense forward from starts.
func OneDirection(name string, dir graph.Direction, fn func(v graph.DirectionalView)) Pass {
	return Pass{Name: name, Run: func(g *graph.Graph) { fn(graph.View(g, dir)) }}
}

// BothDirections wraps a pass that runs once forward and once backward —
// e.g. distance computation (distance-from-rounds, then distance-to-
// rounds), sharing one implementation via graph.DirectionalView.
func BothDirections(name string, fn func(v graph.DirectionalView)) Pass {
	return Pass{Name: name, Run: func(g *graph.Graph) {
		fn(graph.View(g, graph.Forward))
		fn(graph.View(g, graph.Backward))
	}}
}

// maxFixedPointIterations bounds Optimise's fixed-point loop so a pass
// ordering that oscillates without ever reaching a true fixed point cannot
// spin forever.
const maxFixedPointIterations = 20

// Optimise runs passes in order, repeating the whole sequence until the
// graph's Size (graph.Graph.Measure) stops strictly shrinking in any
// component without growing in another — spec.md §4.3's fixed-point
// condition — or maxFixedPointIterations is reached.
func Optimise(g *graph.Graph, passes []Pass) {
	prev := g.Measure()
	for i := 0; i < maxFixedPointIterations; i++ {
		for _, p := range passes {
			p.Run(g)
		}
		cur := g.Measure()
		if !cur.SmallerThan(prev) {
			return
		}
		prev = cur
	}
}
