package query

import "github.com/monument-ringing/monument/graph"

// BuildGraph resolves q and runs the Dijkstra expansion (package graph)
// over the Layout it assembles, bounded by q.LengthRange.Max and
// q.GraphSizeLimit.
func BuildGraph(q *Query) (*graph.Graph, error) {
	resolved, err := Resolve(q)
	if err != nil {
		return nil, err
	}
	layout, err := NewLayout(resolved)
	if err != nil {
		return nil, err
	}
	return graph.Build(layout, resolved.Group.Size(), q.LengthRange.Max, q.GraphSizeLimit)
}
