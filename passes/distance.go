package passes

import (
	"container/heap"

	"github.com/monument-ringing/monument/graph"
)

// ComputeDistances runs the same Dijkstra shape as graph.Build, once
// forward from the start set (filling LBDistFromRounds) and once backward
// from the end set (filling LBDistToRounds), then removes any chunk that
// cannot reach a terminal within maxLength rows overall — spec.md §4.3's
// distance pass and its invariant 4 (lb_distance_from_rounds(c) + length(c)
// + lb_distance_to_rounds(c) <= max_length).
func ComputeDistances(maxLength int) Pass {
	return Pass{Name: "compute-distances", Run: func(g *graph.Graph) {
		runDirection(graph.View(g, graph.Forward), maxLength)
		runDirection(graph.View(g, graph.Backward), maxLength)

		var remove []graph.ChunkId
		for id, c := range g.Chunks {
			if id.Kind == graph.KindZeroLengthEnd {
				continue
			}
			if c.LBDistFromRounds+c.TotalLength+c.LBDistToRounds > maxLength {
				remove = append(remove, id)
			}
		}
		v := graph.View(g, graph.Forward)
		for _, id := range remove {
			v.Remove(id)
		}
	}}
}

// runDirection computes, for every chunk reachable from v's entries, the
// minimal total length accumulated strictly before that chunk is reached,
// and removes chunks unreachable from this direction's entries within
// maxLength. The edge weight relaxed at each step is always the length of
// the chunk just popped — the same rule graph.Build's frontier uses,
// mirrored here to run in either direction via graph.DirectionalView.
func runDirection(v graph.DirectionalView, maxLength int) {
	dist := make(map[graph.ChunkId]int)
	visited := make(map[graph.ChunkId]bool)

	pq := &distFrontier{}
	heap.Init(pq)
	for _, id := range v.Entries() {
		dist[id] = 0
		heap.Push(pq, &distItem{id: id, distance: 0})
	}

	g := v.Graph()
	for pq.Len() > 0 {
		item := heap.Pop(pq).(*distItem)
		if visited[item.id] {
			continue
		}
		visited[item.id] = true
		v.SetDistance(item.id, item.distance)

		chunk, ok := g.Chunks[item.id]
		if !ok {
			continue
		}
		newDist := item.distance + chunk.TotalLength
		if newDist > maxLength {
			continue
		}
		for _, link := range v.Edges(item.id) {
			if visited[link.Target] {
				continue
			}
			if best, ok := dist[link.Target]; !ok || newDist < best {
				dist[link.Target] = newDist
				heap.Push(pq, &distItem{id: link.Target, distance: newDist})
			}
		}
	}

	var remove []graph.ChunkId
	for id := range g.Chunks {
		if !visited[id] {
			remove = append(remove, id)
		}
	}
	for _, id := range remove {
		v.Remove(id)
	}
}

type distItem struct {
	id       graph.ChunkId
	distance int
}

type distFrontier []*distItem

func (f distFrontier) Len() int            { return len(f) }
func (f distFrontier) Less(i, j int) bool  { return f[i].distance < f[j].distance }
func (f distFrontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *distFrontier) Push(x interface{}) { *f = append(*f, x.(*distItem)) }
func (f *distFrontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}
