package graph

import (
	"container/heap"
	"errors"
	"fmt"

	"github.com/monument-ringing/monument/partgroup"
)

// Build runs the Dijkstra expansion of spec.md §4.2: starting from every
// chunk Layout.Starts names, repeatedly pop the lowest-distance unexpanded
// chunk, materialise it via Layout.Expand, and push its successors at
// distance+length. Chunks whose distance would exceed maxLength are never
// expanded. graphSizeLimit bounds the total number of expanded chunks
// (spec.md §7); pass 0 to disable the check.
//
// This is lvlath's Dijkstra-over-a-weighted-graph (the teacher's own
// graph.Dijkstra) adapted so that "vertices" are ChunkIds materialised on
// demand from a Layout rather than pre-existing graph vertices, and "edge
// weight" is always the length of the chunk just expanded rather than a
// stored per-edge weight.
func Build(layout Layout, numParts, maxLength, graphSizeLimit int) (*Graph, error) {
	starts := layout.Starts()
	if len(starts) == 0 {
		return nil, ErrNoStarts
	}

	g := NewGraph(numParts)

	dist := make(map[ChunkId]int)
	expanded := make(map[ChunkId]bool)
	startRotation := make(map[ChunkId]partgroup.Rotation, len(starts))

	pq := &frontier{}
	heap.Init(pq)
	for _, s := range starts {
		startRotation[s.ID] = s.Rotation
		dist[s.ID] = 0
		heap.Push(pq, &frontierItem{id: s.ID, distance: 0})
	}

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*frontierItem)
		if expanded[item.id] {
			continue
		}
		if item.distance > maxLength {
			continue
		}
		expanded[item.id] = true

		if graphSizeLimit > 0 && len(g.Chunks) >= graphSizeLimit {
			return nil, fmt.Errorf("%w: at %d chunks", ErrSizeLimit, len(g.Chunks))
		}

		ex, err := layout.Expand(item.id, item.distance)
		if errors.Is(err, ErrSkipChunk) {
			continue
		}
		if err != nil {
			return nil, err
		}

		chunk, err := newChunk(item.id, ex, numParts)
		if err != nil {
			return nil, err
		}
		g.Chunks[item.id] = chunk

		if rot, isStart := startRotation[item.id]; isStart {
			chunk.IsStart = true
			chunk.StartIdx = len(g.Starts)
			g.Starts = append(g.Starts, StartRef{ID: item.id, StartIdx: chunk.StartIdx, Rotation: rot})
		}
		if ex.End != EndNone {
			g.Ends = append(g.Ends, EndRef{ID: item.id, Kind: ex.End})
		}

		newDistance := item.distance + chunk.TotalLength
		if newDistance > maxLength {
			continue
		}
		for idx, succ := range ex.Successors {
			link := Link{LinkIdx: idx, Target: succ.Target, Rotation: succ.Rotation, CallIdx: succ.CallIdx, Weight: succ.Weight}
			chunk.Successors = append(chunk.Successors, link)

			if expanded[succ.Target] {
				continue
			}
			if best, ok := dist[succ.Target]; !ok || newDistance < best {
				dist[succ.Target] = newDistance
				heap.Push(pq, &frontierItem{id: succ.Target, distance: newDistance})
			}
		}
	}

	wirePredecessors(g)
	finalizeFalseChunks(g)
	return g, nil
}

// finalizeFalseChunks filters each chunk's candidate false-chunk ids (set
// by Layout.Expand from the falseness table, without visibility into which
// ids actually made it into the graph) down to those the Dijkstra expansion
// actually materialised, then adds the chunk's own id — spec.md §3's
// invariant that a surviving chunk is always false against itself.
func finalizeFalseChunks(g *Graph) {
	for id, chunk := range g.Chunks {
		kept := chunk.FalseChunks[:0]
		for _, f := range chunk.FalseChunks {
			if _, ok := g.Chunks[f]; ok {
				kept = append(kept, f)
			}
		}
		chunk.FalseChunks = append(kept, id)
	}
}

func newChunk(id ChunkId, ex ExpandedChunk, numParts int) (*Chunk, error) {
	if ex.PerPartLength%2 != 0 && hasStrokeSpecificMusic(ex.Music) {
		return nil, fmt.Errorf("%w: chunk %v has odd per-part length %d", ErrInconsistentStroke, id, ex.PerPartLength)
	}
	return &Chunk{
		ID:                 id,
		PerPartLength:      ex.PerPartLength,
		TotalLength:        ex.PerPartLength * numParts,
		MethodCounts:       ex.MethodCounts,
		Music:              ex.Music,
		CourseHeadBonus:    ex.CourseHeadBonus,
		Duffer:             ex.Duffer,
		StartsAtHandstroke: ex.StartsAtHandstroke,
		End:                ex.End,
		FalseChunks:        ex.FalseChunks,
		StartIdx:           -1,
	}, nil
}

// hasStrokeSpecificMusic reports whether any of a chunk's music
// contributions came from a stroke-specific pattern (see package music);
// Build itself has no visibility into music-type configuration, only the
// flag the music layer leaves on its result.
func hasStrokeSpecificMusic(music []MusicContribution) bool {
	for _, m := range music {
		if m.StrokeSpecific {
			return true
		}
	}
	return false
}

// frontierItem is one pending (chunk id, distance-from-rounds) pair in the
// Dijkstra expansion frontier.
type frontierItem struct {
	id       ChunkId
	distance int
}

// frontier implements container/heap.Interface as a min-heap on distance,
// exactly as lvlath's dijkstra nodePQ does for its vertex/distance pairs.
type frontier []*frontierItem

func (f frontier) Len() int            { return len(f) }
func (f frontier) Less(i, j int) bool  { return f[i].distance < f[j].distance }
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// wirePredecessors walks every chunk's successors and appends the inverse
// link to the target's predecessor list, inverting the rotation — spec.md
// §4.2 "Predecessor wiring" and the §8 invariant that forward/backward
// rotations are mutual inverses mod |G|. Dangling targets (not present in
// g.Chunks) are skipped rather than erroring, per spec.md §3 invariant 1.
func wirePredecessors(g *Graph) {
	for sourceID, chunk := range g.Chunks {
		for _, link := range chunk.Successors {
			target, ok := g.Chunks[link.Target]
			if !ok {
				continue
			}
			target.Predecessors = append(target.Predecessors, Link{
				LinkIdx:  link.LinkIdx,
				Target:   sourceID,
				Rotation: inverseRotation(link.Rotation, g.NumParts),
				CallIdx:  link.CallIdx,
			})
		}
	}
}

// inverseRotation computes -r mod groupSize without requiring the caller to
// hold a *partgroup.Group (Graph only stores the group's size, NumParts).
func inverseRotation(r partgroup.Rotation, groupSize int) partgroup.Rotation {
	n := partgroup.Rotation(groupSize)
	r %= n
	if r < 0 {
		r += n
	}
	if r == 0 {
		return 0
	}
	return n - r
}
