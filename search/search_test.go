package search

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monument-ringing/monument/graph"
)

func chunkID(method int, start bool) graph.ChunkId {
	return graph.ChunkId{Kind: graph.KindStandard, Method: method, IsStart: start}
}

func TestPathFlatten(t *testing.T) {
	p := StartPath(2)
	p = p.Cons(5)
	p = p.Cons(7)

	start, links := p.Flatten()
	assert.Equal(t, 2, start)
	assert.Equal(t, []int{5, 7}, links)
}

func TestPathFlattenRootOnly(t *testing.T) {
	start, links := StartPath(0).Flatten()
	assert.Equal(t, 0, start)
	assert.Empty(t, links)
}

func buildLinearGraph() *graph.Graph {
	g := graph.NewGraph(1)
	start := chunkID(0, true)
	mid := chunkID(1, false)
	end := chunkID(2, false)

	g.Chunks[start] = &graph.Chunk{
		ID: start, TotalLength: 10,
		Music:       []graph.MusicContribution{{Score: 1}},
		Successors:  []graph.Link{{LinkIdx: 0, Target: mid, CallIdx: -1}},
		FalseChunks: []graph.ChunkId{start},
		StartIdx:    0,
	}
	g.Chunks[mid] = &graph.Chunk{
		ID: mid, TotalLength: 10,
		Music:       []graph.MusicContribution{{Score: 2}},
		Successors:  []graph.Link{{LinkIdx: 0, Target: end, CallIdx: -1}},
		FalseChunks: []graph.ChunkId{mid},
	}
	g.Chunks[end] = &graph.Chunk{
		ID: end, TotalLength: 0, End: graph.EndRounds,
		FalseChunks: []graph.ChunkId{end},
	}
	g.Starts = []graph.StartRef{{ID: start, StartIdx: 0}}
	g.Ends = []graph.EndRef{{ID: end, Kind: graph.EndRounds}}
	return g
}

func TestRunEmitsOneComposition(t *testing.T) {
	g := buildLinearGraph()
	s := NewSearcher(g, Config{MinLength: 1, MaxLength: 100, NumComps: 10, QueueLimit: 100, GroupSize: 1})

	var emitted []*CompPrefix
	n := s.Run(nil, func(p *CompPrefix) { emitted = append(emitted, p) })

	require.Equal(t, 1, n)
	require.Len(t, emitted, 1)
	assert.Equal(t, 20, emitted[0].Length)
	assert.InDelta(t, float32(3), emitted[0].Score, 1e-6)

	startIdx, links := emitted[0].Path.Flatten()
	assert.Equal(t, 0, startIdx)
	assert.Equal(t, []int{0, 0}, links, "one link start->mid, one link mid->end")
}

func TestRunRejectsOutOfRangeLength(t *testing.T) {
	g := buildLinearGraph()
	s := NewSearcher(g, Config{MinLength: 21, MaxLength: 100, NumComps: 10, QueueLimit: 100, GroupSize: 1})

	n := s.Run(nil, func(*CompPrefix) {})
	assert.Equal(t, 0, n, "the only completion has length 20, below MinLength 21")
}

func TestRunHonoursAbortFlag(t *testing.T) {
	g := buildLinearGraph()
	s := NewSearcher(g, Config{MinLength: 1, MaxLength: 100, NumComps: 10, QueueLimit: 100, GroupSize: 1})

	var abort atomic.Bool
	abort.Store(true)

	n := s.Run(&abort, func(*CompPrefix) { t.Fatal("must not emit once abort is already set") })
	assert.Equal(t, 0, n)
}

func TestStepSkipsFalseSuccessor(t *testing.T) {
	g := graph.NewGraph(1)
	start := chunkID(0, true)
	a := chunkID(1, false)
	b := chunkID(2, false)

	g.Chunks[start] = &graph.Chunk{
		ID: start, TotalLength: 1,
		Successors:  []graph.Link{{LinkIdx: 0, Target: a, CallIdx: -1}, {LinkIdx: 1, Target: b, CallIdx: -1}},
		FalseChunks: []graph.ChunkId{start, a},
	}
	g.Chunks[a] = &graph.Chunk{ID: a, TotalLength: 1, End: graph.EndRounds, FalseChunks: []graph.ChunkId{a}}
	g.Chunks[b] = &graph.Chunk{ID: b, TotalLength: 1, End: graph.EndRounds, FalseChunks: []graph.ChunkId{b}}
	g.Starts = []graph.StartRef{{ID: start, StartIdx: 0}}
	g.Ends = []graph.EndRef{{ID: a, Kind: graph.EndRounds}, {ID: b, Kind: graph.EndRounds}}

	s := NewSearcher(g, Config{MinLength: 0, MaxLength: 10, NumComps: 10, QueueLimit: 10, GroupSize: 1})

	var reached []graph.ChunkId
	n := s.Run(nil, func(p *CompPrefix) { reached = append(reached, p.Node) })

	require.Equal(t, 1, n, "a is already false against start, so only b should complete")
	assert.Equal(t, b, reached[0])
}

func TestMethodCountFeasibilityPrunes(t *testing.T) {
	g := graph.NewGraph(1)
	start := chunkID(0, true)
	over := chunkID(1, false)

	g.Chunks[start] = &graph.Chunk{
		ID: start, TotalLength: 1, MethodCounts: []int{0},
		Successors:  []graph.Link{{LinkIdx: 0, Target: over, CallIdx: -1}},
		FalseChunks: []graph.ChunkId{start},
	}
	g.Chunks[over] = &graph.Chunk{
		ID: over, TotalLength: 1, MethodCounts: []int{5}, End: graph.EndRounds,
		FalseChunks: []graph.ChunkId{over},
	}
	g.Starts = []graph.StartRef{{ID: start, StartIdx: 0}}
	g.Ends = []graph.EndRef{{ID: over, Kind: graph.EndRounds}}

	s := NewSearcher(g, Config{MinLength: 0, MaxLength: 10, NumComps: 10, QueueLimit: 10, GroupSize: 1, MethodMax: []int{2}})

	n := s.Run(nil, func(*CompPrefix) {})
	assert.Equal(t, 0, n, "method 0's count would reach 5, over its max of 2")
}
