package search

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/monument-ringing/monument/graph"
)

// Index assigns every chunk in a graph a dense bit position, so a
// CompPrefix's unreachable set can be a bits-and-blooms/bitset.BitSet
// rather than a map keyed by the much larger ChunkId.
type Index struct {
	pos map[graph.ChunkId]uint
}

// NewIndex builds an Index over every chunk currently in g. Built once per
// (sub-)graph before search starts; the graph is immutable from that point
// on (spec.md §5), so the index never needs to grow.
func NewIndex(g *graph.Graph) *Index {
	pos := make(map[graph.ChunkId]uint, len(g.Chunks))
	var i uint
	for id := range g.Chunks {
		pos[id] = i
		i++
	}
	return &Index{pos: pos}
}

// Len is the bit-vector length every mask built from this Index must have.
func (ix *Index) Len() uint { return uint(len(ix.pos)) }

// Bit returns id's bit position, or ok=false if id is not in this Index's
// graph (a dangling reference; the caller should treat it as unreachable
// and never set, per spec.md §3 invariant 1).
func (ix *Index) Bit(id graph.ChunkId) (pos uint, ok bool) {
	pos, ok = ix.pos[id]
	return
}

// Mask returns a fresh bitset with exactly the bits for ids set.
func (ix *Index) Mask(ids []graph.ChunkId) *bitset.BitSet {
	b := bitset.New(ix.Len())
	for _, id := range ids {
		if pos, ok := ix.pos[id]; ok {
			b.Set(pos)
		}
	}
	return b
}
