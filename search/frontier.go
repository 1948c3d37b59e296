package search

import (
	"sort"

	"github.com/bits-and-blooms/bitset"

	"github.com/monument-ringing/monument/graph"
	"github.com/monument-ringing/monument/partgroup"
)

// CompPrefix is one partial composition sitting in the search frontier —
// spec.md §4.4's frontier element.
type CompPrefix struct {
	Path        *CompPath
	Node        graph.ChunkId
	Unreachable *bitset.BitSet
	Score       float32
	Length      int
	Rotation    partgroup.Rotation
	// MethodCounts is nil whenever no method in the query carries a max
	// count — spec.md §4.4 "method_counts (only tracked if any method has
	// a max; otherwise implicit)" — so the common case pays no allocation.
	MethodCounts []int
}

// AvgScore is the frontier's ordering key.
func (p *CompPrefix) AvgScore() float32 {
	if p.Length == 0 {
		return 0
	}
	return p.Score / float32(p.Length)
}

// frontierItem pairs a prefix with an insertion sequence number so ties in
// AvgScore break deterministically (spec.md §4.4 "Order") rather than on
// whatever order container/heap's sift happens to compare equal elements.
type frontierItem struct {
	prefix *CompPrefix
	seq    uint64
}

// frontier is a container/heap.Interface max-heap on AvgScore, the same
// min/max-heap-over-a-slice idiom graph.frontier uses for Dijkstra.
type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	si, sj := f[i].prefix.AvgScore(), f[j].prefix.AvgScore()
	if si != sj {
		return si > sj
	}
	return f[i].seq < f[j].seq
}
func (f frontier) Swap(i, j int)       { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*frontierItem)) }
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

// truncate keeps only the best keep items by AvgScore — spec.md §4.4
// "Queue truncation": discards the rest outright rather than spilling them
// anywhere, since a discarded prefix's only value was occupying a frontier
// slot a better one now needs.
func truncate(f *frontier, keep int) {
	all := []*frontierItem(*f)
	sort.Slice(all, func(i, j int) bool {
		si, sj := all[i].prefix.AvgScore(), all[j].prefix.AvgScore()
		if si != sj {
			return si > sj
		}
		return all[i].seq < all[j].seq
	})
	if keep < len(all) {
		all = all[:keep]
	}
	*f = all
}
