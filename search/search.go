package search

import (
	"container/heap"
	"sync/atomic"

	"github.com/bits-and-blooms/bitset"

	"github.com/monument-ringing/monument/graph"
	"github.com/monument-ringing/monument/partgroup"
)

// Config bounds one Searcher's run. It is deliberately expressed in plain
// values rather than a *query.Query: search has no business knowing about
// methods, calls or music — only the length/rotation/method-count
// arithmetic spec.md §4.4's Step performs.
type Config struct {
	MinLength, MaxLength int
	NumComps             int
	QueueLimit           int
	AllowFalse           bool
	// GroupSize is |G|; a terminal chunk only completes a composition when
	// the path's accumulated rotation is 0 mod GroupSize (spec.md §3 "a
	// composition is round iff the accumulated rotation equals identity").
	GroupSize int
	// MethodMax is nil when no method carries a max count, disabling
	// per-method tracking entirely; otherwise it has one entry per method,
	// -1 meaning that method has no max.
	MethodMax []int
}

// Searcher runs the best-first prefix search of spec.md §4.4 over one
// (optimised, immutable) graph. A Searcher holds no exported mutable
// state once built: NewSearcher precomputes everything Step needs
// (per-chunk false bitmasks) so Run can be called from a worker goroutine
// that owns its Searcher exclusively, per spec.md §5's thread-local
// frontier model.
type Searcher struct {
	g         *graph.Graph
	ix        *Index
	falseBits map[graph.ChunkId]*bitset.BitSet
	cfg       Config
}

// NewSearcher builds a Searcher over g. g must not be mutated afterwards.
func NewSearcher(g *graph.Graph, cfg Config) *Searcher {
	ix := NewIndex(g)
	falseBits := make(map[graph.ChunkId]*bitset.BitSet, len(g.Chunks))
	for id, c := range g.Chunks {
		falseBits[id] = ix.Mask(c.FalseChunks)
	}
	return &Searcher{g: g, ix: ix, falseBits: falseBits, cfg: cfg}
}

// Seed returns one CompPrefix per graph.Graph.Starts entry.
func (s *Searcher) Seed() []*CompPrefix {
	out := make([]*CompPrefix, 0, len(s.g.Starts))
	for _, st := range s.g.Starts {
		chunk := s.g.Chunks[st.ID]
		prefix := &CompPrefix{
			Path:        StartPath(st.StartIdx),
			Node:        st.ID,
			Unreachable: s.falseBits[st.ID].Clone(),
			Score:       chunkScore(chunk),
			Length:      chunk.TotalLength,
			Rotation:    st.Rotation,
		}
		if s.cfg.MethodMax != nil {
			prefix.MethodCounts = append([]int(nil), chunk.MethodCounts...)
		}
		out = append(out, prefix)
	}
	return out
}

// Progress reports one pop/step iteration's frontier state — spec.md §6's
// update stream before it gains the composition counters only the
// orchestrator's collector tracks (num_comps, avg/max length).
type Progress struct {
	IterCount       int
	QueueLen        int
	TruncatingQueue bool
}

// Run drives the search to completion, per spec.md §4.4/§4.6: up to
// cfg.NumComps compositions, frontier exhaustion, or abort being observed
// between pops. emit is called once per completed composition, in this
// worker's own discovery order (spec.md §5 "Ordering guarantees"). Run
// returns the number of compositions emitted.
func (s *Searcher) Run(abort *atomic.Bool, emit func(*CompPrefix)) int {
	return s.RunWithProgress(abort, emit, nil)
}

// RunWithProgress is Run, additionally invoking progress once per iteration
// (pop+step) when non-nil — the hook package orchestrator uses to emit
// periodic Progress updates without the hot loop itself knowing about
// channels or collectors.
func (s *Searcher) RunWithProgress(abort *atomic.Bool, emit func(*CompPrefix), progress func(Progress)) int {
	fr := &frontier{}
	heap.Init(fr)
	var seq uint64
	for _, p := range s.Seed() {
		heap.Push(fr, &frontierItem{prefix: p, seq: seq})
		seq++
	}

	emitted := 0
	iter := 0
	for fr.Len() > 0 && emitted < s.cfg.NumComps {
		if abort != nil && abort.Load() {
			break
		}
		iter++
		item := heap.Pop(fr).(*frontierItem)
		s.step(item.prefix,
			func(p *CompPrefix) {
				emit(p)
				emitted++
			},
			func(p *CompPrefix) {
				heap.Push(fr, &frontierItem{prefix: p, seq: seq})
				seq++
			},
		)
		truncating := false
		if s.cfg.QueueLimit > 0 && fr.Len() > s.cfg.QueueLimit {
			truncate(fr, s.cfg.QueueLimit/2)
			heap.Init(fr)
			truncating = true
		}
		if progress != nil {
			progress(Progress{IterCount: iter, QueueLen: fr.Len(), TruncatingQueue: truncating})
		}
	}
	return emitted
}

// step implements spec.md §4.4's Step: emit if prefix is already a valid
// complete composition, otherwise expand every surviving successor link
// into a new prefix pushed via push.
func (s *Searcher) step(prefix *CompPrefix, emit, push func(*CompPrefix)) {
	chunk, ok := s.g.Chunks[prefix.Node]
	if !ok {
		return
	}

	if chunk.End != graph.EndNone &&
		prefix.Length >= s.cfg.MinLength && prefix.Length <= s.cfg.MaxLength &&
		isIdentity(prefix.Rotation, s.cfg.GroupSize) {
		emit(prefix)
		return
	}

	for _, link := range chunk.Successors {
		if !s.cfg.AllowFalse {
			if bit, ok := s.ix.Bit(link.Target); ok && prefix.Unreachable.Test(bit) {
				continue
			}
		}
		target, ok := s.g.Chunks[link.Target]
		if !ok {
			continue
		}

		newLength := prefix.Length + target.TotalLength
		if newLength > s.cfg.MaxLength {
			continue
		}

		var newCounts []int
		if s.cfg.MethodMax != nil {
			newCounts = addCounts(prefix.MethodCounts, target.MethodCounts)
			if exceedsMax(newCounts, s.cfg.MethodMax) {
				continue
			}
		}

		newUnreachable := prefix.Unreachable.Clone()
		if fb, ok := s.falseBits[link.Target]; ok {
			newUnreachable.InPlaceUnion(fb)
		}

		push(&CompPrefix{
			Path:         prefix.Path.Cons(link.LinkIdx),
			Node:         link.Target,
			Unreachable:  newUnreachable,
			Score:        prefix.Score + chunkScore(target) + float32(link.Weight),
			Length:       newLength,
			Rotation:     addRotation(prefix.Rotation, link.Rotation, s.cfg.GroupSize),
			MethodCounts: newCounts,
		})
	}
}

func chunkScore(c *graph.Chunk) float32 {
	total := c.CourseHeadBonus
	for _, m := range c.Music {
		total += m.Score
	}
	return total
}

func addCounts(a, b []int) []int {
	out := make([]int, len(b))
	copy(out, a)
	for i, v := range b {
		out[i] += v
	}
	return out
}

func exceedsMax(counts, max []int) bool {
	for i, v := range counts {
		if i < len(max) && max[i] >= 0 && v > max[i] {
			return true
		}
	}
	return false
}

func addRotation(a, b partgroup.Rotation, groupSize int) partgroup.Rotation {
	n := partgroup.Rotation(groupSize)
	r := (a + b) % n
	if r < 0 {
		r += n
	}
	return r
}

func isIdentity(r partgroup.Rotation, groupSize int) bool {
	n := partgroup.Rotation(groupSize)
	if n <= 0 {
		return true
	}
	m := r % n
	return m == 0
}
