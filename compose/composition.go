package compose

import (
	"errors"
	"fmt"

	"github.com/monument-ringing/monument/bells"
	"github.com/monument-ringing/monument/graph"
	"github.com/monument-ringing/monument/search"
)

// ErrBadPath is returned when a search.CompPath references a start index,
// link index, or chunk id that no longer exists in the graph it is being
// reconstructed against — a programming error (a path from one graph
// handed to Reconstruct against another), never a user-facing condition.
var ErrBadPath = errors.New("compose: path does not match graph")

// RowResolver recovers the concrete Row a ChunkId.CourseHead key was
// canonicalised from. *query.Layout implements this; Reconstruct only
// needs the one method, not the rest of Layout's surface.
type RowResolver interface {
	Row(key bells.RowKey) (bells.Row, bool)
}

// PathElem is one method/call segment of a reconstructed composition —
// spec.md §6's PathElem record.
type PathElem struct {
	StartRow        bells.Row
	Method          int
	StartSubLeadIdx int
	PerPartLength   int
	// Call is the CallIdx rung to reach this element from the previous
	// one, or -1 for a plain continuation.
	Call int
}

// Composition is a fully reconstructed, scored composition — spec.md §6's
// Composition record.
type Composition struct {
	Path         []PathElem
	PartHead     bells.Row
	Length       int
	MethodCounts []int
	MusicCounts  [][]int
	TotalScore   float32
	AverageScore float32
}

// Reconstruct replays path against g, resolving each visited chunk's
// course head via resolver and its method via methods[chunk.ID.Method],
// into a Composition. score is the total score search.CompPrefix.Score
// accumulated along path (Reconstruct does not recompute it, since the
// search's own Chunk-by-Chunk accumulation already is the source of
// truth).
func Reconstruct(g *graph.Graph, resolver RowResolver, methods []*bells.Method, path *search.CompPath, partHead bells.Row, score float32) (*Composition, error) {
	startIdx, linkIdxs := path.Flatten()
	if startIdx < 0 || startIdx >= len(g.Starts) {
		return nil, fmt.Errorf("%w: start index %d", ErrBadPath, startIdx)
	}

	curID := g.Starts[startIdx].ID
	curChunk, ok := g.Chunks[curID]
	if !ok {
		return nil, fmt.Errorf("%w: start chunk %v missing", ErrBadPath, curID)
	}

	comp := &Composition{PartHead: partHead}
	if elem, ok := elemOf(curID, curChunk, -1, resolver, methods); ok {
		comp.Path = append(comp.Path, elem)
	}
	comp.MethodCounts = append([]int(nil), curChunk.MethodCounts...)
	comp.MusicCounts = cloneMusicCounts(curChunk.Music)
	comp.Length = curChunk.TotalLength

	for _, li := range linkIdxs {
		link, ok := findLink(curChunk, li)
		if !ok {
			return nil, fmt.Errorf("%w: link index %d not found on chunk %v", ErrBadPath, li, curID)
		}
		nextChunk, ok := g.Chunks[link.Target]
		if !ok {
			return nil, fmt.Errorf("%w: dangling link target %v", ErrBadPath, link.Target)
		}

		if elem, ok := elemOf(link.Target, nextChunk, link.CallIdx, resolver, methods); ok {
			comp.Path = append(comp.Path, elem)
		}
		comp.MethodCounts = addInts(comp.MethodCounts, nextChunk.MethodCounts)
		comp.MusicCounts = addMusicCounts(comp.MusicCounts, nextChunk.Music)
		comp.Length += nextChunk.TotalLength

		curID, curChunk = link.Target, nextChunk
	}

	comp.TotalScore = score
	if comp.Length > 0 {
		comp.AverageScore = score / float32(comp.Length)
	}
	return comp, nil
}

// elemOf builds id's PathElem, reporting ok=false for the ZeroLengthEnd
// sentinel (it contributes no rows and has no course head to resolve).
func elemOf(id graph.ChunkId, chunk *graph.Chunk, callIdx int, resolver RowResolver, methods []*bells.Method) (PathElem, bool) {
	if id.Kind == graph.KindZeroLengthEnd {
		return PathElem{}, false
	}
	courseHead, ok := resolver.Row(id.CourseHead)
	if !ok {
		return PathElem{}, false
	}
	method := methods[id.Method]
	startRow := courseHead.MustMul(method.RowAt(id.SubLead))
	return PathElem{
		StartRow:        startRow,
		Method:          id.Method,
		StartSubLeadIdx: id.SubLead,
		PerPartLength:   chunk.PerPartLength,
		Call:            callIdx,
	}, true
}

func findLink(chunk *graph.Chunk, linkIdx int) (graph.Link, bool) {
	for _, l := range chunk.Successors {
		if l.LinkIdx == linkIdx {
			return l, true
		}
	}
	return graph.Link{}, false
}

func addInts(a, b []int) []int {
	out := make([]int, len(b))
	copy(out, a)
	for i, v := range b {
		out[i] += v
	}
	return out
}

func cloneMusicCounts(m []graph.MusicContribution) [][]int {
	out := make([][]int, len(m))
	for i, c := range m {
		out[i] = append([]int(nil), c.Counts...)
	}
	return out
}

func addMusicCounts(totals [][]int, m []graph.MusicContribution) [][]int {
	out := make([][]int, len(m))
	for i, c := range m {
		var prev []int
		if i < len(totals) {
			prev = totals[i]
		}
		merged := make([]int, len(c.Counts))
		copy(merged, prev)
		for j, v := range c.Counts {
			merged[j] += v
		}
		out[i] = merged
	}
	return out
}
