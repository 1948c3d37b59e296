package query

import (
	"fmt"

	"github.com/monument-ringing/monument/bells"
	"github.com/monument-ringing/monument/falseness"
	"github.com/monument-ringing/monument/graph"
	"github.com/monument-ringing/monument/music"
	"github.com/monument-ringing/monument/partgroup"
)

// Layout is the graph.Layout implementation that turns a Resolved query
// into the chunks/links the Dijkstra expansion in package graph walks. It
// is the glue spec.md §1 calls an "external collaborator" home for: row
// algebra (package bells), music scoring (package music) and falseness
// (package falseness) all meet here.
//
// Monument's chunk granularity is one full method lead: every internal
// (non-start) chunk begins at sub-lead index 0 and runs to the next lead
// boundary, where a plain continuation, a method splice, or a call departs
// it. Only a composition's opening chunk may begin mid-lead (a snap start,
// spec.md's glossary), and falseness — computed once per method over a
// whole lead (package falseness) — is only wired for whole-lead chunks;
// a snap-start opening chunk is exempt (see DESIGN.md).
type Layout struct {
	resolved      *Resolved
	table         *falseness.Table
	rows          map[bells.RowKey]bells.Row
	courseCache   *bells.CourseCache
	courseLengths []int // leads per method's plain course, indexed like resolved.Methods
}

// NewLayout builds the falseness table for resolved's methods and returns a
// ready-to-use Layout. It also walks each method's plain course once,
// through a shared CourseCache, both to reject a method whose lead-end
// never returns to rounds (bells.ErrNoRoundsRecurrence) before the graph
// builder ever touches it, and to memoise the course length CourseLength
// reports — spliced queries frequently name the same place notation under
// two shorthands, and the cache serves the second lookup for free.
func NewLayout(resolved *Resolved) (*Layout, error) {
	methods := make([]*bells.Method, len(resolved.Methods))
	for i, m := range resolved.Methods {
		methods[i] = m.Method
	}
	table, err := falseness.Build(methods, resolved.Query.PartHead)
	if err != nil {
		return nil, err
	}

	cache := bells.NewCourseCache()
	courseLengths := make([]int, len(resolved.Methods))
	for i, rm := range resolved.Methods {
		heads, err := cache.PlainCourse(rm.Method)
		if err != nil {
			return nil, fmt.Errorf("query: method %q: %w", rm.Spec.Title, err)
		}
		courseLengths[i] = len(heads)
	}

	l := &Layout{
		resolved:      resolved,
		table:         table,
		rows:          make(map[bells.RowKey]bells.Row),
		courseCache:   cache,
		courseLengths: courseLengths,
	}
	return l, nil
}

// CourseLength returns the number of leads in the mi'th resolved method's
// plain course, as memoised by NewLayout.
func (l *Layout) CourseLength(mi int) int {
	return l.courseLengths[mi]
}

// Row returns the Row a ChunkId.CourseHead key was interned from, letting
// package compose turn a chunk id back into a concrete row without
// re-deriving it from the graph.
func (l *Layout) Row(key bells.RowKey) (bells.Row, bool) {
	r, ok := l.rows[key]
	return r, ok
}

// intern canonicalises row under the part-head group and remembers the
// canonical Row under its own key, so a later Expand can recover the
// concrete Row from a bare ChunkId.CourseHead.
func (l *Layout) intern(row bells.Row) (bells.Row, partgroup.Rotation) {
	canonical, rotation := l.resolved.Group.Canonicalize(row)
	if _, ok := l.rows[canonical.Key()]; !ok {
		l.rows[canonical.Key()] = canonical
	}
	return canonical, rotation
}

// Starts implements graph.Layout.
func (l *Layout) Starts() []graph.StartSeed {
	q := l.resolved.Query
	var seeds []graph.StartSeed
	for mi, rm := range l.resolved.Methods {
		indices := rm.Spec.StartIndices
		if len(indices) == 0 {
			indices = []int{0}
		}
		for _, s := range indices {
			// The course head that makes this method's row at sub-lead s
			// equal the query's start row.
			courseHead := q.StartRow.MustMul(rm.Method.RowAt(s).Inverse())
			canonical, rotation := l.intern(courseHead)
			id := graph.ChunkId{
				Kind:       graph.KindStandard,
				CourseHead: canonical.Key(),
				Method:     mi,
				SubLead:    s,
				IsStart:    true,
			}
			seeds = append(seeds, graph.StartSeed{ID: id, Rotation: rotation})
		}
	}
	return seeds
}

// Expand implements graph.Layout.
func (l *Layout) Expand(id graph.ChunkId, distanceFromStart int) (graph.ExpandedChunk, error) {
	if id.Kind == graph.KindZeroLengthEnd {
		return graph.ExpandedChunk{
			MethodCounts: make([]int, len(l.resolved.Methods)),
			Music:        make([]graph.MusicContribution, len(l.resolved.Query.MusicTypes)),
			Duffer:       true,
			End:          graph.EndZeroLength,
		}, nil
	}

	courseHead, ok := l.rows[id.CourseHead]
	if !ok {
		return graph.ExpandedChunk{}, fmt.Errorf("query: layout: unknown course head for %v", id)
	}

	q := l.resolved.Query
	rm := l.resolved.Methods[id.Method]
	method := rm.Method
	leadLen := method.LeadLen()
	perPartLength := leadLen - id.SubLead

	ex := graph.ExpandedChunk{
		PerPartLength:      perPartLength,
		MethodCounts:       make([]int, len(l.resolved.Methods)),
		StartsAtHandstroke: bells.StrokeAt(q.StartStroke, distanceFromStart) == bells.Hand,
	}
	ex.MethodCounts[id.Method] = perPartLength

	l.scoreParts(&ex, id, courseHead, method, perPartLength, distanceFromStart)

	if id.SubLead == 0 {
		false_, err := l.falseChunks(id, courseHead)
		if err != nil {
			return graph.ExpandedChunk{}, err
		}
		ex.FalseChunks = false_
	}

	ex.Successors = l.successors(id, courseHead, method)
	return ex, nil
}

func (l *Layout) scoreParts(ex *graph.ExpandedChunk, id graph.ChunkId, courseHead bells.Row, method *bells.Method, perPartLength int, distanceFromStart int) {
	q := l.resolved.Query
	group := l.resolved.Group
	types := make([]music.Type, len(q.MusicTypes))
	for i, mt := range q.MusicTypes {
		types[i] = mt.Type
	}

	total := make([]music.Contribution, len(types))
	var courseHeadBonus float32
	for p := 0; p < group.Size(); p++ {
		partCourseHead := group.Row(partgroup.Rotation(p)).MustMul(courseHead)
		rows := make([]bells.Row, perPartLength)
		for i := 0; i < perPartLength; i++ {
			rows[i] = partCourseHead.MustMul(method.RowAt(id.SubLead + i))
		}
		startStroke := bells.StrokeAt(q.StartStroke, distanceFromStart+p*perPartLength)
		contribs := music.ScoreRows(types, rows, startStroke)
		for ti, c := range contribs {
			total[ti].Score += c.Score
			total[ti].StrokeSpecific = c.StrokeSpecific
			if total[ti].Counts == nil {
				total[ti].Counts = make([]int, len(c.Counts))
			}
			for ci, cnt := range c.Counts {
				total[ti].Counts[ci] += cnt
			}
		}
		for _, chw := range q.CourseHeadWeights {
			for _, row := range rows {
				if chw.Pattern.Match(row) {
					courseHeadBonus += chw.Weight
				}
			}
		}
	}

	ex.Music = make([]graph.MusicContribution, len(total))
	duffer := true
	for ti, c := range total {
		ex.Music[ti] = graph.MusicContribution{Score: c.Score, Counts: c.Counts, StrokeSpecific: c.StrokeSpecific}
		if q.MusicTypes[ti].NonDuffer {
			for _, cnt := range c.Counts {
				if cnt > 0 {
					duffer = false
				}
			}
		}
	}
	ex.Duffer = duffer
	ex.CourseHeadBonus = courseHeadBonus
}

// falseChunks computes id's candidate false-chunk ids from the falseness
// table (spec.md §4.2 "Falseness wiring"). It returns graph.ErrSkipChunk
// when id is false against itself, either within one part or, via a
// non-trivial rotation, against itself in another part.
func (l *Layout) falseChunks(id graph.ChunkId, courseHead bells.Row) ([]graph.ChunkId, error) {
	entry := l.table.Lookup(falseness.RowRange{Method: id.Method})
	if entry.SelfFalse {
		return nil, graph.ErrSkipChunk
	}

	var out []graph.ChunkId
	for _, link := range entry.Links {
		candidate := courseHead.MustMul(link.T)
		canonical, rotation := l.resolved.Group.Canonicalize(candidate)
		if link.Range.Method == id.Method && canonical.Equal(courseHead) {
			if rotation != 0 {
				return nil, graph.ErrSkipChunk
			}
			continue
		}
		canonical, _ = l.intern(candidate)
		for _, isStart := range [2]bool{true, false} {
			out = append(out, graph.ChunkId{
				Kind:       graph.KindStandard,
				CourseHead: canonical.Key(),
				Method:     link.Range.Method,
				SubLead:    0,
				IsStart:    isStart,
			})
		}
	}
	return out, nil
}

// successors builds every outgoing link from id: one per (possible method
// splice) for the plain lead-end continuation, plus one per call applied in
// place of the lead end (calls are not combined with a splice — see
// DESIGN.md). A continuation landing exactly on the query's end row always
// terminates at the graph.KindZeroLengthEnd sentinel rather than continuing.
func (l *Layout) successors(id graph.ChunkId, courseHead bells.Row, method *bells.Method) []graph.SuccessorSeed {
	q := l.resolved.Query
	var out []graph.SuccessorSeed

	plainTarget := courseHead.MustMul(method.LeadEnd)
	if plainTarget.Equal(q.EndRow) {
		out = append(out, graph.SuccessorSeed{Target: graph.ChunkId{Kind: graph.KindZeroLengthEnd}, CallIdx: -1})
	} else {
		for mj, target := range l.resolved.Methods {
			if !l.courseMaskAllows(target, plainTarget) {
				continue
			}
			canonical, rotation := l.intern(plainTarget)
			weight := float32(0)
			if mj != id.Method {
				weight = q.SpliceWeight
			}
			out = append(out, graph.SuccessorSeed{
				Target:   graph.ChunkId{Kind: graph.KindStandard, CourseHead: canonical.Key(), Method: mj, SubLead: 0},
				Rotation: rotation,
				CallIdx:  -1,
				Weight:   weight,
			})
		}
	}

	for ci, rc := range l.resolved.Calls {
		if rc.Spec.LabelFrom != "LE" || rc.Spec.LabelTo != "LE" {
			continue
		}
		callTarget := courseHead.MustMul(rc.Call.Transposition)
		if callTarget.Equal(q.EndRow) {
			out = append(out, graph.SuccessorSeed{Target: graph.ChunkId{Kind: graph.KindZeroLengthEnd}, CallIdx: ci, Weight: rc.Call.Weight})
			continue
		}
		if !l.courseMaskAllows(l.resolved.Methods[id.Method], callTarget) {
			continue
		}
		canonical, rotation := l.intern(callTarget)
		out = append(out, graph.SuccessorSeed{
			Target:   graph.ChunkId{Kind: graph.KindStandard, CourseHead: canonical.Key(), Method: id.Method, SubLead: 0},
			Rotation: rotation,
			CallIdx:  ci,
			Weight:   rc.Call.Weight,
		})
	}
	return out
}

func (l *Layout) courseMaskAllows(rm ResolvedMethod, row bells.Row) bool {
	if len(rm.Spec.CourseMasks) == 0 {
		return true
	}
	for _, p := range rm.Spec.CourseMasks {
		if p.Match(row) {
			return true
		}
	}
	return false
}
