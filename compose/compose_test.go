package compose_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monument-ringing/monument/bells"
	"github.com/monument-ringing/monument/compose"
	"github.com/monument-ringing/monument/graph"
	"github.com/monument-ringing/monument/partgroup"
	"github.com/monument-ringing/monument/search"
)

// fakeResolver is a bare RowResolver: a lookup table from RowKey to Row,
// standing in for query.Layout's interned course heads.
type fakeResolver map[bells.RowKey]bells.Row

func (f fakeResolver) Row(key bells.RowKey) (bells.Row, bool) {
	r, ok := f[key]
	return r, ok
}

// testMethod is a two-row stage-4 method whose lead end is rounds, so its
// plain course is a single lead — enough to exercise BuildRows'
// course-head/RowAt math without needing real place notation.
func testMethod() *bells.Method {
	lead := []bells.Row{bells.Rounds(4), {1, 0, 3, 2}}
	return &bells.Method{Name: "Test", Shorthand: "T", Stage: 4, Lead: lead, LeadEnd: bells.Rounds(4)}
}

func buildReconstructGraph(t *testing.T) (*graph.Graph, fakeResolver, bells.Row) {
	t.Helper()

	courseA := bells.Rounds(4)
	courseB := bells.Row{2, 3, 0, 1}

	start := graph.ChunkId{Kind: graph.KindStandard, CourseHead: "A", Method: 0, SubLead: 0, IsStart: true}
	mid := graph.ChunkId{Kind: graph.KindStandard, CourseHead: "B", Method: 0, SubLead: 0}
	end := graph.ChunkId{Kind: graph.KindZeroLengthEnd}

	g := graph.NewGraph(1)
	g.Chunks[start] = &graph.Chunk{
		ID: start, PerPartLength: 2, TotalLength: 2,
		MethodCounts: []int{2},
		Music:        []graph.MusicContribution{{Score: 1, Counts: []int{1}}},
		Successors:   []graph.Link{{LinkIdx: 0, Target: mid, CallIdx: 0}},
	}
	g.Chunks[mid] = &graph.Chunk{
		ID: mid, PerPartLength: 2, TotalLength: 2,
		MethodCounts: []int{2},
		Music:        []graph.MusicContribution{{Score: 2, Counts: []int{2}}},
		Successors:   []graph.Link{{LinkIdx: 0, Target: end, CallIdx: -1}},
	}
	g.Chunks[end] = &graph.Chunk{
		ID: end, End: graph.EndZeroLength,
		MethodCounts: []int{0},
		Music:        []graph.MusicContribution{{Counts: []int{0}}},
	}
	g.Starts = []graph.StartRef{{ID: start, StartIdx: 0}}
	g.Ends = []graph.EndRef{{ID: end, Kind: graph.EndZeroLength}}

	resolver := fakeResolver{"A": courseA, "B": courseB}
	return g, resolver, courseA
}

func TestReconstructHappyPath(t *testing.T) {
	g, resolver, partHead := buildReconstructGraph(t)
	methods := []*bells.Method{testMethod()}

	path := search.StartPath(0).Cons(0).Cons(0)
	comp, err := compose.Reconstruct(g, resolver, methods, path, partHead, 8)
	require.NoError(t, err)

	require.Len(t, comp.Path, 2, "the zero-length-end sentinel contributes no PathElem")
	assert.Equal(t, 0, comp.Path[0].StartSubLeadIdx)
	assert.True(t, comp.Path[0].StartRow.Equal(bells.Rounds(4)))
	assert.Equal(t, -1, comp.Path[0].Call)
	assert.True(t, comp.Path[1].StartRow.Equal(bells.Row{2, 3, 0, 1}))
	assert.Equal(t, 0, comp.Path[1].Call)

	assert.Equal(t, 4, comp.Length)
	assert.Equal(t, []int{4}, comp.MethodCounts)
	require.Len(t, comp.MusicCounts, 1)
	assert.Equal(t, []int{3}, comp.MusicCounts[0])
	assert.InDelta(t, float32(8), comp.TotalScore, 1e-6)
	assert.InDelta(t, float32(2), comp.AverageScore, 1e-6)
}

func TestReconstructRejectsBadStartIndex(t *testing.T) {
	g, resolver, partHead := buildReconstructGraph(t)
	methods := []*bells.Method{testMethod()}

	path := search.StartPath(5)
	_, err := compose.Reconstruct(g, resolver, methods, path, partHead, 0)
	assert.ErrorIs(t, err, compose.ErrBadPath)
}

func TestReconstructRejectsUnknownLinkIndex(t *testing.T) {
	g, resolver, partHead := buildReconstructGraph(t)
	methods := []*bells.Method{testMethod()}

	path := search.StartPath(0).Cons(99)
	_, err := compose.Reconstruct(g, resolver, methods, path, partHead, 0)
	assert.ErrorIs(t, err, compose.ErrBadPath)
}

func TestReconstructRejectsDanglingTarget(t *testing.T) {
	missing := graph.ChunkId{Kind: graph.KindStandard, CourseHead: "ghost", Method: 0, SubLead: 0}
	start := graph.ChunkId{Kind: graph.KindStandard, CourseHead: "A", Method: 0, SubLead: 0, IsStart: true}

	g := graph.NewGraph(1)
	g.Chunks[start] = &graph.Chunk{
		ID: start, MethodCounts: []int{0}, Music: []graph.MusicContribution{{Counts: []int{0}}},
		Successors: []graph.Link{{LinkIdx: 0, Target: missing, CallIdx: -1}},
	}
	g.Starts = []graph.StartRef{{ID: start, StartIdx: 0}}

	resolver := fakeResolver{"A": bells.Rounds(4)}
	methods := []*bells.Method{testMethod()}

	path := search.StartPath(0).Cons(0)
	_, err := compose.Reconstruct(g, resolver, methods, path, bells.Rounds(4), 0)
	assert.ErrorIs(t, err, compose.ErrBadPath)
}

func TestBuildRows(t *testing.T) {
	g, resolver, partHead := buildReconstructGraph(t)
	methods := []*bells.Method{testMethod()}

	path := search.StartPath(0).Cons(0).Cons(0)
	comp, err := compose.Reconstruct(g, resolver, methods, path, partHead, 8)
	require.NoError(t, err)

	rows := compose.BuildRows(methods, comp)
	require.Len(t, rows, 4)
	assert.True(t, rows[0].Equal(bells.Rounds(4)))
	assert.True(t, rows[1].Equal(bells.Row{1, 0, 3, 2}))
	assert.True(t, rows[2].Equal(bells.Row{2, 3, 0, 1}))
	assert.True(t, rows[3].Equal(bells.Row{3, 2, 1, 0}))
}

func TestExtendPartsTwoPartGroup(t *testing.T) {
	// partHead {1,0,3,2} is self-inverse, so it generates a 2-element group.
	group, err := partgroup.NewGroup(bells.Row{1, 0, 3, 2})
	require.NoError(t, err)
	require.Equal(t, 2, group.Size())

	rows := []bells.Row{bells.Rounds(4)}
	out := compose.ExtendParts(rows, group)
	require.Len(t, out, 2)
	assert.True(t, out[0].Equal(bells.Rounds(4)))
	assert.True(t, out[1].Equal(bells.Row{1, 0, 3, 2}))
}

func TestFormatCallStringWithCallingPosition(t *testing.T) {
	comp := &compose.Composition{
		Path: []compose.PathElem{
			{StartRow: bells.Rounds(4), Method: 0, StartSubLeadIdx: 0, PerPartLength: 2, Call: -1},
			{StartRow: bells.Row{2, 3, 0, 1}, Method: 0, StartSubLeadIdx: 0, PerPartLength: 1, Call: 0},
		},
	}
	methods := []compose.MethodDisplay{{Shorthand: "T", LeadLen: 2}}
	calls := []compose.CallDisplay{{Symbol: "B", DebugSymbol: "-", CallingPositions: []string{"W", "H", "M", "I"}}}

	got := compose.FormatCallString(comp, 4, methods, calls, compose.Style{ShowMethodShorthand: true, CallingPositions: true})
	assert.Equal(t, "TBHT>", got, "tenor (bell 3) sits in place 1 of the call row, selecting position H; "+
		"the last element ends mid-lead so a snap-finish marker follows")
}

func TestFormatCallStringSnapStartAndBracketedCall(t *testing.T) {
	comp := &compose.Composition{
		Path: []compose.PathElem{
			{StartRow: bells.Rounds(4), Method: 0, StartSubLeadIdx: 1, PerPartLength: 1, Call: 0},
		},
	}
	methods := []compose.MethodDisplay{{Shorthand: "T", LeadLen: 2}}
	calls := []compose.CallDisplay{{Symbol: "B", DebugSymbol: "-", CallingPositions: []string{"W", "H", "M", "I"}}}

	got := compose.FormatCallString(comp, 4, methods, calls, compose.Style{ShowMethodShorthand: true, CallingPositions: false})
	require.True(t, len(got) > 0)
	assert.Equal(t, byte('<'), got[0], "StartSubLeadIdx != 0 on the first element is a snap start")
	assert.Contains(t, got, "[B]", "CallingPositions off falls back to the bracketed rendering")
}

func TestFormatCallStringEmptyPath(t *testing.T) {
	got := compose.FormatCallString(&compose.Composition{}, 4, nil, nil, compose.Style{})
	assert.Equal(t, "", got)
}
