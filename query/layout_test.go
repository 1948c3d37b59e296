package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/monument-ringing/monument/bells"
	"github.com/monument-ringing/monument/graph"
	"github.com/monument-ringing/monument/partgroup"
	"github.com/monument-ringing/monument/query"
)

// trivialQuery builds a single-method, single-part, stage-4 query whose
// method ("x,12") is a genuine two-lead course: Lead[0] == rounds,
// Lead[1] == {1,0,3,2}, and the lead end carries it back to rounds after the
// second lead, enough to exercise Layout without needing real method place
// notation.
func trivialQuery(t *testing.T) *query.Query {
	t.Helper()
	stage := bells.Stage(4)
	return &query.Query{
		Stage:       stage,
		StartRow:    bells.Rounds(stage),
		EndRow:      bells.Rounds(stage),
		PartHead:    bells.Rounds(stage),
		Methods:     []query.MethodSpec{{Title: "Trivial", Shorthand: "T", PlaceNotation: "x,12"}},
		LengthRange: query.LengthRange{Min: 0, Max: 100},
		NumComps:    1,
	}
}

func TestNewLayoutMemoisesCourseLength(t *testing.T) {
	resolved, err := query.Resolve(trivialQuery(t))
	require.NoError(t, err)

	layout, err := query.NewLayout(resolved)
	require.NoError(t, err)
	assert.Equal(t, 2, layout.CourseLength(0), "rounds recurs after the second lead of x,12")
}

func TestLayoutStartsAndExpandWireASingleLeadSuccessor(t *testing.T) {
	resolved, err := query.Resolve(trivialQuery(t))
	require.NoError(t, err)
	layout, err := query.NewLayout(resolved)
	require.NoError(t, err)

	starts := layout.Starts()
	require.Len(t, starts, 1)
	start := starts[0]
	assert.Equal(t, partgroup.Rotation(0), start.Rotation, "a trivial part head canonicalises to rotation 0")
	assert.True(t, start.ID.IsStart)
	assert.Equal(t, 0, start.ID.Method)
	assert.Equal(t, 0, start.ID.SubLead)

	row, ok := layout.Row(start.ID.CourseHead)
	require.True(t, ok)
	assert.True(t, row.IsRounds(), "the start chunk's course head is rounds when StartRow == the method's row 0")

	ex, err := layout.Expand(start.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, ex.PerPartLength, "the method's full 2-row lead, starting from sub-lead 0")
	assert.Equal(t, []int{2}, ex.MethodCounts)
	assert.Nil(t, ex.FalseChunks, "a two-distinct-row lead against a single method is never self-false")

	require.Len(t, ex.Successors, 1, "the plain lead-end continuation, since it doesn't land on EndRow yet")
	succ := ex.Successors[0]
	assert.Equal(t, -1, succ.CallIdx)
	assert.Equal(t, 0, succ.Target.Method)

	nextRow, ok := layout.Row(succ.Target.CourseHead)
	require.True(t, ok)
	assert.True(t, nextRow.Equal(bells.Row{1, 0, 2, 3}), "the course head after one full lead is rounds carried by the method's lead end")
}

func TestLayoutExpandTerminatesAtZeroLengthEnd(t *testing.T) {
	resolved, err := query.Resolve(trivialQuery(t))
	require.NoError(t, err)
	layout, err := query.NewLayout(resolved)
	require.NoError(t, err)

	ex, err := layout.Expand(graph.ChunkId{Kind: graph.KindZeroLengthEnd}, 4)
	require.NoError(t, err)
	assert.Equal(t, graph.EndZeroLength, ex.End)
	assert.True(t, ex.Duffer)
}
