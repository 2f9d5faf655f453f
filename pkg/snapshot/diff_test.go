package snapshot

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiffReportsChangedEdges(t *testing.T) {
	before := sampleSnapshot()
	after := sampleSnapshot()
	after.Nodes[0].Edges[0].Visits = 3
	after.Nodes[0].Edges[0].ValueSum = 6
	after.Nodes[0].Edges[0].Q = 2

	diffs, err := Diff(before, after)
	require.NoError(t, err)
	require.Len(t, diffs, 1)
	require.Equal(t, EdgeDiff{
		NodeID:       0,
		ActionID:     0,
		VisitsBefore: 1,
		VisitsAfter:  3,
		ValueBefore:  2,
		ValueAfter:   6,
	}, diffs[0])
}

func TestDiffEmptyWhenUnchanged(t *testing.T) {
	s := sampleSnapshot()
	diffs, err := Diff(s, s)
	require.NoError(t, err)
	require.Empty(t, diffs)
}

func TestDiffRejectsShapeMismatch(t *testing.T) {
	before := sampleSnapshot()
	after := sampleSnapshot()
	after.Nodes = after.Nodes[:1]

	_, err := Diff(before, after)
	require.Error(t, err)
}
