package snapshot

import "fmt"

// EdgeDiff reports a single (node_id, action_id) edge whose visits or
// value_sum differ between two snapshots.
type EdgeDiff struct {
	NodeID       int
	ActionID     int
	VisitsBefore uint64
	VisitsAfter  uint64
	ValueBefore  float64
	ValueAfter   float64
}

// Diff compares two snapshots of architecturally identical trees —
// typically the same tree snapshotted before and after further
// iterations — and reports every edge whose visits or value_sum
// changed. It is not a general tree-alignment diff: if after has fewer
// nodes than before, or a node at the same position has a different
// node_id or edge count, an error is returned rather than aligning the
// trees heuristically. Nodes that exist only in after are ignored, and
// edges are matched by position without comparing their action_id.
func Diff(before, after Snapshot) ([]EdgeDiff, error) {
	if len(after.Nodes) < len(before.Nodes) {
		return nil, fmt.Errorf("snapshot: after has fewer nodes (%d) than before (%d); not a resumed run of before", len(after.Nodes), len(before.Nodes))
	}

	var diffs []EdgeDiff
	for i, b := range before.Nodes {
		a := after.Nodes[i]
		if a.NodeID != b.NodeID {
			return nil, fmt.Errorf("snapshot: node index %d has id %d before, %d after; trees are not the same shape", i, b.NodeID, a.NodeID)
		}
		if len(a.Edges) != len(b.Edges) {
			return nil, fmt.Errorf("snapshot: node %d has %d edges before, %d after; trees are not the same shape", b.NodeID, len(b.Edges), len(a.Edges))
		}
		for j, be := range b.Edges {
			ae := a.Edges[j]
			if be.Visits == ae.Visits && be.ValueSum == ae.ValueSum {
				continue
			}
			diffs = append(diffs, EdgeDiff{
				NodeID:       b.NodeID,
				ActionID:     be.ActionID,
				VisitsBefore: be.Visits,
				VisitsAfter:  ae.Visits,
				ValueBefore:  be.ValueSum,
				ValueAfter:   ae.ValueSum,
			})
		}
	}
	return diffs, nil
}
