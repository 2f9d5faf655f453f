package snapshot

import "github.com/weavetree/weavetree/pkg/mcts"

// FromTree walks tree in ascending node_id order and builds its
// Snapshot. Built on Tree.Nodes(), which already returns an
// isolated, read-only copy — FromTree does no further defensive
// copying beyond the JSON-tag reshaping.
func FromTree(tree *mcts.Tree) Snapshot {
	nodes := tree.Nodes()
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		var parentNode, parentAction *int
		if n.HasParent {
			pn := n.ParentNode.Int()
			pa := n.ParentAction.Int()
			parentNode = &pn
			parentAction = &pa
		}

		edges := make([]Edge, len(n.Edges))
		for j, e := range n.Edges {
			outcomes := make([]Outcome, len(e.Outcomes))
			for k, o := range e.Outcomes {
				outcomes[k] = Outcome{
					NextStateKey: o.NextState.Uint64(),
					ChildNodeID:  o.Child.Int(),
					Count:        o.Count,
				}
			}
			edges[j] = Edge{
				ActionID: e.Action.Int(),
				Visits:   e.Visits,
				ValueSum: e.ValueSum,
				Q:        e.Q(),
				Outcomes: outcomes,
			}
		}

		out[i] = Node{
			NodeID:         n.ID.Int(),
			StateKey:       n.StateKey.Uint64(),
			Depth:          n.Depth,
			IsTerminal:     n.Terminal,
			ParentNodeID:   parentNode,
			ParentActionID: parentAction,
			Edges:          edges,
		}
	}

	return Snapshot{
		SchemaVersion: 1,
		RootNodeID:    tree.RootID().Int(),
		NodeCount:     tree.NodeCount(),
		Nodes:         out,
	}
}
