package mcts

import (
	"github.com/weavetree/weavetree/pkg/arena"
	"github.com/weavetree/weavetree/pkg/weaveid"
)

// Tree wraps one search's node arena and exposes the root-level
// queries a caller needs once a run has finished.
type Tree struct {
	arena *arena.Arena
}

// New creates a Tree with a single root node for rootState.
func New(rootState weaveid.StateKey, rootTerminal bool) *Tree {
	return &Tree{arena: arena.New(rootState, rootTerminal)}
}

// NodeCount returns the number of nodes currently in the tree.
func (t *Tree) NodeCount() int { return t.arena.Len() }

// RootID is always NodeID 0.
func (t *Tree) RootID() weaveid.NodeID { return 0 }

// Nodes returns a read-only, ascending-NodeID-order copy of every node
// in the tree, used by the snapshot serialiser.
func (t *Tree) Nodes() []arena.Node { return t.arena.Nodes() }

// Node returns a read-only copy of a single node.
func (t *Tree) Node(id weaveid.NodeID) (arena.Node, error) { return t.arena.Node(id) }

// BestRootActionByVisits returns the root edge with the most visits,
// ties broken by the smaller ActionID. Returns false iff the root has
// no edges.
func (t *Tree) BestRootActionByVisits() (weaveid.ActionID, bool) {
	root := t.arena.Root()
	if len(root.Edges) == 0 {
		return weaveid.NoAction, false
	}
	best := root.Edges[0]
	for _, e := range root.Edges[1:] {
		if e.Visits > best.Visits {
			best = e
		}
	}
	return best.Action, true
}

// BestRootActionByValue returns the root edge with the highest Q among
// edges that have been visited at least once, ties broken by the
// smaller ActionID. Returns false if no root edge has been visited.
func (t *Tree) BestRootActionByValue() (weaveid.ActionID, bool) {
	root := t.arena.Root()
	found := false
	var bestAction weaveid.ActionID
	var bestQ float64
	for _, e := range root.Edges {
		if e.Visits == 0 {
			continue
		}
		q := e.Q()
		if !found || q > bestQ {
			found = true
			bestQ = q
			bestAction = e.Action
		}
	}
	return bestAction, found
}

// rollback undoes whatever arena mutations a failed iteration performed
// before the failure. edgesAppendedTo and outcomeAppended record, in
// the order they were made, the same-iteration AppendEdges/AppendOutcome
// calls on nodes that existed before this iteration started; anything
// allocated by this iteration (NodeID >= nodeCountBefore) disappears via
// Truncate and needs no separate undo.
func (t *Tree) rollback(nodeCountBefore int, edgesAppendedTo []weaveid.NodeID, outcomeAppended *pathStep) {
	if outcomeAppended != nil && outcomeAppended.node.Int() < nodeCountBefore {
		_ = t.arena.PopOutcome(outcomeAppended.node, outcomeAppended.action)
	}
	for _, id := range edgesAppendedTo {
		if id.Int() < nodeCountBefore {
			_ = t.arena.ClearEdges(id)
		}
	}
	t.arena.Truncate(nodeCountBefore)
}
