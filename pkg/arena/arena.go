// Package arena implements the dense node-arena data structure backing a
// Weavetree search tree: a growable, append-only sequence of Node
// records addressed by weaveid.NodeID, each carrying an ordered list of
// outgoing ActionEdges and, per edge, a histogram of sampled chance
// Outcomes.
//
// The arena owns all nodes and edges exclusively. Callers outside this
// package never receive a mutable pointer into it; every read goes
// through a value-typed accessor and every write goes through one of
// the AllocateChild/Append*/Record* methods below or one of the
// rollback-only Truncate/ClearEdges/PopOutcome methods, which undo the
// mutations of a failed iteration. That is what lets NodeIDs and
// edge/outcome indices stay stable once an iteration completes (see
// go-mcts' NodeBase, whose own mutation surface is similarly narrow:
// AddVvl/AddQ rather than raw field writes).
package arena

import (
	"errors"

	"github.com/weavetree/weavetree/pkg/weaveid"
)

// Sentinel errors identifying arena invariant violations. Callers in
// other packages are expected to wrap these into their own typed error
// values (see mcts.SearchError) rather than surface them directly.
var (
	ErrNodeNotFound   = errors.New("arena: node not found")
	ErrEdgeNotFound   = errors.New("arena: edge not found")
	ErrEdgesExist     = errors.New("arena: edges already populated for this node")
	ErrTerminalEdges  = errors.New("arena: cannot append edges to a terminal node")
	ErrOutcomeMissing = errors.New("arena: outcome not found for child")
)

// Outcome is one observed successor state from a (node, action) pair,
// tracked with an occurrence count.
type Outcome struct {
	NextState weaveid.StateKey
	Child     weaveid.NodeID
	Count     uint64
}

// Edge is one action available at the owning node.
type Edge struct {
	Action   weaveid.ActionID
	Visits   uint64
	ValueSum float64
	Outcomes []Outcome
}

// Q is the derived mean value value_sum/visits, treated as 0 when the
// edge has never been visited.
func (e Edge) Q() float64 {
	if e.Visits == 0 {
		return 0
	}
	return e.ValueSum / float64(e.Visits)
}

// Node represents one occurrence of a state in the search tree.
type Node struct {
	ID           weaveid.NodeID
	StateKey     weaveid.StateKey
	Depth        int
	Terminal     bool
	HasParent    bool
	ParentNode   weaveid.NodeID
	ParentAction weaveid.ActionID
	Edges        []Edge
}

// Arena is a growable sequence of Node records indexed by NodeID.
type Arena struct {
	nodes []Node
}

// New creates an arena containing a single root node at NodeID 0.
func New(rootState weaveid.StateKey, rootTerminal bool) *Arena {
	a := &Arena{nodes: make([]Node, 0, 64)}
	a.nodes = append(a.nodes, Node{
		ID:           0,
		StateKey:     rootState,
		Depth:        0,
		Terminal:     rootTerminal,
		HasParent:    false,
		ParentNode:   weaveid.NoNode,
		ParentAction: weaveid.NoAction,
	})
	return a
}

// Len returns the number of nodes currently in the arena (node_count).
func (a *Arena) Len() int { return len(a.nodes) }

// Root returns the arena's root node, always NodeID 0.
func (a *Arena) Root() Node { return a.nodes[0] }

func (a *Arena) valid(id weaveid.NodeID) bool {
	return id.Int() >= 0 && id.Int() < len(a.nodes)
}

// Node returns a read-only copy of the node with the given id.
func (a *Arena) Node(id weaveid.NodeID) (Node, error) {
	if !a.valid(id) {
		return Node{}, ErrNodeNotFound
	}
	return a.nodes[id.Int()], nil
}

// Edge returns a read-only copy of the (node, action) edge.
func (a *Arena) Edge(id weaveid.NodeID, action weaveid.ActionID) (Edge, error) {
	node, err := a.Node(id)
	if err != nil {
		return Edge{}, err
	}
	if action.Int() < 0 || action.Int() >= len(node.Edges) {
		return Edge{}, ErrEdgeNotFound
	}
	return node.Edges[action.Int()], nil
}

// Nodes returns a read-only copy of every node in ascending NodeID
// order, used by the snapshot serialiser's arena walk.
func (a *Arena) Nodes() []Node {
	out := make([]Node, len(a.nodes))
	copy(out, a.nodes)
	for i := range out {
		edges := make([]Edge, len(out[i].Edges))
		for j, e := range out[i].Edges {
			outcomes := make([]Outcome, len(e.Outcomes))
			copy(outcomes, e.Outcomes)
			e.Outcomes = outcomes
			edges[j] = e
		}
		out[i].Edges = edges
	}
	return out
}

// AllocateChild appends a new non-root node to the arena, linked to its
// parent via (parentNode, parentAction), and returns its new NodeID.
func (a *Arena) AllocateChild(parentNode weaveid.NodeID, parentAction weaveid.ActionID, state weaveid.StateKey, depth int, terminal bool) (weaveid.NodeID, error) {
	if !a.valid(parentNode) {
		return weaveid.NoNode, ErrNodeNotFound
	}
	id := weaveid.NodeID(len(a.nodes))
	a.nodes = append(a.nodes, Node{
		ID:           id,
		StateKey:     state,
		Depth:        depth,
		Terminal:     terminal,
		HasParent:    true,
		ParentNode:   parentNode,
		ParentAction: parentAction,
	})
	return id, nil
}

// AppendEdges populates a previously edge-less, non-terminal node with
// numActions ActionEdges, action ids 0..numActions-1, each starting with
// zero visits, zero value_sum, and no outcomes.
func (a *Arena) AppendEdges(id weaveid.NodeID, numActions int) error {
	if !a.valid(id) {
		return ErrNodeNotFound
	}
	node := &a.nodes[id.Int()]
	if node.Terminal {
		return ErrTerminalEdges
	}
	if len(node.Edges) != 0 {
		return ErrEdgesExist
	}
	node.Edges = make([]Edge, numActions)
	for i := range node.Edges {
		node.Edges[i] = Edge{Action: weaveid.ActionID(i)}
	}
	return nil
}

// FindOutcome looks up the outcome on (id, action) whose NextState
// equals nextState, returning its index and true if found.
func (a *Arena) FindOutcome(id weaveid.NodeID, action weaveid.ActionID, nextState weaveid.StateKey) (int, bool, error) {
	node, err := a.Node(id)
	if err != nil {
		return 0, false, err
	}
	if action.Int() < 0 || action.Int() >= len(node.Edges) {
		return 0, false, ErrEdgeNotFound
	}
	for i, o := range node.Edges[action.Int()].Outcomes {
		if o.NextState == nextState {
			return i, true, nil
		}
	}
	return 0, false, nil
}

// AppendOutcome appends a new outcome entry (nextState, child, count=0)
// to the chosen edge's outcome list and returns its index.
func (a *Arena) AppendOutcome(id weaveid.NodeID, action weaveid.ActionID, nextState weaveid.StateKey, child weaveid.NodeID) (int, error) {
	if !a.valid(id) {
		return 0, ErrNodeNotFound
	}
	node := &a.nodes[id.Int()]
	if action.Int() < 0 || action.Int() >= len(node.Edges) {
		return 0, ErrEdgeNotFound
	}
	edge := &node.Edges[action.Int()]
	idx := len(edge.Outcomes)
	edge.Outcomes = append(edge.Outcomes, Outcome{NextState: nextState, Child: child, Count: 0})
	return idx, nil
}

// RecordVisit increments edge.visits by one and adds totalReturn to
// edge.value_sum.
func (a *Arena) RecordVisit(id weaveid.NodeID, action weaveid.ActionID, totalReturn float64) error {
	if !a.valid(id) {
		return ErrNodeNotFound
	}
	node := &a.nodes[id.Int()]
	if action.Int() < 0 || action.Int() >= len(node.Edges) {
		return ErrEdgeNotFound
	}
	edge := &node.Edges[action.Int()]
	edge.Visits++
	edge.ValueSum += totalReturn
	return nil
}

// Truncate discards every node with id >= n. It exists solely so the
// engine can roll back the expansion performed by an iteration that
// later fails (e.g. an out-of-range rollout action), so that a
// failing iteration's mutations are never observable afterwards.
func (a *Arena) Truncate(n int) {
	if n < len(a.nodes) {
		a.nodes = a.nodes[:n]
	}
}

// ClearEdges resets a node's edge list to empty. Used only to undo a
// same-iteration AppendEdges call on a pre-existing node when a later
// phase of that iteration fails.
func (a *Arena) ClearEdges(id weaveid.NodeID) error {
	if !a.valid(id) {
		return ErrNodeNotFound
	}
	a.nodes[id.Int()].Edges = nil
	return nil
}

// PopOutcome removes the most recently appended outcome from (id,
// action). Used only to undo a same-iteration AppendOutcome call when a
// later phase of that iteration fails; safe because at most one outcome
// is appended per iteration.
func (a *Arena) PopOutcome(id weaveid.NodeID, action weaveid.ActionID) error {
	if !a.valid(id) {
		return ErrNodeNotFound
	}
	node := &a.nodes[id.Int()]
	if action.Int() < 0 || action.Int() >= len(node.Edges) {
		return ErrEdgeNotFound
	}
	edge := &node.Edges[action.Int()]
	if len(edge.Outcomes) == 0 {
		return ErrOutcomeMissing
	}
	edge.Outcomes = edge.Outcomes[:len(edge.Outcomes)-1]
	return nil
}

// RecordOutcomeVisit increments the count of the outcome on (id, action)
// whose Child equals childID.
func (a *Arena) RecordOutcomeVisit(id weaveid.NodeID, action weaveid.ActionID, childID weaveid.NodeID) error {
	if !a.valid(id) {
		return ErrNodeNotFound
	}
	node := &a.nodes[id.Int()]
	if action.Int() < 0 || action.Int() >= len(node.Edges) {
		return ErrEdgeNotFound
	}
	edge := &node.Edges[action.Int()]
	for i := range edge.Outcomes {
		if edge.Outcomes[i].Child == childID {
			edge.Outcomes[i].Count++
			return nil
		}
	}
	return ErrOutcomeMissing
}
