package mcts

import (
	"math"

	"github.com/weavetree/weavetree/pkg/arena"
	"github.com/weavetree/weavetree/pkg/weaveid"
)

// selectAction implements the UCB1 tree policy: an edge with zero
// visits is selected immediately (in ascending ActionID order, since
// edges are stored that way); otherwise the edge maximising
// q(e) + c*sqrt(ln(N)/e.visits) is chosen, N being the sum of visits
// over all of the node's edges. Ties — including the exploration-vs-
// untried tie at the very start of a node's life — are broken by the
// smaller ActionID, which falls out naturally from scanning edges in
// order and only replacing the incumbent on a strict improvement.
//
// Grounded on go-mcts' ucb.go for the UCB1 formula shape and on
// AleutianLocal's selectChild for the math.Inf(-1) sentinel pattern
// used to seed the running maximum.
func selectAction(nodeID weaveid.NodeID, edges []arena.Edge, c float64) (weaveid.ActionID, error) {
	for _, e := range edges {
		if e.Visits == 0 {
			return e.Action, nil
		}
	}

	var total uint64
	for _, e := range edges {
		total += e.Visits
	}
	lnN := math.Log(float64(total))

	found := false
	bestScore := math.Inf(-1)
	var bestAction weaveid.ActionID
	for _, e := range edges {
		score := e.Q() + c*math.Sqrt(lnN/float64(e.Visits))
		if math.IsNaN(score) || math.IsInf(score, 0) {
			continue
		}
		if !found || score > bestScore {
			found = true
			bestScore = score
			bestAction = e.Action
		}
	}
	if !found {
		return weaveid.NoAction, selectionFailedErr(nodeID, "all UCB1 scores were non-finite")
	}
	return bestAction, nil
}
