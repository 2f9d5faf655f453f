// Package mcts implements the Weavetree search engine: a single
// threaded, deterministic Monte Carlo Tree Search over finite-horizon
// MDPs, built on top of pkg/arena's dense node arena and configured by
// pkg/searchconfig.
//
// It separates concerns across three axes: a caller-supplied
// environment abstraction, a UCB1 tree policy, and a listener hook for
// per-iteration observation — built on a dense chance-node arena and
// single-scalar backpropagation rather than a pointer-based, zero-sum
// two-player tree.
package mcts

import "github.com/weavetree/weavetree/pkg/weaveid"

// Environment is the caller-supplied MDP the search explores.
// NumActions must be a deterministic function of its state within one
// search. Step may be stochastic: repeated calls with the same (state,
// action) pair may return different successor states, and the engine
// records each distinct successor as its own chance outcome, counted
// in the edge's outcome histogram.
type Environment interface {
	// NumActions returns the number of actions available at state. A
	// return of 0 marks state as having no legal actions; the engine
	// treats it as a dead end for the current iteration without error.
	NumActions(state weaveid.StateKey) int

	// Step applies action at state, returning the resulting state, the
	// reward received, and whether that resulting state is terminal.
	Step(state weaveid.StateKey, action weaveid.ActionID) (next weaveid.StateKey, reward float64, terminal bool)
}

// RolloutPolicy chooses an action during the rollout phase, given the
// current state and the number of actions available there. It must
// return a value in [0, numActions).
type RolloutPolicy func(state weaveid.StateKey, numActions int) weaveid.ActionID

// IterationMetrics reports the outcome of a single call to Iterate.
type IterationMetrics struct {
	LeafNodeID      weaveid.NodeID
	LeafIsNew       bool
	PathLen         int
	RewardPrefixSum float64
	RolloutReturn   float64
	TotalReturn     float64
	NodeCount       int
}

// RunMetrics aggregates the outcome of a full search run.
type RunMetrics struct {
	IterationsRequested int
	IterationsCompleted int
	TotalReturnSum      float64
	AverageTotalReturn  float64
}

// pathStep is one (parent, action, child) hop recorded during the
// selection/expansion phase, replayed during backpropagation.
type pathStep struct {
	node   weaveid.NodeID
	action weaveid.ActionID
	child  weaveid.NodeID
	reward float64
}
