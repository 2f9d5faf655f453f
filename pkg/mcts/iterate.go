package mcts

import (
	"github.com/weavetree/weavetree/pkg/searchconfig"
	"github.com/weavetree/weavetree/pkg/weaveid"
)

// Iterate runs one full MCTS iteration against env: selection/expansion
// down the UCB1 tree policy, a rollout from the resulting leaf, return
// computation per cfg.ReturnType, and backpropagation of that return
// along the path taken.
//
// If any phase after selection/expansion fails — currently only
// rollout, via ErrInvalidRolloutAction — every arena mutation this
// iteration made (any node allocated, any edges or outcome appended) is
// rolled back before the error is returned, so a failing iteration
// never leaves a partial trace: previously completed iterations' trees
// are unaffected.
func (t *Tree) Iterate(cfg searchconfig.SearchConfig, env Environment, rollout RolloutPolicy) (metrics IterationMetrics, err error) {
	nodeCountBefore := t.arena.Len()
	var edgesAppendedTo []weaveid.NodeID
	var outcomeAppended *pathStep
	committed := false

	defer func() {
		if !committed {
			t.rollback(nodeCountBefore, edgesAppendedTo, outcomeAppended)
		}
	}()

	root, rerr := t.arena.Node(0)
	if rerr != nil {
		return IterationMetrics{}, missingNodeErr(0, rerr)
	}

	var path []pathStep
	leaf := root
	leafIsNew := false

	// Phase 1: selection / expansion. Descend via the UCB1 tree policy
	// until hitting a terminal node, a node with no legal actions, or a
	// successor state not yet recorded under the chosen action, which
	// allocates exactly one new child and stops.
	for {
		if leaf.Terminal {
			break
		}

		if len(leaf.Edges) == 0 {
			n := env.NumActions(leaf.StateKey)
			if n == 0 {
				break
			}
			if aerr := t.arena.AppendEdges(leaf.ID, n); aerr != nil {
				return IterationMetrics{}, missingNodeErr(leaf.ID, aerr)
			}
			edgesAppendedTo = append(edgesAppendedTo, leaf.ID)
			refreshed, nerr := t.arena.Node(leaf.ID)
			if nerr != nil {
				return IterationMetrics{}, missingNodeErr(leaf.ID, nerr)
			}
			leaf = refreshed
		}

		actionID, serr := selectAction(leaf.ID, leaf.Edges, cfg.C)
		if serr != nil {
			return IterationMetrics{}, serr
		}

		nextState, reward, terminal := env.Step(leaf.StateKey, actionID)

		outcomeIdx, found, ferr := t.arena.FindOutcome(leaf.ID, actionID, nextState)
		if ferr != nil {
			return IterationMetrics{}, missingEdgeErr(leaf.ID, actionID, ferr)
		}

		if found {
			childID := leaf.Edges[actionID.Int()].Outcomes[outcomeIdx].Child
			path = append(path, pathStep{node: leaf.ID, action: actionID, child: childID, reward: reward})
			child, nerr := t.arena.Node(childID)
			if nerr != nil {
				return IterationMetrics{}, missingNodeErr(childID, nerr)
			}
			leaf = child
			leafIsNew = false
			if leaf.Terminal {
				break
			}
			continue
		}

		childID, aerr := t.arena.AllocateChild(leaf.ID, actionID, nextState, leaf.Depth+1, terminal)
		if aerr != nil {
			return IterationMetrics{}, missingNodeErr(leaf.ID, aerr)
		}
		if _, oerr := t.arena.AppendOutcome(leaf.ID, actionID, nextState, childID); oerr != nil {
			return IterationMetrics{}, missingEdgeErr(leaf.ID, actionID, oerr)
		}
		step := pathStep{node: leaf.ID, action: actionID, child: childID, reward: reward}
		outcomeAppended = &step
		path = append(path, step)

		child, nerr := t.arena.Node(childID)
		if nerr != nil {
			return IterationMetrics{}, missingNodeErr(childID, nerr)
		}
		leaf = child
		leafIsNew = true
		break
	}

	// Phase 2: rollout. Simulates forward from the leaf without
	// touching the tree; only ErrInvalidRolloutAction can fail here.
	var rolloutRewards []float64
	if !leaf.Terminal {
		remaining := cfg.MaxSteps - len(path)
		if remaining > 0 {
			limit := remaining
			if cfg.ReturnType == searchconfig.FixedHorizon && cfg.FixedHorizonSteps < limit {
				limit = cfg.FixedHorizonSteps
			}
			current := leaf.StateKey
			for step := 0; step < limit; step++ {
				n := env.NumActions(current)
				if n == 0 {
					break
				}
				action := rollout(current, n)
				if action.Int() < 0 || action.Int() >= n {
					return IterationMetrics{}, invalidRolloutActionErr(action.Int(), n)
				}
				next, reward, terminal := env.Step(current, action)
				rolloutRewards = append(rolloutRewards, reward)
				current = next
				if terminal {
					break
				}
			}
		}
	}

	// Phase 3: return computation.
	rewardPrefixSum, rolloutReturn, totalReturn := computeReturn(cfg, path, rolloutRewards)

	// Phase 4: backpropagation.
	for _, step := range path {
		if verr := t.arena.RecordVisit(step.node, step.action, totalReturn); verr != nil {
			return IterationMetrics{}, missingEdgeErr(step.node, step.action, verr)
		}
		if oerr := t.arena.RecordOutcomeVisit(step.node, step.action, step.child); oerr != nil {
			return IterationMetrics{}, missingEdgeErr(step.node, step.action, oerr)
		}
	}

	committed = true
	return IterationMetrics{
		LeafNodeID:      leaf.ID,
		LeafIsNew:       leafIsNew,
		PathLen:         len(path),
		RewardPrefixSum: rewardPrefixSum,
		RolloutReturn:   rolloutReturn,
		TotalReturn:     totalReturn,
		NodeCount:       t.arena.Len(),
	}, nil
}
