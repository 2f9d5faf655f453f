package mcts

import (
	"testing"

	"github.com/weavetree/weavetree/pkg/searchconfig"
	"github.com/weavetree/weavetree/pkg/weaveid"
)

// gridEnv is the trivial deterministic gridworld: states 0..4, state 4
// terminal. Action 0 advances toward 4 (reward 1.0 on entering it,
// else 0.0); action 1 stays put.
type gridEnv struct{}

func (gridEnv) NumActions(s weaveid.StateKey) int {
	if s.Uint64() == 4 {
		return 0
	}
	return 2
}

func (gridEnv) Step(s weaveid.StateKey, action weaveid.ActionID) (weaveid.StateKey, float64, bool) {
	if action == 1 {
		return s, 0, false
	}
	next := s.Uint64() + 1
	if next > 4 {
		next = 4
	}
	return weaveid.StateKey(next), boolToReward(next == 4), next == 4
}

func boolToReward(b bool) float64 {
	if b {
		return 1.0
	}
	return 0
}

// TestScenarioGridworldSixIterations is a deterministic property: after
// 6 iterations of UCB1 over gridEnv with an always-advance rollout
// policy, both root edges end up with visits=3, value_sum=3.0, q=1.0,
// total_return_sum=6.0, average_total_return=1.0, node_count=7, and
// best_root_action_by_value() ties on q and resolves to action 0.
func TestScenarioGridworldSixIterations(t *testing.T) {
	cfg, err := searchconfig.New(6, 1.4, 1.0, 8, searchconfig.Discounted, 8)
	if err != nil {
		t.Fatal(err)
	}
	tree := New(0, false)

	m, err := tree.Run(cfg, gridEnv{}, alwaysAction(0))
	if err != nil {
		t.Fatal(err)
	}
	if m.IterationsCompleted != 6 {
		t.Fatalf("iterations completed = %d, want 6", m.IterationsCompleted)
	}
	if m.TotalReturnSum != 6.0 {
		t.Fatalf("total return sum = %v, want 6.0", m.TotalReturnSum)
	}
	if m.AverageTotalReturn != 1.0 {
		t.Fatalf("average total return = %v, want 1.0", m.AverageTotalReturn)
	}
	if tree.NodeCount() != 7 {
		t.Fatalf("node count = %d, want 7", tree.NodeCount())
	}

	root, err := tree.Node(0)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range root.Edges {
		if e.Visits != 3 || e.ValueSum != 3.0 || e.Q() != 1.0 {
			t.Fatalf("root edge %s = %+v, want visits=3 valueSum=3.0 q=1.0", e.Action, e)
		}
	}

	best, ok := tree.BestRootActionByValue()
	if !ok || best != 0 {
		t.Fatalf("best root action by value = (%s, %v), want (0, true)", best, ok)
	}
}

// twoOutcomeEnv is a single non-terminal root with two
// terminal successors of differing reward.
type twoOutcomeEnv struct{}

func (twoOutcomeEnv) NumActions(weaveid.StateKey) int { return 2 }

func (twoOutcomeEnv) Step(s weaveid.StateKey, action weaveid.ActionID) (weaveid.StateKey, float64, bool) {
	if action == 0 {
		return 1, 1.0, true
	}
	return 2, 0.2, true
}

// TestScenarioTwoOutcomePreference is a deterministic property: after 6
// iterations, UCB1 with c=0.5 settles almost entirely on the
// higher-reward edge (visits=5, value_sum=5.0) after trying the
// lower-reward edge once (visits=1, value_sum=0.2), for a
// total_return_sum of 5.2, and best_root_action_by_value() picks it.
func TestScenarioTwoOutcomePreference(t *testing.T) {
	cfg, err := searchconfig.New(6, 0.5, 1.0, 4, searchconfig.Discounted, 4)
	if err != nil {
		t.Fatal(err)
	}
	tree := New(0, false)

	m, err := tree.Run(cfg, twoOutcomeEnv{}, alwaysAction(0))
	if err != nil {
		t.Fatal(err)
	}
	if m.TotalReturnSum != 5.2 {
		t.Fatalf("total return sum = %v, want 5.2", m.TotalReturnSum)
	}

	root, err := tree.Node(0)
	if err != nil {
		t.Fatal(err)
	}
	if root.Edges[0].Visits != 5 || root.Edges[0].ValueSum != 5.0 {
		t.Fatalf("edge 0 = %+v, want visits=5 valueSum=5.0", root.Edges[0])
	}
	if root.Edges[1].Visits != 1 || root.Edges[1].ValueSum != 0.2 {
		t.Fatalf("edge 1 = %+v, want visits=1 valueSum=0.2", root.Edges[1])
	}

	best, ok := tree.BestRootActionByValue()
	if !ok || best != 0 {
		t.Fatalf("best root action by value = (%s, %v), want (0, true)", best, ok)
	}
}
