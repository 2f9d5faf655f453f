package mcts

import "github.com/weavetree/weavetree/pkg/weaveid"

// transition is one deterministic (next state, reward, terminal) result
// for a (state, action) pair in fakeEnv.
type transition struct {
	next     weaveid.StateKey
	reward   float64
	terminal bool
}

// fakeEnv is a minimal deterministic Environment built from explicit
// transition tables, used throughout this package's tests in place of
// a real MDP.
type fakeEnv struct {
	actions map[weaveid.StateKey]int
	steps   map[weaveid.StateKey]map[weaveid.ActionID]transition
}

func newFakeEnv() *fakeEnv {
	return &fakeEnv{
		actions: make(map[weaveid.StateKey]int),
		steps:   make(map[weaveid.StateKey]map[weaveid.ActionID]transition),
	}
}

func (e *fakeEnv) set(state weaveid.StateKey, action weaveid.ActionID, t transition) {
	if e.steps[state] == nil {
		e.steps[state] = make(map[weaveid.ActionID]transition)
	}
	e.steps[state][action] = t
	if n := action.Int() + 1; n > e.actions[state] {
		e.actions[state] = n
	}
}

func (e *fakeEnv) NumActions(state weaveid.StateKey) int { return e.actions[state] }

func (e *fakeEnv) Step(state weaveid.StateKey, action weaveid.ActionID) (weaveid.StateKey, float64, bool) {
	t := e.steps[state][action]
	return t.next, t.reward, t.terminal
}

func alwaysAction(a weaveid.ActionID) RolloutPolicy {
	return func(weaveid.StateKey, int) weaveid.ActionID { return a }
}

func invalidAction(a int) RolloutPolicy {
	return func(weaveid.StateKey, int) weaveid.ActionID { return weaveid.ActionID(a) }
}
