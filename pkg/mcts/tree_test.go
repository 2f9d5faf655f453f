package mcts

import (
	"testing"

	"github.com/weavetree/weavetree/pkg/searchconfig"
)

func TestBestRootActionByVisitsTieBreaksOnSmallerActionID(t *testing.T) {
	env := newFakeEnv()
	env.set(0, 0, transition{next: 1, reward: 1, terminal: true})
	env.set(0, 1, transition{next: 2, reward: 1, terminal: true})
	tree := New(0, false)

	for i := 0; i < 2; i++ {
		if _, err := tree.Iterate(searchconfig.Default(), env, alwaysAction(0)); err != nil {
			t.Fatal(err)
		}
	}

	action, ok := tree.BestRootActionByVisits()
	if !ok {
		t.Fatal("expected a best action")
	}
	if action != 0 {
		t.Fatalf("action = %s, want 0 (both edges visited once, smaller id wins)", action)
	}
}

func TestBestRootActionByVisitsAbsentWithNoEdges(t *testing.T) {
	tree := New(0, true)
	if _, ok := tree.BestRootActionByVisits(); ok {
		t.Fatal("expected no best action for a root with no edges")
	}
	if _, ok := tree.BestRootActionByValue(); ok {
		t.Fatal("expected no best action for a root with no edges")
	}
}

func TestBestRootActionByValueExcludesUnvisitedEdges(t *testing.T) {
	env := newFakeEnv()
	env.set(0, 0, transition{next: 1, reward: 5, terminal: true})
	env.set(0, 1, transition{next: 2, reward: 1, terminal: true})
	tree := New(0, false)

	if _, err := tree.Iterate(searchconfig.Default(), env, alwaysAction(0)); err != nil {
		t.Fatal(err)
	}

	action, ok := tree.BestRootActionByValue()
	if !ok {
		t.Fatal("expected a best action")
	}
	if action != 0 {
		t.Fatalf("action = %s, want 0 (the only visited edge)", action)
	}
}
