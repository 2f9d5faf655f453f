package mcts

import (
	"errors"
	"testing"

	"github.com/weavetree/weavetree/pkg/searchconfig"
)

func TestRunAggregatesReturns(t *testing.T) {
	env := twoArmEnv()
	cfg, err := searchconfig.New(4, 1.4, 1.0, 8, searchconfig.Discounted, 4)
	if err != nil {
		t.Fatal(err)
	}
	tree := New(0, false)

	metrics, err := tree.Run(cfg, env, alwaysAction(0))
	if err != nil {
		t.Fatal(err)
	}
	if metrics.IterationsRequested != 4 || metrics.IterationsCompleted != 4 {
		t.Fatalf("metrics = %+v, want 4 requested and completed", metrics)
	}
	if metrics.AverageTotalReturn != metrics.TotalReturnSum/4 {
		t.Fatalf("average = %v, want sum/4", metrics.AverageTotalReturn)
	}
}

func TestRunWithHookStopsOnHookError(t *testing.T) {
	env := twoArmEnv()
	cfg, err := searchconfig.New(10, 1.4, 1.0, 8, searchconfig.Discounted, 4)
	if err != nil {
		t.Fatal(err)
	}
	tree := New(0, false)

	stop := errors.New("cancelled by caller")
	seen := 0
	_, err = tree.RunWithHook(cfg, env, alwaysAction(0), func(IterationMetrics) error {
		seen++
		if seen == 2 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("err = %v, want the hook's sentinel", err)
	}
	if seen != 2 {
		t.Fatalf("hook invocations = %d, want 2", seen)
	}
	if tree.NodeCount() != 3 {
		t.Fatalf("node count = %d, want 3 (both completed iterations preserved)", tree.NodeCount())
	}
}

func TestRunStopsOnIterateError(t *testing.T) {
	env := newFakeEnv()
	env.set(10, 0, transition{next: 11, reward: 0, terminal: false})
	env.set(11, 0, transition{next: 12, reward: 0, terminal: false})
	cfg, err := searchconfig.New(5, 1.4, 1.0, 8, searchconfig.Discounted, 4)
	if err != nil {
		t.Fatal(err)
	}
	tree := New(10, false)

	metrics, err := tree.Run(cfg, env, invalidAction(99))
	if err == nil {
		t.Fatal("expected an error")
	}
	if metrics.IterationsCompleted != 0 {
		t.Fatalf("completed = %d, want 0", metrics.IterationsCompleted)
	}
}
