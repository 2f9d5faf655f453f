package mcts

import "github.com/weavetree/weavetree/pkg/searchconfig"

// IterationHook observes one completed iteration. Returning a non-nil
// error aborts the run: RunWithHook propagates it to the caller without
// running any further iterations. The iteration already committed to
// the tree before the hook ran is not undone — cancellation stops
// future work, it does not retract past work.
type IterationHook func(IterationMetrics) error

// Run performs cfg.Iterations calls to Iterate, aggregating their
// outcomes into a RunMetrics. It is equivalent to RunWithHook with a
// hook that never errors.
func (t *Tree) Run(cfg searchconfig.SearchConfig, env Environment, rollout RolloutPolicy) (RunMetrics, error) {
	return t.RunWithHook(cfg, env, rollout, nil)
}

// RunWithHook performs cfg.Iterations calls to Iterate, invoking hook
// (if non-nil) after each one. An error from Iterate or from hook stops
// the run immediately and is returned to the caller; every iteration
// completed so far remains reflected in the tree and in the returned
// RunMetrics.
func (t *Tree) RunWithHook(cfg searchconfig.SearchConfig, env Environment, rollout RolloutPolicy, hook IterationHook) (RunMetrics, error) {
	metrics := RunMetrics{IterationsRequested: cfg.Iterations}
	finish := func() RunMetrics {
		if metrics.IterationsCompleted > 0 {
			metrics.AverageTotalReturn = metrics.TotalReturnSum / float64(metrics.IterationsCompleted)
		}
		return metrics
	}

	for i := 0; i < cfg.Iterations; i++ {
		iter, err := t.Iterate(cfg, env, rollout)
		if err != nil {
			return finish(), err
		}
		metrics.IterationsCompleted++
		metrics.TotalReturnSum += iter.TotalReturn

		if hook != nil {
			if herr := hook(iter); herr != nil {
				return finish(), herr
			}
		}
	}

	return finish(), nil
}
