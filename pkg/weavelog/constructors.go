package weavelog

import (
	"github.com/weavetree/weavetree/pkg/mcts"
	"github.com/weavetree/weavetree/pkg/searchconfig"
)

// NewRunStarted builds the run_started event for cfg.
func NewRunStarted(cfg searchconfig.SearchConfig) RunStarted {
	return RunStarted{
		IterationsRequested: cfg.Iterations,
		C:                   cfg.C,
		Gamma:               cfg.Gamma,
		MaxSteps:            cfg.MaxSteps,
		ReturnType:          cfg.ReturnType.String(),
		FixedHorizonSteps:   cfg.FixedHorizonSteps,
	}
}

// NewIterationCompleted builds the iteration_completed event for the
// iteration-th (0-based) call to Iterate and its resulting metrics.
func NewIterationCompleted(iteration int, m mcts.IterationMetrics) IterationCompleted {
	return IterationCompleted{
		Iteration:     iteration,
		LeafNodeID:    m.LeafNodeID.Int(),
		LeafIsNew:     m.LeafIsNew,
		PathLen:       m.PathLen,
		RewardPrefix:  m.RewardPrefixSum,
		RolloutReturn: m.RolloutReturn,
		TotalReturn:   m.TotalReturn,
		NodeCount:     m.NodeCount,
	}
}

// NewRunCompleted builds the run_completed event for m.
func NewRunCompleted(m mcts.RunMetrics) RunCompleted {
	return RunCompleted{
		IterationsRequested: m.IterationsRequested,
		IterationsCompleted: m.IterationsCompleted,
		TotalReturnSum:      m.TotalReturnSum,
		AverageTotalReturn:  m.AverageTotalReturn,
	}
}
