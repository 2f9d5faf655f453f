package weavelog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunStartedText(t *testing.T) {
	e := RunStarted{
		IterationsRequested: 256,
		C:                   1.4,
		Gamma:               1,
		MaxSteps:            128,
		ReturnType:           "discounted",
		FixedHorizonSteps:    32,
	}
	require.Equal(t,
		"run_started iterations_requested=256 c=1.400000 gamma=1.000000 max_steps=128 return_type=discounted fixed_horizon_steps=32",
		e.Text(),
	)
}

func TestRunStartedNDJSON(t *testing.T) {
	e := RunStarted{IterationsRequested: 1, C: 1, Gamma: 1, MaxSteps: 1, ReturnType: "discounted", FixedHorizonSteps: 1}
	data, err := e.NDJSON()
	require.NoError(t, err)
	require.JSONEq(t, `{"event":"run_started","iterations_requested":1,"c":1,"gamma":1,"max_steps":1,"return_type":"discounted","fixed_horizon_steps":1}`, string(data))
}

func TestIterationCompletedText(t *testing.T) {
	e := IterationCompleted{
		Iteration:     3,
		LeafNodeID:    7,
		LeafIsNew:     true,
		PathLen:       2,
		RewardPrefix:  1.5,
		RolloutReturn: 0.25,
		TotalReturn:   1.75,
		NodeCount:     8,
	}
	require.Equal(t,
		"iteration_completed iteration=3 leaf_node_id=7 leaf_is_new=true path_len=2 reward_prefix=1.500000 rollout_return=0.250000 total_return=1.750000 node_count=8",
		e.Text(),
	)
}

func TestRunCompletedText(t *testing.T) {
	e := RunCompleted{
		IterationsRequested: 10,
		IterationsCompleted: 10,
		TotalReturnSum:      20,
		AverageTotalReturn:  2,
	}
	require.Equal(t,
		"run_completed iterations_requested=10 iterations_completed=10 total_return_sum=20.000000 average_total_return=2.000000",
		e.Text(),
	)
}
