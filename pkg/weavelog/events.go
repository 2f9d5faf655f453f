// Package weavelog implements three structured per-run log events:
// run_started, iteration_completed, and run_completed. Each event
// renders to a stable one-line text form ("event_name k=v k=v …",
// floats at six fractional digits, lowercase return-type names) and to
// a newline-delimited JSON object.
//
// Events fire at well-defined points during a search (before the first
// iteration, after each iteration, after the last), the same shape as
// a search-progress callback, but owning the event shapes and
// formatting itself rather than leaving them to the caller.
package weavelog

import (
	"encoding/json"
	"fmt"
)

// RunStarted is emitted once, before the first iteration of a run.
type RunStarted struct {
	IterationsRequested int     `json:"-"`
	C                    float64 `json:"-"`
	Gamma                float64 `json:"-"`
	MaxSteps             int     `json:"-"`
	ReturnType           string  `json:"-"`
	FixedHorizonSteps    int     `json:"-"`
}

// Text renders the one-line text form.
func (e RunStarted) Text() string {
	return fmt.Sprintf(
		"run_started iterations_requested=%d c=%.6f gamma=%.6f max_steps=%d return_type=%s fixed_horizon_steps=%d",
		e.IterationsRequested, e.C, e.Gamma, e.MaxSteps, e.ReturnType, e.FixedHorizonSteps,
	)
}

// NDJSON renders the newline-delimited JSON object form (without the
// trailing newline; callers append it when writing to a stream).
func (e RunStarted) NDJSON() ([]byte, error) {
	return json.Marshal(runStartedJSON{
		Event:                "run_started",
		IterationsRequested:  e.IterationsRequested,
		C:                    e.C,
		Gamma:                e.Gamma,
		MaxSteps:             e.MaxSteps,
		ReturnType:           e.ReturnType,
		FixedHorizonSteps:    e.FixedHorizonSteps,
	})
}

type runStartedJSON struct {
	Event               string  `json:"event"`
	IterationsRequested int     `json:"iterations_requested"`
	C                   float64 `json:"c"`
	Gamma               float64 `json:"gamma"`
	MaxSteps            int     `json:"max_steps"`
	ReturnType          string  `json:"return_type"`
	FixedHorizonSteps   int     `json:"fixed_horizon_steps"`
}

// IterationCompleted is emitted once per completed iteration.
type IterationCompleted struct {
	Iteration      int
	LeafNodeID     int
	LeafIsNew      bool
	PathLen        int
	RewardPrefix   float64
	RolloutReturn  float64
	TotalReturn    float64
	NodeCount      int
}

// Text renders the one-line text form.
func (e IterationCompleted) Text() string {
	return fmt.Sprintf(
		"iteration_completed iteration=%d leaf_node_id=%d leaf_is_new=%t path_len=%d reward_prefix=%.6f rollout_return=%.6f total_return=%.6f node_count=%d",
		e.Iteration, e.LeafNodeID, e.LeafIsNew, e.PathLen, e.RewardPrefix, e.RolloutReturn, e.TotalReturn, e.NodeCount,
	)
}

// NDJSON renders the newline-delimited JSON object form.
func (e IterationCompleted) NDJSON() ([]byte, error) {
	return json.Marshal(iterationCompletedJSON{
		Event:         "iteration_completed",
		Iteration:     e.Iteration,
		LeafNodeID:    e.LeafNodeID,
		LeafIsNew:     e.LeafIsNew,
		PathLen:       e.PathLen,
		RewardPrefix:  e.RewardPrefix,
		RolloutReturn: e.RolloutReturn,
		TotalReturn:   e.TotalReturn,
		NodeCount:     e.NodeCount,
	})
}

type iterationCompletedJSON struct {
	Event         string  `json:"event"`
	Iteration     int     `json:"iteration"`
	LeafNodeID    int     `json:"leaf_node_id"`
	LeafIsNew     bool    `json:"leaf_is_new"`
	PathLen       int     `json:"path_len"`
	RewardPrefix  float64 `json:"reward_prefix"`
	RolloutReturn float64 `json:"rollout_return"`
	TotalReturn   float64 `json:"total_return"`
	NodeCount     int     `json:"node_count"`
}

// RunCompleted is emitted once, after the last iteration of a run (or
// after a run is cut short by a hook or iteration error — whatever
// iterations did complete are reported).
type RunCompleted struct {
	IterationsRequested int
	IterationsCompleted int
	TotalReturnSum      float64
	AverageTotalReturn  float64
}

// Text renders the one-line text form.
func (e RunCompleted) Text() string {
	return fmt.Sprintf(
		"run_completed iterations_requested=%d iterations_completed=%d total_return_sum=%.6f average_total_return=%.6f",
		e.IterationsRequested, e.IterationsCompleted, e.TotalReturnSum, e.AverageTotalReturn,
	)
}

// NDJSON renders the newline-delimited JSON object form.
func (e RunCompleted) NDJSON() ([]byte, error) {
	return json.Marshal(runCompletedJSON{
		Event:                "run_completed",
		IterationsRequested:  e.IterationsRequested,
		IterationsCompleted:  e.IterationsCompleted,
		TotalReturnSum:       e.TotalReturnSum,
		AverageTotalReturn:   e.AverageTotalReturn,
	})
}

type runCompletedJSON struct {
	Event               string  `json:"event"`
	IterationsRequested int     `json:"iterations_requested"`
	IterationsCompleted int     `json:"iterations_completed"`
	TotalReturnSum      float64 `json:"total_return_sum"`
	AverageTotalReturn  float64 `json:"average_total_return"`
}
