// Package bench compares two SearchConfigs against the same
// Environment over many independent trees and reports their aggregate
// RunMetrics side by side.
//
// There is no opponent to play against in an MDP, so Comparison runs
// the *same* environment under two configs, Trials independent trees
// each, and compares mean outcomes. The worker-pool shape (N
// goroutines draining a job channel, a WaitGroup, and a mutex
// protecting the running totals) splits Trials across Workers
// goroutines the same way a fixed pool of workers splits any batch of
// independent jobs.
package bench

import (
	"sync"

	"github.com/weavetree/weavetree/pkg/mcts"
	"github.com/weavetree/weavetree/pkg/searchconfig"
	"github.com/weavetree/weavetree/pkg/weaveid"
)

// ConfigResult aggregates RunMetrics across Trials independent trees
// run under one SearchConfig against the same environment.
type ConfigResult struct {
	Name                string
	Trials              int
	MeanTotalReturn     float64
	MeanNodeCount       float64
	MeanIterationsDone  float64
}

// Comparison runs two SearchConfigs, each over the same root state and
// environment, for Trials independent trees, and reports their
// aggregate RunMetrics side by side.
type Comparison struct {
	NameA, NameB     string
	ConfigA, ConfigB searchconfig.SearchConfig
	RootState        weaveid.StateKey
	RootTerminal     bool
	Env              mcts.Environment
	Rollout          mcts.RolloutPolicy
	Trials           int
	// Workers caps how many trials of one configuration run
	// concurrently; each trial owns an entirely separate Tree, so
	// this parallelises independent searches rather than any single
	// one. Defaults to 1 if <= 0.
	Workers int
}

// Run performs both configurations' trials and returns their results.
func (c Comparison) Run() (ConfigResult, ConfigResult, error) {
	a, err := c.runConfig(c.NameA, c.ConfigA)
	if err != nil {
		return ConfigResult{}, ConfigResult{}, err
	}
	b, err := c.runConfig(c.NameB, c.ConfigB)
	if err != nil {
		return ConfigResult{}, ConfigResult{}, err
	}
	return a, b, nil
}

func (c Comparison) runConfig(name string, cfg searchconfig.SearchConfig) (ConfigResult, error) {
	workers := c.Workers
	if workers <= 0 {
		workers = 1
	}
	if workers > c.Trials {
		workers = c.Trials
	}

	jobs := make(chan struct{}, c.Trials)
	for i := 0; i < c.Trials; i++ {
		jobs <- struct{}{}
	}
	close(jobs)

	var (
		mu          sync.Mutex
		wg          sync.WaitGroup
		firstErr    error
		totalReturn float64
		nodeCount   float64
		iterations  float64
	)

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for range jobs {
				tree := mcts.New(c.RootState, c.RootTerminal)
				m, err := tree.Run(cfg, c.Env, c.Rollout)

				mu.Lock()
				if err != nil {
					if firstErr == nil {
						firstErr = err
					}
				} else {
					totalReturn += m.AverageTotalReturn
					nodeCount += float64(tree.NodeCount())
					iterations += float64(m.IterationsCompleted)
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return ConfigResult{}, firstErr
	}

	n := float64(c.Trials)
	return ConfigResult{
		Name:               name,
		Trials:             c.Trials,
		MeanTotalReturn:    totalReturn / n,
		MeanNodeCount:      nodeCount / n,
		MeanIterationsDone: iterations / n,
	}, nil
}
