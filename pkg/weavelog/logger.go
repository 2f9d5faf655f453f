package weavelog

import (
	"fmt"
	"io"

	"github.com/weavetree/weavetree/pkg/mcts"
	"github.com/weavetree/weavetree/pkg/searchconfig"
)

// Format selects one of the two serialisations available for every
// event kind.
type Format int

const (
	// Text renders "event_name k=v k=v …", one event per line.
	Text Format = iota
	// NDJSON renders one JSON object per line.
	NDJSON
)

type event interface {
	Text() string
	NDJSON() ([]byte, error)
}

// Logger writes log events to an underlying io.Writer in one of the
// two forms: one-line text or NDJSON.
type Logger struct {
	w      io.Writer
	format Format
}

// New creates a Logger writing to w in the given format.
func New(w io.Writer, format Format) *Logger {
	return &Logger{w: w, format: format}
}

func (l *Logger) emit(e event) error {
	if l.format == NDJSON {
		data, err := e.NDJSON()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(l.w, "%s\n", data)
		return err
	}
	_, err := fmt.Fprintln(l.w, e.Text())
	return err
}

// LogRunStarted logs a run_started event.
func (l *Logger) LogRunStarted(cfg searchconfig.SearchConfig) error {
	return l.emit(NewRunStarted(cfg))
}

// LogIterationCompleted logs an iteration_completed event.
func (l *Logger) LogIterationCompleted(iteration int, m mcts.IterationMetrics) error {
	return l.emit(NewIterationCompleted(iteration, m))
}

// LogRunCompleted logs a run_completed event.
func (l *Logger) LogRunCompleted(m mcts.RunMetrics) error {
	return l.emit(NewRunCompleted(m))
}

// Run performs a full run against tree, logging run_started before the
// first iteration, iteration_completed after each one, and
// run_completed once the run ends — whether it completed in full or
// was cut short by an iteration error. Built on Tree.RunWithHook's
// per-iteration callback, turning each callback into an emitted,
// serialisable event.
func (l *Logger) Run(tree *mcts.Tree, cfg searchconfig.SearchConfig, env mcts.Environment, rollout mcts.RolloutPolicy) (mcts.RunMetrics, error) {
	if err := l.LogRunStarted(cfg); err != nil {
		return mcts.RunMetrics{}, err
	}

	iteration := 0
	metrics, runErr := tree.RunWithHook(cfg, env, rollout, func(m mcts.IterationMetrics) error {
		err := l.LogIterationCompleted(iteration, m)
		iteration++
		return err
	})

	if err := l.LogRunCompleted(metrics); err != nil {
		if runErr != nil {
			return metrics, runErr
		}
		return metrics, err
	}
	return metrics, runErr
}
