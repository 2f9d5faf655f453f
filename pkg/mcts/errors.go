package mcts

import (
	"fmt"

	"github.com/weavetree/weavetree/pkg/weaveid"
)

// ErrorKind classifies a SearchError, mirroring searchconfig's
// ConfigError: a small closed set of failure categories rather than a
// grab-bag of error strings.
type ErrorKind int

const (
	// ErrMissingNode means a NodeID the engine expected to be valid was
	// not found in the arena. Indicates an engine invariant violation,
	// not a user-triggerable condition.
	ErrMissingNode ErrorKind = iota
	// ErrMissingEdge means an (NodeID, ActionID) pair the engine
	// expected to exist was not found. Also an invariant violation.
	ErrMissingEdge
	// ErrSelectionFailed means UCB1 selection could not choose an edge
	// because every candidate score was non-finite.
	ErrSelectionFailed
	// ErrInvalidRolloutAction means a RolloutPolicy returned an action
	// outside [0, numActions) for the state it was given.
	ErrInvalidRolloutAction
)

func (k ErrorKind) String() string {
	switch k {
	case ErrMissingNode:
		return "missing_node"
	case ErrMissingEdge:
		return "missing_edge"
	case ErrSelectionFailed:
		return "selection_failed"
	case ErrInvalidRolloutAction:
		return "invalid_rollout_action"
	default:
		return "unknown"
	}
}

// SearchError is the single error type raised by this package.
type SearchError struct {
	Kind       ErrorKind
	NodeID     weaveid.NodeID
	ActionID   weaveid.ActionID
	Returned   int // set for ErrInvalidRolloutAction: the action the policy returned
	NumActions int // set for ErrInvalidRolloutAction: the valid action count
	Detail     string
	Err        error // wrapped cause, if any
}

func (e *SearchError) Error() string {
	switch e.Kind {
	case ErrMissingNode:
		return fmt.Sprintf("mcts: missing node %s: %s", e.NodeID, e.Detail)
	case ErrMissingEdge:
		return fmt.Sprintf("mcts: missing edge (%s, %s): %s", e.NodeID, e.ActionID, e.Detail)
	case ErrSelectionFailed:
		return fmt.Sprintf("mcts: selection failed at node %s: %s", e.NodeID, e.Detail)
	case ErrInvalidRolloutAction:
		return fmt.Sprintf("mcts: rollout policy returned action %d, want one of [0, %d)", e.Returned, e.NumActions)
	default:
		return fmt.Sprintf("mcts: error: %s", e.Detail)
	}
}

func (e *SearchError) Unwrap() error { return e.Err }

func missingNodeErr(id weaveid.NodeID, cause error) error {
	return &SearchError{Kind: ErrMissingNode, NodeID: id, Detail: cause.Error(), Err: cause}
}

func missingEdgeErr(id weaveid.NodeID, action weaveid.ActionID, cause error) error {
	return &SearchError{Kind: ErrMissingEdge, NodeID: id, ActionID: action, Detail: cause.Error(), Err: cause}
}

func selectionFailedErr(id weaveid.NodeID, detail string) error {
	return &SearchError{Kind: ErrSelectionFailed, NodeID: id, Detail: detail}
}

func invalidRolloutActionErr(returned, numActions int) error {
	return &SearchError{Kind: ErrInvalidRolloutAction, Returned: returned, NumActions: numActions}
}
