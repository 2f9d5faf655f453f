// Package weaveid defines the opaque identifier types shared across the
// Weavetree search tree: node identifiers, action identifiers, and the
// environment-supplied state keys used for chance-node grouping.
//
// Each type wraps a single primitive and exposes only equality, a
// numeric accessor and a String form: dense, arithmetic-free
// identifiers rather than raw
// ints at API boundaries.
package weaveid

import "fmt"

// NodeID identifies a node within one search tree. NodeIDs are assigned
// in creation order starting at 0 for the root and are never reused.
type NodeID int

// Int returns the underlying dense index.
func (id NodeID) Int() int { return int(id) }

func (id NodeID) String() string { return fmt.Sprintf("n%d", int(id)) }

// ActionID identifies the action index at a given node, dense in
// [0, num_actions(state)).
type ActionID int

// Int returns the underlying dense index.
func (id ActionID) Int() int { return int(id) }

func (id ActionID) String() string { return fmt.Sprintf("a%d", int(id)) }

// StateKey is an opaque 64-bit identifier supplied by the environment
// that uniquely identifies a state for the purposes of chance-node
// grouping. Two transitions with equal StateKey are treated as the same
// successor state under a given action.
type StateKey uint64

// Uint64 returns the underlying key value.
func (k StateKey) Uint64() uint64 { return uint64(k) }

func (k StateKey) String() string { return fmt.Sprintf("s%d", uint64(k)) }

// NoNode (-1) is the sentinel stored in optional NodeID fields to mean
// "absent"; callers that need explicit absence should check
// arena.Node's HasParent flag or use the pointer-typed fields on
// snapshot.Node instead of relying on this sentinel.
const NoNode NodeID = -1

// NoAction is the analogous sentinel for ActionID.
const NoAction ActionID = -1
