// Package snapshot implements a deterministic, serialisable tree
// export: a value carrying schema_version, the root node id, the node
// count, and every node in ascending node_id order, each with its
// edges and outcomes embedded in insertion order and its q value
// precomputed.
//
// Encoded with the stdlib encoding/json, the way
// jinterlante1206-AleutianLocal's audit.go renders its own structured,
// JSON-tagged records.
package snapshot

import "encoding/json"

// Outcome mirrors arena.Outcome for serialisation.
type Outcome struct {
	NextStateKey uint64 `json:"next_state_key"`
	ChildNodeID  int    `json:"child_node_id"`
	Count        uint64 `json:"count"`
}

// Edge mirrors arena.Edge for serialisation, with Q precomputed.
type Edge struct {
	ActionID int       `json:"action_id"`
	Visits   uint64    `json:"visits"`
	ValueSum float64   `json:"value_sum"`
	Q        float64   `json:"q"`
	Outcomes []Outcome `json:"outcomes"`
}

// Node mirrors arena.Node for serialisation. ParentNodeID and
// ParentActionID are nil iff this is the root.
type Node struct {
	NodeID         int    `json:"node_id"`
	StateKey       uint64 `json:"state_key"`
	Depth          int    `json:"depth"`
	IsTerminal     bool   `json:"is_terminal"`
	ParentNodeID   *int   `json:"parent_node_id"`
	ParentActionID *int   `json:"parent_action_id"`
	Edges          []Edge `json:"edges"`
}

// Snapshot is a full, frozen copy of a search tree at a point in time.
type Snapshot struct {
	SchemaVersion int    `json:"schema_version"`
	RootNodeID    int    `json:"root_node_id"`
	NodeCount     int    `json:"node_count"`
	Nodes         []Node `json:"nodes"`
}

// JSON renders the snapshot in its canonical, compact form.
func (s Snapshot) JSON() ([]byte, error) {
	return json.Marshal(s)
}

// PrettyJSON renders the snapshot with two-space indentation, for
// human-readable textual output.
func (s Snapshot) PrettyJSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Parse parses a JSON-encoded snapshot produced by JSON or PrettyJSON.
func Parse(data []byte) (Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return Snapshot{}, err
	}
	return s, nil
}
