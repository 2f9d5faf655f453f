// Package searchconfig validates and loads the parameters governing one
// Weavetree search run: iteration budget, UCB1 exploration constant,
// discount factor, rollout horizon, and return-computation policy.
//
// Trades a mutable, chainable-setter config pattern for a
// validate-once-at-construction value type, since every field must be
// checked before a SearchConfig can be used at all.
package searchconfig

import "math"

// ReturnType selects how phase 3 (return computation) combines the
// reward prefix recorded along the tree path with the rollout rewards.
type ReturnType int

const (
	// Discounted geometrically discounts every reward by gamma^i.
	Discounted ReturnType = iota
	// EpisodicUndiscounted sums rewards unchanged; gamma is ignored.
	EpisodicUndiscounted
	// FixedHorizon behaves like EpisodicUndiscounted but caps the
	// rollout length at FixedHorizonSteps.
	FixedHorizon
)

// String renders the lowercase name used in structured log events and
// in the YAML/text configuration format.
func (rt ReturnType) String() string {
	switch rt {
	case Discounted:
		return "discounted"
	case EpisodicUndiscounted:
		return "episodic_undiscounted"
	case FixedHorizon:
		return "fixed_horizon"
	default:
		return "unknown"
	}
}

func returnTypeFromString(s string) (ReturnType, bool) {
	switch s {
	case "discounted":
		return Discounted, true
	case "episodic_undiscounted":
		return EpisodicUndiscounted, true
	case "fixed_horizon":
		return FixedHorizon, true
	default:
		return 0, false
	}
}

// SearchConfig governs one MCTS run. Construct with New or Default;
// both return a value that has already passed Validate. SearchConfig
// is immutable after construction — if you need different parameters,
// build a new one.
type SearchConfig struct {
	Iterations        int
	C                 float64
	Gamma             float64
	MaxSteps          int
	ReturnType        ReturnType
	FixedHorizonSteps int
}

// Default returns the package's default configuration:
// iterations=256, c=1.4, gamma=1.0, max_steps=128,
// return_type=discounted, fixed_horizon_steps=32.
func Default() SearchConfig {
	cfg, err := New(256, 1.4, 1.0, 128, Discounted, 32)
	if err != nil {
		// Unreachable: the defaults are always valid.
		panic(err)
	}
	return cfg
}

// New validates and constructs a SearchConfig. A violated rule returns
// a *ConfigError of Kind ErrInvalid naming the offending field.
func New(iterations int, c, gamma float64, maxSteps int, returnType ReturnType, fixedHorizonSteps int) (SearchConfig, error) {
	cfg := SearchConfig{
		Iterations:        iterations,
		C:                 c,
		Gamma:             gamma,
		MaxSteps:          maxSteps,
		ReturnType:        returnType,
		FixedHorizonSteps: fixedHorizonSteps,
	}
	if err := cfg.Validate(); err != nil {
		return SearchConfig{}, err
	}
	return cfg, nil
}

// Validate re-checks every field's constraints, returning the first
// violation found as a *ConfigError.
func (c SearchConfig) Validate() error {
	if c.Iterations <= 0 {
		return invalidErr("iterations", "must be > 0")
	}
	if math.IsNaN(c.C) || math.IsInf(c.C, 0) || c.C < 0 {
		return invalidErr("c", "must be finite and >= 0")
	}
	if math.IsNaN(c.Gamma) || math.IsInf(c.Gamma, 0) || c.Gamma < 0 {
		return invalidErr("gamma", "must be finite and >= 0")
	}
	if c.MaxSteps <= 0 {
		return invalidErr("max_steps", "must be > 0")
	}
	switch c.ReturnType {
	case Discounted, EpisodicUndiscounted, FixedHorizon:
	default:
		return invalidErr("return_type", "must be one of discounted, episodic_undiscounted, fixed_horizon")
	}
	if c.FixedHorizonSteps <= 0 {
		return invalidErr("fixed_horizon_steps", "must be > 0")
	}
	return nil
}
