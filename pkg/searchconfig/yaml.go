package searchconfig

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// rawConfig mirrors SearchConfig field-for-field using the only
// recognised YAML keys: iterations, c, gamma, max_steps, return_type,
// fixed_horizon_steps.
type rawConfig struct {
	Iterations        *int     `yaml:"iterations"`
	C                 *float64 `yaml:"c"`
	Gamma             *float64 `yaml:"gamma"`
	MaxSteps          *int     `yaml:"max_steps"`
	ReturnType        *string  `yaml:"return_type"`
	FixedHorizonSteps *int     `yaml:"fixed_horizon_steps"`
}

// LoadYAML reads and validates a SearchConfig from a YAML file at path.
// Unknown keys and unparsable return_type values are rejected.
func LoadYAML(path string) (SearchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SearchConfig{}, ioErr(path, err)
	}
	return LoadYAMLReader(bytes.NewReader(data))
}

// LoadYAMLReader reads and validates a SearchConfig from r, starting
// from Default() for any field the document omits.
func LoadYAMLReader(r io.Reader) (SearchConfig, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var raw rawConfig
	if err := dec.Decode(&raw); err != nil {
		return SearchConfig{}, yamlErr(err)
	}

	cfg := Default()
	if raw.Iterations != nil {
		cfg.Iterations = *raw.Iterations
	}
	if raw.C != nil {
		cfg.C = *raw.C
	}
	if raw.Gamma != nil {
		cfg.Gamma = *raw.Gamma
	}
	if raw.MaxSteps != nil {
		cfg.MaxSteps = *raw.MaxSteps
	}
	if raw.FixedHorizonSteps != nil {
		cfg.FixedHorizonSteps = *raw.FixedHorizonSteps
	}
	if raw.ReturnType != nil {
		rt, ok := returnTypeFromString(*raw.ReturnType)
		if !ok {
			return SearchConfig{}, invalidErr("return_type", "unrecognised value "+*raw.ReturnType)
		}
		cfg.ReturnType = rt
	}

	if err := cfg.Validate(); err != nil {
		return SearchConfig{}, err
	}
	return cfg, nil
}

// EncodeYAML renders cfg as YAML, all six keys always present, so
// that loading the output round-trips to an equal config.
func (c SearchConfig) EncodeYAML() ([]byte, error) {
	raw := struct {
		Iterations        int     `yaml:"iterations"`
		C                 float64 `yaml:"c"`
		Gamma             float64 `yaml:"gamma"`
		MaxSteps          int     `yaml:"max_steps"`
		ReturnType        string  `yaml:"return_type"`
		FixedHorizonSteps int     `yaml:"fixed_horizon_steps"`
	}{
		Iterations:        c.Iterations,
		C:                 c.C,
		Gamma:             c.Gamma,
		MaxSteps:          c.MaxSteps,
		ReturnType:        c.ReturnType.String(),
		FixedHorizonSteps: c.FixedHorizonSteps,
	}
	return yaml.Marshal(raw)
}

// SaveYAML writes cfg to path as YAML.
func (c SearchConfig) SaveYAML(path string) error {
	data, err := c.EncodeYAML()
	if err != nil {
		return yamlErr(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return ioErr(path, err)
	}
	return nil
}
