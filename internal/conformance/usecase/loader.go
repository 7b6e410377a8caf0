package usecase

import (
	"fmt"
	"os"

	"favorites-conformance/internal/conformance/domain/model"
	"favorites-conformance/internal/shared/errors"

	"gopkg.in/yaml.v3"
)

// scenarioFile is the on-disk shape of a user scenario catalog.
type scenarioFile struct {
	Scenarios []model.Scenario `yaml:"scenarios"`
}

// LoadScenarios reads site-specific scenarios from a YAML file. The file
// shares the built-in catalog's scenario shape; see examples/scenarios.
func LoadScenarios(path string) ([]model.Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewConfigError("failed to read scenario file").
			WithCause(err).
			WithDetail("path", path)
	}

	var file scenarioFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, errors.NewConfigError("failed to parse scenario file").
			WithCause(err).
			WithDetail("path", path)
	}

	if len(file.Scenarios) == 0 {
		return nil, errors.NewConfigError("scenario file defines no scenarios").
			WithDetail("path", path)
	}

	seen := make(map[string]struct{}, len(file.Scenarios))
	for i := range file.Scenarios {
		if err := file.Scenarios[i].Validate(); err != nil {
			return nil, errors.NewConfigError(err.Error()).WithDetail("path", path)
		}
		if _, dup := seen[file.Scenarios[i].Name]; dup {
			return nil, errors.NewConfigError(
				fmt.Sprintf("duplicate scenario name %q in file", file.Scenarios[i].Name)).
				WithCause(errors.ErrDuplicateScenario).
				WithDetail("path", path)
		}
		seen[file.Scenarios[i].Name] = struct{}{}
	}

	return file.Scenarios, nil
}

// MergeScenarios appends extra scenarios to base, rejecting name collisions.
func MergeScenarios(base, extra []model.Scenario) ([]model.Scenario, error) {
	seen := make(map[string]struct{}, len(base))
	for i := range base {
		seen[base[i].Name] = struct{}{}
	}

	merged := make([]model.Scenario, 0, len(base)+len(extra))
	merged = append(merged, base...)
	for i := range extra {
		if _, dup := seen[extra[i].Name]; dup {
			return nil, errors.NewConfigError(
				fmt.Sprintf("scenario %q collides with the built-in catalog", extra[i].Name)).
				WithCause(errors.ErrDuplicateScenario)
		}
		seen[extra[i].Name] = struct{}{}
		merged = append(merged, extra[i])
	}

	return merged, nil
}
