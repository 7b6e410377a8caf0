package model

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"favorites-conformance/internal/shared/errors"
)

// ScenarioResult records the outcome of one executed scenario.
type ScenarioResult struct {
	Name    string `json:"name"`
	Summary string `json:"summary,omitempty"`
	Passed  bool   `json:"passed"`
	// FailureType classifies a failure per the error taxonomy; empty when
	// the scenario passed.
	FailureType errors.ErrorType `json:"failure_type,omitempty"`
	// Message is the human-readable failure diagnostic.
	Message string `json:"message,omitempty"`
	// Status and Body are the last observed HTTP status and raw body,
	// kept for triage.
	Status   int           `json:"status,omitempty"`
	Body     string        `json:"body,omitempty"`
	Duration time.Duration `json:"duration_ns"`
	Notes    []string      `json:"notes,omitempty"`
}

// Report is the authoritative result of a conformance run.
type Report struct {
	RunID      string           `json:"run_id"`
	Target     string           `json:"target"`
	StartedAt  time.Time        `json:"started_at"`
	FinishedAt time.Time        `json:"finished_at"`
	Results    []ScenarioResult `json:"results"`
}

// Passed reports whether every scenario passed.
func (r *Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Counts returns the number of passed and failed scenarios.
func (r *Report) Counts() (passed, failed int) {
	for _, res := range r.Results {
		if res.Passed {
			passed++
		} else {
			failed++
		}
	}
	return passed, failed
}

// RenderText writes a human-readable rendering of the report.
func (r *Report) RenderText(w io.Writer) error {
	passed, failed := r.Counts()

	if _, err := fmt.Fprintf(w, "conformance run %s against %s\n", r.RunID, r.Target); err != nil {
		return err
	}

	for _, res := range r.Results {
		mark := "PASS"
		if !res.Passed {
			mark = "FAIL"
		}
		if _, err := fmt.Fprintf(w, "  [%s] %s (%s)\n", mark, res.Name, res.Duration.Round(time.Millisecond)); err != nil {
			return err
		}
		if !res.Passed {
			if _, err := fmt.Fprintf(w, "         %s: %s\n", res.FailureType, res.Message); err != nil {
				return err
			}
			if res.Status != 0 {
				if _, err := fmt.Fprintf(w, "         observed status %d, body: %s\n", res.Status, res.Body); err != nil {
					return err
				}
			}
		}
		for _, note := range res.Notes {
			if _, err := fmt.Fprintf(w, "         note: %s\n", note); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintf(w, "%d passed, %d failed (%s)\n",
		passed, failed, r.FinishedAt.Sub(r.StartedAt).Round(time.Millisecond))
	return err
}

// RenderJSON writes the report as indented JSON.
func (r *Report) RenderJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
