package model

import "fmt"

// AuthMode selects how a scenario handles the session credential.
type AuthMode string

const (
	// AuthNone sends the request without any credential.
	AuthNone AuthMode = "none"
	// AuthSession acquires a fresh credential and attaches it.
	AuthSession AuthMode = "session"
	// AuthExpired acquires a credential, waits out the target's expiry
	// window, then attaches the stale credential.
	AuthExpired AuthMode = "expired"
)

// ValidAuthMode reports whether m is a known auth mode.
func ValidAuthMode(m AuthMode) bool {
	switch m {
	case AuthNone, AuthSession, AuthExpired:
		return true
	}
	return false
}

// Scenario is one independent request/assert probe against the target.
type Scenario struct {
	// Name uniquely identifies the scenario within a run.
	Name string `yaml:"name" json:"name"`
	// Summary is a one-line description for reports and listings.
	Summary string `yaml:"summary" json:"summary,omitempty"`
	// Auth selects the credential handling. Defaults to AuthSession.
	Auth AuthMode `yaml:"auth" json:"auth,omitempty"`
	// Form holds the presence-aware form fields of the creation request.
	Form SpotRequest `yaml:"form" json:"form"`
	// RawForm, when non-empty, is sent verbatim as the request body instead
	// of an encoded Form. This is the deliberate mechanism for probing
	// transport-encoding artifacts ('&' truncation, '+' to space).
	RawForm string `yaml:"raw_form" json:"raw_form,omitempty"`
	// Submits is how many times the request is sent within the scenario's
	// single session. Defaults to 1; monotonicity probes use 2.
	Submits int `yaml:"submits" json:"submits,omitempty"`
	// Expect describes the asserted outcome.
	Expect Expectation `yaml:"expect" json:"expect"`
	// Notes carry fragility or suspected-defect flags into the report.
	Notes []string `yaml:"notes" json:"notes,omitempty"`
}

// SubmitCount returns the effective number of submits.
func (s *Scenario) SubmitCount() int {
	if s.Submits < 1 {
		return 1
	}
	return s.Submits
}

// AuthOrDefault returns the effective auth mode.
func (s *Scenario) AuthOrDefault() AuthMode {
	if s.Auth == "" {
		return AuthSession
	}
	return s.Auth
}

// Validate checks the scenario is well-formed before it is run.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if !ValidAuthMode(s.AuthOrDefault()) {
		return fmt.Errorf("scenario %q: unknown auth mode %q", s.Name, s.Auth)
	}
	if s.Expect.Status == 0 {
		return fmt.Errorf("scenario %q: expected status is required", s.Name)
	}
	if s.Expect.Status < 100 || s.Expect.Status > 599 {
		return fmt.Errorf("scenario %q: expected status %d out of range", s.Name, s.Expect.Status)
	}
	if s.Submits < 0 || s.Submits > 2 {
		return fmt.Errorf("scenario %q: submits must be 1 or 2", s.Name)
	}
	if s.Expect.IDsStrictlyIncrease && s.SubmitCount() != 2 {
		return fmt.Errorf("scenario %q: id monotonicity requires exactly 2 submits", s.Name)
	}
	return nil
}

// Expectation is the asserted outcome of a scenario.
type Expectation struct {
	// Status is the expected HTTP status of every submit.
	Status int `yaml:"status" json:"status"`
	// Echo, when set, asserts fields of the decoded success body.
	Echo *EchoExpectation `yaml:"echo" json:"echo,omitempty"`
	// IDsStrictlyIncrease asserts the second submit's id is greater than
	// the first's. Requires Submits == 2.
	IDsStrictlyIncrease bool `yaml:"ids_strictly_increase" json:"ids_strictly_increase,omitempty"`
}

// EchoExpectation asserts field-level equality on a success body. A success
// body must always carry a positive id and a well-formed created_at; those
// two checks are implicit in every Echo assertion.
type EchoExpectation struct {
	// Title, when set, must be echoed verbatim.
	Title *string `yaml:"title" json:"title,omitempty"`
	// Lat and Lon, when set, must be echoed exactly.
	Lat *float64 `yaml:"lat" json:"lat,omitempty"`
	Lon *float64 `yaml:"lon" json:"lon,omitempty"`
	// Color, when set, must be echoed verbatim.
	Color *string `yaml:"color" json:"color,omitempty"`
	// ColorIsNull asserts the color field is null or absent.
	ColorIsNull bool `yaml:"color_is_null" json:"color_is_null,omitempty"`
}
