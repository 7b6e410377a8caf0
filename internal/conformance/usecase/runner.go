package usecase

import (
	"context"
	"fmt"
	"time"

	"favorites-conformance/internal/conformance/client"
	"favorites-conformance/internal/conformance/config"
	"favorites-conformance/internal/conformance/domain/model"
	"favorites-conformance/internal/shared/errors"
	"favorites-conformance/internal/shared/eventbus"
	"favorites-conformance/internal/shared/logger"
	"favorites-conformance/internal/shared/timestamp"
	"favorites-conformance/internal/shared/utils"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// RunnerInterface defines the contract for conformance runners.
type RunnerInterface interface {
	Run(ctx context.Context, scenarios []model.Scenario) (*model.Report, error)
}

// Runner executes scenarios against the configured target. Every scenario is
// isolated: its own client, its own cookie jar, its own credential. Nothing
// is retried; every anomaly is recorded as a failed result with the observed
// status and body.
type Runner struct {
	config *config.Config
	logger logger.Logger
	bus    *eventbus.EventBus
	// newClient builds the per-scenario client. Tests may override it.
	newClient func() (*client.Client, error)
}

// NewRunner creates a new conformance runner.
func NewRunner(cfg *config.Config, log logger.Logger, bus *eventbus.EventBus) *Runner {
	if log == nil {
		log = logger.NewLogger()
	}
	return &Runner{
		config: cfg,
		logger: log.WithComponent("runner"),
		bus:    bus,
		newClient: func() (*client.Client, error) {
			return client.New(cfg)
		},
	}
}

// Run executes the scenarios and returns the authoritative report. The error
// return covers run-level problems (invalid scenarios, cancelled context);
// individual scenario failures live in the report.
func (r *Runner) Run(ctx context.Context, scenarios []model.Scenario) (*model.Report, error) {
	if len(scenarios) == 0 {
		return nil, errors.NewConfigError("no scenarios selected").WithCause(errors.ErrNoScenarios)
	}

	seen := make(map[string]struct{}, len(scenarios))
	for i := range scenarios {
		if err := scenarios[i].Validate(); err != nil {
			return nil, errors.NewConfigError(err.Error())
		}
		if _, dup := seen[scenarios[i].Name]; dup {
			return nil, errors.NewConfigError("duplicate scenario name: " + scenarios[i].Name).
				WithCause(errors.ErrDuplicateScenario)
		}
		seen[scenarios[i].Name] = struct{}{}
	}

	report := &model.Report{
		RunID:     uuid.New().String(),
		Target:    r.config.TargetURL,
		StartedAt: time.Now(),
		Results:   make([]model.ScenarioResult, len(scenarios)),
	}

	ctx = utils.WithRunID(ctx, report.RunID)
	ctx = utils.WithTarget(ctx, report.Target)

	r.publish(ctx, eventbus.EventTypeRunStarted, report.RunID)
	r.logger.WithContext(ctx).Infof("starting conformance run with %d scenarios", len(scenarios))

	if r.config.Parallelism > 1 {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(r.config.Parallelism)
		for i := range scenarios {
			i := i
			g.Go(func() error {
				report.Results[i] = r.runScenario(gctx, scenarios[i])
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i := range scenarios {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			report.Results[i] = r.runScenario(ctx, scenarios[i])
		}
	}

	report.FinishedAt = time.Now()

	passed, failed := report.Counts()
	r.logger.WithContext(ctx).Infof("run finished: %d passed, %d failed", passed, failed)
	r.publish(ctx, eventbus.EventTypeRunCompleted, report)

	return report, nil
}

// runScenario executes one scenario end to end and never panics outward:
// every failure mode becomes a result.
func (r *Runner) runScenario(ctx context.Context, sc model.Scenario) model.ScenarioResult {
	ctx = utils.WithScenario(ctx, sc.Name)
	log := r.logger.WithScenario(sc.Name)

	result := model.ScenarioResult{
		Name:    sc.Name,
		Summary: sc.Summary,
		Notes:   sc.Notes,
	}
	started := time.Now()
	defer func() {
		result.Duration = time.Since(started)
	}()

	r.publish(ctx, eventbus.EventTypeScenarioStarted, sc.Name)
	log.Debug("scenario started")

	results, err := r.execute(ctx, sc)
	if err == nil {
		err = r.evaluate(sc, results)
	}

	if len(results) > 0 {
		last := results[len(results)-1]
		result.Status = last.StatusCode
		result.Body = string(last.Body)
	}

	if err != nil {
		result.Passed = false
		result.FailureType = errors.TypeOf(err)
		result.Message = err.Error()
		log.WithError(err).Warn("scenario failed")
		r.publish(ctx, eventbus.EventTypeScenarioFailed, result)
		return result
	}

	result.Passed = true
	log.Debug("scenario passed")
	r.publish(ctx, eventbus.EventTypeScenarioPassed, result)
	return result
}

// execute performs the network side of a scenario: credential acquisition,
// the expiry wait when required, and one or two submits.
func (r *Runner) execute(ctx context.Context, sc model.Scenario) ([]*client.SpotResult, error) {
	c, err := r.newClient()
	if err != nil {
		return nil, err
	}

	var cred *model.SessionCredential
	switch sc.AuthOrDefault() {
	case model.AuthNone:
		// No credential attached.
	case model.AuthSession:
		cred, err = c.AcquireSession(ctx)
		if err != nil {
			return nil, err
		}
	case model.AuthExpired:
		cred, err = c.AcquireSession(ctx)
		if err != nil {
			return nil, err
		}
		// A genuine blocking wait: the stale-credential probe only means
		// something after the target's expiry window has really elapsed.
		select {
		case <-time.After(r.config.ExpiryWait):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	results := make([]*client.SpotResult, 0, sc.SubmitCount())
	for i := 0; i < sc.SubmitCount(); i++ {
		var res *client.SpotResult
		if sc.RawForm != "" {
			res, err = c.CreateSpotRaw(ctx, sc.RawForm, cred)
		} else {
			res, err = c.CreateSpot(ctx, sc.Form, cred)
		}
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}

	return results, nil
}

// evaluate judges the observed results against the scenario's expectation.
func (r *Runner) evaluate(sc model.Scenario, results []*client.SpotResult) error {
	for _, res := range results {
		if res.StatusCode != sc.Expect.Status {
			return errors.NewAssertionError(
				fmt.Sprintf("expected status %d, observed %d", sc.Expect.Status, res.StatusCode)).
				WithScenario(sc.Name).
				WithDetail("status", res.StatusCode).
				WithDetail("body", string(res.Body))
		}
	}

	if sc.Expect.Echo != nil {
		if err := r.evaluateEcho(sc, results[0]); err != nil {
			return err
		}
	}

	if sc.Expect.IDsStrictlyIncrease {
		if err := r.evaluateMonotonicity(sc, results); err != nil {
			return err
		}
	}

	return nil
}

// evaluateEcho asserts field-level equality on a decoded success body. Every
// success body must carry a positive id and a created_at in one of the two
// accepted timestamp layouts.
func (r *Runner) evaluateEcho(sc model.Scenario, res *client.SpotResult) error {
	body := res.Response
	if body == nil {
		return errors.NewShapeError("response body is not a JSON object").
			WithScenario(sc.Name).
			WithDetail("body", string(res.Body))
	}

	expect := sc.Expect.Echo

	if body.ID == nil || *body.ID <= 0 {
		return errors.NewShapeError("response is missing a positive id").
			WithScenario(sc.Name).
			WithDetail("body", string(res.Body))
	}

	if body.CreatedAt == nil {
		return errors.NewShapeError("response is missing created_at").
			WithScenario(sc.Name).
			WithDetail("body", string(res.Body))
	}
	if !timestamp.IsValid(*body.CreatedAt) {
		return errors.NewAssertionError("created_at does not match an accepted timestamp layout").
			WithScenario(sc.Name).
			WithDetail("created_at", *body.CreatedAt)
	}

	if expect.Title != nil {
		if body.Title == nil {
			return errors.NewShapeError("response is missing title").WithScenario(sc.Name).
				WithDetail("body", string(res.Body))
		}
		if *body.Title != *expect.Title {
			return errors.NewAssertionError(
				fmt.Sprintf("expected title %q, observed %q", *expect.Title, *body.Title)).
				WithScenario(sc.Name)
		}
	}

	if expect.Lat != nil {
		if body.Lat == nil {
			return errors.NewShapeError("response is missing lat").WithScenario(sc.Name).
				WithDetail("body", string(res.Body))
		}
		if *body.Lat != *expect.Lat {
			return errors.NewAssertionError(
				fmt.Sprintf("expected lat %g, observed %g", *expect.Lat, *body.Lat)).
				WithScenario(sc.Name)
		}
	}

	if expect.Lon != nil {
		if body.Lon == nil {
			return errors.NewShapeError("response is missing lon").WithScenario(sc.Name).
				WithDetail("body", string(res.Body))
		}
		if *body.Lon != *expect.Lon {
			return errors.NewAssertionError(
				fmt.Sprintf("expected lon %g, observed %g", *expect.Lon, *body.Lon)).
				WithScenario(sc.Name)
		}
	}

	if expect.Color != nil {
		if body.Color == nil {
			return errors.NewAssertionError(
				fmt.Sprintf("expected color %q, observed null", *expect.Color)).
				WithScenario(sc.Name)
		}
		if *body.Color != *expect.Color {
			return errors.NewAssertionError(
				fmt.Sprintf("expected color %q, observed %q", *expect.Color, *body.Color)).
				WithScenario(sc.Name)
		}
	}

	if expect.ColorIsNull && body.Color != nil {
		return errors.NewAssertionError(
			fmt.Sprintf("expected null color, observed %q", *body.Color)).
			WithScenario(sc.Name)
	}

	return nil
}

// evaluateMonotonicity asserts the second submit's id strictly exceeds the
// first's.
func (r *Runner) evaluateMonotonicity(sc model.Scenario, results []*client.SpotResult) error {
	ids := make([]int64, 0, len(results))
	for _, res := range results {
		if res.Response == nil || res.Response.ID == nil {
			return errors.NewShapeError("response is missing an id for the monotonicity check").
				WithScenario(sc.Name).
				WithDetail("body", string(res.Body))
		}
		ids = append(ids, *res.Response.ID)
	}

	for i := 1; i < len(ids); i++ {
		if ids[i] <= ids[i-1] {
			return errors.NewAssertionError(
				fmt.Sprintf("ids did not strictly increase: %d then %d", ids[i-1], ids[i])).
				WithScenario(sc.Name)
		}
	}

	return nil
}

// publish emits a progress event; a nil bus is fine.
func (r *Runner) publish(ctx context.Context, eventType string, data interface{}) {
	if r.bus == nil {
		return
	}
	if err := r.bus.Publish(ctx, eventbus.NewBasicEventWithSource(eventType, data, "runner")); err != nil {
		r.logger.WithError(err).Warnf("failed to publish %s event", eventType)
	}
}

// Ensure Runner implements RunnerInterface
var _ RunnerInterface = (*Runner)(nil)
