// Package conformance wires the black-box conformance harness for the
// favorites API: the scenario catalog, the per-scenario HTTP client, and the
// runner producing the run report.
package conformance

import (
	"context"

	"favorites-conformance/internal/conformance/config"
	"favorites-conformance/internal/conformance/domain/model"
	"favorites-conformance/internal/conformance/usecase"
	"favorites-conformance/internal/shared/eventbus"
	"favorites-conformance/internal/shared/logger"
)

// Module represents the complete conformance harness.
type Module struct {
	runner usecase.RunnerInterface
	config *config.Config
	bus    *eventbus.EventBus
}

// NewModule creates a new conformance module instance.
func NewModule(cfg *config.Config, log logger.Logger) *Module {
	if log == nil {
		log = logger.NewLogger()
	}
	bus := eventbus.NewEventBus(log.WithComponent("eventbus"))

	return &Module{
		runner: usecase.NewRunner(cfg, log, bus),
		config: cfg,
		bus:    bus,
	}
}

// Run executes the given scenarios against the configured target.
func (m *Module) Run(ctx context.Context, scenarios []model.Scenario) (*model.Report, error) {
	return m.runner.Run(ctx, scenarios)
}

// GetRunner returns the runner for external access.
func (m *Module) GetRunner() usecase.RunnerInterface {
	return m.runner
}

// GetEventBus returns the progress event bus. Callers subscribe to the
// scenario lifecycle events before invoking Run.
func (m *Module) GetEventBus() *eventbus.EventBus {
	return m.bus
}
