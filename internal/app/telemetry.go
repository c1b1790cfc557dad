package app

import (
	"github.com/qj0r9j0vc2/slack-unsend/internal/infrastructure/observability"
)

// serviceVersion is overridden at build time with -ldflags.
var serviceVersion = "dev"

// setupTelemetry initializes OpenTelemetry tracing and metrics.
func (app *Application) setupTelemetry() error {
	telemetry, err := observability.NewTelemetry(observability.ServiceName, serviceVersion)
	if err != nil {
		return err
	}

	app.telemetry = telemetry

	app.logger.Get().Info("telemetry initialized",
		"service", observability.ServiceName,
		"version", serviceVersion,
		"metrics_enabled", true,
		"tracing_enabled", false, // NoOp tracer for now
	)

	return nil
}
