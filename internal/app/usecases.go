package app

import (
	"github.com/qj0r9j0vc2/slack-unsend/internal/infrastructure/observability"
	slackUseCase "github.com/qj0r9j0vc2/slack-unsend/internal/usecase/slack"
)

// UseCases holds the application's use cases
type UseCases struct {
	DeleteMessage *slackUseCase.DeleteMessageUseCase
}

func (app *Application) initializeUseCases() error {
	logger := &slogAdapter{logger: app.logger.Get()}

	// Left as a nil interface when telemetry is off.
	var metrics slackUseCase.DeletionMetrics
	if m := app.metrics(); m != nil {
		metrics = m
	}

	app.useCases = &UseCases{
		DeleteMessage: slackUseCase.NewDeleteMessageUseCase(app.clients.Slack, metrics, logger),
	}

	return nil
}

func (app *Application) metrics() *observability.Metrics {
	if app.telemetry == nil {
		return nil
	}
	return app.telemetry.Metrics
}
