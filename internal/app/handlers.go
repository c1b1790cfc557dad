package app

import (
	"github.com/qj0r9j0vc2/slack-unsend/internal/adapter/handler"
	"github.com/qj0r9j0vc2/slack-unsend/internal/infrastructure/server"
)

func (app *Application) initializeHandlers() error {
	logger := &slogAdapter{logger: app.logger.Get()}

	// Create readiness handler with dependency checkers
	readyHandler := handler.NewReadyHandler()
	readyHandler.AddChecker(app.clients.Slack.Name(), app.clients.Slack)

	app.handlers = &server.Handlers{
		DeleteMessage: handler.NewDeleteMessageHandler(app.useCases.DeleteMessage, app.logger.Get()),
		Health:        handler.NewHealthHandler(),
		Ready:         readyHandler,
		Reload:        handler.NewReloadHandler(app.configManager, logger),
	}

	if app.telemetry != nil {
		app.handlers.Metrics = handler.NewMetricsHandler(app.telemetry.Registry)
	}

	return nil
}

func (app *Application) setupServer() error {
	routerConfig := &server.RouterConfig{
		CommandPath: app.config.Server.CommandPath,
		Metrics:     app.metrics(),
	}
	app.router = server.NewRouter(app.handlers, app.logger.Get(), routerConfig)
	app.server = server.New(app.config.Server, app.router, app.logger.Get())
	return nil
}
