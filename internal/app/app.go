package app

import (
	"context"
	"net/http"
	"time"

	"github.com/qj0r9j0vc2/slack-unsend/internal/infrastructure/config"
	"github.com/qj0r9j0vc2/slack-unsend/internal/infrastructure/observability"
	"github.com/qj0r9j0vc2/slack-unsend/internal/infrastructure/server"
)

// Application holds all application dependencies and lifecycle
type Application struct {
	config        *config.Config
	configManager *config.ConfigManager
	logger        *AtomicLogger
	telemetry     *observability.Telemetry

	// Infrastructure clients
	clients *Clients

	// Use cases
	useCases *UseCases

	// HTTP layer
	handlers *server.Handlers
	router   http.Handler
	server   *server.Server
}

// New creates a new Application instance
func New(configPath string, opts ...Option) (*Application, error) {
	app := &Application{}

	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if err := app.bootstrap(configPath, o); err != nil {
		return nil, err
	}

	return app, nil
}

// Start runs the application until context is cancelled
func (app *Application) Start(ctx context.Context) error {
	app.logger.Get().Info("starting slack-unsend",
		"port", app.config.Server.Port,
		"command_path", app.config.Server.CommandPath,
	)

	if err := app.configManager.Watch(ctx); err != nil {
		app.logger.Get().Warn("config hot reload unavailable", "error", err)
	}

	return app.server.Run(ctx)
}

// Handler returns the fully wired HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Shutdown gracefully stops the application
func (app *Application) Shutdown() error {
	app.logger.Get().Info("shutting down slack-unsend")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if app.telemetry != nil {
		if err := app.telemetry.Shutdown(ctx); err != nil {
			app.logger.Get().Error("failed to shutdown telemetry", "error", err)
			return err
		}
	}

	app.logger.Get().Info("slack-unsend stopped")
	return nil
}
