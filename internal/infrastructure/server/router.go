package server

import (
	"log/slog"
	"net/http"

	"github.com/qj0r9j0vc2/slack-unsend/internal/adapter/handler"
	"github.com/qj0r9j0vc2/slack-unsend/internal/adapter/handler/middleware"
	"github.com/qj0r9j0vc2/slack-unsend/internal/infrastructure/config"
	"github.com/qj0r9j0vc2/slack-unsend/internal/infrastructure/observability"
)

// Handlers holds all HTTP handlers.
type Handlers struct {
	DeleteMessage *handler.DeleteMessageHandler
	Health        *handler.HealthHandler
	Ready         *handler.ReadyHandler
	Metrics       *handler.MetricsHandler
	Reload        *handler.ReloadHandler
}

// RouterConfig holds optional router settings.
type RouterConfig struct {
	// CommandPath is where Slack posts the slash command.
	CommandPath string

	// Metrics enables the HTTP metrics middleware when set.
	Metrics *observability.Metrics
}

// NewRouter creates the HTTP router with all handlers.
func NewRouter(handlers *Handlers, logger *slog.Logger, cfg *RouterConfig) http.Handler {
	if cfg == nil {
		cfg = &RouterConfig{}
	}
	commandPath := cfg.CommandPath
	if commandPath == "" {
		commandPath = config.DefaultCommandPath
	}

	mux := http.NewServeMux()
	var routes []string
	handle := func(path string, h http.Handler) {
		mux.Handle(path, h)
		routes = append(routes, path)
	}

	// Health check endpoints
	if handlers.Health != nil {
		handle("/health", handlers.Health)
	}
	if handlers.Ready != nil {
		handle("/ready", handlers.Ready)
	}

	if handlers.Metrics != nil {
		handle("/metrics", handlers.Metrics)
	}

	if handlers.Reload != nil {
		handle("/-/reload", handlers.Reload)
	}

	// Slash command webhook
	if handlers.DeleteMessage != nil {
		handle(commandPath, handlers.DeleteMessage)
	}

	middlewares := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logging(logger),
	}
	if cfg.Metrics != nil {
		middlewares = append(middlewares, middleware.Observability(cfg.Metrics, routes...))
	}
	middlewares = append(middlewares, middleware.Recovery(logger))

	return middleware.Chain(mux, middlewares...)
}
