package app

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/qj0r9j0vc2/slack-unsend/internal/infrastructure/config"
)

// Option customizes bootstrap.
type Option func(*options)

type options struct {
	logOutput  io.Writer
	telemetry  bool
	dotEnvPath string
}

func defaultOptions() *options {
	return &options{
		logOutput:  os.Stdout,
		telemetry:  true,
		dotEnvPath: config.DefaultDotEnvPath,
	}
}

// WithDotEnv reads the .env file at path instead of ./.env. An empty path skips it.
func WithDotEnv(path string) Option {
	return func(o *options) {
		o.dotEnvPath = path
	}
}

// WithLogOutput sends application logs to w.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) {
		o.logOutput = w
	}
}

// WithoutTelemetry skips the global OpenTelemetry and Prometheus setup.
func WithoutTelemetry() Option {
	return func(o *options) {
		o.telemetry = false
	}
}

func (app *Application) bootstrap(configPath string, o *options) error {
	// 1. Load .env once; reloads only re-read the YAML file
	var dotEnvErr error
	if o.dotEnvPath != "" {
		dotEnvErr = config.LoadDotEnv(o.dotEnvPath)
	}

	// 2. Load configuration
	if err := app.loadConfig(configPath); err != nil {
		if dotEnvErr != nil {
			return fmt.Errorf("loading config: %w", errors.Join(err, dotEnvErr))
		}
		return fmt.Errorf("loading config: %w", err)
	}

	// 3. Setup logger
	if err := app.setupLogger(o.logOutput); err != nil {
		return fmt.Errorf("setting up logger: %w", err)
	}
	if dotEnvErr != nil {
		app.logger.Get().Warn("ignoring unreadable .env file",
			"path", o.dotEnvPath,
			"error", dotEnvErr,
		)
	}

	// 4. Setup telemetry (OpenTelemetry)
	if o.telemetry {
		if err := app.setupTelemetry(); err != nil {
			return fmt.Errorf("setting up telemetry: %w", err)
		}
	}

	// 5. Setup config manager with reload callback
	if err := app.setupConfigManager(configPath); err != nil {
		return fmt.Errorf("setting up config manager: %w", err)
	}

	// 6. Initialize infrastructure clients
	if err := app.initializeClients(); err != nil {
		return fmt.Errorf("initializing clients: %w", err)
	}

	// 7. Initialize use cases
	if err := app.initializeUseCases(); err != nil {
		return fmt.Errorf("initializing use cases: %w", err)
	}

	// 8. Initialize HTTP handlers
	if err := app.initializeHandlers(); err != nil {
		return fmt.Errorf("initializing handlers: %w", err)
	}

	// 9. Setup HTTP server
	if err := app.setupServer(); err != nil {
		return fmt.Errorf("setting up server: %w", err)
	}

	return nil
}

func (app *Application) loadConfig(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	app.config = cfg
	return nil
}

func (app *Application) setupConfigManager(configPath string) error {
	app.configManager = config.NewConfigManager(configPath, app.config, app.logger.Get())

	app.configManager.OnReload(func(old, updated *config.Config) {
		if old.Logging.Level == updated.Logging.Level {
			return
		}
		if err := app.logger.SetLevel(updated.Logging.Level); err != nil {
			app.logger.Get().Error("failed to apply log level", "error", err)
			return
		}
		app.logger.Get().Info("log level changed",
			"from", old.Logging.Level,
			"to", updated.Logging.Level,
		)
	})

	return nil
}
