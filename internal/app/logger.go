package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// AtomicLogger is a slog.Logger whose level can change while it is in use.
type AtomicLogger struct {
	logger *slog.Logger
	level  *slog.LevelVar
}

// NewAtomicLogger creates a logger writing to w in the given format ("json" or "text").
func NewAtomicLogger(w io.Writer, level, format string) (*AtomicLogger, error) {
	lvl, err := parseLevel(level)
	if err != nil {
		return nil, err
	}

	levelVar := &slog.LevelVar{}
	levelVar.Set(lvl)

	opts := &slog.HandlerOptions{
		Level: levelVar,
	}

	var handler slog.Handler
	if format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return &AtomicLogger{
		logger: slog.New(handler).With("service", "slack-unsend"),
		level:  levelVar,
	}, nil
}

// Get returns the underlying logger.
func (l *AtomicLogger) Get() *slog.Logger {
	return l.logger
}

// Level returns the current level.
func (l *AtomicLogger) Level() slog.Level {
	return l.level.Level()
}

// SetLevel changes the level of every logger derived from l.
func (l *AtomicLogger) SetLevel(level string) error {
	lvl, err := parseLevel(level)
	if err != nil {
		return err
	}
	l.level.Set(lvl)
	return nil
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

func (app *Application) setupLogger(w io.Writer) error {
	logger, err := NewAtomicLogger(w, app.config.Logging.Level, app.config.Logging.Format)
	if err != nil {
		return err
	}
	app.logger = logger
	return nil
}

// slogAdapter adapts slog.Logger to the domain Logger interface.
type slogAdapter struct {
	logger *slog.Logger
}

func (a *slogAdapter) Debug(msg string, keysAndValues ...any) {
	a.logger.Debug(msg, keysAndValues...)
}

func (a *slogAdapter) Info(msg string, keysAndValues ...any) {
	a.logger.Info(msg, keysAndValues...)
}

func (a *slogAdapter) Warn(msg string, keysAndValues ...any) {
	a.logger.Warn(msg, keysAndValues...)
}

func (a *slogAdapter) Error(msg string, keysAndValues ...any) {
	a.logger.Error(msg, keysAndValues...)
}
