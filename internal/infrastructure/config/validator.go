package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrMissingBotToken is returned when no Slack bot token is configured.
var ErrMissingBotToken = errors.New("slack.bot_token is required (set SLACK_BOT_TOKEN)")

// reloadableKeys defines the whitelist of configuration keys that can be hot-reloaded.
var reloadableKeys = map[string]bool{
	"logging.level": true,
}

// staticKeys defines configuration keys that require application restart.
var staticKeys = map[string]string{
	"server.port":             "HTTP listener restart required",
	"server.command_path":     "HTTP router rebuild required",
	"server.read_timeout":     "HTTP listener restart required",
	"server.write_timeout":    "HTTP listener restart required",
	"server.shutdown_timeout": "HTTP listener restart required",
	"slack.bot_token":         "Slack client recreation required",
	"slack.api_url":           "Slack client recreation required",
	"slack.debug":             "Slack client recreation required",
	"logging.format":          "Log handler recreation required",
}

// IsReloadable returns true if the given config key can be hot-reloaded.
func IsReloadable(key string) bool {
	return reloadableKeys[key]
}

// getRestartReason returns the reason why a static config key requires restart.
func getRestartReason(key string) string {
	if reason, ok := staticKeys[key]; ok {
		return reason
	}
	return "unknown configuration requires restart"
}

// ValidationError aggregates every configuration problem found.
type ValidationError struct {
	Errors []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		msgs[i] = err.Error()
	}
	return "configuration validation failed:\n  - " + strings.Join(msgs, "\n  - ")
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (e *ValidationError) Unwrap() []error {
	return e.Errors
}

// ValidateLogLevel checks if the log level is valid.
func ValidateLogLevel(level string) error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", level)
	}
	return nil
}

// ValidateLogFormat checks if the log format is valid.
func ValidateLogFormat(format string) error {
	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validFormats[format] {
		return fmt.Errorf("invalid log format: %s (must be json or text)", format)
	}
	return nil
}

// ValidateDuration checks if a duration is greater than zero.
func ValidateDuration(duration time.Duration, fieldName string) error {
	if duration <= 0 {
		return fmt.Errorf("%s must be greater than 0", fieldName)
	}
	return nil
}

// ValidatePort checks if a port number is valid.
func ValidatePort(port int, fieldName string) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("%s must be between 1 and 65535, got %d", fieldName, port)
	}
	return nil
}

// Validate performs comprehensive validation on the configuration.
// The returned error wraps ErrMissingBotToken when the token is absent.
func (c *Config) Validate() error {
	var errs []error

	if c.Slack.BotToken == "" {
		errs = append(errs, ErrMissingBotToken)
	}

	// Server validation
	if err := ValidatePort(c.Server.Port, "server.port"); err != nil {
		errs = append(errs, err)
	}
	if !strings.HasPrefix(c.Server.CommandPath, "/") {
		errs = append(errs, fmt.Errorf("server.command_path must start with '/', got %q", c.Server.CommandPath))
	}
	if err := ValidateDuration(c.Server.ReadTimeout, "server.read_timeout"); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateDuration(c.Server.WriteTimeout, "server.write_timeout"); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateDuration(c.Server.ShutdownTimeout, "server.shutdown_timeout"); err != nil {
		errs = append(errs, err)
	}

	// Logging validation
	if err := ValidateLogLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}
	if err := ValidateLogFormat(c.Logging.Format); err != nil {
		errs = append(errs, err)
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
