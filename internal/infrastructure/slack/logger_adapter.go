package slack

import (
	"log/slog"
	"strings"
)

// SlogAdapter adapts slog.Logger to slack-go's internal logger, which only
// knows Output(calldepth, line).
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new slog adapter.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger.With("component", "slack-go")}
}

// Output writes one slack-go debug line at debug level.
func (l *SlogAdapter) Output(calldepth int, s string) error {
	l.logger.Debug(strings.TrimRight(s, "\n"))
	return nil
}
