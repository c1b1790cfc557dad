package slack

import (
	"context"
	"time"

	"github.com/qj0r9j0vc2/slack-unsend/internal/domain/entity"
)

// MessageDeleter defines the contract for removing a message from Slack.
// Implementations never return a Go error; every failure is carried in the result.
type MessageDeleter interface {
	DeleteMessage(ctx context.Context, ref entity.MessageRef) entity.DeletionResult
}

// DeletionMetrics records deletion outcomes. A nil DeletionMetrics is allowed.
type DeletionMetrics interface {
	RecordDeletion(ctx context.Context, outcome, code string, duration time.Duration)
	RecordLinkParseFailure(ctx context.Context)
}
