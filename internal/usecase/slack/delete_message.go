package slack

import (
	"context"
	"fmt"
	"time"

	"github.com/qj0r9j0vc2/slack-unsend/internal/domain/entity"
	"github.com/qj0r9j0vc2/slack-unsend/internal/domain/logger"
)

// Replies returned to the user who invoked the command.
const (
	ReplyMissingLink   = "You must provide a link to the message you want to delete."
	ReplyInvalidLink   = "Invalid message link format. Make sure you pasted a valid link."
	ReplyDeleted       = "The message was successfully deleted."
	ReplyRejectedFmt   = "Failed to delete the message. Error: `%s`"
	ReplyAPIFailureFmt = "An API error occurred: %s"

	unknownErrorCode = "Unknown error"
)

// DeleteMessageUseCase deletes the message referenced by a slash command's text.
type DeleteMessageUseCase struct {
	deleter MessageDeleter
	metrics DeletionMetrics
	logger  logger.Logger
}

// NewDeleteMessageUseCase creates a new delete message use case.
// metrics may be nil.
func NewDeleteMessageUseCase(deleter MessageDeleter, metrics DeletionMetrics, logger logger.Logger) *DeleteMessageUseCase {
	return &DeleteMessageUseCase{
		deleter: deleter,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute runs the command and returns the text to show the requester.
// It never fails: every error path is turned into a reply.
func (uc *DeleteMessageUseCase) Execute(ctx context.Context, cmd *entity.SlackCommand) string {
	if !cmd.HasText() {
		uc.logger.Info("delete command without link", "user_id", userID(cmd))
		return ReplyMissingLink
	}

	uc.logger.Info("received message link",
		"user_id", cmd.UserID,
		"team_id", cmd.TeamID,
		"link", cmd.Text)

	ref, ok := entity.ParseMessageLink(cmd.Text)
	if !ok {
		uc.logger.Info("invalid message link", "link", cmd.Text)
		if uc.metrics != nil {
			uc.metrics.RecordLinkParseFailure(ctx)
		}
		return ReplyInvalidLink
	}

	uc.logger.Info("parsed message link",
		"channel_id", ref.ChannelID,
		"ts", ref.Timestamp)

	start := time.Now()
	result := uc.deleter.DeleteMessage(ctx, ref)
	elapsed := time.Since(start)

	if uc.metrics != nil {
		uc.metrics.RecordDeletion(ctx, result.Outcome.String(), result.Code, elapsed)
	}

	switch result.Outcome {
	case entity.DeletionSucceeded:
		uc.logger.Info("message deleted",
			"channel_id", ref.ChannelID,
			"ts", ref.Timestamp,
			"user_id", cmd.UserID,
			"duration_ms", elapsed.Milliseconds())
		return ReplyDeleted

	case entity.DeletionRejected:
		code := result.Code
		if code == "" {
			code = unknownErrorCode
		}
		uc.logger.Warn("slack rejected message deletion",
			"channel_id", ref.ChannelID,
			"ts", ref.Timestamp,
			"code", code,
			"error", errString(result.Err))
		return fmt.Sprintf(ReplyRejectedFmt, code)

	default:
		uc.logger.Error("slack api call failed",
			"channel_id", ref.ChannelID,
			"ts", ref.Timestamp,
			"code", result.Code,
			"error", errString(result.Err))
		return fmt.Sprintf(ReplyAPIFailureFmt, result.Code)
	}
}

func userID(cmd *entity.SlackCommand) string {
	if cmd == nil {
		return ""
	}
	return cmd.UserID
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
