package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/slack-go/slack"

	"github.com/qj0r9j0vc2/slack-unsend/internal/adapter/dto"
	"github.com/qj0r9j0vc2/slack-unsend/internal/adapter/handler/middleware"
	slackUseCase "github.com/qj0r9j0vc2/slack-unsend/internal/usecase/slack"
)

// DeleteMessageHandler handles the delete-message slash command webhook.
type DeleteMessageHandler struct {
	deleteMessage *slackUseCase.DeleteMessageUseCase
	logger        *slog.Logger
}

// NewDeleteMessageHandler creates a new delete-message command handler.
func NewDeleteMessageHandler(
	deleteMessage *slackUseCase.DeleteMessageUseCase,
	logger *slog.Logger,
) *DeleteMessageHandler {
	return &DeleteMessageHandler{
		deleteMessage: deleteMessage,
		logger:        logger,
	}
}

// ServeHTTP implements http.Handler interface.
func (h *DeleteMessageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	h.HandleSlashCommand(w, r)
}

// HandleSlashCommand handles POST requests to the command path.
// Slack sends slash commands as application/x-www-form-urlencoded and expects
// HTTP 200 with the outcome in the body, so every result is written as 200.
func (h *DeleteMessageHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	startTime := time.Now()

	// A malformed body leaves cmd empty, which the use case answers with
	// the missing-link reply.
	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		h.logger.Warn("failed to parse slash command",
			"error", err.Error(),
			"request_id", middleware.GetRequestID(r.Context()))
	}

	cmdDTO := dto.NewSlackCommandDTO(cmd)

	h.logger.Info("received slash command",
		"command", cmdDTO.Command,
		"user_id", cmdDTO.UserID,
		"team_id", cmdDTO.TeamID,
		"channel_id", cmdDTO.ChannelID,
		"request_id", middleware.GetRequestID(r.Context()))

	// Once chat.delete is issued it runs to completion even if Slack hangs up.
	ctx := context.WithoutCancel(r.Context())
	reply := h.deleteMessage.Execute(ctx, cmdDTO.ToEntity(startTime))

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto.NewEphemeralResponse(reply)); err != nil {
		h.logger.Error("failed to encode response", "error", err.Error())
		return
	}

	h.logger.Debug("slash command processed",
		"command", cmdDTO.Command,
		"user_id", cmdDTO.UserID,
		"response_time_ms", time.Since(startTime).Milliseconds())
}
