package dto

import (
	"time"

	"github.com/slack-go/slack"

	"github.com/qj0r9j0vc2/slack-unsend/internal/domain/entity"
)

// SlackCommandDTO represents a parsed Slack slash command.
type SlackCommandDTO struct {
	Command     string // The command name (e.g., "/delete-message")
	Text        string // The text after the command
	UserID      string // The user who invoked the command
	UserName    string // The user's display name
	ChannelID   string // The channel where command was invoked
	ChannelName string // The channel's display name
	TeamID      string // The workspace/team ID
	TeamDomain  string // The workspace domain
}

// NewSlackCommandDTO converts a slack-go slash command.
func NewSlackCommandDTO(cmd slack.SlashCommand) *SlackCommandDTO {
	return &SlackCommandDTO{
		Command:     cmd.Command,
		Text:        cmd.Text,
		UserID:      cmd.UserID,
		UserName:    cmd.UserName,
		ChannelID:   cmd.ChannelID,
		ChannelName: cmd.ChannelName,
		TeamID:      cmd.TeamID,
		TeamDomain:  cmd.TeamDomain,
	}
}

// ToEntity converts the DTO to the domain command.
func (dto *SlackCommandDTO) ToEntity(invokedAt time.Time) *entity.SlackCommand {
	return &entity.SlackCommand{
		CommandText: dto.Command,
		Text:        dto.Text,
		UserID:      dto.UserID,
		UserName:    dto.UserName,
		ChannelID:   dto.ChannelID,
		ChannelName: dto.ChannelName,
		TeamID:      dto.TeamID,
		TeamDomain:  dto.TeamDomain,
		InvokedAt:   invokedAt,
	}
}
