package entity

import "time"

// SlackCommand represents a slash command invocation from Slack.
type SlackCommand struct {
	// Command metadata
	CommandText string // e.g., "/delete-message"
	Text        string // e.g., "<https://acme.slack.com/archives/C123/p1629885698000100>"

	// User context
	UserID   string // Slack user ID (U123ABC)
	UserName string // Slack username for display

	// Channel context
	ChannelID   string // Channel where command was invoked (C456DEF)
	ChannelName string // Channel name for display

	// Team context
	TeamID     string // Slack workspace ID (T789GHI)
	TeamDomain string // Workspace domain

	InvokedAt time.Time // When command was received
}

// HasText reports whether the command carries any argument text.
func (c *SlackCommand) HasText() bool {
	return c != nil && c.Text != ""
}
