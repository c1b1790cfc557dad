package slack

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"

	"github.com/slack-go/slack"

	"github.com/qj0r9j0vc2/slack-unsend/internal/domain/entity"
)

// protocolErrorCodes are Slack error codes returned before the method's own
// logic runs: the token, the request envelope or the platform itself failed.
// Any other code, including missing_scope, is the method refusing the operation.
var protocolErrorCodes = map[string]bool{
	// Credential problems
	"not_authed":                true,
	"invalid_auth":              true,
	"account_inactive":          true,
	"token_revoked":             true,
	"token_expired":             true,
	"not_allowed_token_type":    true,
	"ekm_access_denied":         true,
	"two_factor_setup_required": true,
	"team_access_not_granted":   true,

	// Malformed requests
	"invalid_arguments":   true,
	"invalid_arg_name":    true,
	"invalid_array_arg":   true,
	"invalid_charset":     true,
	"invalid_form_data":   true,
	"invalid_post_type":   true,
	"missing_post_type":   true,
	"invalid_json":        true,
	"json_not_object":     true,
	"deprecated_endpoint": true,
	"method_deprecated":   true,
	"upgrade_required":    true,

	// Platform errors
	"ratelimited":         true,
	"accesslimited":       true,
	"request_timeout":     true,
	"service_unavailable": true,
	"fatal_error":         true,
	"internal_error":      true,
	"team_added_to_org":   true,
}

// Client wraps the Slack API client with the operations this service needs.
// Implements the slack use case MessageDeleter interface.
type Client struct {
	api *slack.Client
}

// Options configures a Client.
type Options struct {
	// APIURL overrides the Slack Web API base URL (must end with '/').
	APIURL string

	// Debug enables slack-go request logging through Logger.
	Debug  bool
	Logger *slog.Logger
}

// NewClient creates a new Slack client authenticated with botToken.
func NewClient(botToken string, opts Options) *Client {
	var options []slack.Option
	if opts.APIURL != "" {
		// Use custom API URL (for tests and proxies)
		options = append(options, slack.OptionAPIURL(opts.APIURL))
	}
	if opts.Debug && opts.Logger != nil {
		options = append(options,
			slack.OptionDebug(true),
			slack.OptionLog(NewSlogAdapter(opts.Logger)),
		)
	}

	return &Client{
		api: slack.New(botToken, options...),
	}
}

// DeleteMessage calls chat.delete for the referenced message.
func (c *Client) DeleteMessage(ctx context.Context, ref entity.MessageRef) entity.DeletionResult {
	if !ref.Valid() {
		return entity.NewDeletionRejected("invalid_message_ref",
			fmt.Errorf("refusing to delete malformed reference %q", ref.String()))
	}

	_, _, err := c.api.DeleteMessageContext(ctx, ref.ChannelID, ref.Timestamp)
	if err != nil {
		return classifyDeleteError(err)
	}

	return entity.NewDeletionSucceeded()
}

// Ping verifies the bot token with auth.test.
// Used by the readiness endpoint.
func (c *Client) Ping(ctx context.Context) error {
	if _, err := c.api.AuthTestContext(ctx); err != nil {
		return fmt.Errorf("slack auth.test: %w", err)
	}
	return nil
}

// Name returns the dependency identifier.
func (c *Client) Name() string {
	return "slack"
}

// classifyDeleteError maps a slack-go error to a rejected or failed deletion.
func classifyDeleteError(err error) entity.DeletionResult {
	// Slack answered with ok=false
	var slackErr slack.SlackErrorResponse
	if errors.As(err, &slackErr) {
		if protocolErrorCodes[slackErr.Err] {
			return entity.NewDeletionFailed(slackErr.Err, err)
		}
		return entity.NewDeletionRejected(slackErr.Err, err)
	}

	// HTTP 429
	var rateErr *slack.RateLimitedError
	if errors.As(err, &rateErr) {
		return entity.NewDeletionFailed("ratelimited", err)
	}

	// Non-200 status without a Slack payload
	var statusErr slack.StatusCodeError
	if errors.As(err, &statusErr) {
		return entity.NewDeletionFailed(fmt.Sprintf("http_%d", statusErr.Code), err)
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return entity.NewDeletionFailed("request_canceled", err)
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return entity.NewDeletionFailed("network_error", err)
	}

	return entity.NewDeletionFailed("request_failed", err)
}
