package dto

// ResponseTypeEphemeral makes a command response visible only to its invoker.
const ResponseTypeEphemeral = "ephemeral"

// SlackResponseDTO represents a slash command response body.
type SlackResponseDTO struct {
	ResponseType string `json:"response_type"` // always "ephemeral"
	Text         string `json:"text"`
}

// NewEphemeralResponse creates an ephemeral response (visible only to command invoker).
func NewEphemeralResponse(text string) *SlackResponseDTO {
	return &SlackResponseDTO{
		ResponseType: ResponseTypeEphemeral,
		Text:         text,
	}
}
