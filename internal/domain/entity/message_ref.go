package entity

import (
	"regexp"
	"strings"
)

var (
	// Example: https://acme.slack.com/archives/C12345678/p1629885698000100
	messageLinkPattern = regexp.MustCompile(`archives/([A-Z0-9]+)/p(\d{10})(\d{6})`)

	channelIDPattern = regexp.MustCompile(`^[A-Z0-9]+$`)
	timestampPattern = regexp.MustCompile(`^\d{10}\.\d{6}$`)
)

// MessageRef identifies a single Slack message.
type MessageRef struct {
	ChannelID string
	Timestamp string // "1629885698.000100"
}

// Valid reports whether both fields are present and lexically well formed.
func (r MessageRef) Valid() bool {
	return channelIDPattern.MatchString(r.ChannelID) && timestampPattern.MatchString(r.Timestamp)
}

// String returns the reference in "channel:timestamp" form.
func (r MessageRef) String() string {
	return r.ChannelID + ":" + r.Timestamp
}

// ParseMessageLink extracts the channel ID and message timestamp from a Slack
// message permalink. It returns ok=false when the text holds no permalink.
//
// Slack wraps auto-linked URLs in angle brackets; a single leading '<' and
// trailing '>' are stripped before matching. The match may appear anywhere in
// the text:
//
//	https://<workspace>.slack.com/archives/<CHANNEL_ID>/p<10 digits><6 digits>
//
// The 16 digits after 'p' are the message ts without its decimal point.
func ParseMessageLink(link string) (ref MessageRef, ok bool) {
	if len(link) >= 2 && strings.HasPrefix(link, "<") && strings.HasSuffix(link, ">") {
		link = link[1 : len(link)-1]
	}

	m := messageLinkPattern.FindStringSubmatch(link)
	if len(m) != 4 {
		return MessageRef{}, false
	}

	return MessageRef{
		ChannelID: m[1],
		Timestamp: m[2] + "." + m[3],
	}, true
}
