package domain

import "strings"

// Event describes an inbound Slack message delivered through the gateway
type Event struct {
	ChannelID string
	UserID    string
	Text      string
	BotID     string // non-empty when the message was sent by a bot
	Subtype   string // message_changed, message_deleted etc.
}

// Ignorable reports whether the event must be dropped without touching any
// session: missing channel or text, bot-originated, or a subtyped event.
func (e Event) Ignorable() bool {
	if e.ChannelID == "" || strings.TrimSpace(e.Text) == "" {
		return true
	}
	if e.BotID != "" || e.Subtype != "" {
		return true
	}
	return false
}
