package ports

import (
	"context"

	"github.com/manas-deriv/slack-travel-agent/internal/domain"
)

// SlackGateway defines the messaging channel used by the bot.
// Implemented by concrete adapters (Socket Mode, fakes in tests).
// The connection handle behind it is owned by the supervisor: the
// conversation controller only ever sends and receives through it.
type SlackGateway interface {
	// Connect performs a single connection attempt; retries are the
	// supervisor's job.
	Connect(ctx context.Context) error
	// Events returns the stream of inbound domain events. The channel
	// stays valid across reconnects.
	Events() <-chan domain.Event
	// Send posts text to a conversation.
	Send(ctx context.Context, channelID, text string) error
	// Connected reports channel liveness.
	Connected() bool
	Close()
}
