// Package slackgw implements ports.SlackGateway over Slack Socket Mode.
package slackgw

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"

	"github.com/manas-deriv/slack-travel-agent/internal/domain"
)

// Client holds the single Socket Mode connection of the process. Connect is
// one attempt; the supervisor decides when to call it again.
type Client struct {
	api    *slack.Client
	logger *slog.Logger

	// events survives reconnects so the listener loop never has to resubscribe
	events    chan domain.Event
	connected atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewClient(botToken, appToken string, logger *slog.Logger) *Client {
	api := slack.New(botToken, slack.OptionAppLevelToken(appToken))
	return &Client{
		api:    api,
		logger: logger,
		events: make(chan domain.Event, 16),
	}
}

// Connect verifies the tokens, opens a fresh Socket Mode connection and
// blocks until it is live or failed. Any previous connection is dropped
// first.
func (c *Client) Connect(ctx context.Context) error {
	checkIPv4(c.logger)
	checkSlackEndpoint(c.logger)

	if _, err := c.api.AuthTestContext(ctx); err != nil {
		return fmt.Errorf("slack auth test: %w", err)
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.cancel()
	}
	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.mu.Unlock()

	sm := socketmode.New(c.api)
	ready := make(chan error, 1)
	go c.run(runCtx, sm, ready)

	select {
	case err := <-ready:
		if err != nil {
			cancel()
			return err
		}
		return nil
	case <-ctx.Done():
		cancel()
		return ctx.Err()
	}
}

func (c *Client) run(ctx context.Context, sm *socketmode.Client, ready chan<- error) {
	defer c.connected.Store(false)

	runErr := make(chan error, 1)
	go func() {
		runErr <- sm.RunContext(ctx)
	}()

	readySent := false
	signalReady := func(err error) {
		if !readySent {
			readySent = true
			ready <- err
		}
	}

	for {
		select {
		case <-ctx.Done():
			signalReady(ctx.Err())
			return
		case err := <-runErr:
			c.connected.Store(false)
			if err == nil {
				err = fmt.Errorf("socket mode run stopped")
			} else if ctx.Err() == nil {
				c.logger.Error("socket mode stopped", "error", err)
			}
			signalReady(fmt.Errorf("socket mode run: %w", err))
			return
		case evt := <-sm.Events:
			switch evt.Type {
			case socketmode.EventTypeConnected:
				c.connected.Store(true)
				c.logger.Info("slack socket connected")
				signalReady(nil)
			case socketmode.EventTypeConnectionError:
				c.connected.Store(false)
				c.logger.Warn("slack connection error")
				// before the first connected event this counts as a failed
				// attempt; afterwards the liveness poll picks it up
				if !readySent {
					signalReady(fmt.Errorf("slack connection error"))
					return
				}
			case socketmode.EventTypeDisconnect:
				c.connected.Store(false)
				c.logger.Warn("slack socket disconnected")
			case socketmode.EventTypeEventsAPI:
				c.handleEventsAPI(ctx, sm, evt)
			default:
				// hello, interactive payloads etc. are not interesting here
			}
		}
	}
}

func (c *Client) handleEventsAPI(ctx context.Context, sm *socketmode.Client, evt socketmode.Event) {
	payload, ok := evt.Data.(slackevents.EventsAPIEvent)
	if !ok {
		return
	}
	if evt.Request != nil {
		sm.Ack(*evt.Request)
	}

	msg, ok := payload.InnerEvent.Data.(*slackevents.MessageEvent)
	if !ok {
		return
	}

	ev := toEvent(msg)
	if ev.Ignorable() {
		c.logger.Debug("ignoring event", "subtype", msg.SubType, "bot_id", msg.BotID)
		return
	}

	select {
	case c.events <- ev:
	case <-ctx.Done():
	}
}

func toEvent(msg *slackevents.MessageEvent) domain.Event {
	return domain.Event{
		ChannelID: msg.Channel,
		UserID:    msg.User,
		Text:      msg.Text,
		BotID:     msg.BotID,
		Subtype:   msg.SubType,
	}
}

func (c *Client) Events() <-chan domain.Event {
	return c.events
}

func (c *Client) Send(ctx context.Context, channelID, text string) error {
	_, _, err := c.api.PostMessageContext(ctx, channelID, slack.MsgOptionText(text, false))
	if err != nil {
		return fmt.Errorf("post message to %s: %w", channelID, err)
	}
	return nil
}

func (c *Client) Connected() bool {
	return c.connected.Load()
}

func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.connected.Store(false)
}
