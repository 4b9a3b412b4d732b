package useCases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/manas-deriv/slack-travel-agent/internal/domain"
	"github.com/manas-deriv/slack-travel-agent/internal/ports"
)

// RetryPolicy is a bounded-or-unbounded fixed-delay retry schedule.
// MaxAttempts == 0 means retry forever.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// EventHandler consumes one inbound event at a time.
type EventHandler interface {
	HandleEvent(ctx context.Context, ev domain.Event) error
}

// Supervisor owns the gateway connection: initial connect with a bounded
// retry budget, then a liveness poll with unbounded reconnects. The
// conversation controller only ever sees a connected gateway.
type Supervisor struct {
	log     *slog.Logger
	gateway ports.SlackGateway
	handler EventHandler

	// overridable before Run; defaults match the reference policy
	Initial      RetryPolicy
	Reconnect    RetryPolicy
	PollInterval time.Duration
}

func NewSupervisor(log *slog.Logger, gateway ports.SlackGateway, handler EventHandler) *Supervisor {
	return &Supervisor{
		log:          log,
		gateway:      gateway,
		handler:      handler,
		Initial:      RetryPolicy{MaxAttempts: 3, Delay: 5 * time.Second},
		Reconnect:    RetryPolicy{MaxAttempts: 0, Delay: 5 * time.Second},
		PollInterval: time.Second,
	}
}

// Run blocks until ctx is cancelled (nil) or the initial connect budget is
// exhausted (error). Connection loss after the first connect is never
// fatal: reconnects continue indefinitely, favoring availability.
func (s *Supervisor) Run(ctx context.Context) error {
	defer s.gateway.Close()

	if err := s.connect(ctx, s.Initial); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("initial connect: %w", err)
	}

	go s.listen(ctx)

	ticker := time.NewTicker(s.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if s.gateway.Connected() {
				continue
			}
			s.log.Warn("connection lost, reconnecting")
			if err := s.connect(ctx, s.Reconnect); err != nil {
				// only cancellation escapes an unbounded policy
				return nil
			}
		}
	}
}

func (s *Supervisor) connect(ctx context.Context, policy RetryPolicy) error {
	for attempt := 1; ; attempt++ {
		s.log.Info("connecting to slack", "attempt", attempt)
		err := s.gateway.Connect(ctx)
		if err == nil {
			s.log.Info("connected to slack")
			return nil
		}
		if errors.Is(err, context.Canceled) {
			return err
		}
		s.log.Error("connect failed", "attempt", attempt, "error", err)

		if policy.MaxAttempts > 0 && attempt >= policy.MaxAttempts {
			return fmt.Errorf("giving up after %d attempts: %w", attempt, err)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(policy.Delay):
		}
	}
}

// listen routes inbound events to the handler one at a time. Handler errors
// are logged and the loop continues: the affected session stays intact for
// a user-initiated retry.
func (s *Supervisor) listen(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-s.gateway.Events():
			if !ok {
				return
			}
			if err := s.handler.HandleEvent(ctx, ev); err != nil {
				s.log.Error("handle event", "user", ev.UserID, "error", err)
			}
		}
	}
}
