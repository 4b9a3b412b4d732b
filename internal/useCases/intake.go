package useCases

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/manas-deriv/slack-travel-agent/internal/domain"
	"github.com/manas-deriv/slack-travel-agent/internal/ports"
)

// Intake is the conversation controller: it records one answer per inbound
// message and either asks the next question, sends the visa advisory, or
// finalizes the session through the planning engine.
type Intake struct {
	log       *slog.Logger
	slack     ports.SlackGateway
	planner   ports.TripPlanner
	visa      ports.VisaDirectory
	store     *SessionStore
	questions domain.Questions
}

func NewIntake(
	log *slog.Logger,
	slack ports.SlackGateway,
	planner ports.TripPlanner,
	visa ports.VisaDirectory,
	store *SessionStore,
	questions domain.Questions,
) *Intake {
	return &Intake{
		log:       log,
		slack:     slack,
		planner:   planner,
		visa:      visa,
		store:     store,
		questions: questions,
	}
}

// HandleEvent processes one inbound message. Errors from the send or
// planner collaborators are returned to the supervisor's listener loop; the
// session stays intact so the user can retry.
func (it *Intake) HandleEvent(ctx context.Context, ev domain.Event) error {
	if ev.Ignorable() {
		return nil
	}

	userID := ev.UserID
	sess := it.store.GetOrCreate(userID)

	// this message is presumed to answer the question most recently asked
	if q, ok := it.questions.NextMissing(sess.Answers); ok {
		it.store.RecordAnswer(userID, q.Field, strings.TrimSpace(ev.Text))
		sess = it.store.GetOrCreate(userID)
	}

	if q, ok := it.questions.NextMissing(sess.Answers); ok {
		it.log.Debug("asking next question", "user", userID, "field", q.Field)
		if err := it.slack.Send(ctx, ev.ChannelID, q.Prompt); err != nil {
			return fmt.Errorf("send question %q: %w", q.Field, err)
		}
		return nil
	}

	// all fields collected: the visa step happens on its own turn, so the
	// advisory is visibly delivered before the (slow) plan generation
	if sess.VisaInfo == "" {
		advisory := it.visa.Lookup(sess.Answers[domain.FieldDestination])
		it.store.AttachVisaInfo(userID, advisory)
		it.log.Info("visa advisory attached", "user", userID)
		if err := it.slack.Send(ctx, ev.ChannelID, "🛂 Visa Info: "+advisory); err != nil {
			return fmt.Errorf("send visa advisory: %w", err)
		}
		return nil
	}

	return it.finalize(ctx, ev.ChannelID, sess)
}

func (it *Intake) finalize(ctx context.Context, channelID string, sess *domain.Session) error {
	it.store.MarkReady(sess.UserID)
	it.log.Info("finalizing session", "user", sess.UserID)

	plan, err := it.planner.Plan(ctx, planPrompt(sess))
	if err != nil {
		return fmt.Errorf("plan trip for %s: %w", sess.UserID, err)
	}
	if err := it.slack.Send(ctx, channelID, plan); err != nil {
		return fmt.Errorf("send travel plan: %w", err)
	}

	// removed only after the final reply went out
	it.store.FinalizeAndRemove(sess.UserID)
	it.log.Info("session finalized", "user", sess.UserID)
	return nil
}

// planPrompt concatenates every collected field into the fixed finalization
// template handed to the planning engine.
func planPrompt(sess *domain.Session) string {
	return fmt.Sprintf(
		"Plan a trip to %s for %s people, from %s. Budget: %s. Hotel preference: %s. Interested in: %s. Visa Info: %s.",
		sess.Answers[domain.FieldDestination],
		sess.Answers[domain.FieldGroupSize],
		sess.Answers[domain.FieldDates],
		sess.Answers[domain.FieldBudget],
		sess.Answers[domain.FieldHotelPreference],
		sess.Answers[domain.FieldActivities],
		sess.VisaInfo,
	)
}
