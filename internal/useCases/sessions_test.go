package useCases

import (
	"io"
	"log/slog"
	"testing"

	"github.com/manas-deriv/slack-travel-agent/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGetOrCreateDoesNotInsert(t *testing.T) {
	store := NewSessionStore()

	sess := store.GetOrCreate("U1")
	if sess == nil || sess.UserID != "U1" {
		t.Fatalf("expected empty session for U1, got %+v", sess)
	}
	if got := store.FinalizeAndRemove("U1"); got != nil {
		t.Fatalf("peek must not create a stored session, got %+v", got)
	}
}

func TestRecordAnswerFirstWins(t *testing.T) {
	store := NewSessionStore()

	store.RecordAnswer("U1", domain.FieldDestination, "Tokyo")
	store.RecordAnswer("U1", domain.FieldDestination, "Osaka")

	sess := store.GetOrCreate("U1")
	if got := sess.Answers[domain.FieldDestination]; got != "Tokyo" {
		t.Fatalf("first answer must win, got %q", got)
	}
}

func TestAttachVisaInfoOnce(t *testing.T) {
	store := NewSessionStore()
	store.RecordAnswer("U1", domain.FieldDestination, "Japan")

	store.AttachVisaInfo("U1", "visa required")
	store.AttachVisaInfo("U1", "no visa needed")

	sess := store.GetOrCreate("U1")
	if sess.VisaInfo != "visa required" {
		t.Fatalf("visa info must be set once, got %q", sess.VisaInfo)
	}
	if sess.Phase != domain.PhaseAwaitingVisaAck {
		t.Fatalf("expected awaiting_visa_ack, got %s", sess.Phase)
	}
}

func TestAttachVisaInfoUnknownUserIsNoop(t *testing.T) {
	store := NewSessionStore()

	store.AttachVisaInfo("ghost", "advisory")
	if got := store.FinalizeAndRemove("ghost"); got != nil {
		t.Fatalf("attach on unknown user must not create a session, got %+v", got)
	}
}

func TestFinalizeAndRemove(t *testing.T) {
	store := NewSessionStore()
	store.RecordAnswer("U1", domain.FieldDestination, "Japan")
	store.MarkReady("U1")

	sess := store.FinalizeAndRemove("U1")
	if sess == nil {
		t.Fatal("expected the completed session back")
	}
	if sess.Phase != domain.PhaseReady {
		t.Fatalf("expected ready, got %s", sess.Phase)
	}
	if again := store.FinalizeAndRemove("U1"); again != nil {
		t.Fatalf("second finalize must be nil, got %+v", again)
	}

	// the user starts over afterwards
	fresh := store.GetOrCreate("U1")
	if len(fresh.Answers) != 0 || fresh.Phase != domain.PhaseCollecting {
		t.Fatalf("expected a fresh session, got %+v", fresh)
	}
}
