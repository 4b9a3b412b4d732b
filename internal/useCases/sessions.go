package useCases

import (
	"sync"

	"github.com/manas-deriv/slack-travel-agent/internal/domain"
)

// SessionStore owns the process-wide user → session mapping. The event loop
// is single-goroutine, so the mutex only formalizes the one-writer rule;
// entries for different users are independent.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.Session),
	}
}

// GetOrCreate returns the stored session, or an empty one that is NOT
// inserted: a session enters the store only once an answer is recorded.
func (s *SessionStore) GetOrCreate(userID string) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		return sess
	}
	return domain.NewSession(userID)
}

// RecordAnswer stores text for the field unless it was already answered:
// first answer wins within one conversation, so a stale or duplicate event
// cannot overwrite a recorded field.
func (s *SessionStore) RecordAnswer(userID, field, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		sess = domain.NewSession(userID)
		s.sessions[userID] = sess
	}
	if _, answered := sess.Answers[field]; !answered {
		sess.Answers[field] = text
	}
}

// AttachVisaInfo sets the visa pseudo-field once and moves the session to
// the awaiting-ack phase. A no-op for unknown users or when already set.
func (s *SessionStore) AttachVisaInfo(userID, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok || sess.VisaInfo != "" {
		return
	}
	sess.VisaInfo = text
	sess.Phase = domain.PhaseAwaitingVisaAck
}

// MarkReady flags that finalization has started for this session.
func (s *SessionStore) MarkReady(userID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		sess.Phase = domain.PhaseReady
	}
}

// FinalizeAndRemove atomically returns the completed session and removes it;
// the next message from this user starts a fresh conversation. Returns nil
// when no session is stored.
func (s *SessionStore) FinalizeAndRemove(userID string) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		return nil
	}
	delete(s.sessions, userID)
	return sess
}
