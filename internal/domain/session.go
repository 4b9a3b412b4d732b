package domain

// Phase is the per-session conversation state.
type Phase int

const (
	// PhaseCollecting: at least one intake field still unanswered.
	PhaseCollecting Phase = iota
	// PhaseAwaitingVisaAck: all fields collected, visa advisory sent,
	// waiting for one more inbound message before finalization.
	PhaseAwaitingVisaAck
	// PhaseReady: finalization in progress for the current turn.
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseCollecting:
		return "collecting"
	case PhaseAwaitingVisaAck:
		return "awaiting_visa_ack"
	case PhaseReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Session is a per-user in-progress collection of answered intake fields.
// It lives in the store only while at least one answer has been recorded
// and the final plan has not been delivered yet.
type Session struct {
	UserID   string
	Answers  map[string]string
	VisaInfo string
	Phase    Phase
}

func NewSession(userID string) *Session {
	return &Session{
		UserID:  userID,
		Answers: make(map[string]string),
		Phase:   PhaseCollecting,
	}
}
