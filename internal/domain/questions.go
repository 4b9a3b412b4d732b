package domain

// Intake field names. Order is defined by DefaultQuestions, not by these
// constants.
const (
	FieldDestination     = "destination"
	FieldGroupSize       = "group_size"
	FieldDates           = "dates"
	FieldBudget          = "budget"
	FieldHotelPreference = "hotel_preference"
	FieldActivities      = "activities"
)

// Question is one (field, prompt) pair of the intake sequence.
type Question struct {
	Field  string `json:"field"`
	Prompt string `json:"prompt"`
}

// Questions is the fixed ordered intake sequence. It is built once at
// process start and never mutated; the order defines both the order fields
// are asked and the order a session is checked for completeness.
type Questions []Question

// NextMissing walks the sequence in order and returns the first question
// whose field is absent from answers. ok is false when every field is
// answered. Pure and idempotent.
func (qs Questions) NextMissing(answers map[string]string) (q Question, ok bool) {
	for _, question := range qs {
		if _, answered := answers[question.Field]; !answered {
			return question, true
		}
	}
	return Question{}, false
}

// DefaultQuestions returns the built-in trip intake sequence.
func DefaultQuestions() Questions {
	return Questions{
		{Field: FieldDestination, Prompt: "✈️ Where would you like to travel?"},
		{Field: FieldGroupSize, Prompt: "👥 How many people are traveling?"},
		{Field: FieldDates, Prompt: "📅 What are your travel dates?"},
		{Field: FieldBudget, Prompt: "💰 Do you have a budget in mind, or should I find the best options?"},
		{Field: FieldHotelPreference, Prompt: "🏨 Do you prefer luxury, mid-range, or budget-friendly stays?"},
		{Field: FieldActivities, Prompt: "🎯 Any specific activities or experiences you'd love to include?"},
	}
}
