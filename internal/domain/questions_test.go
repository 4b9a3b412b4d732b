package domain

import "testing"

func TestNextMissingWalksInOrder(t *testing.T) {
	qs := DefaultQuestions()
	answers := map[string]string{}

	for i, want := range qs {
		q, ok := qs.NextMissing(answers)
		if !ok {
			t.Fatalf("step %d: expected a missing field", i)
		}
		if q.Field != want.Field {
			t.Fatalf("step %d: expected %q, got %q", i, want.Field, q.Field)
		}
		answers[q.Field] = "x"
	}

	if _, ok := qs.NextMissing(answers); ok {
		t.Fatal("expected complete after all fields answered")
	}
}

func TestNextMissingIsIdempotent(t *testing.T) {
	qs := DefaultQuestions()
	answers := map[string]string{FieldDestination: "Tokyo"}

	first, _ := qs.NextMissing(answers)
	second, _ := qs.NextMissing(answers)
	if first != second {
		t.Fatalf("same input must yield same question: %+v vs %+v", first, second)
	}
	if first.Field != FieldGroupSize {
		t.Fatalf("expected %q next, got %q", FieldGroupSize, first.Field)
	}
}

func TestNextMissingSkipsNothing(t *testing.T) {
	qs := DefaultQuestions()
	// a later field answered out of band does not reorder the walk
	answers := map[string]string{FieldActivities: "hiking"}

	q, ok := qs.NextMissing(answers)
	if !ok || q.Field != FieldDestination {
		t.Fatalf("expected %q first, got %q (ok=%v)", FieldDestination, q.Field, ok)
	}
}
