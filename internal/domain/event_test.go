package domain

import "testing"

func TestEventIgnorable(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want bool
	}{
		{"regular user message", Event{ChannelID: "C1", UserID: "U1", Text: "hi"}, false},
		{"missing channel", Event{UserID: "U1", Text: "hi"}, true},
		{"blank text", Event{ChannelID: "C1", UserID: "U1", Text: "  "}, true},
		{"bot originated", Event{ChannelID: "C1", UserID: "U1", Text: "hi", BotID: "B1"}, true},
		{"edited message", Event{ChannelID: "C1", UserID: "U1", Text: "hi", Subtype: "message_changed"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.Ignorable(); got != tt.want {
				t.Fatalf("Ignorable() = %v, want %v", got, tt.want)
			}
		})
	}
}
