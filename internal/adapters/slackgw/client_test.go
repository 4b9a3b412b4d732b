package slackgw

import (
	"io"
	"log/slog"
	"testing"

	"github.com/slack-go/slack/slackevents"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestToEventMapsMessageFields(t *testing.T) {
	ev := toEvent(&slackevents.MessageEvent{
		Channel: "C42",
		User:    "U7",
		Text:    "Tokyo",
		BotID:   "",
		SubType: "",
	})

	if ev.ChannelID != "C42" || ev.UserID != "U7" || ev.Text != "Tokyo" {
		t.Fatalf("unexpected event: %+v", ev)
	}
	if ev.Ignorable() {
		t.Fatal("a plain user message must be actionable")
	}
}

func TestToEventKeepsFilterMarkers(t *testing.T) {
	bot := toEvent(&slackevents.MessageEvent{Channel: "C1", Text: "hi", BotID: "B1"})
	if !bot.Ignorable() {
		t.Fatal("bot messages must be ignorable")
	}

	edited := toEvent(&slackevents.MessageEvent{Channel: "C1", User: "U1", Text: "hi", SubType: "message_changed"})
	if !edited.Ignorable() {
		t.Fatal("subtyped messages must be ignorable")
	}
}

func TestConnectedDefaultsFalse(t *testing.T) {
	c := NewClient("xoxb-test", "xapp-test", testLogger())
	if c.Connected() {
		t.Fatal("a fresh client is not connected")
	}
	c.Close() // safe before any Connect
}
