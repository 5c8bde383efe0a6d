package models

import "testing"

func TestNewUserMessage(t *testing.T) {
	msg := NewUserMessage("  hola  ")

	if msg.Origin != OriginUser {
		t.Errorf("expected origin %q, got %q", OriginUser, msg.Origin)
	}
	if msg.Text != "  hola  " {
		t.Errorf("expected raw untrimmed text preserved, got %q", msg.Text)
	}
	if msg.ID == "" {
		t.Error("expected non-empty ID")
	}
	if msg.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestNewAssistantMessage(t *testing.T) {
	msg := NewAssistantMessage("Bonjour")

	if msg.Origin != OriginAssistant {
		t.Errorf("expected origin %q, got %q", OriginAssistant, msg.Origin)
	}
	if msg.Text != "Bonjour" {
		t.Errorf("expected text 'Bonjour', got %q", msg.Text)
	}
}

func TestMessageIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		msg := NewUserMessage("x")
		if seen[msg.ID] {
			t.Fatalf("duplicate message ID %q after %d messages", msg.ID, i)
		}
		seen[msg.ID] = true
	}
}

func TestOriginRole(t *testing.T) {
	tests := []struct {
		origin Origin
		want   string
	}{
		{OriginUser, "user"},
		{OriginAssistant, "assistant"},
	}

	for _, tt := range tests {
		if got := tt.origin.Role(); got != tt.want {
			t.Errorf("Role(%q) = %q, want %q", tt.origin, got, tt.want)
		}
	}
}

func TestTranscriptAppendOrder(t *testing.T) {
	var transcript Transcript
	transcript.Append(NewUserMessage("first"))
	transcript.Append(NewAssistantMessage("second"))
	transcript.Append(NewUserMessage("third"))

	if transcript.Len() != 3 {
		t.Fatalf("expected 3 messages, got %d", transcript.Len())
	}

	want := []string{"first", "second", "third"}
	for i, text := range want {
		if transcript[i].Text != text {
			t.Errorf("message %d: expected %q, got %q", i, text, transcript[i].Text)
		}
	}
}

func TestTranscriptHistory(t *testing.T) {
	var transcript Transcript
	transcript.Append(NewUserMessage("Hello"))
	transcript.Append(NewAssistantMessage("Bonjour"))
	transcript.Append(NewUserMessage("How do I say thanks?"))

	history := transcript.History()

	if len(history) != transcript.Len() {
		t.Fatalf("expected history length %d, got %d", transcript.Len(), len(history))
	}

	want := []HistoryEntry{
		{Role: "user", Content: "Hello"},
		{Role: "assistant", Content: "Bonjour"},
		{Role: "user", Content: "How do I say thanks?"},
	}

	for i, entry := range want {
		if history[i] != entry {
			t.Errorf("entry %d: expected %+v, got %+v", i, entry, history[i])
		}
	}
}

func TestTranscriptHistoryEmpty(t *testing.T) {
	var transcript Transcript
	history := transcript.History()

	if history == nil {
		t.Error("expected non-nil history for empty transcript")
	}
	if len(history) != 0 {
		t.Errorf("expected empty history, got %d entries", len(history))
	}
}
