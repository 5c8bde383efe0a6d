// Package models defines the conversation data model shared by the TUI,
// the CLI commands and the backend client.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Origin identifies which party authored a message.
type Origin string

const (
	OriginUser      Origin = "user"
	OriginAssistant Origin = "assistant"
)

// Role returns the wire-level role name for this origin.
func (o Origin) Role() string {
	if o == OriginUser {
		return "user"
	}
	return "assistant"
}

// Message represents one turn in the conversation.
type Message struct {
	ID        string
	Origin    Origin
	Text      string
	CreatedAt time.Time
}

// NewUserMessage creates a user-authored message. The text is stored as
// typed, untrimmed.
func NewUserMessage(text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Origin:    OriginUser,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// NewAssistantMessage creates an assistant-authored message. Synthetic
// error entries use this constructor too.
func NewAssistantMessage(text string) Message {
	return Message{
		ID:        uuid.NewString(),
		Origin:    OriginAssistant,
		Text:      text,
		CreatedAt: time.Now(),
	}
}

// HistoryEntry is the wire representation of a message sent to the
// backend's /chat endpoint.
type HistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Transcript is the ordered list of all messages exchanged in a session.
// Append-only, chronological, in-memory only.
type Transcript []Message

// Append adds a message to the end of the transcript.
func (t *Transcript) Append(msg Message) {
	*t = append(*t, msg)
}

// Len returns the number of messages in the transcript.
func (t Transcript) Len() int {
	return len(t)
}

// History serializes the transcript into role-tagged entries for the
// backend, preserving order.
func (t Transcript) History() []HistoryEntry {
	history := make([]HistoryEntry, 0, len(t))
	for _, msg := range t {
		history = append(history, HistoryEntry{
			Role:    msg.Origin.Role(),
			Content: msg.Text,
		})
	}
	return history
}
