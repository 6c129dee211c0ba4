package models

import (
	"time"
	"unicode/utf8"
)

// UnknownKey is shown when a message carries neither messageId nor id.
const UnknownKey = "unknown"

// Message represents a message as stored by the remote API.
type Message struct {
	ID        string    `json:"id,omitempty"`
	MessageID string    `json:"messageId,omitempty"`
	Content   string    `json:"content"`
	Avatar    string    `json:"avatar"`
	Timestamp int64     `json:"timestamp"` // epoch milliseconds
	Reactions Reactions `json:"reactions,omitempty"`
	CreatedAt string    `json:"createdAt,omitempty"`
}

// Key returns the server-assigned identity of the message.
func (m Message) Key() string {
	if m.MessageID != "" {
		return m.MessageID
	}
	if m.ID != "" {
		return m.ID
	}
	return UnknownKey
}

// Time converts the epoch-millisecond timestamp.
func (m Message) Time() time.Time {
	return time.UnixMilli(m.Timestamp)
}

// Clone returns a copy that does not share the reaction tally.
func (m Message) Clone() Message {
	m.Reactions = m.Reactions.Clone()
	return m
}

// Draft is a not-yet-persisted message payload.
type Draft struct {
	Content string `json:"content"`
	Avatar  string `json:"avatar"`
}

// Length counts the draft content in characters, not bytes.
func (d Draft) Length() int {
	return utf8.RuneCountInString(d.Content)
}

// ReactionRequest asks the remote API to increment one reaction of a message.
type ReactionRequest struct {
	MessageID string `json:"messageId"`
	Timestamp int64  `json:"timestamp"`
	Reaction  string `json:"reaction"`
}
