package domain

import (
	"errors"
	"time"
)

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

var ErrEmptyMessage = errors.New("message content is empty")

// Message is a single immutable conversation turn entry.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// NewMessage builds a message stamped with the current UTC instant.
func NewMessage(role Role, content string) Message {
	return Message{Role: role, Content: content, Timestamp: time.Now().UTC()}
}

// ConversationLog is the canonical per-user conversation state. The message
// sequence preserves insertion order; any derived view must be recomputed
// from it.
type ConversationLog struct {
	UserID      string
	Messages    []Message
	LastUpdated time.Time
}

// Empty reports whether no turn has ever been persisted for this user.
func (l *ConversationLog) Empty() bool {
	return l == nil || len(l.Messages) == 0
}
