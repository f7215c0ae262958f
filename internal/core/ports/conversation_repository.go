package ports

import (
	"context"

	"github.com/oportuna/career-assistant/internal/core/domain"
)

// ConversationRepository persists the per-user message log.
type ConversationRepository interface {
	// Load returns the conversation log for a user. A user without history
	// yields an empty log, not an error.
	Load(ctx context.Context, userID string) (*domain.ConversationLog, error)
	// Save replaces the full message sequence for a user (upsert). A
	// subsequent Load must observe the written sequence.
	Save(ctx context.Context, userID string, messages []domain.Message) error
}
