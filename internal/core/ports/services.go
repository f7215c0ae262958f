package ports

import (
	"context"

	"github.com/oportuna/career-assistant/internal/core/domain"
)

// AuthService validates credentials against the flat credential file.
type AuthService interface {
	// Authenticate returns the stable user_id and a signed session token on
	// success, or domain.ErrInvalidCredentials.
	Authenticate(ctx context.Context, email, password string) (userID, token string, err error)
}

// TurnResult is the outcome of one conversation turn.
type TurnResult struct {
	Reply             string
	ShowOpportunities bool
}

// DialogueService is the conversation controller: it reconstructs per-user
// state, drives the LLM exchange, mirrors user utterances into the vector
// index, and gates the recommendation handoff.
type DialogueService interface {
	// History returns the persisted conversation. On a fresh user it
	// generates, persists and returns the assistant-first greeting.
	History(ctx context.Context, userID string) ([]domain.Message, error)
	// HandleTurn processes one user message end to end.
	HandleTurn(ctx context.Context, userID, message string) (*TurnResult, error)
}

// HandoffService invokes the recommendation pipeline and exposes stored
// opportunities for retrieval.
type HandoffService interface {
	// Dispatch synchronously runs the pipeline for a user. Pipeline
	// failures are logged, never propagated.
	Dispatch(ctx context.Context, userID string)
	Fetch(ctx context.Context, userID string) ([]domain.Opportunity, error)
}
