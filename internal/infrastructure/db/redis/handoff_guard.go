package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const guardTTL = 10 * time.Minute

// HandoffGuard suppresses duplicate recommendation-pipeline dispatches for
// the same user within a short window. Key format: handoff:<user_id>
type HandoffGuard struct {
	client *redis.Client
}

// NewHandoffGuard creates a HandoffGuard wrapping the given Redis client.
func NewHandoffGuard(client *redis.Client) *HandoffGuard {
	return &HandoffGuard{client: client}
}

// AlreadyDispatched reports whether a pipeline run for this user is still
// within the suppression window.
func (g *HandoffGuard) AlreadyDispatched(ctx context.Context, userID string) (bool, error) {
	n, err := g.client.Exists(ctx, g.key(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("handoff guard check: %w", err)
	}
	return n > 0, nil
}

// MarkDispatched records a pipeline run for this user (expires after guardTTL).
func (g *HandoffGuard) MarkDispatched(ctx context.Context, userID string) error {
	return g.client.Set(ctx, g.key(userID), "1", guardTTL).Err()
}

func (g *HandoffGuard) key(userID string) string {
	return fmt.Sprintf("handoff:%s", userID)
}
