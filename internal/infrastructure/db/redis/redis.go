// Package redis provides the connection behind the handoff guard, the TTL
// store that suppresses duplicate recommendation-pipeline dispatches.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	dialTimeout = 5 * time.Second

	clientName = "career-assistant"
)

// Config captures the settings for establishing the Redis connection. Guard
// keys are tiny and short-lived, so a dedicated logical DB is enough
// isolation; no password or TLS options are carried.
type Config struct {
	Addr    string
	DB      int
	Timeout time.Duration
}

// Connect builds the client and validates connectivity with a ping before
// the router wires the guard on top of it.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = dialTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		DB:          cfg.DB,
		ClientName:  clientName,
		DialTimeout: timeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}
