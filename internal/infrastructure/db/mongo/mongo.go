// Package mongo holds the persistence adapters over the DadosUsuarios
// database: the conversation log, the vector context collection, and the
// opportunity documents written by the recommendation pipeline.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	// connectTimeout bounds the initial dial and ping. Atlas clusters
	// resolve mongodb+srv URIs through DNS first, so this stays generous.
	connectTimeout = 10 * time.Second
	// opTimeout bounds every repository operation.
	opTimeout = 10 * time.Second

	defaultAppName = "career-assistant"
)

// Config captures the settings for establishing the database connection.
// URI comes pre-assembled from config.MongoConfig.URI(), standard or +srv.
type Config struct {
	URI      string
	Database string
	// AppName tags the connection in the Atlas connection dashboard.
	// Defaults to the service name.
	AppName string
	Timeout time.Duration
}

// Connect dials the cluster, confirms a reachable primary, and returns both
// the client and the selected database.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = connectTimeout
	}
	appName := cfg.AppName
	if appName == "" {
		appName = defaultAppName
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.URI).
		SetAppName(appName)

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(cfg.Database), nil
}
