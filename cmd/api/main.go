// @title        Career Assistant API
// @version      1.0
// @description  Conversational assistant that builds a professional profile and hands off to a recommendation pipeline.
// @BasePath     /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oportuna/career-assistant/internal/api"
	"github.com/oportuna/career-assistant/internal/infrastructure/config"
	"github.com/oportuna/career-assistant/internal/infrastructure/credentials"
	mongodb "github.com/oportuna/career-assistant/internal/infrastructure/db/mongo"
	redisdb "github.com/oportuna/career-assistant/internal/infrastructure/db/redis"
	"github.com/oportuna/career-assistant/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet; write the config failure directly.
		os.Stderr.WriteString("startup: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	creds, err := credentials.LoadFile(cfg.UsersFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load credential file")
	}
	log.Info().Int("users", creds.Len()).Str("file", cfg.UsersFile).Msg("credential file loaded")

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI(),
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(shutdownCtx)
	}()

	if err := mongodb.NewConversationRepository(db).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to ensure conversation indexes")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	e := api.NewRouter(cfg, db, rdb, creds, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("starting http server")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()

	// Block until SIGINT/SIGTERM, then drain in-flight requests.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
