// Command wipe clears the Contexto and HistoricoConversa collections after
// an interactive confirmation. Opportunity documents are never touched.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/oportuna/career-assistant/internal/infrastructure/config"
	mongodb "github.com/oportuna/career-assistant/internal/infrastructure/db/mongo"
	"github.com/oportuna/career-assistant/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString("startup: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: true})

	fmt.Print("Você tem certeza que deseja limpar as coleções? Isso irá apagar todos os dados. (s/N): ")
	reader := bufio.NewReader(os.Stdin)
	answer, _ := reader.ReadString('\n')
	if strings.ToLower(strings.TrimSpace(answer)) != "s" {
		log.Info().Msg("operation cancelled")
		return
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI(),
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer client.Disconnect(ctx)

	removed, err := mongodb.Purge(ctx, db, mongodb.PurgeableCollections)
	if err != nil {
		log.Fatal().Err(err).Msg("purge failed")
	}
	for name, count := range removed {
		log.Info().Str("collection", name).Int64("removed", count).Msg("collection cleared")
	}
}
