package main

import (
	"flag"
	"log"

	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-intelligence/internal/infrastructure/database"
	"github.com/johnquangdev/meeting-intelligence/pkg/config"
)

func main() {
	down := flag.Bool("down", false, "roll back instead of applying migrations")
	steps := flag.Int("steps", 1, "number of migrations to roll back with -down; 0 rolls back all")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := database.New(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	if *down {
		if cfg.Database.Driver == "sqlite" {
			logger.Fatal("Rollback is only supported on postgres")
		}
		if err := database.Rollback(db, *steps, logger); err != nil {
			logger.Fatal("Failed to roll back migrations", zap.Error(err))
		}
		return
	}

	logger.Info("🔄 Applying migrations...")
	if err := database.Migrate(db, cfg.Database.Driver, logger); err != nil {
		logger.Fatal("Failed to apply migrations", zap.Error(err))
	}
}
