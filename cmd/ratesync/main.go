// One-shot feed synchronization, for cron-free environments and manual runs.
package main

import (
	"context"
	"log"
	"os"
	"time"

	"easyrent-backend/internal/currency"
	"easyrent-backend/internal/repositories"
	"easyrent-backend/pkg/config"
	"easyrent-backend/pkg/database"
	"easyrent-backend/pkg/logger"
	"easyrent-backend/pkg/nbkr"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, relying on system environment variables: %v", err)
	}
	logger.InitLogger(os.Stdout, os.Getenv("LOG_LEVEL"))

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Logger.Fatalf("Failed to load config: %v", err)
	}

	if err := database.InitDB(cfg); err != nil {
		logger.Logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDB()

	store := currency.NewStore(repositories.NewRateRepository(database.DB))
	synchronizer := currency.NewSynchronizer(store, nbkr.NewClient(cfg.Currency.FeedURL))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	report, err := synchronizer.SyncFromFeed(ctx)
	if err != nil {
		logger.Logger.Fatalf("Rate synchronization failed: %v", err)
	}
	logger.Logger.Printf("Done: %d pairs updated, %d skipped", report.PairsUpdated, len(report.Skipped))
}
