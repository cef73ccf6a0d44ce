package main

import (
	"context"
	"flag"
	"time"

	"gigbook/internal/config"
	"gigbook/internal/database"
	"gigbook/internal/pkg/logger"
	"gigbook/internal/repository"
)

func main() {
	days := flag.Int("days", 30, "delete read notifications older than this many days")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	logger.Init(cfg.LogLevel)

	if *days <= 0 {
		logger.Fatal().Int("days", *days).Msg("days must be positive")
	}

	db, err := database.Connect(cfg.DatabaseURL, database.Options{Quiet: true})
	if err != nil {
		logger.Fatal().Err(err).Msg("db connect failed")
	}
	defer database.Close(db)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	cutoff := time.Now().AddDate(0, 0, -*days)
	n, err := repository.NewNotificationRepository(db).DeleteReadBefore(ctx, cutoff)
	if err != nil {
		logger.Fatal().Err(err).Msg("cleanup notifications failed")
	}

	logger.Info().Int64("deleted", n).Time("cutoff", cutoff).Msg("notification cleanup completed")
}
