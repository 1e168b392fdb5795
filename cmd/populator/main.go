package main

import (
	"context"
	"fmt"
	"library_seeder/config"
	"library_seeder/data/mongo"
	"library_seeder/internal/apiclient"
	"library_seeder/internal/fixtures"
	"library_seeder/internal/repository"
	"library_seeder/internal/service/populateService"
	"log/slog"
	"os"
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	slog.Debug("config", slog.Any("cfg", cfg))

	ctx := context.Background()

	mongoClient := mongo.MustInitMongo(cfg)
	defer mongo.Disconnect(mongoClient)

	mongoRepo := repository.NewMongoRepo(mongo.Database(mongoClient, cfg))

	api := apiclient.New(cfg)

	populator := populateService.New(cfg, mongoRepo, api, fixtures.Default())

	report, err := populator.Run(ctx)
	if err != nil {
		slog.Error("Populate run aborted", slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, "populate aborted:", err)
		os.Exit(1)
	}

	fmt.Print(report.Summary())
}

func setupLogger(cfg *config.Config) {
	var logLevel slog.Level

	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
