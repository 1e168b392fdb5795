package main

import (
	"context"
	"fmt"
	"library_seeder/config"
	"library_seeder/data/mongo"
	"library_seeder/internal/repository"
	"library_seeder/internal/service/verifyService"
	"log/slog"
	"os"
)

func main() {
	cfg := config.MustLoad()

	setupLogger(cfg)

	ctx := context.Background()

	mongoClient := mongo.MustInitMongo(cfg)
	defer mongo.Disconnect(mongoClient)

	mongoRepo := repository.NewMongoRepo(mongo.Database(mongoClient, cfg))

	verifier := verifyService.New(mongoRepo)

	census, err := verifier.Census(ctx)
	if err != nil {
		slog.Error("Census failed", slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, "verify failed:", err)
		os.Exit(1)
	}

	for _, report := range census {
		if report.Sample != "" {
			fmt.Printf("%s: %d documents, sample: %s\n", report.Collection, report.Count, report.Sample)
		} else {
			fmt.Printf("%s: %d documents\n", report.Collection, report.Count)
		}
	}

	embedding, err := verifier.CheckEmbedding(ctx)
	if err != nil {
		slog.Error("Embedding check failed", slog.String("error", err.Error()))
		fmt.Fprintln(os.Stderr, "verify failed:", err)
		os.Exit(1)
	}

	fmt.Println(embedding.String())
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

	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
}
