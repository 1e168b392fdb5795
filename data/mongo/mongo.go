package mongo

import (
	"context"
	"library_seeder/config"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func MustInitMongo(cfg *config.Config) *mongo.Client {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		slog.Error("Error while connecting MongoDB", slog.String("error", err.Error()))
		panic(err)
	}

	ctx := context.Background()
	if err = client.Ping(ctx, nil); err != nil {
		slog.Error("Error while pinging MongoDB", slog.String("error", err.Error()))
		panic(err)
	}
	slog.Info("MongoDB connected", slog.String("db", cfg.Mongo.DbName))

	return client
}

func Database(client *mongo.Client, cfg *config.Config) *mongo.Database {
	return client.Database(cfg.Mongo.DbName)
}

// Disconnect closes the client and logs instead of returning the error,
// it is meant to run deferred from main.
func Disconnect(client *mongo.Client) {
	if err := client.Disconnect(context.Background()); err != nil {
		slog.Error("Error while disconnecting MongoDB", slog.String("error", err.Error()))
	}
}
