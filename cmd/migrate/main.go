// Command migrate runs one-off data migrations against the registrations
// collection. Currently it backfills the age range on records created before
// the age field became required.
//
// Usage:
//
//	migrate -uri mongodb://localhost:27017 -db solar_fair
package main

import (
	"context"
	"flag"
	"os"
	"time"

	registrationstore "github.com/dalemusser/solarfair/internal/app/store/registrations"
	"github.com/dalemusser/solarfair/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

func main() {
	var (
		uri     = flag.String("uri", envOr("SOLARFAIR_MONGO_URI", "mongodb://localhost:27017"), "MongoDB connection URI")
		dbName  = flag.String("db", envOr("SOLARFAIR_MONGO_DATABASE", "solar_fair"), "MongoDB database name")
		age     = flag.String("age", models.DefaultAgeRange, "age range to set on records missing one")
		timeout = flag.Duration("timeout", 30*time.Second, "overall timeout")
	)
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	if !models.IsValidAgeRange(*age) {
		logger.Fatal("invalid age range", zap.String("age", *age))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(*uri))
	if err != nil {
		logger.Fatal("mongo connect failed", zap.Error(err))
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			logger.Error("mongo disconnect failed", zap.Error(err))
		}
	}()

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		logger.Fatal("mongo ping failed", zap.Error(err))
	}

	store := registrationstore.New(client.Database(*dbName))

	updated, err := store.BackfillAge(ctx, *age)
	if err != nil {
		logger.Fatal("age backfill failed", zap.Error(err))
	}

	logger.Info("age backfill complete",
		zap.Int64("updated", updated),
		zap.String("age", *age))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
