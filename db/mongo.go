package db

import (
	"context"
	"fmt"

	"github.com/fekalegi/property-management-system/config"
	"github.com/fekalegi/property-management-system/pkg/retry"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// NewMongo connects to the document database and returns the configured
// database handle together with its client, so the caller can disconnect.
func NewMongo(ctx context.Context, cfg config.DatabaseConfig, log zerolog.Logger) (*mongo.Client, *mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(cfg.URL).
		SetServerSelectionTimeout(connectTimeout(cfg))
	if err := clientOpts.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid DB config: %w", err)
	}

	var client *mongo.Client
	err := retry.Do(ctx, policy(cfg), log, "mongo", func(ctx context.Context) error {
		c, err := mongo.Connect(ctx, clientOpts)
		if err != nil {
			return err
		}

		pingCtx, cancel := context.WithTimeout(ctx, connectTimeout(cfg))
		defer cancel()
		if err := c.Ping(pingCtx, readpref.Primary()); err != nil {
			_ = c.Disconnect(context.Background())
			return err
		}
		client = c
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	log.Info().Str("database", cfg.Name).Msg("Connected to MongoDB")
	return client, client.Database(cfg.Name), nil
}
