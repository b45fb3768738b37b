package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates the secondary indexes used by the stores.
// CreateMany is a no-op for indexes that already exist.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		TenantCollection: {
			{Keys: bson.D{{Key: "status", Value: 1}}},
		},
		BookingCollection: {
			{Keys: bson.D{{Key: "createdAt", Value: 1}}},
		},
		ContactCollection: {
			{Keys: bson.D{{Key: "createdAt", Value: 1}}},
		},
	}

	for coll, models := range indexes {
		if _, err := database.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("could not create indexes on %s: %w", coll, err)
		}
	}
	return nil
}
