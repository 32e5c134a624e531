package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type IndexSpec struct {
	Collection string
	Keys       bson.D
	Unique     bool
}

func EnsureIndexes(ctx context.Context, db *mongo.Database, specs ...IndexSpec) error {
	for _, spec := range specs {
		model := mongo.IndexModel{Keys: spec.Keys, Options: options.Index().SetUnique(spec.Unique)}
		if _, err := db.Collection(spec.Collection).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("index on %s: %w", spec.Collection, err)
		}
	}
	return nil
}
