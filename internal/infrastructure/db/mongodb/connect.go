package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const (
	CollectionUsers      = "users"
	CollectionUsersSedes = "users_sedes"
)

func New(ctx context.Context, logger *zap.Logger, uri, database string) (*mongo.Database, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetAppName("vg-ms-user").
		SetConnectTimeout(10 * time.Second)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err = client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	logger.Info("mongodb connected successfully", zap.String("database", database))

	return client.Database(database), nil
}

// EnsureIndexes creates the lookup indexes the finders rely on.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	if _, err := db.Collection(CollectionUsers).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "role", Value: 1}},
	}); err != nil {
		return fmt.Errorf("ensure users indexes: %w", err)
	}
	if _, err := db.Collection(CollectionUsersSedes).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}},
	}); err != nil {
		return fmt.Errorf("ensure users_sedes indexes: %w", err)
	}
	return nil
}
