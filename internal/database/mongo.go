package database

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/SaharI12/PantryChef/config"
)

const (
	UsersCollection     = "users"
	InventoryCollection = "inventory"
	ShoppingCollection  = "shopping_list"
)

// Connect opens the Mongo connection and pings the primary.
func Connect(ctx context.Context, cfg config.MongoConfig) (*mongo.Database, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	log.Printf("Connected to MongoDB database %q", cfg.DBName)
	return client.Database(cfg.DBName), nil
}

// EnsureIndexes creates the indexes the handlers rely on: unique user emails
// and the per-user namespace key on both item collections.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create users email index: %w", err)
	}

	for _, name := range []string{InventoryCollection, ShoppingCollection} {
		_, err := db.Collection(name).Indexes().CreateOne(ctx, mongo.IndexModel{
			Keys: bson.D{{Key: "userID", Value: 1}},
		})
		if err != nil {
			return fmt.Errorf("failed to create %s userID index: %w", name, err)
		}
	}

	return nil
}
