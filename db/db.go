package db

import (
	"context"
	"fmt"
	"os"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client             *mongo.Client
	UserCollection     *mongo.Collection
	ProductsCollection *mongo.Collection
	CartsCollection    *mongo.Collection
	OrdersCollection   *mongo.Collection
)

// Init connects to MongoDB and binds the collections. MONGO_URL and
// DB_NAME are read once here; the client lives for the whole process.
func Init(ctx context.Context) error {
	mongoURL := os.Getenv("MONGO_URL")
	if mongoURL == "" {
		mongoURL = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "velourdb"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURL))
	if err != nil {
		return fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongo ping: %w", err)
	}

	Client = client
	UserCollection = client.Database(dbName).Collection("users")
	ProductsCollection = client.Database(dbName).Collection("products")
	CartsCollection = client.Database(dbName).Collection("carts")
	OrdersCollection = client.Database(dbName).Collection("orders")
	return nil
}

func Close(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}
