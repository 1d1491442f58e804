package database

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

const connectTimeout = 10 * time.Second

// ConnectDatabase establishes the MongoDB connection. A missing
// MONGODB_URI or an unreachable server is fatal at startup.
func ConnectDatabase() {
	uri := os.Getenv("MONGODB_URI")
	if uri == "" {
		log.Fatal("MONGODB_URI environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "blog"
	}

	Client = client
	DB = client.Database(dbName)

	log.Println("Connected to MongoDB successfully")
	log.Printf("Using database %q", dbName)
}

// IsConnected reports store reachability with a short ping. Used by the
// health endpoint, which itself never fails.
func IsConnected(ctx context.Context) bool {
	if Client == nil {
		return false
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	return Client.Ping(pingCtx, readpref.Primary()) == nil
}

// Disconnect closes the client connection pool.
func Disconnect() {
	if Client == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := Client.Disconnect(ctx); err != nil {
		log.Printf("Error disconnecting from MongoDB: %v", err)
	}
}

// MonitorDBConnections periodically pings the store and logs when it
// becomes unreachable.
func MonitorDBConnections() {
	ticker := time.NewTicker(30 * time.Second)
	go func() {
		for range ticker.C {
			if !IsConnected(context.Background()) {
				log.Println("⚠️  MongoDB connection lost, requests will fail until it recovers")
			}
		}
	}()
}
