package database

import (
	"context"
	"log"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// DBName is the Mongo database backing the storybook platform.
const DBName = "AdventuraDB"

var (
	client     *mongo.Client
	once       sync.Once // ConnectMongoDB runs once
	connectErr error

	SessionRowCollection *mongo.Collection // one aggregate row per sessionId
	EventCollection      *mongo.Collection // best-effort miscellaneous events
	OrderCollection      *mongo.Collection
	OrderRowCollection   *mongo.Collection // flattened order sheet rows
	CounterCollection    *mongo.Collection // running counters (orders, visitors)
	UserCollection       *mongo.Collection
)

// ConnectMongoDB connects to MongoDB exactly once and binds the collections.
func ConnectMongoDB() error {

	// Environment comes from .env in development.
	err := godotenv.Load()
	if err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		log.Fatal("❌ MONGO_URI environment variable not set. Please create a .env file and set it.")
	}

	once.Do(func() {
		clientOptions := options.Client().ApplyURI(mongoURI)

		client, connectErr = mongo.Connect(context.TODO(), clientOptions)
		if connectErr != nil {
			log.Fatal("❌ Failed to connect to MongoDB:", connectErr)
			return
		}

		connectErr = client.Ping(context.TODO(), readpref.Primary())
		if connectErr != nil {
			log.Fatal("❌ MongoDB ping failed:", connectErr)
			return
		}

		SessionRowCollection = GetCollection(DBName, "sessionRows")
		EventCollection = GetCollection(DBName, "events")
		OrderCollection = GetCollection(DBName, "orders")
		OrderRowCollection = GetCollection(DBName, "orderRows")
		CounterCollection = GetCollection(DBName, "counters")
		UserCollection = GetCollection(DBName, "users")

		log.Println("✅ MongoDB connected successfully")
	})

	return connectErr
}

// GetCollection returns a collection handle from the shared client.
func GetCollection(dbName, collectionName string) *mongo.Collection {
	if client == nil {
		log.Fatal("❌ MongoDB client is nil")
	}
	return client.Database(dbName).Collection(collectionName)
}
