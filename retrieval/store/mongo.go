package store

import (
	"context"
	"fmt"
	"time"

	"github.com/qianzmolloy/Llama2-on-HPG/config"
	"github.com/qianzmolloy/Llama2-on-HPG/retrieval"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore implements retrieval.Store backed by a MongoDB collection of
// fact documents.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
	sentinel   string
}

// MongoConfig holds MongoDB connection configuration
type MongoConfig struct {
	URI        string
	Database   string
	Collection string
	Sentinel   string
}

// DefaultMongoConfig returns default MongoDB configuration
func DefaultMongoConfig() *MongoConfig {
	return &MongoConfig{
		URI:        "mongodb://localhost:27017",
		Database:   "llama2_hpg",
		Collection: "facts",
		Sentinel:   retrieval.DefaultSentinel,
	}
}

// mongoFact is the internal representation for MongoDB
type mongoFact struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// NewMongoStore creates a new MongoDB-backed fact store
func NewMongoStore(cfg *MongoConfig) (*MongoStore, error) {
	if cfg == nil {
		cfg = DefaultMongoConfig()
	}
	if cfg.Sentinel == "" {
		cfg.Sentinel = retrieval.DefaultSentinel
	}
	if err := config.ValidateMongoDBConfig(cfg.URI, cfg.Database, cfg.Collection); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	collection := client.Database(cfg.Database).Collection(cfg.Collection)

	return &MongoStore{
		client:     client,
		collection: collection,
		sentinel:   cfg.Sentinel,
	}, nil
}

// Lookup returns the fact for the key, or the sentinel when no document
// matches.
func (s *MongoStore) Lookup(ctx context.Context, key string) (string, error) {
	var fact mongoFact
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&fact)
	if err == mongo.ErrNoDocuments {
		return s.sentinel, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query fact: %w", err)
	}
	return fact.Value, nil
}

// Set inserts or replaces a fact document.
func (s *MongoStore) Set(ctx context.Context, key, value string) error {
	fact := mongoFact{Key: key, Value: value, UpdatedAt: time.Now()}
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, fact, opts); err != nil {
		return fmt.Errorf("failed to store fact: %w", err)
	}
	return nil
}

// Close disconnects from MongoDB
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
