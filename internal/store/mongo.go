package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const mongoCloseTimeout = 5 * time.Second

// MongoConfig holds configuration for the MongoDB-backed story store
type MongoConfig struct {
	URI        string // MongoDB connection URI (e.g., "mongodb://localhost:27017")
	Database   string // Database name
	Collection string // Collection holding story records
}

// DefaultMongoConfig returns default configuration from environment variables
func DefaultMongoConfig() MongoConfig {
	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	database := os.Getenv("MONGO_DATABASE")
	if database == "" {
		database = "fablemind"
	}

	collection := os.Getenv("MONGO_COLLECTION")
	if collection == "" {
		collection = "stories"
	}

	return MongoConfig{
		URI:        uri,
		Database:   database,
		Collection: collection,
	}
}

// MongoStore implements StoryStore backed by a MongoDB collection keyed by
// story ID.
type MongoStore struct {
	client     *mongo.Client
	collection *mongo.Collection
}

// NewMongoStore connects to MongoDB and returns a story store bound to the
// configured collection.
func NewMongoStore(ctx context.Context, config MongoConfig) (*MongoStore, error) {
	if config.URI == "" {
		return nil, fmt.Errorf("%w: missing URI", ErrInvalidConfig)
	}
	if config.Database == "" {
		return nil, fmt.Errorf("%w: missing database name", ErrInvalidConfig)
	}
	if config.Collection == "" {
		return nil, fmt.Errorf("%w: missing collection name", ErrInvalidConfig)
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &MongoStore{
		client:     client,
		collection: client.Database(config.Database).Collection(config.Collection),
	}, nil
}

type mongoStoryDocument struct {
	ID           string `bson:"_id"`
	OriginalText string `bson:"original_text"`
	Summary      string `bson:"summary"`
}

// Put persists a record under the given story ID, replacing any existing
// document with the same ID.
func (ms *MongoStore) Put(ctx context.Context, id string, rec Record) error {
	doc := mongoStoryDocument{
		ID:           id,
		OriginalText: rec.OriginalText,
		Summary:      rec.Summary,
	}

	_, err := ms.collection.ReplaceOne(
		ctx,
		bson.M{"_id": id},
		doc,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Get returns the record for the given story ID, reporting absence via the
// second return value.
func (ms *MongoStore) Get(ctx context.Context, id string) (Record, bool, error) {
	var doc mongoStoryDocument
	err := ms.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return Record{
		OriginalText: doc.OriginalText,
		Summary:      doc.Summary,
	}, true, nil
}

// ListAll returns every stored record keyed by story ID.
func (ms *MongoStore) ListAll(ctx context.Context) (map[string]Record, error) {
	cursor, err := ms.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer cursor.Close(ctx)

	records := make(map[string]Record)
	for cursor.Next(ctx) {
		var doc mongoStoryDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		records[doc.ID] = Record{
			OriginalText: doc.OriginalText,
			Summary:      doc.Summary,
		}
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return records, nil
}

// Close disconnects from MongoDB.
func (ms *MongoStore) Close(ctx context.Context) error {
	if ms.client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, mongoCloseTimeout)
	defer cancel()
	return ms.client.Disconnect(ctx)
}
