package index

import (
	"context"
	"fmt"
	"os"

	"github.com/milvus-io/milvus-sdk-go/v2/client"
	"github.com/milvus-io/milvus-sdk-go/v2/entity"
)

// MilvusConfig holds configuration for Milvus connection and collection
type MilvusConfig struct {
	Address        string // Milvus server address (e.g., "localhost:19530")
	CollectionName string // Name of the collection
	Dimension      int    // Vector dimension (e.g., 3072 for text-embedding-3-large)
	IndexType      string // Index type (default: "HNSW")
	MetricType     string // Similarity metric (default: "COSINE")

	// HNSW index parameters
	M              int // HNSW M parameter (default: 16)
	EfConstruction int // HNSW efConstruction (default: 256)
}

// DefaultMilvusConfig returns default configuration from environment variables
func DefaultMilvusConfig() MilvusConfig {
	address := os.Getenv("MILVUS_ADDRESS")
	if address == "" {
		address = "localhost:19530"
	}

	collection := os.Getenv("MILVUS_COLLECTION")
	if collection == "" {
		collection = "story_memories"
	}

	return MilvusConfig{
		Address:        address,
		CollectionName: collection,
		Dimension:      3072, // Default for text-embedding-3-large
		IndexType:      "HNSW",
		MetricType:     "COSINE",
		M:              16,
		EfConstruction: 256,
	}
}

// MilvusIndex implements StoryIndex using Milvus. Entries are keyed by a
// varchar story_id primary key so that upserts overwrite by ID.
type MilvusIndex struct {
	client   client.Client
	embedder Embedder
	config   MilvusConfig
}

// NewMilvusIndex connects to Milvus and attaches to the configured
// collection, creating it if absent. Attachment is idempotent.
func NewMilvusIndex(ctx context.Context, config MilvusConfig, embedder Embedder) (*MilvusIndex, error) {
	if config.Dimension <= 0 {
		return nil, fmt.Errorf("%w: dimension must be positive", ErrInvalidConfig)
	}
	if embedder == nil {
		return nil, fmt.Errorf("%w: embedder is required", ErrInvalidConfig)
	}
	if embedder.Dimension() != config.Dimension {
		return nil, fmt.Errorf("%w: embedder dimension %d does not match collection dimension %d",
			ErrInvalidConfig, embedder.Dimension(), config.Dimension)
	}

	c, err := client.NewGrpcClient(ctx, config.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	idx := &MilvusIndex{
		client:   c,
		embedder: embedder,
		config:   config,
	}

	if err := idx.ensureCollection(ctx); err != nil {
		c.Close()
		return nil, err
	}

	return idx, nil
}

// ensureCollection creates the collection with schema if it doesn't exist
func (m *MilvusIndex) ensureCollection(ctx context.Context) error {
	has, err := m.client.HasCollection(ctx, m.config.CollectionName)
	if err != nil {
		return fmt.Errorf("%w: failed to check collection existence: %v", ErrUnavailable, err)
	}

	if !has {
		schema := &entity.Schema{
			CollectionName: m.config.CollectionName,
			Fields: []*entity.Field{
				{
					Name:       "story_id",
					DataType:   entity.FieldTypeVarChar,
					PrimaryKey: true,
					TypeParams: map[string]string{
						"max_length": "64",
					},
				},
				{
					Name:     "summary",
					DataType: entity.FieldTypeVarChar,
					TypeParams: map[string]string{
						"max_length": "65535",
					},
				},
				{
					Name:     MetadataOriginalStory,
					DataType: entity.FieldTypeVarChar,
					TypeParams: map[string]string{
						"max_length": "65535",
					},
				},
				{
					Name:     "embedding",
					DataType: entity.FieldTypeFloatVector,
					TypeParams: map[string]string{
						"dim": fmt.Sprintf("%d", m.config.Dimension),
					},
				},
			},
		}

		if err := m.client.CreateCollection(ctx, schema, entity.DefaultShardNumber); err != nil {
			return fmt.Errorf("%w: failed to create collection: %v", ErrUnavailable, err)
		}

		idx, err := entity.NewIndexHNSW(entity.COSINE, m.config.M, m.config.EfConstruction)
		if err != nil {
			return fmt.Errorf("%w: failed to create index config: %v", ErrUnavailable, err)
		}

		if err := m.client.CreateIndex(ctx, m.config.CollectionName, "embedding", idx, false); err != nil {
			return fmt.Errorf("%w: failed to create index: %v", ErrUnavailable, err)
		}
	}

	if err := m.client.LoadCollection(ctx, m.config.CollectionName, false); err != nil {
		return fmt.Errorf("%w: failed to load collection: %v", ErrUnavailable, err)
	}

	return nil
}

// Upsert adds or overwrites one entry keyed by story ID. The embedding is
// computed from the document text.
func (m *MilvusIndex) Upsert(ctx context.Context, id, document string, metadata map[string]string) error {
	embedding, err := m.embedder.Embed(ctx, document)
	if err != nil {
		return err
	}

	columns := []entity.Column{
		entity.NewColumnVarChar("story_id", []string{id}),
		entity.NewColumnVarChar("summary", []string{document}),
		entity.NewColumnVarChar(MetadataOriginalStory, []string{metadata[MetadataOriginalStory]}),
		entity.NewColumnFloatVector("embedding", m.config.Dimension, [][]float32{embedding}),
	}

	if _, err := m.client.Upsert(ctx, m.config.CollectionName, "", columns...); err != nil {
		return fmt.Errorf("%w: upsert failed: %v", ErrUnavailable, err)
	}

	// Flush to ensure data is persisted
	if err := m.client.Flush(ctx, m.config.CollectionName, false); err != nil {
		return fmt.Errorf("%w: failed to flush data: %v", ErrUnavailable, err)
	}

	return nil
}

// Close releases resources and closes the Milvus connection
func (m *MilvusIndex) Close() error {
	if m.client != nil {
		return m.client.Close()
	}
	return nil
}
