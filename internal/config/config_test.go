package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "")
	t.Setenv("EMBEDDING_MODEL", "")
	t.Setenv("EMBEDDING_DIMENSION", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("MONGO_URI", "")
	t.Setenv("MILVUS_ADDRESS", "")
	t.Setenv("MILVUS_COLLECTION", "")

	cfg := FromEnv()

	if cfg.ListenAddr != ":8080" {
		t.Errorf("Expected ListenAddr=:8080, got %s", cfg.ListenAddr)
	}
	if cfg.EmbeddingModel != "text-embedding-3-large" {
		t.Errorf("Expected default embedding model, got %s", cfg.EmbeddingModel)
	}
	if cfg.EmbeddingDimension != 3072 {
		t.Errorf("Expected EmbeddingDimension=3072, got %d", cfg.EmbeddingDimension)
	}
	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("Expected default mongo URI, got %s", cfg.Mongo.URI)
	}
	if cfg.Milvus.Address != "localhost:19530" {
		t.Errorf("Expected default milvus address, got %s", cfg.Milvus.Address)
	}
	if cfg.Milvus.CollectionName != "story_memories" {
		t.Errorf("Expected default collection, got %s", cfg.Milvus.CollectionName)
	}
	if cfg.LLM.Model != "gpt-4o" {
		t.Errorf("Expected default LLM model, got %s", cfg.LLM.Model)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9090")
	t.Setenv("EMBEDDING_DIMENSION", "1536")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("MILVUS_COLLECTION", "custom_stories")

	cfg := FromEnv()

	if cfg.ListenAddr != ":9090" {
		t.Errorf("Expected ListenAddr=:9090, got %s", cfg.ListenAddr)
	}
	if cfg.EmbeddingDimension != 1536 {
		t.Errorf("Expected EmbeddingDimension=1536, got %d", cfg.EmbeddingDimension)
	}
	if cfg.Milvus.Dimension != 1536 {
		t.Errorf("Expected milvus dimension to follow embedding dimension, got %d", cfg.Milvus.Dimension)
	}
	if cfg.LLM.Model != "gpt-4o-mini" {
		t.Errorf("Expected LLM model override, got %s", cfg.LLM.Model)
	}
	if cfg.Milvus.CollectionName != "custom_stories" {
		t.Errorf("Expected collection override, got %s", cfg.Milvus.CollectionName)
	}
}

func TestFromEnvInvalidDimension(t *testing.T) {
	t.Setenv("EMBEDDING_DIMENSION", "not-a-number")

	cfg := FromEnv()
	if cfg.EmbeddingDimension != 3072 {
		t.Errorf("Expected fallback dimension on invalid value, got %d", cfg.EmbeddingDimension)
	}
}
