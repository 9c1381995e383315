// Package config assembles service configuration from environment
// variables with sensible defaults. A .env file, if present, is loaded by
// the CLI root before this package is consulted.
package config

import (
	"os"
	"strconv"

	"github.com/fablemind/fablemind/internal/index"
	"github.com/fablemind/fablemind/internal/llm"
	"github.com/fablemind/fablemind/internal/store"
)

// Config holds the full service configuration.
type Config struct {
	// ListenAddr is the HTTP listen address for serve mode
	ListenAddr string

	// EmbeddingModel is the model used for summary embeddings
	EmbeddingModel string

	// EmbeddingDimension is the vector dimension for embeddings
	EmbeddingDimension int

	Mongo  store.MongoConfig
	Milvus index.MilvusConfig
	LLM    llm.Config
}

// FromEnv builds a Config from environment variables, falling back to
// defaults for anything unset.
func FromEnv() Config {
	cfg := Config{
		ListenAddr:         envOr("LISTEN_ADDR", ":8080"),
		EmbeddingModel:     envOr("EMBEDDING_MODEL", "text-embedding-3-large"),
		EmbeddingDimension: envIntOr("EMBEDDING_DIMENSION", 3072),
		Mongo:              store.DefaultMongoConfig(),
		Milvus:             index.DefaultMilvusConfig(),
		LLM:                llm.DefaultConfig(),
	}

	if model := os.Getenv("OPENAI_MODEL"); model != "" {
		cfg.LLM.Model = model
	}
	cfg.Milvus.Dimension = cfg.EmbeddingDimension

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
