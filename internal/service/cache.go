package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"
)

// MemoryEmbeddingCache is a process-lifetime cache with no eviction. The
// ingredient vocabulary is small enough that unbounded growth is acceptable.
type MemoryEmbeddingCache struct {
	entries sync.Map
}

// NewMemoryEmbeddingCache creates an empty in-memory cache.
func NewMemoryEmbeddingCache() *MemoryEmbeddingCache {
	return &MemoryEmbeddingCache{}
}

// Get returns the cached vector for key, if present.
func (c *MemoryEmbeddingCache) Get(ctx context.Context, key string) ([]float32, bool) {
	v, ok := c.entries.Load(key)
	if !ok {
		return nil, false
	}
	return v.([]float32), true
}

// Set stores the vector for key. Concurrent writers for the same key simply
// overwrite each other with identical data.
func (c *MemoryEmbeddingCache) Set(ctx context.Context, key string, vector []float32) {
	c.entries.Store(key, vector)
}

// RedisEmbeddingCache stores embedding vectors in Redis so they survive
// restarts and are shared across instances. Cache errors are logged and
// treated as misses; the embedding provider remains the source of truth.
type RedisEmbeddingCache struct {
	redis *redis.Client
}

// NewRedisEmbeddingCache creates a cache backed by the given Redis client.
func NewRedisEmbeddingCache(client *redis.Client) *RedisEmbeddingCache {
	return &RedisEmbeddingCache{redis: client}
}

func embeddingKey(key string) string {
	return fmt.Sprintf("embedding:ingredient:%s", key)
}

// Get returns the cached vector for key, if present.
func (c *RedisEmbeddingCache) Get(ctx context.Context, key string) ([]float32, bool) {
	data, err := c.redis.Get(ctx, embeddingKey(key)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("failed to read embedding from Redis: %v", err)
		}
		return nil, false
	}

	var vector []float32
	if err := json.Unmarshal(data, &vector); err != nil {
		log.Printf("failed to unmarshal cached embedding: %v", err)
		return nil, false
	}
	return vector, true
}

// Set stores the vector for key with no expiry.
func (c *RedisEmbeddingCache) Set(ctx context.Context, key string, vector []float32) {
	data, err := json.Marshal(vector)
	if err != nil {
		log.Printf("failed to marshal embedding: %v", err)
		return
	}
	if err := c.redis.Set(ctx, embeddingKey(key), data, 0).Err(); err != nil {
		log.Printf("failed to write embedding to Redis: %v", err)
	}
}

// CachedEmbedder wraps an embedding provider with a cache so repeated terms
// are only sent to the provider once.
type CachedEmbedder struct {
	embedder EmbedderInterface
	cache    EmbeddingCache
}

// NewCachedEmbedder creates a caching decorator around embedder.
func NewCachedEmbedder(embedder EmbedderInterface, cache EmbeddingCache) *CachedEmbedder {
	return &CachedEmbedder{
		embedder: embedder,
		cache:    cache,
	}
}

// EmbedTexts serves cached vectors where possible and requests the rest
// from the underlying provider in a single batch. Any provider failure
// fails the whole call; partial results are never returned.
func (e *CachedEmbedder) EmbedTexts(ctx context.Context, texts []string) ([][]float32, error) {
	vectors := make([][]float32, len(texts))
	var missing []string
	var missingIdx []int

	for i, text := range texts {
		if v, ok := e.cache.Get(ctx, text); ok {
			vectors[i] = v
			continue
		}
		missing = append(missing, text)
		missingIdx = append(missingIdx, i)
	}

	if len(missing) == 0 {
		return vectors, nil
	}

	fetched, err := e.embedder.EmbedTexts(ctx, missing)
	if err != nil {
		return nil, err
	}
	if len(fetched) != len(missing) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d inputs", len(fetched), len(missing))
	}

	for j, v := range fetched {
		vectors[missingIdx[j]] = v
		e.cache.Set(ctx, missing[j], v)
	}
	return vectors, nil
}
