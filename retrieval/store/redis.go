package store

import (
	"context"
	"fmt"
	"time"

	"github.com/qianzmolloy/Llama2-on-HPG/config"
	"github.com/qianzmolloy/Llama2-on-HPG/retrieval"
	"github.com/redis/go-redis/v9"
)

// RedisStore implements retrieval.Store backed by Redis string keys.
type RedisStore struct {
	client   *redis.Client
	prefix   string
	ttl      time.Duration
	sentinel string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string        // Redis server address (e.g., "localhost:6379")
	Password string        // Redis password (if any)
	DB       int           // Redis database number
	Prefix   string        // Key prefix for namespacing
	TTL      time.Duration // Time-to-live for facts (0 means no expiration)
	Sentinel string        // Value returned on lookup misses
}

// NewRedisStore creates a new Redis-backed fact store
func NewRedisStore(cfg *RedisConfig) (*RedisStore, error) {
	if cfg == nil {
		cfg = &RedisConfig{
			Addr:   "localhost:6379",
			Prefix: "llama2:facts:",
		}
	}
	if cfg.Sentinel == "" {
		cfg.Sentinel = retrieval.DefaultSentinel
	}
	if err := config.ValidateRedisConfig(cfg.Addr, cfg.DB, cfg.Prefix); err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	return &RedisStore{
		client:   client,
		prefix:   cfg.Prefix,
		ttl:      cfg.TTL,
		sentinel: cfg.Sentinel,
	}, nil
}

// Lookup returns the fact for the key, or the sentinel when the key is
// absent or expired.
func (s *RedisStore) Lookup(ctx context.Context, key string) (string, error) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if err == redis.Nil {
		return s.sentinel, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get fact from Redis: %w", err)
	}
	return value, nil
}

// Set stores a fact under the key.
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.prefix+key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store fact in Redis: %w", err)
	}
	return nil
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ping checks if Redis connection is alive
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
