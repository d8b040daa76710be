package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix namespaces toolbox keys in a shared redis
const DefaultRedisPrefix = "toolbox:"

// RedisConfig configures a redis backed store
type RedisConfig struct {
	Client redis.UniversalClient // Required
	Prefix string                // Optional, defaults to DefaultRedisPrefix
}

type redisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a store that keeps each key as a redis string
func NewRedisStore(cfg *RedisConfig) Store {
	if cfg == nil {
		panic("RedisConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	prefix := cfg.Prefix
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}

	return &redisStore{
		client: cfg.Client,
		prefix: prefix,
	}
}

func (r *redisStore) key(key string) string {
	return r.prefix + key
}

func (r *redisStore) Read(ctx context.Context, key string) (string, bool, error) {
	value, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get %q from Redis: %w", key, err)
	}
	return value, true, nil
}

func (r *redisStore) Write(ctx context.Context, key, value string) error {
	if err := r.client.Set(ctx, r.key(key), value, 0).Err(); err != nil {
		if isOOM(err) {
			return fmt.Errorf("set %q: %w: %v", key, ErrQuotaExceeded, err)
		}
		return fmt.Errorf("failed to set %q in Redis: %w", key, err)
	}
	return nil
}

func (r *redisStore) Remove(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete %q from Redis: %w", key, err)
	}
	return nil
}

// isOOM matches the reply redis sends when maxmemory is reached
func isOOM(err error) bool {
	return strings.HasPrefix(err.Error(), "OOM ")
}
